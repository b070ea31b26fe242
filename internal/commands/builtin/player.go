package builtin

import (
	"fmt"
	"strings"

	"gameshell/internal/parser"
	"gameshell/internal/roster"
	"gameshell/pkg/gametypes"
)

const playerUsage = "player [--dry-run] <stamina|heal|godmode|noclip|kick> <target|all> [value]"

// PlayerCommand applies an action to one or more actors.
//
//	player stamina "Player One" 0.5
//	player heal all 25
//	player godmode bob on
//	player noclip off
//	player --dry-run kick all
type PlayerCommand struct {
	host *Host
}

// Name returns the command name "player".
func (c *PlayerCommand) Name() string { return "player" }

// Description returns a brief description of the player command.
func (c *PlayerCommand) Description() string {
	return "Change actor state: stamina, heal, godmode, noclip, kick"
}

// DetailedHelp returns the markdown help for the player command.
func (c *PlayerCommand) DetailedHelp() string {
	return "# player\n\nUsage: `" + playerUsage + "`\n\n" +
		"| Action | Value |\n|---|---|\n" +
		"| stamina | number between 0 and 1 |\n" +
		"| heal | optional amount, full health when omitted |\n" +
		"| godmode | on/off |\n" +
		"| noclip | on/off, applies to the local actor when no target is given |\n" +
		"| kick | none |\n\n" +
		"A trailing number or on/off word is read as the value; everything between the action and the value is the target name. " +
		"`all` targets every live actor. `--dry-run` reports what would change without applying it."
}

// CanExecute requires at least one live actor.
func (c *PlayerCommand) CanExecute() bool {
	return c.host.Roster != nil && c.host.Roster.Len() > 0
}

// Execute classifies args after any leading flags and applies the action.
func (c *PlayerCommand) Execute(args []string) error {
	start, dryRun, err := playerFlags(args)
	if err != nil {
		return err
	}

	inv := parser.ClassifyPlayerAndValue(args, start)
	if !inv.HasAction() {
		c.host.Reporter.Command(c.Name(), "usage: %s", playerUsage)
		return fmt.Errorf("%w: missing action", gametypes.ErrInvalidArgument)
	}

	apply, describe, err := c.action(inv)
	if err != nil {
		c.host.Reporter.Command(c.Name(), "%v", err)
		return err
	}

	targets, err := c.targets(inv)
	if err != nil {
		c.host.Reporter.Command(c.Name(), "%v", err)
		return err
	}

	for _, p := range targets {
		if dryRun {
			c.host.Reporter.Command(c.Name(), "would %s %s", describe, p.Name())
			continue
		}
		name := p.Name()
		if err := apply(p); err != nil {
			c.host.Reporter.Command(c.Name(), "%s: %v", name, err)
			return err
		}
		c.host.Reporter.Command(c.Name(), "%s %s", describe, name)
	}
	return nil
}

// playerFlags consumes leading --flags and returns the action index.
func playerFlags(args []string) (int, bool, error) {
	dryRun := false
	i := 0
	for ; i < len(args) && strings.HasPrefix(args[i], "--"); i++ {
		switch strings.ToLower(args[i]) {
		case "--dry-run":
			dryRun = true
		default:
			return 0, false, fmt.Errorf("%w: unknown flag %s", gametypes.ErrInvalidArgument, args[i])
		}
	}
	return i, dryRun, nil
}

type playerAction func(p *roster.Player) error

func (c *PlayerCommand) action(inv gametypes.Invocation) (playerAction, string, error) {
	switch inv.Action {
	case "stamina":
		if !inv.HasNumeric() {
			return nil, "", fmt.Errorf("%w: stamina needs a value between 0 and 1", gametypes.ErrInvalidArgument)
		}
		v := *inv.Numeric
		if v < 0 || v > 1 {
			return nil, "", fmt.Errorf("%w: stamina %g outside [0, 1]", gametypes.ErrInvalidArgument, v)
		}
		return func(p *roster.Player) error { return p.SetStamina(v) }, fmt.Sprintf("set stamina %g for", v), nil

	case "heal":
		amount := inv.NumericOr(0)
		describe := "fully heal"
		if amount > 0 {
			describe = fmt.Sprintf("heal %g for", amount)
		}
		return func(p *roster.Player) error { p.Heal(amount); return nil }, describe, nil

	case "godmode", "noclip":
		if !inv.HasBoolean() {
			return nil, "", fmt.Errorf("%w: %s needs on or off", gametypes.ErrInvalidArgument, inv.Action)
		}
		enabled := *inv.Boolean
		describe := fmt.Sprintf("turn %s %s for", inv.Action, onOff(enabled))
		if inv.Action == "godmode" {
			return func(p *roster.Player) error { p.SetGodMode(enabled); return nil }, describe, nil
		}
		return func(p *roster.Player) error { p.SetNoclip(enabled); return nil }, describe, nil

	case "kick":
		return func(p *roster.Player) error {
			if !c.host.Roster.Leave(p.ID()) {
				return fmt.Errorf("%w: already gone", gametypes.ErrTargetNotFound)
			}
			return nil
		}, "kick", nil

	default:
		return nil, "", fmt.Errorf("%w: unknown action %q", gametypes.ErrInvalidArgument, inv.Action)
	}
}

// targets resolves the invocation's target. noclip without a target applies
// to the local actor.
func (c *PlayerCommand) targets(inv gametypes.Invocation) ([]*roster.Player, error) {
	name := inv.TargetName
	if name == "" && inv.Action == "noclip" {
		if c.host.LocalActor == "" {
			return nil, fmt.Errorf("%w: no local actor configured", gametypes.ErrEmptyTarget)
		}
		name = c.host.LocalActor
	}
	return resolvePlayers(c.host.Resolver, name)
}

func resolvePlayers(resolver *roster.Resolver, name string) ([]*roster.Player, error) {
	actors, err := resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	players := make([]*roster.Player, 0, len(actors))
	for _, a := range actors {
		p, ok := a.(*roster.Player)
		if !ok {
			return nil, fmt.Errorf("%w: %s is not a session player", gametypes.ErrInvalidArgument, a.Name())
		}
		players = append(players, p)
	}
	return players, nil
}
