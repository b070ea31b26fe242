package builtin

import (
	"fmt"
	"strings"

	"gameshell/internal/parser"
	"gameshell/pkg/gametypes"
)

// KickCommand removes actors from the session.
type KickCommand struct {
	host *Host
}

// Name returns the command name "kick".
func (c *KickCommand) Name() string { return "kick" }

// Description returns a brief description of the kick command.
func (c *KickCommand) Description() string { return "Remove an actor, or all actors, from the session" }

// DetailedHelp returns the markdown help for the kick command.
func (c *KickCommand) DetailedHelp() string {
	return "# kick\n\nUsage: `kick <target|all>`\n\nQuoted names may contain spaces: `kick \"Player One\"`."
}

// CanExecute requires at least one live actor.
func (c *KickCommand) CanExecute() bool {
	return c.host.Roster != nil && c.host.Roster.Len() > 0
}

// Execute resolves the target and removes every match.
func (c *KickCommand) Execute(args []string) error {
	name := parser.StripQuotes(strings.Join(args, " "))
	players, err := resolvePlayers(c.host.Resolver, name)
	if err != nil {
		c.host.Reporter.Command(c.Name(), "%v", err)
		return err
	}

	for _, p := range players {
		if !c.host.Roster.Leave(p.ID()) {
			return fmt.Errorf("%w: %s already left", gametypes.ErrTargetNotFound, p.Name())
		}
		c.host.Reporter.Command(c.Name(), "kicked %s", p.Name())
	}
	return nil
}
