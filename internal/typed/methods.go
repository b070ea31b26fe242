package typed

import (
	"fmt"

	"gameshell/internal/output"
	"gameshell/internal/roster"
	"gameshell/pkg/gametypes"
)

// GameMethods returns the typed console's method table. Results are reported
// to sink as lines tagged with the method name. Renames go through members so
// that names stay unique.
func GameMethods(sink output.AppendFunc, members *roster.Memory) []Method {
	r := output.NewReporter(sink)

	return []Method{
		{
			Name:   "heal",
			Help:   "Heal an actor by amount; zero or less restores full health",
			Params: []Param{{Name: "target", Type: TypeActor}, {Name: "amount", Type: TypeFloat}},
			Invoke: func(args []any) error {
				p, err := player(args[0])
				if err != nil {
					return err
				}
				health := p.Heal(args[1].(float64))
				r.Command("heal", "%s health is now %g", p.Name(), health)
				return nil
			},
		},
		{
			Name:   "set_stamina",
			Help:   "Set an actor's stamina between 0 and 1",
			Params: []Param{{Name: "target", Type: TypeActor}, {Name: "value", Type: TypeFloat}},
			Invoke: func(args []any) error {
				p, err := player(args[0])
				if err != nil {
					return err
				}
				v := args[1].(float64)
				if err := p.SetStamina(v); err != nil {
					return err
				}
				r.Command("set_stamina", "%s stamina set to %g", p.Name(), v)
				return nil
			},
		},
		{
			Name:   "god",
			Help:   "Toggle invulnerability for an actor",
			Params: []Param{{Name: "target", Type: TypeActor}, {Name: "enabled", Type: TypeBool}},
			Invoke: func(args []any) error {
				p, err := player(args[0])
				if err != nil {
					return err
				}
				enabled := args[1].(bool)
				p.SetGodMode(enabled)
				r.Command("god", "%s god mode %s", p.Name(), onOff(enabled))
				return nil
			},
		},
		{
			Name:   "rename",
			Help:   "Rename an actor",
			Params: []Param{{Name: "target", Type: TypeActor}, {Name: "name", Type: TypeQuoted}},
			Invoke: func(args []any) error {
				p, err := player(args[0])
				if err != nil {
					return err
				}
				if members == nil {
					return fmt.Errorf("%w: no roster to rename in", gametypes.ErrInvalidArgument)
				}
				old := p.Name()
				if _, err := members.Rename(p.ID(), args[1].(string)); err != nil {
					return err
				}
				r.Command("rename", "%s is now %s", old, p.Name())
				return nil
			},
		},
		{
			Name:   "say",
			Help:   "Broadcast a message to every actor",
			Params: []Param{{Name: "message", Type: TypeQuoted}},
			Invoke: func(args []any) error {
				r.Command("say", "%s", args[0].(string))
				return nil
			},
		},
	}
}

func player(arg any) (*roster.Player, error) {
	p, ok := arg.(*roster.Player)
	if !ok || p == nil {
		return nil, fmt.Errorf("%w: actor %v is not a session player", gametypes.ErrInvalidArgument, arg)
	}
	return p, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
