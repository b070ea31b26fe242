package builtin

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ActorsCommand lists live actors with their state.
type ActorsCommand struct {
	host *Host
}

// Name returns the command name "actors".
func (c *ActorsCommand) Name() string { return "actors" }

// Description returns a brief description of the actors command.
func (c *ActorsCommand) Description() string { return "List live actors" }

// DetailedHelp returns "".
func (c *ActorsCommand) DetailedHelp() string { return "" }

// CanExecute reports whether a roster is attached.
func (c *ActorsCommand) CanExecute() bool { return c.host.Roster != nil }

// Execute prints one row per live player.
func (c *ActorsCommand) Execute([]string) error {
	players := c.host.Roster.Players()
	if len(players) == 0 {
		c.host.Reporter.Info("No live actors")
		return nil
	}

	rows := make([]table.Row, 0, len(players))
	for _, p := range players {
		s := p.State()
		rows = append(rows, table.Row{
			s.Name,
			fmt.Sprintf("%g/%g", s.Health, s.MaxHealth),
			fmt.Sprintf("%.2f", s.Stamina),
			onOff(s.GodMode),
			onOff(s.Noclip),
			shortID(s.ID),
		})
	}
	c.host.Reporter.Block(c.Name(), renderTable(table.Row{"Name", "Health", "Stamina", "God", "Noclip", "ID"}, rows))
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
