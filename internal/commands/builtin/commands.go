package builtin

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// CommandsCommand lists every registered command, including those that cannot
// run right now.
type CommandsCommand struct {
	host *Host
}

// Name returns the command name "commands".
func (c *CommandsCommand) Name() string { return "commands" }

// Description returns a brief description of the commands command.
func (c *CommandsCommand) Description() string {
	return "List every registered command and whether it can run"
}

// DetailedHelp returns "".
func (c *CommandsCommand) DetailedHelp() string { return "" }

// CanExecute always returns true.
func (c *CommandsCommand) CanExecute() bool { return true }

// Execute prints the registry.
func (c *CommandsCommand) Execute([]string) error {
	all := c.host.Registry.All()
	rows := make([]table.Row, 0, len(all))
	for _, cmd := range all {
		ready := "no"
		if cmd.CanExecute() {
			ready = "yes"
		}
		rows = append(rows, table.Row{cmd.Name(), ready, cmd.Description()})
	}
	c.host.Reporter.Block(c.Name(), renderTable(table.Row{"Command", "Ready", "Description"}, rows))
	return nil
}
