package builtin

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// StatsCommand prints the dispatch and typed invocation counters.
type StatsCommand struct {
	host *Host
}

// Name returns the command name "stats".
func (c *StatsCommand) Name() string { return "stats" }

// Description returns a brief description of the stats command.
func (c *StatsCommand) Description() string { return "Show command outcome counters" }

// DetailedHelp returns "".
func (c *StatsCommand) DetailedHelp() string { return "" }

// CanExecute reports whether metrics are wired.
func (c *StatsCommand) CanExecute() bool { return c.host.Metrics != nil }

// Execute gathers and prints every counter.
func (c *StatsCommand) Execute([]string) error {
	samples, err := c.host.Metrics.Snapshot()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		c.host.Reporter.Info("No commands counted yet")
		return nil
	}

	rows := make([]table.Row, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, table.Row{strings.TrimPrefix(s.Name, "gameshell_"), s.Outcome, s.Value})
	}
	c.host.Reporter.Block(c.Name(), renderTable(table.Row{"Metric", "Outcome", "Count"}, rows))
	return nil
}
