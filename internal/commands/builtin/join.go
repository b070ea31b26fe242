package builtin

import (
	"strings"

	"gameshell/internal/parser"
)

// JoinCommand adds an actor to the session.
type JoinCommand struct {
	host *Host
}

// Name returns the command name "join".
func (c *JoinCommand) Name() string { return "join" }

// Description returns a brief description of the join command.
func (c *JoinCommand) Description() string { return "Add an actor to the session" }

// DetailedHelp returns "".
func (c *JoinCommand) DetailedHelp() string { return "" }

// CanExecute reports whether a roster is attached.
func (c *JoinCommand) CanExecute() bool { return c.host.Roster != nil }

// Execute joins a player named by the remaining words.
func (c *JoinCommand) Execute(args []string) error {
	name := parser.StripQuotes(strings.Join(args, " "))
	p, err := c.host.Roster.Join(name)
	if err != nil {
		c.host.Reporter.Command(c.Name(), "%v", err)
		return err
	}
	c.host.Reporter.Command(c.Name(), "%s joined (%s)", p.Name(), shortID(p.ID()))
	return nil
}
