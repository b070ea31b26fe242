package builtin

import (
	"strings"
)

// EchoCommand writes its arguments back to the console.
type EchoCommand struct {
	host *Host
}

// Name returns the command name "echo".
func (c *EchoCommand) Name() string { return "echo" }

// Description returns a brief description of the echo command.
func (c *EchoCommand) Description() string { return "Print text to the console" }

// DetailedHelp returns "".
func (c *EchoCommand) DetailedHelp() string { return "" }

// CanExecute always returns true.
func (c *EchoCommand) CanExecute() bool { return true }

// Execute prints the arguments joined by single spaces.
func (c *EchoCommand) Execute(args []string) error {
	c.host.Reporter.Command(c.Name(), "%s", strings.Join(args, " "))
	return nil
}
