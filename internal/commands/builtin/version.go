package builtin

import (
	"gameshell/internal/version"
)

// VersionCommand prints build information.
type VersionCommand struct {
	host *Host
}

// Name returns the command name "version".
func (c *VersionCommand) Name() string { return "version" }

// Description returns a brief description of the version command.
func (c *VersionCommand) Description() string { return "Show gameshell version information" }

// DetailedHelp returns "".
func (c *VersionCommand) DetailedHelp() string { return "" }

// CanExecute always returns true.
func (c *VersionCommand) CanExecute() bool { return true }

// Execute prints the detailed version with "-v", the short banner otherwise.
func (c *VersionCommand) Execute(args []string) error {
	if len(args) > 0 && (args[0] == "-v" || args[0] == "--verbose") {
		c.host.Reporter.Block(c.Name(), version.Detailed())
		return nil
	}
	c.host.Reporter.Command(c.Name(), "%s", version.Short())
	return nil
}
