package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"gameshell/pkg/gametypes"
)

// ClearCommand empties the on-screen transcript.
type ClearCommand struct {
	host *Host
}

// Name returns the command name "clear".
func (c *ClearCommand) Name() string { return "clear" }

// Description returns a brief description of the clear command.
func (c *ClearCommand) Description() string { return "Clear the console transcript" }

// DetailedHelp returns "".
func (c *ClearCommand) DetailedHelp() string { return "" }

// CanExecute reports whether a transcript is attached.
func (c *ClearCommand) CanExecute() bool { return c.host.Transcript != nil }

// Execute drops every transcript line.
func (c *ClearCommand) Execute([]string) error {
	c.host.Transcript.Clear()
	return nil
}

// TranscriptCommand prints the most recent transcript lines.
type TranscriptCommand struct {
	host *Host
}

// Name returns the command name "transcript".
func (c *TranscriptCommand) Name() string { return "transcript" }

// Description returns a brief description of the transcript command.
func (c *TranscriptCommand) Description() string { return "Show recent console lines" }

// DetailedHelp returns the markdown help for the transcript command.
func (c *TranscriptCommand) DetailedHelp() string {
	return "# transcript\n\nUsage: `transcript [n]`\n\nShows the last n lines, or every kept line when n is omitted."
}

// CanExecute reports whether a transcript is attached.
func (c *TranscriptCommand) CanExecute() bool { return c.host.Transcript != nil }

// Execute prints the tail of the transcript.
func (c *TranscriptCommand) Execute(args []string) error {
	n := 0
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil || v < 0 {
			return fmt.Errorf("%w: line count %q", gametypes.ErrInvalidArgument, args[0])
		}
		n = v
	}

	lines := c.host.Transcript.Tail(n)
	if len(lines) == 0 {
		c.host.Reporter.Info("Transcript is empty")
		return nil
	}
	c.host.Reporter.Block(c.Name(), strings.Join(lines, "\n"))
	return nil
}
