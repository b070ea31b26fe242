package builtin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/jedib0t/go-pretty/v6/table"

	"gameshell/internal/logger"
	"gameshell/pkg/gametypes"
)

// HelpCommand lists executable commands or shows one command's detailed help.
type HelpCommand struct {
	host *Host
}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show available commands or detailed help for one command"
}

// DetailedHelp returns the markdown help for the help command.
func (c *HelpCommand) DetailedHelp() string {
	return `# help

Usage: ` + "`help [command]`" + `

Without arguments, lists every command that can run right now.
With a command name, shows that command's detailed help.`
}

// CanExecute always returns true.
func (c *HelpCommand) CanExecute() bool {
	return true
}

// Execute prints the command table or one command's help.
func (c *HelpCommand) Execute(args []string) error {
	if len(args) == 0 {
		c.listCommands()
		return nil
	}

	name := args[0]
	cmd, ok := c.host.Registry.Lookup(name)
	if !ok {
		c.host.Reporter.Warning("No help for unknown command '%s'", name)
		return nil
	}

	info := gametypes.HelpInfoFor(cmd)
	text := info.DetailedHelp
	if text == "" {
		text = fmt.Sprintf("# %s\n\n%s", info.Command, info.Description)
	}
	c.host.Reporter.Block(c.Name(), c.render(text))
	return nil
}

func (c *HelpCommand) listCommands() {
	cmds := c.host.Registry.List(nil)
	rows := make([]table.Row, 0, len(cmds))
	for _, cmd := range cmds {
		rows = append(rows, table.Row{cmd.Name(), cmd.Description()})
	}
	c.host.Reporter.Block(c.Name(), renderTable(table.Row{"Command", "Description"}, rows))
}

// render turns markdown into terminal text. Plain sessions use the notty
// style so the transcript carries no escape sequences.
func (c *HelpCommand) render(markdown string) string {
	style := glamour.WithStandardStyle("notty")
	if c.host.Styled {
		style = glamour.WithAutoStyle()
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		logger.Debug("Markdown renderer unavailable", "error", err)
		return markdown
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		logger.Debug("Markdown render failed", "error", err)
		return markdown
	}
	return strings.Trim(rendered, "\n")
}
