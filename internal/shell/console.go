package shell

import (
	"fmt"
	"os"

	"github.com/abiosoft/ishell/v2"
	"github.com/abiosoft/readline"

	"gameshell/internal/logger"
	"gameshell/internal/version"
)

// Console is the interactive ishell front end of a Session.
type Console struct {
	session *Session
	shell   *ishell.Shell
}

// NewConsole creates the interactive console. Printer output is redirected
// through readline so the prompt is redrawn after asynchronous lines.
func NewConsole(s *Session) (*Console, error) {
	completer := NewCompleter(s.Registry, s.Adapter, s.Resolver, "exit")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.Config.Console.Prompt,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start console: %w", err)
	}

	sh := ishell.NewWithReadline(rl)
	sh.CustomCompleter(completer)
	if s.Config.Console.HistoryFile != "" {
		sh.SetHistoryPath(s.Config.Console.HistoryFile)
	}

	// ishell's own help and clear would shadow the session's commands.
	sh.DeleteCmd("help")
	sh.DeleteCmd("clear")

	for _, b := range s.Adapter.Bindings() {
		sh.AddCmd(s.typedCmd(b))
	}
	sh.NotFound(s.lineHandler())

	s.Printer.SetWriter(rl.Stdout())

	return &Console{session: s, shell: sh}, nil
}

// Run blocks until the operator exits.
func (c *Console) Run() {
	c.session.Reporter.Info("%s", version.Short())
	c.session.Reporter.Info("Type 'help' for commands, TAB to complete, 'exit' to quit")
	logger.Info("Console started", "prompt", c.session.Config.Console.Prompt)

	c.shell.Run()
}

// Close releases the terminal.
func (c *Console) Close() {
	c.shell.Close()
	c.session.Printer.SetWriter(os.Stdout)
}
