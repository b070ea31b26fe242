// Package shell hosts gameshell's consoles. The interactive console routes
// free-text lines to the dispatcher and typed commands to the adapter; the
// batch runner does the same for script files.
package shell

import (
	"strings"

	"github.com/abiosoft/ishell/v2"

	"gameshell/internal/logger"
	"gameshell/internal/typed"
)

// lineHandler returns the ishell NotFound handler that dispatches free-text
// lines.
func (s *Session) lineHandler() func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if len(c.RawArgs) == 0 {
			return
		}

		rawInput := strings.TrimSpace(strings.Join(c.RawArgs, " "))
		if rawInput == "" || strings.HasPrefix(rawInput, "#") {
			return
		}

		outcome := s.Dispatcher.Dispatch(rawInput)
		logger.Debug("Line dispatched", "line", rawInput, "outcome", outcome)
	}
}

// typedCmd wraps a binding as an ishell command. ishell has already split the
// arguments with quote handling, one token per parameter.
func (s *Session) typedCmd(b typed.Binding) *ishell.Cmd {
	return &ishell.Cmd{
		Name:     b.Name,
		Help:     b.Help,
		LongHelp: b.Usage(),
		Func: func(c *ishell.Context) {
			if err := s.Adapter.Invoke(b.Name, c.Args); err != nil {
				logger.Debug("Typed command failed", "command", b.Name, "error", err)
			}
		},
	}
}
