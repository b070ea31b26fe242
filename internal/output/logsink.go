package output

import (
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/x/ansi"
)

// LogSink returns an AppendFunc that writes each line to the persistent
// diagnostic log at the level implied by its prefix, with styling stripped.
func LogSink(l *log.Logger) AppendFunc {
	return func(line string) {
		if l == nil {
			return
		}
		plain := ansi.Strip(line)
		switch SemanticOf(plain) {
		case SemanticError:
			l.Error(plain)
		case SemanticWarning:
			l.Warn(plain)
		default:
			l.Info(plain)
		}
	}
}
