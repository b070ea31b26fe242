package output

import (
	"fmt"
	"strings"
)

// Line prefixes of the output convention.
const (
	PrefixInfo    = "[INFO]"
	PrefixWarning = "[WARNING]"
	PrefixError   = "[ERROR]"
)

// Reporter formats operator-visible messages as single prefixed lines and
// hands them to one sink.
type Reporter struct {
	sink AppendFunc
}

// NewReporter creates a Reporter. A nil sink discards output.
func NewReporter(sink AppendFunc) *Reporter {
	if sink == nil {
		sink = Discard
	}
	return &Reporter{sink: sink}
}

// Info reports an informational message.
func (r *Reporter) Info(format string, args ...interface{}) {
	r.emit(PrefixInfo, fmt.Sprintf(format, args...))
}

// Warning reports a warning.
func (r *Reporter) Warning(format string, args ...interface{}) {
	r.emit(PrefixWarning, fmt.Sprintf(format, args...))
}

// Error reports an error.
func (r *Reporter) Error(format string, args ...interface{}) {
	r.emit(PrefixError, fmt.Sprintf(format, args...))
}

// Command reports a message tagged with the command name.
func (r *Reporter) Command(name string, format string, args ...interface{}) {
	r.emit(CommandPrefix(name), fmt.Sprintf(format, args...))
}

// Block reports multi-line text, one tagged line per input line.
func (r *Reporter) Block(name string, text string) {
	prefix := CommandPrefix(name)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		r.sink(prefix + " " + line)
	}
}

// emit collapses embedded newlines so every message stays on one line.
func (r *Reporter) emit(prefix, msg string) {
	msg = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(msg)
	r.sink(prefix + " " + msg)
}

// CommandPrefix returns the tag used for command-specific lines.
func CommandPrefix(name string) string {
	return "[" + name + "]"
}

// SemanticOf classifies a line by its prefix.
func SemanticOf(line string) SemanticType {
	switch {
	case strings.HasPrefix(line, PrefixError):
		return SemanticError
	case strings.HasPrefix(line, PrefixWarning):
		return SemanticWarning
	case strings.HasPrefix(line, PrefixInfo):
		return SemanticInfo
	case strings.HasPrefix(line, "[") && strings.Contains(line, "]"):
		return SemanticCommand
	default:
		return SemanticPlain
	}
}

// Discard drops every line.
func Discard(string) {}

// Tee fans one line out to every non-nil sink, in order.
func Tee(sinks ...AppendFunc) AppendFunc {
	live := make([]AppendFunc, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return func(line string) {
		for _, s := range live {
			s(line)
		}
	}
}
