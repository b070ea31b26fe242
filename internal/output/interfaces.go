// Package output provides the console output channel for gameshell: the
// prefixed line convention, the bounded on-screen transcript, and a printer
// that renders lines to a terminal with optional styling.
package output

// AppendFunc receives one complete output line.
type AppendFunc func(line string)

// StyleProvider is implemented by styling backends (lipgloss) that can render
// a semantic type.
type StyleProvider interface {
	// GetStyle returns a TextStyle for the given semantic type.
	GetStyle(semantic SemanticType) TextStyle
	// IsAvailable reports whether styles can be used right now.
	IsAvailable() bool
}

// TextStyle renders text with styling.
type TextStyle interface {
	Render(text string) string
}

// Mode defines how the printer renders lines.
type Mode int

const (
	// ModeAuto styles when a provider is available, plain otherwise
	ModeAuto Mode = iota
	// ModeStyled forces styled output
	ModeStyled
	// ModePlain forces plain text output
	ModePlain
	// ModeJSON outputs one JSON object per line
	ModeJSON
)

// SemanticType is the semantic meaning of a line, derived from its prefix.
type SemanticType string

const (
	// SemanticPlain is untagged text.
	SemanticPlain SemanticType = "plain"
	// SemanticInfo is an [INFO] line.
	SemanticInfo SemanticType = "info"
	// SemanticWarning is a [WARNING] line.
	SemanticWarning SemanticType = "warning"
	// SemanticError is an [ERROR] line.
	SemanticError SemanticType = "error"
	// SemanticCommand is a line tagged with a command name.
	SemanticCommand SemanticType = "command"
)
