package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// LipglossStyles is a StyleProvider backed by lipgloss.
type LipglossStyles struct {
	styles    map[SemanticType]lipgloss.Style
	available bool
}

// NewLipglossStyles returns the default console palette. When the terminal
// reports no colour support the provider reports itself unavailable.
func NewLipglossStyles() *LipglossStyles {
	return &LipglossStyles{
		styles: map[SemanticType]lipgloss.Style{
			SemanticPlain:   lipgloss.NewStyle(),
			SemanticInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
			SemanticWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			SemanticError:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
			SemanticCommand: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		},
		available: lipgloss.ColorProfile() != termenv.Ascii,
	}
}

// GetStyle implements StyleProvider.
func (s *LipglossStyles) GetStyle(semantic SemanticType) TextStyle {
	if style, ok := s.styles[semantic]; ok {
		return lipglossStyle{style}
	}
	return lipglossStyle{s.styles[SemanticPlain]}
}

// lipglossStyle narrows lipgloss.Style's variadic Render to TextStyle.
type lipglossStyle struct {
	style lipgloss.Style
}

func (l lipglossStyle) Render(text string) string {
	return l.style.Render(text)
}

// IsAvailable implements StyleProvider.
func (s *LipglossStyles) IsAvailable() bool {
	return s != nil && s.available
}

// DisableColor forces every lipgloss renderer in the process to plain ASCII.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
