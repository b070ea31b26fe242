package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"
)

// Printer renders transcript lines to a terminal. Styling is injected through
// a StyleProvider so the printer has no dependency on a theme.
type Printer struct {
	styleProvider StyleProvider
	writer        io.Writer
	mode          Mode
	forcePlain    bool
	silent        bool

	mu sync.Mutex
}

// NewPrinter creates a Printer writing to os.Stdout in ModeAuto.
func NewPrinter(options ...Option) *Printer {
	p := &Printer{
		writer: os.Stdout,
		mode:   ModeAuto,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Line renders one line with the styling of its prefix.
func (p *Printer) Line(line string) {
	if p.silent {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	semantic := SemanticOf(line)

	var text string
	switch p.mode {
	case ModeJSON:
		text = p.renderJSON(semantic, line)
	case ModeStyled:
		text = p.renderStyled(semantic, line)
	default:
		text = p.renderText(semantic, line)
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = fmt.Fprint(p.writer, text)
}

// Append makes the printer usable as an AppendFunc.
func (p *Printer) Append(line string) {
	p.Line(line)
}

func (p *Printer) renderText(semantic SemanticType, line string) string {
	if p.IsStylable() {
		return p.styleProvider.GetStyle(semantic).Render(line)
	}
	return ansi.Strip(line)
}

func (p *Printer) renderStyled(semantic SemanticType, line string) string {
	if p.styleProvider != nil && p.styleProvider.IsAvailable() {
		return p.styleProvider.GetStyle(semantic).Render(line)
	}
	return p.renderText(semantic, line)
}

func (p *Printer) renderJSON(semantic SemanticType, line string) string {
	payload := map[string]interface{}{
		"type":    semantic,
		"message": ansi.Strip(line),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return line
	}
	return string(data)
}

// SetWriter changes the output writer.
func (p *Printer) SetWriter(writer io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = writer
}

// SetMode changes the output mode.
func (p *Printer) SetMode(mode Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mode = mode
}

// IsStylable returns true if the printer can apply styles.
func (p *Printer) IsStylable() bool {
	return !p.forcePlain && p.styleProvider != nil && p.styleProvider.IsAvailable()
}

// String returns a representation for debugging.
func (p *Printer) String() string {
	hasStyles := "no"
	if p.IsStylable() {
		hasStyles = "yes"
	}
	return fmt.Sprintf("Printer{mode: %v, styles: %s, writer: %T}", p.mode, hasStyles, p.writer)
}
