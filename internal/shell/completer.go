package shell

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"

	"gameshell/internal/commands"
	"gameshell/internal/roster"
	"gameshell/internal/typed"
)

// playerActions are the actions accepted by the player command.
var playerActions = []string{"godmode", "heal", "kick", "noclip", "stamina"}

// Completer provides tab completion for both consoles. It implements
// readline.AutoCompleter.
type Completer struct {
	registry *commands.Registry
	adapter  *typed.Adapter
	resolver *roster.Resolver
	// builtins are ishell's own commands that remain available.
	builtins []string
}

// NewCompleter creates a completer over the given command sources.
func NewCompleter(registry *commands.Registry, adapter *typed.Adapter, resolver *roster.Resolver, builtins ...string) *Completer {
	return &Completer{
		registry: registry,
		adapter:  adapter,
		resolver: resolver,
		builtins: builtins,
	}
}

// Do implements readline.AutoCompleter. It returns the suffixes that complete
// the word under the cursor and the length of that word.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if pos > len(line) {
		pos = len(line)
	}
	previous, currentWord := splitForCompletion(string(line[:pos]))

	candidates := c.candidates(previous, currentWord)

	var suggestions [][]rune
	for _, candidate := range candidates {
		if suffix, ok := completionSuffix(candidate, currentWord); ok {
			suggestions = append(suggestions, []rune(suffix))
		}
	}
	return suggestions, len([]rune(currentWord))
}

// candidates returns every completion for the word after previous.
func (c *Completer) candidates(previous []string, currentWord string) []string {
	if len(previous) == 0 {
		return c.commandNames()
	}

	name := strings.ToLower(previous[0])
	argIndex := len(previous) - 1

	if _, ok := c.adapter.Binding(name); ok {
		return quoteSpaced(c.adapter.Suggest(name, argIndex, unquote(currentWord)))
	}

	switch name {
	case "help":
		if argIndex == 0 {
			return c.commandNames()
		}
	case "kick":
		return c.targets()
	case "player":
		args := previous[1:]
		for len(args) > 0 && strings.HasPrefix(args[0], "--") {
			args = args[1:]
		}
		switch len(args) {
		case 0:
			if strings.HasPrefix(currentWord, "-") {
				return []string{"--dry-run"}
			}
			return playerActions
		case 1:
			return c.targets()
		case 2:
			switch strings.ToLower(args[0]) {
			case "godmode", "noclip":
				return []string{"on", "off"}
			}
		}
	}
	return []string{}
}

// splitForCompletion splits text into the completed words before the cursor
// and the word being typed. Quoted words count as one, and an unterminated
// quote starts the current word.
func splitForCompletion(text string) ([]string, string) {
	wordStart := 0
	var quote rune
	escaped := false
	for i, r := range text {
		switch {
		case escaped:
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ' ' || r == '\t':
			wordStart = i + 1
		}
	}

	head := text[:wordStart]
	previous, err := shellquote.Split(head)
	if err != nil {
		previous = strings.Fields(head)
	}
	return previous, text[wordStart:]
}

func (c *Completer) commandNames() []string {
	names := append([]string(nil), c.registry.Names()...)
	for _, b := range c.adapter.Bindings() {
		names = append(names, b.Name)
	}
	names = append(names, c.builtins...)
	sort.Strings(names)
	return names
}

func (c *Completer) targets() []string {
	return append(c.resolver.Names(), roster.AllKeyword)
}

// completionSuffix matches word against candidate, ignoring case and an
// opening quote, and returns the text still to be typed.
func completionSuffix(candidate, word string) (string, bool) {
	if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(word)) {
		return candidate[len(word):], true
	}
	bare := unquote(candidate)
	if bare != candidate && strings.HasPrefix(strings.ToLower(bare), strings.ToLower(word)) {
		return bare[len(word):], true
	}
	return "", false
}

func unquote(word string) string {
	return strings.TrimLeft(strings.TrimRight(word, `"'`), `"'`)
}

// quoteSpaced wraps multi-word suggestions in double quotes so ishell keeps
// them as one argument.
func quoteSpaced(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if strings.ContainsAny(v, " \t") {
			v = `"` + v + `"`
		}
		out[i] = v
	}
	return out
}

var _ readline.AutoCompleter = (*Completer)(nil)
