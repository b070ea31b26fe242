package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func complete(c *Completer, line string) []string {
	suggestions, _ := c.Do([]rune(line), len([]rune(line)))
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, string(s))
	}
	return out
}

func TestCompleter_CommandNames(t *testing.T) {
	s, _ := newTestSession(t)
	c := NewCompleter(s.Registry, s.Adapter, s.Resolver, "exit")

	assert.ElementsMatch(t, []string{"ear"}, complete(c, "cl"))
	assert.ElementsMatch(t, []string{"t_stamina"}, complete(c, "se"))
	assert.ElementsMatch(t, []string{"it"}, complete(c, "ex"))

	suggestions, offset := c.Do([]rune("pla"), 3)
	assert.Equal(t, [][]rune{[]rune("yer")}, suggestions)
	assert.Equal(t, 3, offset)
}

func TestCompleter_PlayerArguments(t *testing.T) {
	s, _ := newTestSession(t)
	c := NewCompleter(s.Registry, s.Adapter, s.Resolver)

	assert.ElementsMatch(t, []string{"odmode"}, complete(c, "player g"))
	assert.ElementsMatch(t, []string{"-dry-run"}, complete(c, "player -"))
	assert.ElementsMatch(t, []string{"eal"}, complete(c, "player --dry-run h"))
	assert.ElementsMatch(t, []string{"ayer One"}, complete(c, "player heal pl"))
	assert.ElementsMatch(t, []string{"ll"}, complete(c, "player heal a"))
	assert.ElementsMatch(t, []string{"n", "ff"}, complete(c, "player godmode bob o"))
	assert.Empty(t, complete(c, "player stamina bob 0"))
}

func TestCompleter_TypedArguments(t *testing.T) {
	s, _ := newTestSession(t)
	c := NewCompleter(s.Registry, s.Adapter, s.Resolver)

	assert.ElementsMatch(t, []string{`ayer One"`}, complete(c, `heal "Pl`))
	assert.ElementsMatch(t, []string{"ayer One"}, complete(c, "heal Pl"))
	assert.ElementsMatch(t, []string{"ob"}, complete(c, "god B"))
	assert.ElementsMatch(t, []string{"n", "ff"}, complete(c, "god Bob o"))
	assert.Empty(t, complete(c, "say hel"))
}

func TestCompleter_HelpAndKick(t *testing.T) {
	s, _ := newTestSession(t)
	c := NewCompleter(s.Registry, s.Adapter, s.Resolver)

	assert.ElementsMatch(t, []string{"ick"}, complete(c, "help k"))
	assert.ElementsMatch(t, []string{"ob"}, complete(c, "kick b"))
	assert.Empty(t, complete(c, "echo any"))
}

func TestCompleter_QuotedArgumentsCountAsOne(t *testing.T) {
	s, _ := newTestSession(t)
	c := NewCompleter(s.Registry, s.Adapter, s.Resolver)

	assert.ElementsMatch(t, []string{"n", "ff"}, complete(c, `god "Player One" o`))
	assert.ElementsMatch(t, []string{"n", "ff"}, complete(c, `god 'Player One' o`))
	assert.ElementsMatch(t, []string{"n", "ff"}, complete(c, `player godmode "Player One" o`))
	assert.Empty(t, complete(c, `heal "Player One" 2`))
}

func TestSplitForCompletion(t *testing.T) {
	tests := []struct {
		text     string
		previous []string
		current  string
	}{
		{"", []string{}, ""},
		{"heal ", []string{"heal"}, ""},
		{`heal "Player One" `, []string{"heal", "Player One"}, ""},
		{`heal "Player One" 2`, []string{"heal", "Player One"}, "2"},
		{`heal "Player O`, []string{"heal"}, `"Player O`},
		{`heal 'it''s `, []string{"heal"}, `'it''s `},
		{`say a\ b c`, []string{"say", "a b"}, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			previous, current := splitForCompletion(tt.text)
			assert.Equal(t, tt.previous, append([]string{}, previous...))
			assert.Equal(t, tt.current, current)
		})
	}
}
