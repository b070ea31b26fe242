package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_TailPrecedence(t *testing.T) {
	t.Run("numeric value after target", func(t *testing.T) {
		inv := Classify([]string{"stamina", "PlayerOne", "0.75"})

		assert.Equal(t, "stamina", inv.Action)
		assert.Equal(t, "PlayerOne", inv.TargetName)
		require.True(t, inv.HasNumeric())
		assert.Equal(t, 0.75, *inv.Numeric)
		assert.False(t, inv.HasBoolean())
		assert.Equal(t, []string{"PlayerOne", "0.75"}, inv.Remaining)
	})

	t.Run("single boolean after action", func(t *testing.T) {
		inv := Classify([]string{"noclip", "on"})

		assert.Equal(t, "noclip", inv.Action)
		assert.False(t, inv.HasTarget())
		require.True(t, inv.HasBoolean())
		assert.True(t, *inv.Boolean)
		assert.False(t, inv.HasNumeric())
	})

	t.Run("multi word target with boolean", func(t *testing.T) {
		inv := Classify([]string{"god-mode", "Player One", "off"})

		assert.Equal(t, "Player One", inv.TargetName)
		require.True(t, inv.HasBoolean())
		assert.False(t, *inv.Boolean)
	})

	t.Run("split quoted name is rejoined", func(t *testing.T) {
		inv := Classify([]string{"god-mode", "\"Player", "One\"", "disable"})

		assert.Equal(t, "Player One", inv.TargetName)
		assert.False(t, inv.BooleanOr(true))
	})

	t.Run("no trailing value", func(t *testing.T) {
		inv := Classify([]string{"kick", "Bad", "Guy"})

		assert.Equal(t, "Bad Guy", inv.TargetName)
		assert.False(t, inv.HasNumeric())
		assert.False(t, inv.HasBoolean())
	})

	t.Run("numeric wins over boolean for 1 and 0", func(t *testing.T) {
		inv := Classify([]string{"heal", "Bob", "1"})

		require.True(t, inv.HasNumeric())
		assert.Equal(t, 1.0, *inv.Numeric)
		assert.False(t, inv.HasBoolean())
	})

	t.Run("single action only", func(t *testing.T) {
		inv := Classify([]string{"Heal"})

		assert.Equal(t, "heal", inv.Action)
		assert.False(t, inv.HasTarget())
		assert.NotNil(t, inv.Remaining)
		assert.Empty(t, inv.Remaining)
	})

	t.Run("empty tokens", func(t *testing.T) {
		inv := Classify(nil)

		assert.False(t, inv.HasAction())
		assert.NotNil(t, inv.Remaining)
	})

	t.Run("nan is a name not a number", func(t *testing.T) {
		inv := Classify([]string{"kick", "NaN"})

		assert.Equal(t, "NaN", inv.TargetName)
		assert.False(t, inv.HasNumeric())
	})
}

func TestClassifyPlayerAndValue_Offset(t *testing.T) {
	tokens := []string{"--dry-run", "stamina", "Player", "Two", "0.5"}

	inv := ClassifyPlayerAndValue(tokens, 1)
	assert.Equal(t, "stamina", inv.Action)
	assert.Equal(t, "Player Two", inv.TargetName)
	assert.Equal(t, 0.5, inv.NumericOr(0))
	assert.Equal(t, []string{"Player", "Two", "0.5"}, inv.Remaining)

	assert.Equal(t, Classify(tokens[1:]), inv)

	out := ClassifyPlayerAndValue(tokens, 9)
	assert.False(t, out.HasAction())
	assert.Empty(t, out.Remaining)

	neg := ClassifyPlayerAndValue(tokens, -1)
	assert.False(t, neg.HasAction())
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "double quotes", input: "\"John Doe\"", want: "John Doe"},
		{name: "single quotes", input: "'John Doe'", want: "John Doe"},
		{name: "unbalanced", input: "\"John Doe", want: "\"John Doe"},
		{name: "mismatched", input: "\"John Doe'", want: "\"John Doe'"},
		{name: "only one pass", input: "\"\"nested\"\"", want: "\"nested\""},
		{name: "lone quote", input: "\"", want: "\""},
		{name: "empty quotes", input: "''", want: ""},
		{name: "plain", input: "plain", want: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripQuotes(tt.input))
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"on", "ENABLE", "True", "1"} {
		v, ok := ParseBool(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"off", "Disable", "FALSE", "0"} {
		v, ok := ParseBool(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	for _, s := range []string{"yes", "no", "", "maybe"} {
		_, ok := ParseBool(s)
		assert.False(t, ok, s)
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"25", 25, true},
		{"-3", -3, true},
		{"+0.5", 0.5, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e3", 1000, true},
		{"2.5E-1", 0.25, true},
		{"0x1p-2", 0, false},
		{"0X10", 0, false},
		{"1_000", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"-infinity", 0, false},
		{"1e999", 0, false},
		{"12abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_GoNumberLiteralsStayInTarget(t *testing.T) {
	inv := Classify([]string{"kick", "Agent", "0x1p4"})
	assert.False(t, inv.HasNumeric())
	assert.Equal(t, "Agent 0x1p4", inv.TargetName)

	inv = Classify([]string{"stamina", "bob", "1_000"})
	assert.False(t, inv.HasNumeric())
	assert.Equal(t, "bob 1_000", inv.TargetName)
}
