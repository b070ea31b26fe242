package typed

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameshell/internal/metrics"
	"gameshell/internal/roster"
	"gameshell/internal/testutils"
	"gameshell/pkg/gametypes"
)

type recorder struct {
	args  [][]any
	err   error
	panic bool
}

func (r *recorder) invoke(args []any) error {
	if r.panic {
		panic("boom")
	}
	r.args = append(r.args, args)
	return r.err
}

func newTestAdapter(t *testing.T, actors ...string) (*Adapter, *testutils.RecordingSink, *metrics.Metrics) {
	t.Helper()
	sink := &testutils.RecordingSink{}
	m := metrics.New()
	resolver := roster.NewResolver(testutils.NewFakeRoster(actors...))
	return NewAdapter(resolver, sink.Append, WithMetrics(m)), sink, m
}

func TestAdapter_RegisterAllLatch(t *testing.T) {
	a, _, _ := newTestAdapter(t, "Alpha")
	rec := &recorder{}
	methods := []Method{
		{Name: "poke", Params: []Param{{Name: "target", Type: TypeActor}}, Invoke: rec.invoke},
		{Name: "shout", Params: []Param{{Name: "text", Type: TypeQuoted}}, Invoke: rec.invoke},
	}

	assert.False(t, a.Registered())
	assert.Equal(t, 2, a.RegisterAll(methods))
	assert.True(t, a.Registered())
	assert.Equal(t, 2, a.Parsers().Len())

	assert.Equal(t, 0, a.RegisterAll(methods))
	assert.Equal(t, 0, a.RegisterAll(append(methods, Method{Name: "late", Invoke: rec.invoke})))

	assert.Equal(t, 2, a.Parsers().Len())
	assert.Equal(t, []ParamType{TypeActor, TypeQuoted}, a.Parsers().Types())
	assert.Len(t, a.Bindings(), 2)
	_, ok := a.Binding("late")
	assert.False(t, ok)
}

func TestAdapter_SharedParserRegistry(t *testing.T) {
	shared := NewParserRegistry()
	require.NoError(t, shared.Register(TypeQuoted, QuotedStringParser{}))

	a := NewAdapter(roster.NewResolver(testutils.NewFakeRoster("Alpha")), nil, WithParsers(shared))
	a.RegisterAll(nil)

	assert.Same(t, shared, a.Parsers())
	assert.Equal(t, 2, shared.Len())
}

func TestAdapter_SkipsUnbindableMethods(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	rec := &recorder{}

	bound := a.RegisterAll([]Method{
		{Name: "drive", Params: []Param{{Name: "car", Type: "vehicle"}}, Invoke: rec.invoke},
		{Name: "", Invoke: rec.invoke},
		{Name: "noop"},
		{Name: "count", Params: []Param{{Name: "n", Type: TypeInt}}, Invoke: rec.invoke},
		{Name: "COUNT", Params: []Param{{Name: "n", Type: TypeInt}}, Invoke: rec.invoke},
	})

	assert.Equal(t, 1, bound)
	b, ok := a.Binding("Count")
	require.True(t, ok)
	assert.Equal(t, "count <n:int>", b.Usage())
}

func TestAdapter_BindingsSorted(t *testing.T) {
	a, _, _ := newTestAdapter(t)
	rec := &recorder{}
	a.RegisterAll([]Method{
		{Name: "zeta", Invoke: rec.invoke},
		{Name: "alpha", Invoke: rec.invoke},
		{Name: "mid", Invoke: rec.invoke},
	})

	var got []string
	for _, b := range a.Bindings() {
		got = append(got, b.Name)
	}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, got)
}

func TestAdapter_Invoke(t *testing.T) {
	a, sink, m := newTestAdapter(t, "Alpha", "AlphaTwo")
	rec := &recorder{}
	a.RegisterAll([]Method{{
		Name:   "boost",
		Params: []Param{{Name: "target", Type: TypeActor}, {Name: "amount", Type: TypeFloat}, {Name: "loud", Type: TypeBool}},
		Invoke: rec.invoke,
	}})

	require.NoError(t, a.Invoke("BOOST", []string{"alpha", "2.5", "on"}))

	require.Len(t, rec.args, 1)
	actor, ok := rec.args[0][0].(gametypes.Actor)
	require.True(t, ok)
	assert.Equal(t, "Alpha", actor.Name())
	assert.Equal(t, 2.5, rec.args[0][1])
	assert.Equal(t, true, rec.args[0][2])
	assert.Empty(t, sink.Lines())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TypedCounter("handled")))
}

func TestAdapter_InvokeFailures(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		tokens   []string
		rec      *recorder
		sentinel error
		line     string
		outcome  string
	}{
		{
			name:     "unknown command",
			command:  "fly",
			rec:      &recorder{},
			sentinel: gametypes.ErrUnknownCommand,
			line:     "[ERROR] Unknown command: fly",
			outcome:  "unknown",
		},
		{
			name:     "too few arguments",
			command:  "boost",
			tokens:   []string{"Alpha"},
			rec:      &recorder{},
			sentinel: gametypes.ErrParseFailure,
			line:     "[ERROR] boost: expected 2 argument(s), got 1. Usage: boost <target:actor> <amount:float>",
			outcome:  "parse_failure",
		},
		{
			name:     "bad number",
			command:  "boost",
			tokens:   []string{"Alpha", "lots"},
			rec:      &recorder{},
			sentinel: gametypes.ErrParseFailure,
			outcome:  "parse_failure",
		},
		{
			name:     "unknown actor",
			command:  "boost",
			tokens:   []string{"Zed", "1"},
			rec:      &recorder{},
			sentinel: gametypes.ErrParseFailure,
			outcome:  "parse_failure",
		},
		{
			name:     "method error",
			command:  "boost",
			tokens:   []string{"Alpha", "1"},
			rec:      &recorder{err: errors.New("denied")},
			sentinel: gametypes.ErrHandlerFailure,
			line:     "[ERROR] Command 'boost' failed",
			outcome:  "failed",
		},
		{
			name:     "method panic",
			command:  "boost",
			tokens:   []string{"Alpha", "1"},
			rec:      &recorder{panic: true},
			sentinel: gametypes.ErrHandlerFailure,
			line:     "[ERROR] Command 'boost' failed",
			outcome:  "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, sink, m := newTestAdapter(t, "Alpha")
			a.RegisterAll([]Method{{
				Name:   "boost",
				Params: []Param{{Name: "target", Type: TypeActor}, {Name: "amount", Type: TypeFloat}},
				Invoke: tt.rec.invoke,
			}})

			var err error
			assert.NotPanics(t, func() { err = a.Invoke(tt.command, tt.tokens) })
			assert.ErrorIs(t, err, tt.sentinel)

			lines := sink.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, errorPrefix, lines[0][:len(errorPrefix)])
			if tt.line != "" {
				assert.Equal(t, tt.line, lines[0])
			}
			if errors.Is(tt.sentinel, gametypes.ErrParseFailure) {
				assert.Empty(t, tt.rec.args)
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(m.TypedCounter(tt.outcome)))
		})
	}
}

const errorPrefix = "[ERROR]"

func TestAdapter_QuotedTailAbsorbsRest(t *testing.T) {
	a, _, _ := newTestAdapter(t, "Alpha")
	rec := &recorder{}
	a.RegisterAll([]Method{{
		Name:   "tell",
		Params: []Param{{Name: "target", Type: TypeActor}, {Name: "text", Type: TypeQuoted}},
		Invoke: rec.invoke,
	}})

	require.NoError(t, a.Invoke("tell", []string{"Alpha", `"good`, "game\""}))
	require.Len(t, rec.args, 1)
	assert.Equal(t, "good game", rec.args[0][1])
}

func TestAdapter_Suggest(t *testing.T) {
	a, _, _ := newTestAdapter(t, "Alpha", "", "AlphaTwo", "Bravo")
	rec := &recorder{}
	a.RegisterAll([]Method{{
		Name:   "boost",
		Params: []Param{{Name: "target", Type: TypeActor}, {Name: "loud", Type: TypeBool}, {Name: "note", Type: TypeQuoted}},
		Invoke: rec.invoke,
	}})

	assert.Equal(t, []string{"Alpha", "AlphaTwo", "Bravo"}, a.Suggest("boost", 0, ""))
	assert.Equal(t, []string{"Alpha", "AlphaTwo"}, a.Suggest("boost", 0, "al"))
	assert.Equal(t, []string{"on", "off"}, a.Suggest("boost", 1, "o"))

	for _, got := range [][]string{
		a.Suggest("boost", 0, "zz"),
		a.Suggest("boost", 2, ""),
		a.Suggest("boost", 3, ""),
		a.Suggest("boost", -1, ""),
		a.Suggest("missing", 0, ""),
	} {
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}
