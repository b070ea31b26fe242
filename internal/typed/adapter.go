package typed

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"gameshell/internal/logger"
	"gameshell/internal/metrics"
	"gameshell/internal/output"
	"gameshell/internal/roster"
	"gameshell/pkg/gametypes"
)

// Adapter exposes a method table to the typed console. Registration happens
// once; later calls to RegisterAll are ignored.
type Adapter struct {
	resolver *roster.Resolver
	parsers  *ParserRegistry
	reporter *output.Reporter
	metrics  *metrics.Metrics
	logger   *log.Logger

	mu         sync.RWMutex
	registered bool
	bindings   map[string]Binding
}

// AdapterOption configures an Adapter.
type AdapterOption func(*Adapter)

// WithMetrics counts invocation outcomes on m.
func WithMetrics(m *metrics.Metrics) AdapterOption {
	return func(a *Adapter) {
		a.metrics = m
	}
}

// WithParsers shares an existing parser registry.
func WithParsers(r *ParserRegistry) AdapterOption {
	return func(a *Adapter) {
		if r != nil {
			a.parsers = r
		}
	}
}

// NewAdapter creates an adapter resolving actors through resolver and
// reporting to sink.
func NewAdapter(resolver *roster.Resolver, sink output.AppendFunc, options ...AdapterOption) *Adapter {
	a := &Adapter{
		resolver: resolver,
		parsers:  NewParserRegistry(),
		reporter: output.NewReporter(sink),
		logger:   logger.NewStyledLogger("Adapter"),
		bindings: make(map[string]Binding),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// Parsers returns the shared parser registry.
func (a *Adapter) Parsers() *ParserRegistry {
	return a.parsers
}

// Registered reports whether RegisterAll has run.
func (a *Adapter) Registered() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.registered
}

// RegisterAll binds methods and returns how many were bound. Only the first
// call has any effect.
func (a *Adapter) RegisterAll(methods []Method) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.registered {
		a.logger.Warn("Typed commands already registered, ignoring", "methods", len(methods))
		return 0
	}
	a.registered = true

	a.registerDefaultParsers()

	bound := 0
	for _, m := range methods {
		b, err := a.bind(m)
		if err != nil {
			a.logger.Warn("Skipping typed command", "command", m.Name, "error", err)
			continue
		}
		a.bindings[strings.ToLower(b.Name)] = b
		bound++
	}

	a.logger.Debug("Registered typed commands", "count", bound)
	return bound
}

func (a *Adapter) registerDefaultParsers() {
	defaults := []struct {
		t ParamType
		p TypeParser
	}{
		{TypeActor, NewActorParser(a.resolver)},
		{TypeQuoted, QuotedStringParser{}},
	}
	for _, d := range defaults {
		if err := a.parsers.Register(d.t, d.p); err != nil {
			if errors.Is(err, gametypes.ErrDuplicateRegistration) {
				a.logger.Debug("Parser already registered", "type", d.t)
				continue
			}
			a.logger.Warn("Failed to register parser", "type", d.t, "error", err)
		}
	}
}

func (a *Adapter) bind(m Method) (Binding, error) {
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return Binding{}, fmt.Errorf("empty method name: %w", gametypes.ErrInvalidArgument)
	}
	if m.Invoke == nil {
		return Binding{}, fmt.Errorf("method %s has no body: %w", name, gametypes.ErrInvalidArgument)
	}
	if _, exists := a.bindings[strings.ToLower(name)]; exists {
		return Binding{}, fmt.Errorf("method %s: %w", name, gametypes.ErrDuplicateRegistration)
	}

	params := append([]Param(nil), m.Params...)
	parsers := make([]TypeParser, len(params))
	for i, p := range params {
		parser, ok := a.parserFor(p.Type)
		if !ok {
			return Binding{}, fmt.Errorf("no parser for parameter %s of type %q", p.Name, p.Type)
		}
		parsers[i] = parser
	}

	return Binding{
		Name:    name,
		Help:    m.Help,
		Params:  params,
		parsers: parsers,
		invoke:  m.Invoke,
	}, nil
}

func (a *Adapter) parserFor(t ParamType) (TypeParser, bool) {
	if p, ok := nativeParsers[t]; ok {
		return p, true
	}
	return a.parsers.Lookup(t)
}

// Bindings returns every binding sorted by name.
func (a *Adapter) Bindings() []Binding {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Binding, 0, len(a.bindings))
	for _, b := range a.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Binding looks a binding up by name, ignoring case.
func (a *Adapter) Binding(name string) (Binding, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	b, ok := a.bindings[strings.ToLower(name)]
	return b, ok
}

// Invoke parses tokens against the binding's parameters and runs the method.
// Parse failures are reported before the method runs. Method errors and
// panics are reported and returned as ErrHandlerFailure.
func (a *Adapter) Invoke(name string, tokens []string) error {
	logger.TypedInvocation(name, tokens)

	b, ok := a.Binding(name)
	if !ok {
		a.reporter.Error("Unknown command: %s", name)
		a.metrics.ObserveTyped("unknown")
		return fmt.Errorf("%w: %s", gametypes.ErrUnknownCommand, name)
	}

	args, err := b.parse(tokens)
	if err != nil {
		a.reporter.Error("%s: %v. Usage: %s", b.Name, err, b.Usage())
		a.metrics.ObserveTyped("parse_failure")
		return fmt.Errorf("%w: %s: %w", gametypes.ErrParseFailure, b.Name, err)
	}

	if err := b.call(args); err != nil {
		a.logger.Error("Typed command failed", "command", b.Name, "error", err)
		a.reporter.Error("Command '%s' failed", b.Name)
		a.metrics.ObserveTyped("failed")
		return fmt.Errorf("%w: %s: %w", gametypes.ErrHandlerFailure, b.Name, err)
	}

	a.metrics.ObserveTyped("handled")
	return nil
}

// Suggest returns the completions offered by the parser of parameter
// argIndex of the named binding. It never returns nil.
func (a *Adapter) Suggest(name string, argIndex int, partial string) []string {
	b, ok := a.Binding(name)
	if !ok || argIndex < 0 || argIndex >= len(b.parsers) {
		return []string{}
	}
	suggestions := b.parsers[argIndex].Suggest(partial)
	if suggestions == nil {
		return []string{}
	}
	return suggestions
}

func (b Binding) parse(tokens []string) ([]any, error) {
	if b.absorbsRest() && len(tokens) > len(b.Params) {
		last := len(b.Params) - 1
		joined := strings.Join(tokens[last:], " ")
		tokens = append(append([]string(nil), tokens[:last]...), joined)
	}

	if len(tokens) != len(b.Params) {
		return nil, fmt.Errorf("expected %d argument(s), got %d", len(b.Params), len(tokens))
	}

	args := make([]any, len(tokens))
	for i, tok := range tokens {
		v, err := b.parsers[i].Parse(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid %s '%s': %w", b.Params[i].Name, tok, err)
		}
		args[i] = v
	}
	return args, nil
}

// call converts a method panic into an error.
func (b Binding) call(args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return b.invoke(args)
}
