package typed

import (
	"fmt"
	"sort"
	"sync"

	"gameshell/pkg/gametypes"
)

// ParserRegistry maps a ParamType to its TypeParser. A type may be
// registered once.
type ParserRegistry struct {
	mu      sync.RWMutex
	parsers map[ParamType]TypeParser
}

// NewParserRegistry creates an empty registry.
func NewParserRegistry() *ParserRegistry {
	return &ParserRegistry{
		parsers: make(map[ParamType]TypeParser),
	}
}

// Register adds p for t. Registering a type twice returns
// ErrDuplicateRegistration and keeps the first parser.
func (r *ParserRegistry) Register(t ParamType, p TypeParser) error {
	if t == "" || p == nil {
		return fmt.Errorf("register parser %q: %w", t, gametypes.ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.parsers[t]; exists {
		return fmt.Errorf("parser for type %q: %w", t, gametypes.ErrDuplicateRegistration)
	}
	r.parsers[t] = p
	return nil
}

// Lookup returns the parser for t.
func (r *ParserRegistry) Lookup(t ParamType) (TypeParser, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parsers[t]
	return p, ok
}

// Types returns the registered types, sorted.
func (r *ParserRegistry) Types() []ParamType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]ParamType, 0, len(r.parsers))
	for t := range r.parsers {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// Len returns the number of registered parsers.
func (r *ParserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.parsers)
}
