// Package commands provides command registration and line dispatch for gameshell.
// It holds the case-insensitive command registry and the dispatcher that turns
// a raw console line into a guarded handler invocation.
package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"gameshell/internal/logger"
	"gameshell/pkg/gametypes"
)

// Registry manages command registration and lookup for console commands.
// Names are keyed case-insensitively; the last registration for a name wins.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]gametypes.Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]gametypes.Command),
	}
}

// Register adds cmd to the registry, replacing any command with the same
// name. Returns ErrInvalidArgument for a nil command or an empty name.
func (r *Registry) Register(cmd gametypes.Command) error {
	if cmd == nil {
		return fmt.Errorf("register: nil command: %w", gametypes.ErrInvalidArgument)
	}

	name := strings.TrimSpace(cmd.Name())
	if name == "" {
		return fmt.Errorf("register: command name cannot be empty: %w", gametypes.ErrInvalidArgument)
	}
	key := strings.ToLower(name)

	r.mu.Lock()
	_, exists := r.commands[key]
	r.commands[key] = cmd
	r.mu.Unlock()

	if exists {
		logger.Warn("Replacing command", "command", name, "reason", gametypes.ErrDuplicateRegistration)
	} else {
		logger.Debug("Registered command", "command", name)
	}
	return nil
}

// Lookup retrieves a command by name, ignoring case.
func (r *Registry) Lookup(name string) (gametypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[strings.ToLower(name)]
	return cmd, exists
}

// List returns the commands accepted by pred, sorted by name.
// A nil pred selects the commands that can execute right now.
func (r *Registry) List(pred func(gametypes.Command) bool) []gametypes.Command {
	if pred == nil {
		pred = func(c gametypes.Command) bool { return c.CanExecute() }
	}

	r.mu.RLock()
	all := make([]gametypes.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		all = append(all, cmd)
	}
	r.mu.RUnlock()

	// pred runs outside the lock so it may call back into the registry.
	selected := make([]gametypes.Command, 0, len(all))
	for _, cmd := range all {
		if pred(cmd) {
			selected = append(selected, cmd)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		return strings.ToLower(selected[i].Name()) < strings.ToLower(selected[j].Name())
	})
	return selected
}

// All returns every registered command sorted by name.
func (r *Registry) All() []gametypes.Command {
	return r.List(func(gametypes.Command) bool { return true })
}

// Names returns the lower-cased registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Unregister removes a command by name. Missing names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, strings.ToLower(name))
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Clear drops every command. Calling it more than once is harmless.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = make(map[string]gametypes.Command)
}
