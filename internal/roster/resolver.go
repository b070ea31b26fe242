// Package roster resolves free-text target names against the live actor
// roster and provides the in-memory roster used by the standalone host.
package roster

import (
	"fmt"
	"strings"

	"gameshell/pkg/gametypes"
)

// AllKeyword selects every live actor.
const AllKeyword = "all"

// Resolver maps target text to live actors. It reads a fresh snapshot of the
// roster on every call and never caches between calls.
type Resolver struct {
	roster gametypes.Roster
}

// NewResolver creates a Resolver over the given roster.
func NewResolver(roster gametypes.Roster) *Resolver {
	return &Resolver{roster: roster}
}

// Resolve returns the actors selected by name.
//
// "all" (any case) selects every non-nil actor in roster order. Otherwise an
// exact case-insensitive name match wins; failing that, the first actor whose
// name contains name case-insensitively is returned.
func (r *Resolver) Resolve(name string) ([]gametypes.Actor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, gametypes.ErrEmptyTarget
	}

	snapshot := r.snapshot()

	if strings.EqualFold(name, AllKeyword) {
		if len(snapshot) == 0 {
			return nil, fmt.Errorf("%w: no live actors", gametypes.ErrTargetNotFound)
		}
		return snapshot, nil
	}

	for _, actor := range snapshot {
		if strings.EqualFold(actor.Name(), name) {
			return []gametypes.Actor{actor}, nil
		}
	}

	needle := strings.ToLower(name)
	for _, actor := range snapshot {
		if strings.Contains(strings.ToLower(actor.Name()), needle) {
			return []gametypes.Actor{actor}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", gametypes.ErrTargetNotFound, name)
}

// ResolveOne resolves name and requires a single actor, so "all" is rejected.
func (r *Resolver) ResolveOne(name string) (gametypes.Actor, error) {
	if strings.EqualFold(strings.TrimSpace(name), AllKeyword) {
		return nil, fmt.Errorf("%w: %q selects more than one actor", gametypes.ErrInvalidArgument, name)
	}
	actors, err := r.Resolve(name)
	if err != nil {
		return nil, err
	}
	return actors[0], nil
}

// Names returns the names of all live actors in roster order.
func (r *Resolver) Names() []string {
	snapshot := r.snapshot()
	names := make([]string, 0, len(snapshot))
	for _, actor := range snapshot {
		names = append(names, actor.Name())
	}
	return names
}

// snapshot copies the live roster, dropping nil entries.
func (r *Resolver) snapshot() []gametypes.Actor {
	if r.roster == nil {
		return nil
	}
	live := r.roster.AllLiveActors()
	actors := make([]gametypes.Actor, 0, len(live))
	for _, actor := range live {
		if actor != nil {
			actors = append(actors, actor)
		}
	}
	return actors
}
