package roster

import (
	"fmt"
	"strings"
	"sync"

	"gameshell/pkg/gametypes"
)

// Memory is the in-memory live roster of the standalone host. Players keep
// join order; the watcher may replace the set from another goroutine.
type Memory struct {
	mu      sync.RWMutex
	players []*Player
}

// NewMemory creates a roster holding the given players.
func NewMemory(players ...*Player) *Memory {
	m := &Memory{}
	for _, p := range players {
		if p != nil {
			m.players = append(m.players, p)
		}
	}
	return m
}

// AllLiveActors implements gametypes.Roster.
func (m *Memory) AllLiveActors() []gametypes.Actor {
	m.mu.RLock()
	defer m.mu.RUnlock()

	actors := make([]gametypes.Actor, 0, len(m.players))
	for _, p := range m.players {
		actors = append(actors, p)
	}
	return actors
}

// Players returns the live players in join order.
func (m *Memory) Players() []*Player {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*Player(nil), m.players...)
}

// Len returns the number of live players.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players)
}

// Join adds a new player. Names are unique case-insensitively.
func (m *Memory) Join(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty player name", gametypes.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.players {
		if strings.EqualFold(p.Name(), name) {
			return nil, fmt.Errorf("%w: player %q already joined", gametypes.ErrDuplicateRegistration, name)
		}
	}
	p := NewPlayer(name)
	m.players = append(m.players, p)
	return p, nil
}

// Leave removes the player with the given ID and reports whether it was present.
func (m *Memory) Leave(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.players {
		if p.ID() == id {
			m.players = append(m.players[:i], m.players[i+1:]...)
			return true
		}
	}
	return false
}

// Rename renames the player with the given ID. The name is trimmed and must
// not clash, ignoring case, with another live player.
func (m *Memory) Rename(id, name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty player name", gametypes.ErrInvalidArgument)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var target *Player
	for _, p := range m.players {
		if p.ID() == id {
			target = p
			continue
		}
		if strings.EqualFold(p.Name(), name) {
			return nil, fmt.Errorf("%w: player %q already joined", gametypes.ErrDuplicateRegistration, name)
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%w: no player with id %s", gametypes.ErrTargetNotFound, id)
	}
	target.rename(name)
	return target, nil
}

// Replace sets the roster to the given entries. Players whose names already
// exist keep their identity and any state the entry omits; missing ones
// leave, new ones join.
func (m *Memory) Replace(entries []Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing := make(map[string]*Player, len(m.players))
	for _, p := range m.players {
		existing[strings.ToLower(p.Name())] = p
	}

	next := make([]*Player, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true

		p, ok := existing[key]
		if !ok {
			p = NewPlayer(strings.TrimSpace(e.Name))
		}
		p.merge(e)
		next = append(next, p)
	}
	m.players = next
}
