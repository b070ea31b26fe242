package roster

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"gameshell/pkg/gametypes"
)

// DefaultMaxHealth is the health ceiling for newly joined players.
const DefaultMaxHealth = 100

// Player is a live actor owned by the in-memory host session.
type Player struct {
	mu        sync.Mutex
	id        string
	name      string
	health    float64
	maxHealth float64
	stamina   float64
	godMode   bool
	noclip    bool
}

// PlayerState is an immutable copy of a player's state.
type PlayerState struct {
	ID        string  `yaml:"id" json:"id"`
	Name      string  `yaml:"name" json:"name"`
	Health    float64 `yaml:"health" json:"health"`
	MaxHealth float64 `yaml:"max_health" json:"max_health"`
	Stamina   float64 `yaml:"stamina" json:"stamina"`
	GodMode   bool    `yaml:"god_mode" json:"god_mode"`
	Noclip    bool    `yaml:"noclip" json:"noclip"`
}

// NewPlayer creates a player at full health and stamina with a fresh ID.
func NewPlayer(name string) *Player {
	return &Player{
		id:        uuid.NewString(),
		name:      name,
		health:    DefaultMaxHealth,
		maxHealth: DefaultMaxHealth,
		stamina:   1,
	}
}

// Name implements gametypes.Actor.
func (p *Player) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// ID returns the player's session-unique identifier.
func (p *Player) ID() string {
	return p.id
}

// State returns a copy of the player's current state.
func (p *Player) State() PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return PlayerState{
		ID:        p.id,
		Name:      p.name,
		Health:    p.health,
		MaxHealth: p.maxHealth,
		Stamina:   p.stamina,
		GodMode:   p.godMode,
		Noclip:    p.noclip,
	}
}

// Heal adds amount health, capped at the maximum, and returns the new value.
// A non-positive amount restores full health.
func (p *Player) Heal(amount float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if amount <= 0 {
		p.health = p.maxHealth
	} else {
		p.health = min(p.health+amount, p.maxHealth)
	}
	return p.health
}

// SetStamina sets stamina, which must lie in [0, 1].
func (p *Player) SetStamina(v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%w: stamina %g outside [0, 1]", gametypes.ErrInvalidArgument, v)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stamina = v
	return nil
}

// SetGodMode toggles invulnerability.
func (p *Player) SetGodMode(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.godMode = enabled
}

// SetNoclip toggles collision-free movement.
func (p *Player) SetNoclip(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.noclip = enabled
}

// rename sets the display name. Uniqueness is enforced by Memory.Rename.
func (p *Player) rename(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.name = name
}

// merge applies the fields present in e. Health is capped at the maximum and
// an out-of-range stamina is ignored.
func (p *Player) merge(e Entry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if e.MaxHealth != nil && *e.MaxHealth > 0 {
		p.maxHealth = *e.MaxHealth
	}
	if e.Health != nil && *e.Health > 0 {
		p.health = *e.Health
	}
	p.health = min(p.health, p.maxHealth)
	if e.Stamina != nil && *e.Stamina >= 0 && *e.Stamina <= 1 {
		p.stamina = *e.Stamina
	}
	if e.GodMode != nil {
		p.godMode = *e.GodMode
	}
	if e.Noclip != nil {
		p.noclip = *e.Noclip
	}
}
