package gametypes

// Actor is a live, named entity in the host session that commands can target.
type Actor interface {
	Name() string
}

// Roster gives read access to the live actors owned by the host.
// The returned slice is a snapshot in roster order and may contain nil
// entries for slots the host has not filled.
type Roster interface {
	AllLiveActors() []Actor
}

// RosterFunc adapts a plain function to the Roster interface.
type RosterFunc func() []Actor

// AllLiveActors calls f.
func (f RosterFunc) AllLiveActors() []Actor {
	return f()
}
