// Package testutils provides fakes shared by gameshell package tests.
package testutils

import (
	"strings"
	"sync"

	"gameshell/pkg/gametypes"
)

// FakeActor is a named actor with no behaviour.
type FakeActor struct {
	ActorName string
}

// Name implements gametypes.Actor.
func (a *FakeActor) Name() string { return a.ActorName }

// FakeRoster is a mutable roster that may hold nil slots.
type FakeRoster struct {
	mu     sync.Mutex
	Actors []gametypes.Actor
	Calls  int
}

// NewFakeRoster builds a roster of FakeActors. An empty name leaves a nil slot.
func NewFakeRoster(names ...string) *FakeRoster {
	r := &FakeRoster{}
	for _, n := range names {
		if n == "" {
			r.Actors = append(r.Actors, nil)
			continue
		}
		r.Actors = append(r.Actors, &FakeActor{ActorName: n})
	}
	return r
}

// AllLiveActors implements gametypes.Roster.
func (r *FakeRoster) AllLiveActors() []gametypes.Actor {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls++
	return append([]gametypes.Actor(nil), r.Actors...)
}

// Add appends an actor.
func (r *FakeRoster) Add(name string) *FakeActor {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := &FakeActor{ActorName: name}
	r.Actors = append(r.Actors, a)
	return a
}

// RecordingSink collects every line appended to it.
type RecordingSink struct {
	mu    sync.Mutex
	lines []string
}

// Append records line. Its method value satisfies output.AppendFunc.
func (s *RecordingSink) Append(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns a copy of the recorded lines.
func (s *RecordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

// Last returns the most recent line or "".
func (s *RecordingSink) Last() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.lines) == 0 {
		return ""
	}
	return s.lines[len(s.lines)-1]
}

// Contains reports whether any recorded line contains substr.
func (s *RecordingSink) Contains(substr string) bool {
	for _, l := range s.Lines() {
		if strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

// Reset drops all recorded lines.
func (s *RecordingSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// MockCommand is a configurable gametypes.Command.
type MockCommand struct {
	CommandName string
	Desc        string
	Help        string
	Executable  bool
	ExecuteFunc func(args []string) error

	mu    sync.Mutex
	calls [][]string
}

// NewMockCommand returns an executable command that succeeds.
func NewMockCommand(name string) *MockCommand {
	return &MockCommand{
		CommandName: name,
		Desc:        "Mock command: " + name,
		Executable:  true,
	}
}

// Name implements gametypes.Command.
func (m *MockCommand) Name() string { return m.CommandName }

// Description implements gametypes.Command.
func (m *MockCommand) Description() string { return m.Desc }

// DetailedHelp implements gametypes.Command.
func (m *MockCommand) DetailedHelp() string { return m.Help }

// CanExecute implements gametypes.Command.
func (m *MockCommand) CanExecute() bool { return m.Executable }

// Execute records args and runs ExecuteFunc when set.
func (m *MockCommand) Execute(args []string) error {
	m.mu.Lock()
	m.calls = append(m.calls, append([]string(nil), args...))
	m.mu.Unlock()
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(args)
	}
	return nil
}

// Calls returns the argument lists Execute received.
func (m *MockCommand) Calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]string(nil), m.calls...)
}
