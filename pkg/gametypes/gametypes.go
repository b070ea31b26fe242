// Package gametypes defines the core interfaces and data structures shared by
// the gameshell command engine.
//
// # Architecture Overview
//
// gameshell is split into three layers:
//
//   - Host Layer: owns the live actor roster and the concrete side effects
//   - Engine Layer: registry, dispatcher, classifier, target resolver, typed adapter
//   - Console Layer: the interactive shell and batch runner that feed the engine
//
// The engine depends only on the interfaces declared here, so every component
// can be tested with a fake roster and a recording output sink.
//
// # Package Organization
//
//   - command_types.go: Command interface and structured help
//   - actor_types.go: Actor and Roster boundary
//   - invocation.go: the classified invocation value
//   - errors.go: the error taxonomy shared by all layers
package gametypes
