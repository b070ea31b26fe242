package gametypes

import "errors"

// Error taxonomy shared by the engine. Callers add context with
// fmt.Errorf("...: %w", err) and test with errors.Is.
var (
	// ErrInvalidArgument is returned for nil commands or empty names.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownCommand means no command is bound to the name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNotExecutable means the command exists but CanExecute is false.
	ErrNotExecutable = errors.New("command cannot be executed now")
	// ErrHandlerFailure wraps an error or panic raised by a handler.
	ErrHandlerFailure = errors.New("handler failure")
	// ErrEmptyTarget means the target text was blank.
	ErrEmptyTarget = errors.New("empty target")
	// ErrTargetNotFound means no live actor matched the target text.
	ErrTargetNotFound = errors.New("target not found")
	// ErrParseFailure means a typed argument could not be parsed.
	ErrParseFailure = errors.New("parse failure")
	// ErrDuplicateRegistration marks a benign repeated registration.
	ErrDuplicateRegistration = errors.New("duplicate registration")
)
