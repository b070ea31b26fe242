package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"gameshell/internal/logger"
	"gameshell/internal/metrics"
	"gameshell/internal/output"
	"gameshell/pkg/gametypes"
)

// Outcome is the result of dispatching one console line.
type Outcome int

const (
	// OutcomeHandled means the handler ran and returned without error.
	OutcomeHandled Outcome = iota
	// OutcomeEmpty means the line was blank.
	OutcomeEmpty
	// OutcomeUnknown means no command matched the first token.
	OutcomeUnknown
	// OutcomeNotExecutable means the command refused to run.
	OutcomeNotExecutable
	// OutcomeFailed means the handler returned an error or panicked.
	OutcomeFailed
)

// Handled reports whether the line was handled successfully.
func (o Outcome) Handled() bool {
	return o == OutcomeHandled
}

func (o Outcome) String() string {
	switch o {
	case OutcomeHandled:
		return "handled"
	case OutcomeEmpty:
		return "empty"
	case OutcomeUnknown:
		return "unknown"
	case OutcomeNotExecutable:
		return "not_executable"
	case OutcomeFailed:
		return "failed"
	default:
		return "invalid"
	}
}

// Err maps an outcome to its sentinel error, nil for handled and empty lines.
func (o Outcome) Err() error {
	switch o {
	case OutcomeUnknown:
		return gametypes.ErrUnknownCommand
	case OutcomeNotExecutable:
		return gametypes.ErrNotExecutable
	case OutcomeFailed:
		return gametypes.ErrHandlerFailure
	default:
		return nil
	}
}

// Dispatcher routes console lines to registered commands.
type Dispatcher struct {
	registry *Registry
	reporter *output.Reporter
	metrics  *metrics.Metrics
	logger   *log.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithMetrics counts every outcome on m.
func WithMetrics(m *metrics.Metrics) DispatcherOption {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// WithLogger overrides the component logger.
func WithLogger(l *log.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a dispatcher over registry reporting to sink.
func NewDispatcher(registry *Registry, sink output.AppendFunc, options ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		reporter: output.NewReporter(sink),
		logger:   logger.NewStyledLogger("Dispatcher"),
	}
	for _, opt := range options {
		opt(d)
	}
	return d
}

// Registry returns the registry the dispatcher reads.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Dispatch runs one console line on the calling goroutine. The line is split
// on whitespace; the first token names the command and the rest are passed
// to it unchanged.
func (d *Dispatcher) Dispatch(line string) Outcome {
	outcome := d.dispatch(line)
	d.metrics.ObserveDispatch(outcome.String())
	return outcome
}

func (d *Dispatcher) dispatch(line string) Outcome {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return OutcomeEmpty
	}

	name, params := tokens[0], tokens[1:]
	logger.CommandDispatch(name, params)

	cmd, ok := d.registry.Lookup(name)
	if !ok {
		d.reporter.Error("Unknown command: %s", name)
		return OutcomeUnknown
	}

	if !cmd.CanExecute() {
		d.reporter.Warning("Command '%s' cannot be executed right now", name)
		return OutcomeNotExecutable
	}

	if err := execute(cmd, params); err != nil {
		d.logger.Error("Command failed", "command", cmd.Name(), "error", err)
		d.reporter.Error("Command '%s' failed", name)
		return OutcomeFailed
	}
	return OutcomeHandled
}

// execute converts a handler panic into an error.
func execute(cmd gametypes.Command, params []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", gametypes.ErrHandlerFailure, r)
		}
	}()

	if execErr := cmd.Execute(params); execErr != nil {
		return fmt.Errorf("%w: %w", gametypes.ErrHandlerFailure, execErr)
	}
	return nil
}
