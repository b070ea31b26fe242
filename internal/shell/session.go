package shell

import (
	"context"
	"fmt"
	"io"

	"gameshell/internal/commands"
	"gameshell/internal/commands/builtin"
	"gameshell/internal/config"
	"gameshell/internal/logger"
	"gameshell/internal/metrics"
	"gameshell/internal/output"
	"gameshell/internal/roster"
	"gameshell/internal/typed"
)

// Session wires the engine together for one console run.
type Session struct {
	Config     *config.Config
	Registry   *commands.Registry
	Dispatcher *commands.Dispatcher
	Adapter    *typed.Adapter
	Roster     *roster.Memory
	Resolver   *roster.Resolver
	Transcript *output.Transcript
	Metrics    *metrics.Metrics
	Printer    *output.Printer
	Reporter   *output.Reporter

	sink output.AppendFunc
}

// NewSession builds a session from cfg, printing console output to out.
func NewSession(cfg *config.Config, out io.Writer) (*Session, error) {
	if cfg == nil {
		return nil, fmt.Errorf("new session: missing configuration")
	}

	s := &Session{
		Config:     cfg,
		Registry:   commands.NewRegistry(),
		Roster:     roster.NewMemory(),
		Transcript: output.NewTranscript(cfg.Console.TranscriptLines),
		Metrics:    metrics.New(),
	}
	s.Resolver = roster.NewResolver(s.Roster)

	if cfg.Console.Styled {
		s.Printer = output.NewPrinter(output.WithWriter(out), output.WithStyles(output.NewLipglossStyles()))
	} else {
		output.DisableColor()
		s.Printer = output.NewPrinter(output.WithWriter(out), output.PlainText())
	}

	sinks := []output.AppendFunc{s.Transcript.Append, s.Printer.Append}
	if cfg.Log.File != "" {
		sinks = append(sinks, output.LogSink(logger.Logger))
	}
	s.sink = output.Tee(sinks...)
	s.Reporter = output.NewReporter(s.sink)

	if cfg.Roster.File != "" {
		entries, err := roster.LoadFile(cfg.Roster.File)
		if err != nil {
			return nil, err
		}
		s.Roster.Replace(entries)
		logger.Info("Roster loaded", "file", cfg.Roster.File, "actors", len(entries))
	}

	host := &builtin.Host{
		Registry:   s.Registry,
		Roster:     s.Roster,
		Resolver:   s.Resolver,
		Transcript: s.Transcript,
		Metrics:    s.Metrics,
		Reporter:   s.Reporter,
		LocalActor: cfg.Session.LocalActor,
		Styled:     cfg.Console.Styled,
	}
	if err := builtin.RegisterAll(host); err != nil {
		return nil, err
	}

	s.Dispatcher = commands.NewDispatcher(s.Registry, s.sink, commands.WithMetrics(s.Metrics))
	s.Adapter = typed.NewAdapter(s.Resolver, s.sink, typed.WithMetrics(s.Metrics))
	bound := s.Adapter.RegisterAll(typed.GameMethods(s.sink, s.Roster))
	logger.Debug("Session ready", "commands", s.Registry.Len(), "typed", bound)

	return s, nil
}

// Sink returns the fan-out every console line is written to.
func (s *Session) Sink() output.AppendFunc {
	return s.sink
}

// WatchRoster reloads the roster file on change until ctx is done. It is a
// no-op when no roster file is configured or watching is disabled.
func (s *Session) WatchRoster(ctx context.Context) error {
	if s.Config.Roster.File == "" || !s.Config.Roster.Watch {
		return nil
	}
	return roster.Watch(ctx, s.Config.Roster.File, s.Roster, func(count int, err error) {
		if err != nil {
			s.Reporter.Warning("Roster reload failed: %v", err)
			return
		}
		s.Reporter.Info("Roster reloaded: %d actors", count)
	})
}

// Close clears the registry.
func (s *Session) Close() {
	s.Registry.Clear()
}
