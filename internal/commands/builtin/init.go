// Package builtin provides the console commands available in every gameshell
// session. Commands act on an injected Host rather than on globals.
package builtin

import (
	"fmt"

	"gameshell/internal/commands"
	"gameshell/internal/metrics"
	"gameshell/internal/output"
	"gameshell/internal/roster"
	"gameshell/pkg/gametypes"
)

// Host bundles the session state built-in commands act on.
type Host struct {
	Registry   *commands.Registry
	Roster     *roster.Memory
	Resolver   *roster.Resolver
	Transcript *output.Transcript
	Metrics    *metrics.Metrics
	Reporter   *output.Reporter
	// LocalActor names the operator's own actor for self-targeted actions.
	LocalActor string
	// Styled enables terminal styling for rendered help.
	Styled bool
}

// Commands returns every built-in command bound to host.
func Commands(host *Host) []gametypes.Command {
	return []gametypes.Command{
		&HelpCommand{host: host},
		&CommandsCommand{host: host},
		&ActorsCommand{host: host},
		&PlayerCommand{host: host},
		&KickCommand{host: host},
		&JoinCommand{host: host},
		&StatsCommand{host: host},
		&EchoCommand{host: host},
		&ClearCommand{host: host},
		&TranscriptCommand{host: host},
		&VersionCommand{host: host},
	}
}

// RegisterAll registers every built-in command into host.Registry.
func RegisterAll(host *Host) error {
	if host == nil || host.Registry == nil {
		return fmt.Errorf("register builtins: missing registry: %w", gametypes.ErrInvalidArgument)
	}
	if host.Reporter == nil {
		host.Reporter = output.NewReporter(nil)
	}
	if host.Resolver == nil && host.Roster != nil {
		host.Resolver = roster.NewResolver(host.Roster)
	}

	for _, cmd := range Commands(host) {
		if err := host.Registry.Register(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.Name(), err)
		}
	}
	return nil
}
