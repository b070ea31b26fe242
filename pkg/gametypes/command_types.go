package gametypes

// Command defines the contract every console command implements.
// Names are compared case-insensitively by the registry.
type Command interface {
	// Name returns the unique command name.
	Name() string
	// Description returns a one-line summary used in listings.
	Description() string
	// DetailedHelp returns multi-line markdown shown by "help <name>", or "".
	DetailedHelp() string
	// CanExecute reports whether the command may run against the current host
	// state. It must not have side effects.
	CanExecute() bool
	// Execute runs the command with the whitespace-split parameters that
	// followed the command name.
	Execute(args []string) error
}

// HelpInfo is a flattened view of a command used by help listings.
type HelpInfo struct {
	Command      string `json:"command"`
	Description  string `json:"description"`
	DetailedHelp string `json:"detailed_help,omitempty"`
	Executable   bool   `json:"executable"`
}

// HelpInfoFor builds a HelpInfo snapshot for cmd.
func HelpInfoFor(cmd Command) HelpInfo {
	return HelpInfo{
		Command:      cmd.Name(),
		Description:  cmd.Description(),
		DetailedHelp: cmd.DetailedHelp(),
		Executable:   cmd.CanExecute(),
	}
}
