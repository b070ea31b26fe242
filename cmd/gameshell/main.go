// Package main provides the gameshell CLI entry point.
// gameshell is an operator console for a live game session: free-text
// commands, typed commands with completion, and batch scripts.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gameshell/internal/config"
	"gameshell/internal/logger"
	"gameshell/internal/shell"
	"gameshell/internal/version"
)

var (
	configFile string
	testMode   bool

	settings = config.New()
	cfg      *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gameshell",
	Short: "gameshell - live game session console",
	Long: `gameshell is an operator console embedded in a running game session.
Type free-text commands such as "player heal all 25", or typed commands
such as "heal Bob 25" with TAB completion of actor names.`,
	SilenceUsage:      true,
	PersistentPreRunE: initConfig,
	RunE:              runShell,
}

// shellCmd represents the shell command (explicit version of default behavior)
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive console",
	RunE:  runShell,
}

// batchCmd executes a script non-interactively
var batchCmd = &cobra.Command{
	Use:   "batch <script.gsh>",
	Short: "Execute a .gsh script in batch mode",
	Long: `Execute each line of a .gsh script. Lines starting with # are comments.
The exit status is non-zero if any line was not handled.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			fmt.Println(version.Detailed())
			return
		}
		fmt.Println(version.Short())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (default: ./gameshell.yaml)")
	flags.String("log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	flags.String("log-file", "", "Write logs to file instead of stderr")
	flags.String("roster", "", "YAML roster file to load")
	flags.String("local-actor", "", "Actor controlled by this operator")
	flags.Bool("no-color", false, "Disable styled output")
	flags.BoolVar(&testMode, "test-mode", false, "Run in deterministic test mode")

	bind(config.KeyLogLevel, "log-level")
	bind(config.KeyLogFile, "log-file")
	bind(config.KeyRosterFile, "roster")
	bind(config.KeySessionLocalName, "local-actor")

	versionCmd.Flags().BoolP("verbose", "v", false, "Show detailed build information")

	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(versionCmd)
}

func bind(key, flag string) {
	if err := settings.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor || testMode {
		settings.Set(config.KeyStyled, false)
	}

	loaded, err := config.Load(settings, config.Options{
		ConfigFile: configFile,
		SkipDotEnv: testMode,
	})
	if err != nil {
		return err
	}
	cfg = loaded

	if err := logger.Configure(cfg.Log.Level, cfg.Log.File, testMode); err != nil {
		return fmt.Errorf("error configuring logger: %w", err)
	}
	logger.Debug("Configuration loaded", "file", viperFile(settings))

	if err := version.Validate(); err != nil {
		logger.Warn("Invalid build version", "version", version.Version, "error", err)
	}
	return nil
}

func viperFile(v *viper.Viper) string {
	if f := v.ConfigFileUsed(); f != "" {
		return f
	}
	return "(none)"
}

func runShell(_ *cobra.Command, _ []string) error {
	logger.Info("Starting gameshell", "version", version.Version)

	session, err := shell.NewSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer session.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if err := session.WatchRoster(ctx); err != nil {
		logger.Warn("Roster watching disabled", "error", err)
	}

	console, err := shell.NewConsole(session)
	if err != nil {
		return err
	}
	defer console.Close()

	console.Run()
	return nil
}

func runBatch(_ *cobra.Command, args []string) error {
	scriptPath := args[0]
	logger.Info("Starting gameshell batch mode", "version", version.Version, "script", scriptPath)

	session, err := shell.NewSession(cfg, os.Stdout)
	if err != nil {
		return err
	}
	defer session.Close()

	result, err := session.RunScript(scriptPath)
	if err != nil {
		return err
	}

	logger.Info("Script finished", "script", scriptPath, "lines", result.Lines, "failed", result.Failed)
	if !result.OK() {
		return fmt.Errorf("%d of %d lines failed", result.Failed, result.Lines)
	}
	return nil
}
