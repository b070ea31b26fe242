// Package config loads gameshell settings with viper. Sources, from lowest to
// highest precedence: defaults, YAML config file, .env files, GAMESHELL_*
// environment variables, bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"gameshell/internal/logger"
)

// EnvPrefix prefixes every environment variable read by gameshell.
const EnvPrefix = "GAMESHELL"

// Keys understood by gameshell.
const (
	KeyLogLevel         = "log.level"
	KeyLogFile          = "log.file"
	KeyPrompt           = "console.prompt"
	KeyHistoryFile      = "console.history_file"
	KeyTranscriptLines  = "console.transcript_lines"
	KeyStyled           = "console.styled"
	KeyRosterFile       = "roster.file"
	KeyRosterWatch      = "roster.watch"
	KeySessionLocalName = "session.local_actor"
)

// Config is the resolved configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Console ConsoleConfig `mapstructure:"console"`
	Roster  RosterConfig  `mapstructure:"roster"`
	Session SessionConfig `mapstructure:"session"`
}

// LogConfig configures the diagnostic log.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// ConsoleConfig configures the interactive console.
type ConsoleConfig struct {
	Prompt          string `mapstructure:"prompt"`
	HistoryFile     string `mapstructure:"history_file"`
	TranscriptLines int    `mapstructure:"transcript_lines"`
	Styled          bool   `mapstructure:"styled"`
}

// RosterConfig configures the actor roster source.
type RosterConfig struct {
	File  string `mapstructure:"file"`
	Watch bool   `mapstructure:"watch"`
}

// SessionConfig configures the operator's session.
type SessionConfig struct {
	LocalActor string `mapstructure:"local_actor"`
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit YAML file. When empty, gameshell.yaml is
	// searched in the working directory and the user config directory.
	ConfigFile string
	// DotEnvFiles are read in order; later files override earlier ones.
	// Nil means DefaultDotEnvFiles.
	DotEnvFiles []string
	// SkipDotEnv disables .env loading, as test mode does.
	SkipDotEnv bool
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyPrompt, "game> ")
	v.SetDefault(KeyHistoryFile, "")
	v.SetDefault(KeyTranscriptLines, 200)
	v.SetDefault(KeyStyled, true)
	v.SetDefault(KeyRosterFile, "")
	v.SetDefault(KeyRosterWatch, true)
	v.SetDefault(KeySessionLocalName, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads every source into v and returns the resolved Config.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	if !opts.SkipDotEnv {
		files := opts.DotEnvFiles
		if files == nil {
			files = DefaultDotEnvFiles()
		}
		if err := mergeDotEnv(v, files); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Console.TranscriptLines <= 0 {
		return fmt.Errorf("%s must be positive, got %d", KeyTranscriptLines, c.Console.TranscriptLines)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%s: unknown level %q", KeyLogLevel, c.Log.Level)
	}
	return nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		logger.Debug("Loaded config file", "path", path)
		return nil
	}

	v.SetConfigName("gameshell")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "gameshell"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	logger.Debug("Loaded config file", "path", v.ConfigFileUsed())
	return nil
}

// DefaultDotEnvFiles lists the user config directory .env followed by the
// working directory .env, so the local file wins.
func DefaultDotEnvFiles() []string {
	var files []string
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "gameshell", ".env"))
	}
	return append(files, ".env")
}

// mergeDotEnv maps GAMESHELL_* entries of each .env file onto known keys.
// Missing files are skipped.
func mergeDotEnv(v *viper.Viper, files []string) error {
	byEnv := make(map[string]string)
	for _, key := range v.AllKeys() {
		byEnv[EnvName(key)] = key
	}

	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to read .env file %s: %w", path, err)
		}

		envMap, err := godotenv.Unmarshal(string(data))
		if err != nil {
			return fmt.Errorf("failed to parse .env file %s: %w", path, err)
		}

		settings := make(map[string]interface{})
		for name, value := range envMap {
			key, ok := byEnv[strings.ToUpper(name)]
			if !ok {
				continue
			}
			setNested(settings, key, value)
		}
		if err := v.MergeConfigMap(settings); err != nil {
			return fmt.Errorf("failed to merge .env file %s: %w", path, err)
		}
		logger.Debug("Loaded .env file", "path", path, "keys", len(envMap))
	}
	return nil
}

// EnvName returns the environment variable that overrides key.
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func setNested(m map[string]interface{}, key string, value string) {
	parts := strings.Split(key, ".")
	for _, p := range parts[:len(parts)-1] {
		child, ok := m[p].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			m[p] = child
		}
		m = child
	}
	m[parts[len(parts)-1]] = value
}
