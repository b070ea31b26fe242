package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), Options{SkipDotEnv: true})
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "game> ", cfg.Console.Prompt)
	assert.Equal(t, 200, cfg.Console.TranscriptLines)
	assert.True(t, cfg.Console.Styled)
	assert.True(t, cfg.Roster.Watch)
	assert.Empty(t, cfg.Session.LocalActor)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	configFile := writeFile(t, dir, "gameshell.yaml", `
log:
  level: warn
console:
  prompt: "yaml> "
  transcript_lines: 10
roster:
  file: players.yaml
session:
  local_actor: Host
`)
	userEnv := writeFile(t, dir, "user.env", "GAMESHELL_CONSOLE_PROMPT=\"user> \"\nGAMESHELL_SESSION_LOCAL_ACTOR=Guest\n")
	localEnv := writeFile(t, dir, "local.env", "GAMESHELL_CONSOLE_PROMPT=\"local> \"\nGAMESHELL_CONSOLE_STYLED=false\nUNRELATED=1\n")
	t.Setenv("GAMESHELL_CONSOLE_TRANSCRIPT_LINES", "42")

	cfg, err := Load(New(), Options{
		ConfigFile:  configFile,
		DotEnvFiles: []string{userEnv, filepath.Join(dir, "missing.env"), localEnv},
	})
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level, "config file")
	assert.Equal(t, "players.yaml", cfg.Roster.File, "config file")
	assert.Equal(t, "local> ", cfg.Console.Prompt, "later .env wins")
	assert.Equal(t, "Guest", cfg.Session.LocalActor, ".env over config file")
	assert.False(t, cfg.Console.Styled)
	assert.Equal(t, 42, cfg.Console.TranscriptLines, "environment over everything but flags")
}

func TestLoad_FlagWins(t *testing.T) {
	t.Setenv("GAMESHELL_LOG_LEVEL", "error")

	v := New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--log-level", "debug"}))
	require.NoError(t, v.BindPFlag(KeyLogLevel, flags.Lookup("log-level")))

	cfg, err := Load(v, Options{SkipDotEnv: true})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(New(), Options{ConfigFile: filepath.Join(dir, "absent.yaml"), SkipDotEnv: true})
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "console:\n  transcript_lines: 0\n")
	_, err = Load(New(), Options{ConfigFile: bad, SkipDotEnv: true})
	assert.ErrorContains(t, err, KeyTranscriptLines)

	level := writeFile(t, dir, "level.yaml", "log:\n  level: loud\n")
	_, err = Load(New(), Options{ConfigFile: level, SkipDotEnv: true})
	assert.ErrorContains(t, err, "unknown level")
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "GAMESHELL_CONSOLE_HISTORY_FILE", EnvName(KeyHistoryFile))
	assert.Equal(t, "GAMESHELL_LOG_LEVEL", EnvName(KeyLogLevel))
}

func TestDefaultDotEnvFiles(t *testing.T) {
	files := DefaultDotEnvFiles()
	require.NotEmpty(t, files)
	assert.Equal(t, ".env", files[len(files)-1])
}
