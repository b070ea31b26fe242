package version

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBuildInfo(t *testing.T, version, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { SetBuildInfo(origVersion, origCommit, origDate) })
	SetBuildInfo(version, commit, date)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		expectError bool
	}{
		{name: "valid version", version: "1.2.3"},
		{name: "valid version with prerelease", version: "1.2.3-alpha.1"},
		{name: "invalid version", version: "invalid", expectError: true},
		{name: "empty version", version: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, "unknown", "unknown")
			err := Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	withBuildInfo(t, "0.3.1+42.abcdef0", "abcdef0123", "2026-01-02")

	info, err := GetInfo()
	require.NoError(t, err)
	assert.Equal(t, "0.3.1+42.abcdef0", info.Version)
	assert.Equal(t, uint64(3), info.SemVer.Minor())
	assert.Equal(t, "0.3.1", BaseVersion())
	assert.Contains(t, info.Platform, "/")
}

func TestShort(t *testing.T) {
	withBuildInfo(t, "1.0.0", "abcdef0123", "2026-01-02")
	assert.Equal(t, "gameshell v1.0.0, commit abcdef0, built 2026-01-02", Short())

	withBuildInfo(t, "1.0.0", "unknown", "unknown")
	assert.Equal(t, "gameshell v1.0.0", Short())

	withBuildInfo(t, "bogus", "unknown", "unknown")
	assert.Equal(t, "gameshell vbogus (invalid version)", Short())
}

func TestDetailed(t *testing.T) {
	withBuildInfo(t, "1.0.0+7.abc", "abc", "2026-01-02")

	detailed := Detailed()
	assert.True(t, strings.HasPrefix(detailed, "gameshell v1.0.0+7.abc\n"))
	assert.Contains(t, detailed, "Build Metadata: 7.abc")
	assert.Contains(t, detailed, "Go Version: go")
}

func TestIsPrereleaseAndDevelopment(t *testing.T) {
	withBuildInfo(t, "1.2.3-beta.2", "unknown", "2026-01-02")
	assert.True(t, IsPrerelease())
	assert.True(t, IsDevelopment())

	withBuildInfo(t, "1.2.3", "abc", "2026-01-02")
	assert.False(t, IsPrerelease())
	assert.False(t, IsDevelopment())
}

func TestSatisfies(t *testing.T) {
	withBuildInfo(t, "0.4.2", "unknown", "unknown")

	ok, err := Satisfies(">= 0.4, < 1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies(">= 1.0.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("not a constraint")
	assert.Error(t, err)
}

func TestBuildTime(t *testing.T) {
	withBuildInfo(t, "1.0.0", "abc", "2026-01-02")
	got, err := BuildTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), got)

	withBuildInfo(t, "1.0.0", "abc", "unknown")
	_, err = BuildTime()
	assert.Error(t, err)

	withBuildInfo(t, "1.0.0", "abc", "yesterday")
	_, err = BuildTime()
	assert.Error(t, err)
}
