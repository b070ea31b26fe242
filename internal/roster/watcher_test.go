package roster

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("actors:\n  - name: Alpha\n"), 0600))

	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, Watch(ctx, path, m, nil))

	require.NoError(t, os.WriteFile(path, []byte("actors:\n  - name: Alpha\n  - name: Bravo\n"), 0600))

	require.Eventually(t, func() bool {
		return m.Len() == 2
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{"Alpha", "Bravo"}, names(m.AllLiveActors()))
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "roster.yaml"), NewMemory(), nil)
	assert.Error(t, err)
}
