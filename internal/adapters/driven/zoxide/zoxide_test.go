package zoxide

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stubScript = `#!/bin/sh
if [ "$2" = "--list" ]; then
cat <<'OUT'
/home/u/proj
/Applications
/Applications/Safari.app
/home/u/notes
OUT
else
echo "/home/u/proj"
fi
`

// installStub puts a fake zoxide binary on PATH for the test.
func installStub(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stub not available on windows")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "zoxide")
	require.NoError(t, os.WriteFile(path, []byte(stubScript), 0o755))

	// Prepend so the stub shadows any real zoxide while the script keeps
	// access to the shell utilities it runs.
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestHistory_Paths(t *testing.T) {
	installStub(t)

	got, err := New().Paths(context.Background())
	require.NoError(t, err)

	// The /Applications tree is filtered out.
	assert.Equal(t, []string{"/home/u/proj", "/home/u/notes"}, got)
}

func TestHistory_Best(t *testing.T) {
	installStub(t)

	assert.Equal(t, "/home/u/proj", New().Best(context.Background(), "proj"))
}

func TestHistory_BinaryMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	h := New()

	got, err := h.Paths(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, got)

	assert.Empty(t, h.Best(context.Background(), "proj"))
}

func TestExcluded(t *testing.T) {
	assert.True(t, excluded("/Applications"))
	assert.True(t, excluded("/Applications/Safari.app"))
	assert.False(t, excluded("/ApplicationsBackup"))
	assert.False(t, excluded("/home/u/proj"))
}
