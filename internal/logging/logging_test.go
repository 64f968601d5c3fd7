package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDirNumbersFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	for i, want := range []string{"0.log", "1.log", "2.log"} {
		f, err := OpenDir(dir)
		require.NoError(t, err, "open %d", i)
		assert.Equal(t, want, filepath.Base(f.Name()))
		require.NoError(t, f.Close())
	}
}

func TestOpenDirSkipsTakenNames(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.log"), nil, 0644))

	// one entry, so "1.log" is next but taken
	f, err := OpenDir(dir)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, "2.log", filepath.Base(f.Name()))
}

func TestNewWritesStructuredText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, slog.LevelInfo).Info("vocabulary loaded", "entries", 2)
	New(&buf, slog.LevelInfo).Debug("hidden")

	assert.Contains(t, buf.String(), "msg=\"vocabulary loaded\"")
	assert.Contains(t, buf.String(), "entries=2")
	assert.NotContains(t, buf.String(), "hidden")
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocabsearch.log")
	for i := 0; i < 2; i++ {
		f, err := OpenFile(path)
		require.NoError(t, err)
		_, err = f.WriteString("line\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())
	}
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\nline\n", string(data))
}
