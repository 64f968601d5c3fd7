// Package logging sets up the structured loggers of both commands.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
)

const lockName = ".lock"

// New returns a text logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError)
}

// OpenFile opens path for appending, creating it if needed
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("couldn't open log file %q: %w", path, err)
	}
	return f, nil
}

// OpenDir creates the next numbered log file in dir: a directory holding n
// logs gets "<n>.log". Concurrent servers sharing the directory are
// serialized by a lock file.
func OpenDir(dir string) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("couldn't create log dir %q: %w", dir, err)
	}

	lock := flock.New(filepath.Join(dir, lockName))
	if err := lock.Lock(); err != nil {
		return nil, fmt.Errorf("couldn't lock log dir %q: %w", dir, err)
	}
	defer func() { _ = lock.Unlock() }()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("couldn't read log dir %q: %w", dir, err)
	}
	id := 0
	for _, e := range entries {
		if e.Name() != lockName {
			id++
		}
	}

	for {
		path := filepath.Join(dir, strconv.Itoa(id)+".log")
		f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if errors.Is(err, os.ErrExist) {
			id++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("couldn't open log file %q: %w", path, err)
		}
		return f, nil
	}
}
