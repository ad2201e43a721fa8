package pidfile_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/mittwald/hwcheck/pkg/pidfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPidFileCanBeAcquiredAndReleased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run", "hwcheck.pid")
	f := pidfile.New(path)

	require.NoError(t, f.Acquire())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(raw))

	require.NoError(t, f.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestPidFileReplacesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwcheck.pid")
	require.NoError(t, os.WriteFile(path, []byte("999999999\n"), 0o644))

	f := pidfile.New(path)

	require.NoError(t, f.Acquire())
	require.NoError(t, f.Release())
}

func TestPidFileCannotBeAcquiredWhileHeld(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwcheck.pid")
	first := pidfile.New(path)
	second := pidfile.New(path)

	require.NoError(t, first.Acquire())
	defer first.Release()

	assert.ErrorIs(t, second.Acquire(), pidfile.ErrAlreadyRunning)
}

func TestPidFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwcheck.pid")
	require.NoError(t, os.WriteFile(path, []byte("not a pid"), 0o644))

	assert.Error(t, pidfile.New(path).Acquire())
}

func TestEmptyPathIsNoop(t *testing.T) {
	f := pidfile.New("")

	assert.NoError(t, f.Acquire())
	assert.NoError(t, f.Release())
}
