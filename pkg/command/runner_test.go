package command_test

import (
	"context"
	"testing"
	"time"

	"github.com/mittwald/hwcheck/pkg/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesOutputOfSuccessfulCommand(t *testing.T) {
	res, err := command.New(0).Run(context.Background(), "sh", "-c", "echo hello")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Empty(t, res.Stderr)
}

func TestRunReportsNonZeroExitWithoutError(t *testing.T) {
	res, err := command.New(0).Run(context.Background(), "sh", "-c", "echo out; echo err 1>&2; exit 1")

	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
}

func TestRunMissingProgramIsNotFound(t *testing.T) {
	_, err := command.New(0).Run(context.Background(), "hwcheck-does-not-exist-anywhere")

	assert.ErrorIs(t, err, command.ErrNotFound)
	assert.ErrorContains(t, err, "hwcheck-does-not-exist-anywhere")
}

func TestRunEmptyCommand(t *testing.T) {
	_, err := command.New(0).Run(context.Background())

	assert.ErrorIs(t, err, command.ErrEmptyCommand)
}

func TestRunTimesOut(t *testing.T) {
	start := time.Now()
	_, err := command.New(50*time.Millisecond).Run(context.Background(), "sleep", "5")

	assert.ErrorIs(t, err, command.ErrTimeout)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestRunHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := command.New(0).Run(ctx, "sleep", "5")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestLookPath(t *testing.T) {
	assert.True(t, command.LookPath("sh"))
	assert.False(t, command.LookPath("hwcheck-does-not-exist-anywhere"))
}
