package postproc

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireSh(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}

func TestExternalProgramEditsInPlace(t *testing.T) {
	requireSh(t)
	path := filepath.Join(t.TempDir(), "out.h")
	require.NoError(t, os.WriteFile(path, []byte("before"), 0o644))

	// The generated file path is appended to the argument list; with sh -c
	// it lands in $0.
	p := NewExternalProgram("sh", "-c", `printf after > "$0"`)
	got, err := p.ProcessFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "after", string(out))
}

func TestExternalProgramExitStatus(t *testing.T) {
	requireSh(t)
	path := filepath.Join(t.TempDir(), "out.h")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	t.Run("checking mode fails the node", func(t *testing.T) {
		p := NewExternalProgram("sh", "-c", "exit 3")
		got, err := p.ProcessFile(path)
		assert.Equal(t, path, got)
		require.Error(t, err)
		var exitErr *ExitStatusError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, 3, exitErr.ExitCode)
	})

	t.Run("no-check tolerates the exit status", func(t *testing.T) {
		p := NewExternalProgram("sh", "-c", "exit 3").NoCheck()
		got, err := p.ProcessFile(path)
		require.NoError(t, err)
		assert.Equal(t, path, got)
	})
}

func TestExternalProgramLaunchFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.h")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	t.Run("checking mode", func(t *testing.T) {
		_, err := NewExternalProgram("definitely-not-a-real-binary-4242").ProcessFile(path)
		assert.Error(t, err)
	})

	// A program that cannot be launched is an error even with no-check:
	// no-check tolerates exit statuses, not a missing formatter.
	t.Run("no-check still fails", func(t *testing.T) {
		_, err := NewExternalProgram("definitely-not-a-real-binary-4242").NoCheck().ProcessFile(path)
		assert.Error(t, err)
	})
}

func TestExternalProgramEmptyCommand(t *testing.T) {
	_, err := (&ExternalProgram{check: true}).ProcessFile("ignored")
	assert.Error(t, err)
}

func TestExternalProgramTimeout(t *testing.T) {
	requireSh(t)
	path := filepath.Join(t.TempDir(), "out.h")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	p := NewExternalProgram("sh", "-c", "sleep 10").WithTimeout(50 * time.Millisecond)
	start := time.Now()
	_, err := p.ProcessFile(path)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestRunResultSuccess(t *testing.T) {
	assert.True(t, RunResult{}.Success())
	assert.False(t, RunResult{ExitCode: 1}.Success())
	assert.False(t, RunResult{Launch: errors.New("no such file")}.Success())
}
