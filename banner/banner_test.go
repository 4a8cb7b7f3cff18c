package banner

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript drops an executable shell script into a temp dir and returns
// its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported on windows")
	}
	path := filepath.Join(t.TempDir(), "banner.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestRenderPassesWidthAndMessage(t *testing.T) {
	script := writeScript(t, `printf '%s|%s|%s' "$1" "$2" "$3"`)
	var out bytes.Buffer
	r := NewRunner(script, 180)
	r.Stdout = &out

	require.NoError(t, r.Render(context.Background(), "Ada  :  1\nAda   wins !"))
	assert.Equal(t, "-w|180|Ada  :  1\nAda   wins !", out.String())
}

func TestRenderNonZeroExit(t *testing.T) {
	script := writeScript(t, "exit 3")
	r := NewRunner(script, 0)
	r.Stdout, r.Stderr = &bytes.Buffer{}, &bytes.Buffer{}

	err := r.Render(context.Background(), "msg")
	require.ErrorIs(t, err, ErrExitStatus)

	var bannerErr *Error
	require.True(t, errors.As(err, &bannerErr))
	assert.Equal(t, 3, bannerErr.ExitCode)
	assert.Equal(t, "Child process failed to execute with status 3", bannerErr.Error())
}

func TestRenderKilledBySignal(t *testing.T) {
	script := writeScript(t, "kill -9 $$")
	r := NewRunner(script, 0)

	err := r.Render(context.Background(), "msg")
	require.ErrorIs(t, err, ErrAbnormal)
	assert.Equal(t, "Child process terminated abnormally", err.Error())
}

func TestRenderMissingUtility(t *testing.T) {
	r := NewRunner(filepath.Join(t.TempDir(), "no-such-banner"), 0)

	err := r.Render(context.Background(), "msg")
	require.ErrorIs(t, err, ErrLaunch)
	assert.False(t, errors.Is(err, ErrExitStatus))
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner("", 0)
	assert.Equal(t, DefaultCommand, r.Command)
	assert.Equal(t, DefaultWidth, r.Width)
}
