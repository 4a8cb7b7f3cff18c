// Package banner runs the external text-banner utility that prints the
// final series result.
package banner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
)

const (
	DefaultCommand = "figlet"
	// Matches three 60-column art pieces printed side by side.
	DefaultWidth = 180
)

type Kind int

const (
	LaunchFailed Kind = iota + 1
	ExitedNonZero
	Terminated
)

var (
	ErrLaunch     = errors.New("banner utility failed to launch")
	ErrExitStatus = errors.New("banner utility exited with non-zero status")
	ErrAbnormal   = errors.New("banner utility terminated abnormally")
)

// Error describes how a banner invocation failed.
type Error struct {
	Kind     Kind
	Command  string
	ExitCode int
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case LaunchFailed:
		return fmt.Sprintf("%s execution failed: %v", e.Command, e.Err)
	case ExitedNonZero:
		return fmt.Sprintf("Child process failed to execute with status %d", e.ExitCode)
	}
	return "Child process terminated abnormally"
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrLaunch:
		return e.Kind == LaunchFailed
	case ErrExitStatus:
		return e.Kind == ExitedNonZero
	case ErrAbnormal:
		return e.Kind == Terminated
	}
	return false
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Runner invokes `<Command> -w <Width> <message>` and waits for it.
type Runner struct {
	Command string
	Width   int
	Stdout  io.Writer
	Stderr  io.Writer
}

func NewRunner(command string, width int) *Runner {
	if command == "" {
		command = DefaultCommand
	}
	if width <= 0 {
		width = DefaultWidth
	}
	return &Runner{Command: command, Width: width, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Render blocks until the utility exits. No timeout is applied beyond ctx.
func (r *Runner) Render(ctx context.Context, message string) error {
	cmd := exec.CommandContext(ctx, r.Command, "-w", strconv.Itoa(r.Width), message)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Start(); err != nil {
		return &Error{Kind: LaunchFailed, Command: r.Command, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return &Error{Kind: Terminated, Command: r.Command, Err: err}
	}
	// ExitCode is -1 when the process was killed by a signal.
	if code := exitErr.ExitCode(); code >= 0 {
		return &Error{Kind: ExitedNonZero, Command: r.Command, ExitCode: code, Err: err}
	}
	return &Error{Kind: Terminated, Command: r.Command, ExitCode: -1, Err: err}
}
