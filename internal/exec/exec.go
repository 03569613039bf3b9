// Package exec runs external programs on behalf of digiprefs, such as the
// user's editor.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/iiroan/digiprefs/internal/platform"
)

// Result holds the result of a command execution
type Result struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Options configures command execution
type Options struct {
	Dir     string
	Env     []string
	Timeout time.Duration
	Stdin   io.Reader
	// Attach connects the child to the terminal instead of capturing output.
	Attach bool
	Logger *log.Logger
}

// Run executes a command and returns the result
func Run(ctx context.Context, name string, args []string, opts Options) *Result {
	start := time.Now()

	result := &Result{
		Command: name,
		Args:    args,
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdout, stderr bytes.Buffer
	if opts.Attach {
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdin = opts.Stdin
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	if opts.Logger != nil {
		opts.Logger.Debug("executing command", "cmd", FormatCommand(name, args))
	}

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		result.Err = fmt.Errorf("%s: %w", name, err)
	}

	if opts.Logger != nil {
		opts.Logger.Debug("command finished",
			"cmd", name,
			"exit_code", result.ExitCode,
			"duration", result.Duration,
		)
	}

	return result
}

// Editor returns the user's editor command split into program and arguments.
// VISUAL wins over EDITOR; the platform default is used when both are empty.
func Editor() (string, []string) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields[0], fields[1:]
		}
	}
	return platform.DefaultEditor(), nil
}

// Edit opens path in the user's editor and waits for it to exit.
func Edit(ctx context.Context, path string, logger *log.Logger) error {
	name, args := Editor()
	if !CheckCommand(name) {
		return fmt.Errorf("editor %q not found (set VISUAL or EDITOR)", name)
	}
	result := Run(ctx, name, append(args, path), Options{Attach: true, Logger: logger})
	return result.Err
}

// CheckCommand checks if a command is available
func CheckCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// FormatCommand formats a command for display
func FormatCommand(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}
