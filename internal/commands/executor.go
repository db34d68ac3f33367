package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ProcessExecutor runs external programs for exec actions.
type ProcessExecutor struct {
	Timeout time.Duration
}

// NewProcessExecutor creates an executor with the default timeout.
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{Timeout: DefaultExecTimeout}
}

// Execute runs argv and returns its standard output. A non-zero exit is an
// error carrying the program's stderr.
func (e *ProcessExecutor) Execute(argv []string) (string, error) {
	if len(argv) == 0 || argv[0] == "" {
		return "", fmt.Errorf("no program given")
	}

	timeout := e.Timeout
	if timeout == 0 {
		timeout = DefaultExecTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s timed out after %v", argv[0], timeout)
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %s", argv[0], msg)
		}
		return "", fmt.Errorf("%s failed: %w", argv[0], err)
	}
	return stdout.String(), nil
}

// LookPath checks that the program of argv can be found.
func LookPath(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("no program given")
	}
	if _, err := exec.LookPath(argv[0]); err != nil {
		return fmt.Errorf("%s not found in PATH", argv[0])
	}
	return nil
}
