package git

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/henri123lemoine/gitsy/internal/debug"
)

// Runner executes git with the given arguments in dir and returns stdout.
// A failed invocation is reported as a *CommandError.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// ExecRunner runs the git binary found on PATH.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	defer debug.Timed("git " + strings.Join(args, " "))()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		debug.Logf("git %s: %v: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
		return "", &CommandError{Args: args, Stderr: stderr.String(), Err: err}
	}

	return stdout.String(), nil
}
