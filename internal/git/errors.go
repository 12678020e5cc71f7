package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotARepository is returned when no repository encloses a directory.
var ErrNotARepository = errors.New("not a git repository (or any parent up to mount point)")

// ErrNoWorkingDirectory is returned for repositories without a work tree.
var ErrNoWorkingDirectory = errors.New("repository doesn't have a working directory")

// CommandError reports a git invocation that could not be started or
// exited non-zero.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	name := "git"
	if len(e.Args) > 0 {
		n := min(2, len(e.Args))
		name += " " + strings.Join(e.Args[:n], " ")
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s failed: %s", name, msg)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ResolutionError reports a branch or upstream lookup that failed for a
// reason other than the upstream being absent.
type ResolutionError struct {
	Ref string
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s: %v", e.Ref, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
