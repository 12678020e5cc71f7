package git

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// fakeRunner records invocations and replays a scripted result.
type fakeRunner struct {
	calls  [][]string
	dirs   []string
	output string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	f.dirs = append(f.dirs, dir)
	return f.output, f.err
}

// TestParseWorktreeList tests parsing of git worktree list --porcelain output.
func TestParseWorktreeList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Worktree
	}{
		{
			name: "single worktree",
			input: `worktree /path/to/repo
HEAD abc123def456
branch refs/heads/main

`,
			expected: []Worktree{
				{Path: "/path/to/repo", Head: "abc123def456", Branch: "main"},
			},
		},
		{
			name: "multiple worktrees",
			input: `worktree /path/to/repo
HEAD abc123def456
branch refs/heads/main

worktree /path/to/repo/worktrees/feature
HEAD def789abc012
branch refs/heads/feature/auth

`,
			expected: []Worktree{
				{Path: "/path/to/repo", Head: "abc123def456", Branch: "main"},
				{Path: "/path/to/repo/worktrees/feature", Head: "def789abc012", Branch: "feature/auth"},
			},
		},
		{
			name: "detached head",
			input: `worktree /path/to/repo
HEAD abc123def456
detached

`,
			expected: []Worktree{
				{Path: "/path/to/repo", Head: "abc123def456", IsDetached: true},
			},
		},
		{
			name: "bare",
			input: `worktree /path/to/repo.git
bare

`,
			expected: []Worktree{
				{Path: "/path/to/repo.git", IsBare: true},
			},
		},
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseWorktreeList(tt.input)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("parseWorktreeList() = %+v, want %+v", result, tt.expected)
			}
		})
	}
}

func TestWorkspaceBranches(t *testing.T) {
	output := `worktree /repo
HEAD 1111111
branch refs/heads/main

worktree /repo/worktrees/feature-b
HEAD 2222222
branch refs/heads/feature-b

worktree /repo/worktrees/detached
HEAD 3333333
detached

worktree /repo/worktrees-old/stale
HEAD 4444444
branch refs/heads/stale

worktree /elsewhere/hotfix
HEAD 5555555
branch refs/heads/hotfix

worktree /repo/worktrees/nested/feature-a
HEAD 6666666
branch refs/heads/nested/feature-a
`

	got := workspaceBranches(parseWorktreeList(output), "/repo/worktrees")
	want := []string{"feature-b", "nested/feature-a"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("workspaceBranches() = %v, want %v", got, want)
	}
}

func TestWorkspaceBranchesRootIsRepository(t *testing.T) {
	output := `worktree /repo
HEAD 1111111
branch refs/heads/main

worktree /repo/feature-x
HEAD 2222222
branch refs/heads/feature-x
`

	// worktree_path = "." must not expose the main worktree for removal.
	got := workspaceBranches(parseWorktreeList(output), "/repo")
	want := []string{"feature-x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("workspaceBranches() = %v, want %v", got, want)
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		path     string
		root     string
		expected bool
	}{
		{"/repo/worktrees/a", "/repo/worktrees", true},
		{"/repo/worktrees/a/b", "/repo/worktrees", true},
		{"/repo/worktrees", "/repo/worktrees", false},
		{"/repo/worktrees/", "/repo/worktrees", false},
		{"/repo/worktrees-old/a", "/repo/worktrees", false},
		{"/repo", "/repo/worktrees", false},
		{"/repo/worktrees/../other", "/repo/worktrees", false},
		{"/anything", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isWithin(tt.path, tt.root); got != tt.expected {
				t.Errorf("isWithin(%q, %q) = %v, want %v", tt.path, tt.root, got, tt.expected)
			}
		})
	}
}

func TestCreateArgs(t *testing.T) {
	runner := &fakeRunner{}
	w := NewWorktreesWithRunner("/repo", "/repo/worktrees", runner)

	if err := w.Create(context.Background(), "feature-x"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	want := []string{"worktree", "add", "-b", "feature-x", "/repo/worktrees/feature-x"}
	if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("Expected call %v, got %v", want, runner.calls)
	}
	if runner.dirs[0] != "/repo" {
		t.Errorf("Expected git to run in /repo, got %q", runner.dirs[0])
	}
}

func TestRemoveArgs(t *testing.T) {
	runner := &fakeRunner{}
	w := NewWorktreesWithRunner("/repo", "/abs/trees/", runner)

	if err := w.Remove(context.Background(), "old-feature"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	want := []string{"worktree", "remove", "/abs/trees/old-feature"}
	if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("Expected call %v, got %v", want, runner.calls)
	}
}

func TestCommandFailure(t *testing.T) {
	failure := &CommandError{
		Args:   []string{"worktree", "add", "-b", "main", "/repo/worktrees/main"},
		Stderr: "fatal: a branch named 'main' already exists\n",
		Err:    errors.New("exit status 128"),
	}
	runner := &fakeRunner{err: failure}
	w := NewWorktreesWithRunner("/repo", "/repo/worktrees", runner)

	err := w.Create(context.Background(), "main")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Expected *CommandError, got %T", err)
	}
	if got := err.Error(); got != "git worktree add failed: fatal: a branch named 'main' already exists" {
		t.Errorf("Unexpected message %q", got)
	}
}

func TestListWorkspaceBranches(t *testing.T) {
	runner := &fakeRunner{output: `worktree /repo
HEAD 1111111
branch refs/heads/main

worktree /repo/worktrees/old-feature
HEAD 2222222
branch refs/heads/old-feature
`}
	w := NewWorktreesWithRunner("/repo", "/repo/worktrees", runner)

	branches, err := w.ListWorkspaceBranches(context.Background())
	if err != nil {
		t.Fatalf("ListWorkspaceBranches() error: %v", err)
	}
	if !reflect.DeepEqual(branches, []string{"old-feature"}) {
		t.Errorf("Expected [old-feature], got %v", branches)
	}
	if want := []string{"worktree", "list", "--porcelain"}; !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("Expected call %v, got %v", want, runner.calls[0])
	}
}

func TestListWorkspaceBranchesError(t *testing.T) {
	runner := &fakeRunner{err: &CommandError{Args: []string{"worktree", "list"}, Err: errors.New("exec: \"git\": executable file not found in $PATH")}}
	w := NewWorktreesWithRunner("/repo", "/repo/worktrees", runner)

	_, err := w.ListWorkspaceBranches(context.Background())
	if err == nil {
		t.Fatal("Expected error")
	}
	if !strings.Contains(err.Error(), "executable file not found") {
		t.Errorf("Expected spawn error in message, got %q", err.Error())
	}
}
