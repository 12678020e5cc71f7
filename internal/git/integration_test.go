package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// setupTestRepo creates a temporary git repo with one commit using the
// git binary. The test is skipped when git is not installed.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	// Resolve symlinks (macOS /var -> /private/var)
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve symlinks: %v", err)
	}

	steps := [][]string{
		{"init"},
		{"config", "user.email", "test@test.com"},
		{"config", "user.name", "Test User"},
		{"config", "commit.gpgsign", "false"},
	}
	for _, args := range steps {
		if err := runIn(tmpDir, "git", args...); err != nil {
			t.Fatalf("git %v failed: %v", args, err)
		}
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("# Test\n"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	if err := runIn(tmpDir, "git", "add", "."); err != nil {
		t.Fatalf("git add failed: %v", err)
	}
	if err := runIn(tmpDir, "git", "commit", "-m", "Initial commit"); err != nil {
		t.Fatalf("git commit failed: %v", err)
	}

	return tmpDir
}

// runIn runs a command in a directory.
func runIn(dir string, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	return cmd.Run()
}

// TestWorktreeLifecycle creates, lists and removes a workspace worktree
// with the real git binary.
func TestWorktreeLifecycle(t *testing.T) {
	repoDir := setupTestRepo(t)
	ctx := context.Background()

	repo, err := Discover(repoDir)
	if err != nil {
		t.Fatalf("Discover() error: %v", err)
	}

	w := NewWorktrees(repo.Root, filepath.Join(repo.Root, "worktrees"))

	// A worktree outside the workspace must stay invisible.
	outside := filepath.Join(repo.Root, "elsewhere")
	if err := runIn(repo.Root, "git", "worktree", "add", "-b", "outside", outside); err != nil {
		t.Fatalf("git worktree add outside failed: %v", err)
	}

	if err := w.Create(ctx, "feature-x"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(repo.Root, "worktrees", "feature-x")); err != nil {
		t.Fatalf("Expected worktree directory: %v", err)
	}

	branches, err := w.ListWorkspaceBranches(ctx)
	if err != nil {
		t.Fatalf("ListWorkspaceBranches() error: %v", err)
	}
	if len(branches) != 1 || branches[0] != "feature-x" {
		t.Errorf("Expected [feature-x], got %v", branches)
	}

	inSync, err := w.IsInSync(ctx, "feature-x")
	if err != nil {
		t.Fatalf("IsInSync() error: %v", err)
	}
	if !inSync {
		t.Error("Expected a branch without upstream to be in sync")
	}

	// Creating the same branch again is rejected by git.
	err = w.Create(ctx, "feature-x")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("Expected *CommandError for duplicate branch, got %v", err)
	}
	if cmdErr.Stderr == "" {
		t.Error("Expected git's stderr to be captured")
	}

	if err := w.Remove(ctx, "feature-x"); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}

	branches, err = w.ListWorkspaceBranches(ctx)
	if err != nil {
		t.Fatalf("ListWorkspaceBranches() error: %v", err)
	}
	if len(branches) != 0 {
		t.Errorf("Expected no branches after remove, got %v", branches)
	}

	if err := w.Remove(ctx, "feature-x"); err == nil {
		t.Error("Expected removing a missing worktree to fail")
	}
}
