package git

import (
	"bufio"
	"context"
	"path/filepath"
	"strings"

	"github.com/henri123lemoine/gitsy/internal/debug"
)

// Worktree is one record of `git worktree list --porcelain`.
type Worktree struct {
	Path       string
	Head       string
	Branch     string // short name; empty when detached or bare
	IsDetached bool
	IsBare     bool
}

// Worktrees manages the worktrees living under one workspace directory.
type Worktrees struct {
	repoRoot      string
	workspaceRoot string
	runner        Runner
}

// NewWorktrees returns a gateway running the git binary from repoRoot.
func NewWorktrees(repoRoot, workspaceRoot string) *Worktrees {
	return NewWorktreesWithRunner(repoRoot, workspaceRoot, ExecRunner{})
}

// NewWorktreesWithRunner returns a gateway using r to invoke git.
func NewWorktreesWithRunner(repoRoot, workspaceRoot string, r Runner) *Worktrees {
	return &Worktrees{
		repoRoot:      repoRoot,
		workspaceRoot: filepath.Clean(workspaceRoot),
		runner:        r,
	}
}

// RepoRoot returns the directory git commands run in.
func (w *Worktrees) RepoRoot() string {
	return w.repoRoot
}

// WorkspaceRoot returns the directory holding managed worktrees.
func (w *Worktrees) WorkspaceRoot() string {
	return w.workspaceRoot
}

// BranchPath returns the worktree directory for a branch.
func (w *Worktrees) BranchPath(branch string) string {
	return filepath.Join(w.workspaceRoot, branch)
}

// Create adds a worktree for a new branch under the workspace root.
func (w *Worktrees) Create(ctx context.Context, branch string) error {
	path := w.BranchPath(branch)
	debug.Logf("creating worktree %s at %s", branch, path)
	_, err := w.runner.Run(ctx, w.repoRoot, "worktree", "add", "-b", branch, path)
	return err
}

// Remove removes the worktree of a branch. The branch itself is kept.
func (w *Worktrees) Remove(ctx context.Context, branch string) error {
	path := w.BranchPath(branch)
	debug.Logf("removing worktree %s at %s", branch, path)
	_, err := w.runner.Run(ctx, w.repoRoot, "worktree", "remove", path)
	return err
}

// List returns every worktree of the repository.
func (w *Worktrees) List(ctx context.Context) ([]Worktree, error) {
	output, err := w.runner.Run(ctx, w.repoRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktreeList(output), nil
}

// ListWorkspaceBranches returns the branches whose worktree lives under
// the workspace root, in the order git lists them. Worktrees elsewhere in
// the repository, detached or bare ones, are left out.
func (w *Worktrees) ListWorkspaceBranches(ctx context.Context) ([]string, error) {
	worktrees, err := w.List(ctx)
	if err != nil {
		return nil, err
	}
	branches := workspaceBranches(worktrees, w.workspaceRoot)
	debug.Logf("%d of %d worktrees under %s", len(branches), len(worktrees), w.workspaceRoot)
	return branches, nil
}

// parseWorktreeList parses the porcelain output of git worktree list.
func parseWorktreeList(output string) []Worktree {
	var worktrees []Worktree
	var current *Worktree

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "worktree "):
			if current != nil {
				worktrees = append(worktrees, *current)
			}
			current = &Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case current == nil:
			// Attribute lines before any worktree line belong to nothing.
		case strings.HasPrefix(line, "HEAD "):
			current.Head = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch "):
			current.Branch = strings.TrimPrefix(strings.TrimPrefix(line, "branch "), "refs/heads/")
		case line == "detached":
			current.IsDetached = true
		case line == "bare":
			current.IsBare = true
		}
	}

	if current != nil {
		worktrees = append(worktrees, *current)
	}

	return worktrees
}

// workspaceBranches keeps the branch names of worktrees inside root.
func workspaceBranches(worktrees []Worktree, root string) []string {
	roots := []string{filepath.Clean(root)}
	if resolved, err := filepath.EvalSymlinks(root); err == nil && resolved != roots[0] {
		roots = append(roots, resolved)
	}

	var branches []string
	for _, wt := range worktrees {
		if wt.Branch == "" || wt.IsDetached {
			continue
		}
		for _, r := range roots {
			if isWithin(wt.Path, r) {
				branches = append(branches, wt.Branch)
				break
			}
		}
	}
	return branches
}

// isWithin reports whether path lies strictly below root. The match is by
// whole path components: /a/trees-old is not within /a/trees, and root
// itself is not within root.
func isWithin(path, root string) bool {
	path = filepath.Clean(path)
	if path == root {
		return false
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
