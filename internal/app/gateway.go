package app

import "context"

// Gateway performs the git operations behind the screens.
// *git.Worktrees is the production implementation.
type Gateway interface {
	Create(ctx context.Context, branch string) error
	ListWorkspaceBranches(ctx context.Context) ([]string, error)
	Remove(ctx context.Context, branch string) error
	IsInSync(ctx context.Context, branch string) (bool, error)
}
