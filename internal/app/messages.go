package app

// Message types for the bubbletea app.

// BranchesLoadedMsg is sent when the workspace branches are listed.
type BranchesLoadedMsg struct {
	Branches []string
	Err      error
}

// WorktreeCreatedMsg is sent when a worktree is created.
type WorktreeCreatedMsg struct {
	Branch string
	Err    error
}

// SyncCheckedMsg is sent when a branch has been compared to its upstream.
type SyncCheckedMsg struct {
	Branch string
	Index  int
	InSync bool
	Err    error
}

// WorktreeDeletedMsg is sent when a worktree is removed.
type WorktreeDeletedMsg struct {
	Branch string
	Err    error
}
