// Package git provides the worktree operations gitsy performs against a
// repository.
//
// Worktree lifecycle commands (add, list, remove) shell out to the git
// binary; branch and upstream commit pointers are read in-process with
// go-git. Worktrees is the concrete gateway used by the app package.
package git
