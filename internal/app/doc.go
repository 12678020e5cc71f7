// Package app provides the Bubble Tea models for gitsy.
//
// Model is the main screen state machine: a menu, a branch-name entry
// screen, a list of workspace branches to delete and a delete
// confirmation. Every git operation goes through a Gateway and runs as a
// command; while one is in flight the model is busy and ignores input
// other than Ctrl+C.
//
// SetupModel is the first-run prompt for the worktree path.
package app
