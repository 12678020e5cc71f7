// Package debug provides opt-in debug logging for gitsy.
//
// When enabled via the --debug-log flag or the GITSY_DEBUG environment
// variable, it records gateway invocations, their durations, and screen
// transitions to a file, away from the terminal the UI is drawing on.
package debug
