package app

import "fmt"

// StatusKind classifies a status message.
type StatusKind int

const (
	StatusSuccess StatusKind = iota
	StatusError
)

// Status is the outcome of the last action, shown until replaced.
type Status struct {
	Kind StatusKind
	Text string
}

// IsError reports whether the status describes a failure.
func (s Status) IsError() bool {
	return s.Kind == StatusError
}

func successStatus(format string, args ...any) *Status {
	return &Status{Kind: StatusSuccess, Text: fmt.Sprintf(format, args...)}
}

func errorStatus(err error) *Status {
	return &Status{Kind: StatusError, Text: err.Error()}
}
