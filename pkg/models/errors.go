package models

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of failure modes the tool distinguishes.
// Fetch kinds are recoverable per cell; the rest are fatal to the run.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindTransientFetch
	KindPermanentFetch
	KindOutput
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransientFetch:
		return "transient fetch"
	case KindPermanentFetch:
		return "permanent fetch"
	case KindOutput:
		return "output"
	}
	return "unknown"
}

// Error carries the error kind plus, for fetch errors, the grid cell
// coordinates that produced it.
type Error struct {
	Kind     ErrorKind
	Date     string
	Time     string
	CourseID string
	Err      error
}

func (e *Error) Error() string {
	if e.Date != "" || e.Time != "" || e.CourseID != "" {
		return fmt.Sprintf("%s error for %s %s course %s: %v", e.Kind, e.Date, e.Time, e.CourseID, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsFetchError reports whether err is a per-cell fetch failure, i.e. one
// the orchestrator may skip without aborting the batch.
func IsFetchError(err error) bool {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Kind == KindTransientFetch || qe.Kind == KindPermanentFetch
	}
	return false
}
