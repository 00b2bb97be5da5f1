package planner

import (
	"errors"
	"fmt"
)

// Common planner errors. Not-found errors wrap ErrNotFound so callers can
// match the whole family with errors.Is.
var (
	// ErrNotFound is the base error for any missing entity.
	ErrNotFound = errors.New("entity not found")

	// ErrSubjectNotFound indicates the referenced subject is not in the session.
	ErrSubjectNotFound = fmt.Errorf("%w: subject", ErrNotFound)

	// ErrExamNotFound indicates the referenced exam is not in the session.
	ErrExamNotFound = fmt.Errorf("%w: exam", ErrNotFound)

	// ErrTopicNotFound indicates the named sub-topic does not exist on the subject.
	ErrTopicNotFound = fmt.Errorf("%w: sub-topic", ErrNotFound)

	// ErrNoSession is returned when an operation requires an active session.
	ErrNoSession = errors.New("no active session")

	// ErrSessionActive is returned when a session is already loaded; the
	// profile is not editable until the session ends.
	ErrSessionActive = errors.New("session already active")

	// ErrBreakdownInFlight is returned when a breakdown is requested for a
	// subject that is already being analyzed.
	ErrBreakdownInFlight = errors.New("breakdown already in progress")

	// ErrAlreadyBrokenDown is returned when a breakdown is requested for a
	// subject that already has sub-topics; broken down is terminal.
	ErrAlreadyBrokenDown = errors.New("subject already broken down")
)
