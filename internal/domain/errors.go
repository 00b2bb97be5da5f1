package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// More specific errors below wrap or accompany it at call sites.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyEmail is returned when an email identity key is missing.
	ErrEmptyEmail = errors.New("email cannot be empty")

	// ErrEmptySubjectName is returned when a subject has no name.
	ErrEmptySubjectName = errors.New("subject name cannot be empty")

	// ErrEmptySubjectDescription is returned when a subject has no description.
	ErrEmptySubjectDescription = errors.New("subject description cannot be empty")

	// ErrEmptySubjectID is returned when an exam does not reference a subject.
	ErrEmptySubjectID = errors.New("subject ID cannot be empty")

	// ErrInvalidExamDate is returned when an exam date is not a valid
	// calendar date in YYYY-MM-DD form.
	ErrInvalidExamDate = errors.New("invalid exam date")
)
