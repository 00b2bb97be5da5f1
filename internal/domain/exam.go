package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExamDateLayout is the calendar-date form exam dates are stored in.
// Dates in this form sort chronologically as plain strings, which the
// exam ordering invariant relies on.
const ExamDateLayout = time.DateOnly

// Exam is a dated exam for a Subject. Date stays a plain YYYY-MM-DD
// string end to end; it is validated at construction, not reinterpreted.
type Exam struct {
	ID        string `json:"id"`
	SubjectID string `json:"subjectId"`
	Date      string `json:"date"`
}

// NewExam creates an Exam with a fresh opaque ID.
// Returns an error if the subject reference is missing or the date is not
// a valid YYYY-MM-DD calendar date.
func NewExam(subjectID, date string) (*Exam, error) {
	if subjectID == "" {
		return nil, ErrEmptySubjectID
	}
	if _, err := time.Parse(ExamDateLayout, date); err != nil {
		return nil, ErrInvalidExamDate
	}

	return &Exam{
		ID:        uuid.New().String(),
		SubjectID: subjectID,
		Date:      date,
	}, nil
}
