package domain

import (
	"github.com/google/uuid"
)

// SubTopic is a single AI-generated unit of study inside a Subject.
// Topic doubles as the correlation key for completion toggling, so it is
// unique within the owning subject's sub-topic list.
type SubTopic struct {
	Topic       string  `json:"topic"`
	Difficulty  int     `json:"difficulty"`
	StudyHours  float64 `json:"studyHours"`
	IsCompleted bool    `json:"isCompleted"`
}

// Subject is a course of study the student wants broken down into
// sub-topics. IsBrokenDown flips true exactly once, when a breakdown
// succeeds; IsLoading and Error are transient per-subject flags that are
// never sent to the remote store.
type Subject struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	IsBrokenDown bool       `json:"isBrokenDown"`
	SubTopics    []SubTopic `json:"subTopics"`
	IsLoading    bool       `json:"isLoading"`
	Error        string     `json:"error,omitempty"`
}

// NewSubject creates a Subject with a fresh opaque ID and no sub-topics.
// Returns an error if the name or description is empty.
func NewSubject(name, description string) (*Subject, error) {
	if name == "" {
		return nil, ErrEmptySubjectName
	}
	if description == "" {
		return nil, ErrEmptySubjectDescription
	}

	return &Subject{
		ID:          uuid.New().String(),
		Name:        name,
		Description: description,
		SubTopics:   []SubTopic{},
	}, nil
}

// Clone returns a deep copy safe to hand across the store boundary.
func (s *Subject) Clone() Subject {
	out := *s
	out.SubTopics = make([]SubTopic, len(s.SubTopics))
	copy(out.SubTopics, s.SubTopics)
	return out
}
