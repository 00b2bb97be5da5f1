package breakdown

import (
	"context"
)

// TopicEstimate is one sub-topic proposed by the generative service:
// what to study, how hard it is on a 1-10 scale, and roughly how many
// hours it needs. Completion state is a planner concern and is attached
// there, not here.
type TopicEstimate struct {
	Topic      string  `json:"topic"`
	Difficulty int     `json:"difficulty"`
	StudyHours float64 `json:"studyHours"`
}

// Generator defines the interface for breaking a subject down into
// sub-topics. This is the boundary between the planner core and the
// external generative-language service.
type Generator interface {
	// BreakdownSubject asks the service to decompose the named subject
	// into an ordered list of sub-topics.
	//
	// A single attempt is made; callers decide how to surface failure.
	// The returned estimates are validated: the list is non-empty, every
	// topic name is unique and non-empty, difficulty is an integer in
	// [1,10], and study hours are positive.
	BreakdownSubject(ctx context.Context, name, description string) ([]TopicEstimate, error)
}
