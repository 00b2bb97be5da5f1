package gemini

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/studyforge/planner-api/internal/breakdown"
)

// wireTopic is one element of the model's JSON array. Difficulty decodes
// as float64 so a fractional value can be detected and rejected rather
// than silently truncated.
type wireTopic struct {
	Topic      string  `json:"topic"`
	Difficulty float64 `json:"difficulty"`
	StudyHours float64 `json:"studyHours"`
}

// parseTopics validates the raw model output against the required shape:
// a non-empty JSON array where every item carries a unique non-empty
// topic, an integral difficulty in [1,10], and positive finite study
// hours. The declared response schema should guarantee most of this, but
// untyped model output is never trusted.
func parseTopics(text string) ([]breakdown.TopicEstimate, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty response text", breakdown.ErrInvalidResponse)
	}

	var raw []wireTopic
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return nil, fmt.Errorf("%w: not a JSON array of sub-topics: %v", breakdown.ErrInvalidResponse, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: no sub-topics in response", breakdown.ErrInvalidResponse)
	}

	seen := make(map[string]bool, len(raw))
	topics := make([]breakdown.TopicEstimate, 0, len(raw))
	for i, item := range raw {
		if item.Topic == "" {
			return nil, fmt.Errorf("%w: sub-topic %d missing topic name", breakdown.ErrInvalidResponse, i)
		}
		if seen[item.Topic] {
			return nil, fmt.Errorf("%w: duplicate topic name %q", breakdown.ErrInvalidResponse, item.Topic)
		}
		seen[item.Topic] = true

		if item.Difficulty != math.Trunc(item.Difficulty) {
			return nil, fmt.Errorf("%w: sub-topic %q difficulty %v is not an integer",
				breakdown.ErrInvalidResponse, item.Topic, item.Difficulty)
		}
		difficulty := int(item.Difficulty)
		if difficulty < 1 || difficulty > 10 {
			return nil, fmt.Errorf("%w: sub-topic %q difficulty %d outside [1,10]",
				breakdown.ErrInvalidResponse, item.Topic, difficulty)
		}

		if math.IsNaN(item.StudyHours) || math.IsInf(item.StudyHours, 0) || item.StudyHours <= 0 {
			return nil, fmt.Errorf("%w: sub-topic %q has invalid study hours %v",
				breakdown.ErrInvalidResponse, item.Topic, item.StudyHours)
		}

		topics = append(topics, breakdown.TopicEstimate{
			Topic:      item.Topic,
			Difficulty: difficulty,
			StudyHours: item.StudyHours,
		})
	}

	return topics, nil
}
