package remote

import (
	"context"
	"encoding/json"
)

// Action names one of the operations the persistence endpoint supports.
// The payload shape for each action is owned by the caller; the gateway
// treats it as opaque.
type Action string

// The fixed enumeration of actions understood by the persistence endpoint.
const (
	ActionLoadOrCreateUser      Action = "LOAD_OR_CREATE_USER"
	ActionAddSubject            Action = "ADD_SUBJECT"
	ActionDeleteSubject         Action = "DELETE_SUBJECT"
	ActionAddExam               Action = "ADD_EXAM"
	ActionDeleteExam            Action = "DELETE_EXAM"
	ActionSaveSubTopics         Action = "SAVE_SUBTOPICS"
	ActionToggleTopicCompletion Action = "TOGGLE_TOPIC_COMPLETION"
)

// Gateway is the persistence endpoint as seen by the planner.
//
// Call sends one action with its payload and returns the envelope's data
// field on success. When the envelope carries no data an empty JSON object
// is returned, so callers can always unmarshal. Any transport failure,
// non-2xx status, malformed envelope, or explicit failure envelope is
// reported as an error wrapping ErrRemote.
type Gateway interface {
	Call(ctx context.Context, action Action, payload any) (json.RawMessage, error)
}
