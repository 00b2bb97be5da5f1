package planner_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/studyforge/planner-api/internal/breakdown"
	"github.com/studyforge/planner-api/internal/planner"
	"github.com/studyforge/planner-api/internal/remote"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakdownSubject_Success(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{}
	generator := &stubGenerator{
		BreakdownFn: func(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
			assert.Equal(t, "Calculus", name)
			assert.Equal(t, "Limits and derivatives", description)
			return []breakdown.TopicEstimate{
				{Topic: "Limits", Difficulty: 3, StudyHours: 2},
				{Topic: "Derivatives", Difficulty: 5, StudyHours: 4},
			}, nil
		},
	}
	p := newActivePlanner(t, gateway, generator)
	subject := addSubject(t, p, "Calculus", "Limits and derivatives")

	require.NoError(t, p.BreakdownSubject(context.Background(), subject.ID))

	snap := p.Snapshot()
	require.Len(t, snap.Subjects, 1)
	got := snap.Subjects[0]
	assert.True(t, got.IsBrokenDown)
	assert.False(t, got.IsLoading)
	assert.Empty(t, got.Error)
	require.Len(t, got.SubTopics, 2)
	for _, st := range got.SubTopics {
		assert.False(t, st.IsCompleted, "fresh sub-topics start incomplete")
		assert.GreaterOrEqual(t, st.Difficulty, 1)
		assert.LessOrEqual(t, st.Difficulty, 10)
	}

	assert.Equal(t, 0, p.CompletedCount())
	assert.Equal(t, 2, p.TotalCount())

	// The persistence call carries the sub-topics with completion flags.
	last := gateway.lastCall(t)
	assert.Equal(t, remote.ActionSaveSubTopics, last.Action)
	assert.Equal(t, subject.ID, last.Payload["subjectId"])
	saved, ok := last.Payload["subTopics"].([]any)
	require.True(t, ok)
	assert.Len(t, saved, 2)
}

func TestBreakdownSubject_GeneratorFailure(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{
		BreakdownFn: func(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
			return nil, fmt.Errorf("%w: model melted", breakdown.ErrServiceFailure)
		},
	}
	gateway := &stubGateway{}
	p := newActivePlanner(t, gateway, generator)
	subject := addSubject(t, p, "Calculus", "Limits")
	callsBefore := len(gateway.recorded())

	err := p.BreakdownSubject(context.Background(), subject.ID)
	assert.ErrorIs(t, err, breakdown.ErrServiceFailure)

	snap := p.Snapshot()
	got := snap.Subjects[0]
	assert.False(t, got.IsBrokenDown)
	assert.False(t, got.IsLoading, "loading flag always resets on failure")
	assert.NotEmpty(t, got.Error, "failure message lands on the subject")
	assert.Empty(t, got.SubTopics)

	assert.Len(t, gateway.recorded(), callsBefore, "nothing is persisted when generation fails")
}

func TestBreakdownSubject_PersistFailure(t *testing.T) {
	t.Parallel()

	gateway := &stubGateway{}
	p := newActivePlanner(t, gateway, nil)
	subject := addSubject(t, p, "Calculus", "Limits")

	gateway.CallFn = func(ctx context.Context, action remote.Action, payload any) (json.RawMessage, error) {
		if action == remote.ActionSaveSubTopics {
			return nil, errGatewayDown
		}
		return json.RawMessage(`{}`), nil
	}

	err := p.BreakdownSubject(context.Background(), subject.ID)
	assert.ErrorIs(t, err, errGatewayDown)

	got := p.Snapshot().Subjects[0]
	assert.False(t, got.IsBrokenDown, "both calls must succeed before the transition")
	assert.False(t, got.IsLoading)
	assert.NotEmpty(t, got.Error)
}

func TestBreakdownSubject_Guards(t *testing.T) {
	t.Parallel()

	t.Run("unknown subject", func(t *testing.T) {
		t.Parallel()

		p := newActivePlanner(t, nil, nil)
		assert.ErrorIs(t, p.BreakdownSubject(context.Background(), "nope"), planner.ErrSubjectNotFound)
	})

	t.Run("broken down is terminal", func(t *testing.T) {
		t.Parallel()

		p := newActivePlanner(t, nil, nil)
		subject := addSubject(t, p, "Calculus", "Limits")
		require.NoError(t, p.BreakdownSubject(context.Background(), subject.ID))

		err := p.BreakdownSubject(context.Background(), subject.ID)
		assert.ErrorIs(t, err, planner.ErrAlreadyBrokenDown)
	})

	t.Run("second request while loading is rejected", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		started := make(chan struct{})
		generator := &stubGenerator{
			BreakdownFn: func(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
				close(started)
				<-release
				return []breakdown.TopicEstimate{{Topic: "Limits", Difficulty: 3, StudyHours: 2}}, nil
			},
		}
		p := newActivePlanner(t, nil, generator)
		subject := addSubject(t, p, "Calculus", "Limits")

		done := make(chan error, 1)
		go func() {
			done <- p.BreakdownSubject(context.Background(), subject.ID)
		}()

		select {
		case <-started:
		case <-time.After(5 * time.Second):
			t.Fatal("breakdown never started")
		}

		assert.ErrorIs(t, p.BreakdownSubject(context.Background(), subject.ID), planner.ErrBreakdownInFlight)

		close(release)
		require.NoError(t, <-done)
		assert.True(t, p.Snapshot().Subjects[0].IsBrokenDown)
	})
}

func TestBreakdownSubject_LateResolutionIsNoOp(t *testing.T) {
	t.Parallel()

	t.Run("subject deleted mid-flight", func(t *testing.T) {
		t.Parallel()

		gateway := &stubGateway{}
		var p *planner.Planner
		var subjectID string
		generator := &stubGenerator{
			BreakdownFn: func(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
				// The user deletes the subject while the model is thinking.
				require.NoError(t, p.DeleteSubject(ctx, subjectID))
				return []breakdown.TopicEstimate{{Topic: "Limits", Difficulty: 3, StudyHours: 2}}, nil
			},
		}
		p = newActivePlanner(t, gateway, generator)
		subject := addSubject(t, p, "Calculus", "Limits")
		subjectID = subject.ID

		require.NoError(t, p.BreakdownSubject(context.Background(), subject.ID))

		snap := p.Snapshot()
		assert.Empty(t, snap.Subjects, "the late resolution must not resurrect the subject")
	})

	t.Run("session ended mid-flight", func(t *testing.T) {
		t.Parallel()

		var p *planner.Planner
		generator := &stubGenerator{
			BreakdownFn: func(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
				require.NoError(t, p.EndSession())
				return []breakdown.TopicEstimate{{Topic: "Limits", Difficulty: 3, StudyHours: 2}}, nil
			},
		}
		p = newActivePlanner(t, nil, generator)
		subject := addSubject(t, p, "Calculus", "Limits")

		require.NoError(t, p.BreakdownSubject(context.Background(), subject.ID))

		snap := p.Snapshot()
		assert.False(t, snap.Active)
		assert.Empty(t, snap.Subjects)
	})

	t.Run("failure after deletion stays silent locally", func(t *testing.T) {
		t.Parallel()

		var p *planner.Planner
		var subjectID string
		generator := &stubGenerator{
			BreakdownFn: func(ctx context.Context, name, description string) ([]breakdown.TopicEstimate, error) {
				require.NoError(t, p.DeleteSubject(ctx, subjectID))
				return nil, fmt.Errorf("%w: too late anyway", breakdown.ErrServiceFailure)
			},
		}
		p = newActivePlanner(t, nil, generator)
		subject := addSubject(t, p, "Calculus", "Limits")
		subjectID = subject.ID

		err := p.BreakdownSubject(context.Background(), subject.ID)
		assert.ErrorIs(t, err, breakdown.ErrServiceFailure)
		assert.Empty(t, p.Snapshot().Subjects)
	})
}

func TestToggleTopicCompletion(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T, gateway *stubGateway) (*planner.Planner, string) {
		t.Helper()
		p := newActivePlanner(t, gateway, nil)
		subject := addSubject(t, p, "Calculus", "Limits and derivatives")
		require.NoError(t, p.BreakdownSubject(context.Background(), subject.ID))
		return p, subject.ID
	}

	t.Run("flips only the named topic and persists the new value", func(t *testing.T) {
		t.Parallel()

		gateway := &stubGateway{}
		p, subjectID := setup(t, gateway)

		require.NoError(t, p.ToggleTopicCompletion(context.Background(), subjectID, "Limits"))

		topics := p.FlattenedTopics()
		require.Len(t, topics, 2)
		assert.True(t, topics[0].IsCompleted)
		assert.False(t, topics[1].IsCompleted)
		assert.Equal(t, 1, p.CompletedCount())

		last := gateway.lastCall(t)
		assert.Equal(t, remote.ActionToggleTopicCompletion, last.Action)
		assert.Equal(t, "Limits", last.Payload["topicName"])
		assert.Equal(t, true, last.Payload["isCompleted"])
	})

	t.Run("double application restores the original value", func(t *testing.T) {
		t.Parallel()

		p, subjectID := setup(t, &stubGateway{})

		require.NoError(t, p.ToggleTopicCompletion(context.Background(), subjectID, "Limits"))
		require.NoError(t, p.ToggleTopicCompletion(context.Background(), subjectID, "Limits"))

		assert.False(t, p.FlattenedTopics()[0].IsCompleted)
		assert.Equal(t, 0, p.CompletedCount())
	})

	t.Run("guards", func(t *testing.T) {
		t.Parallel()

		p, subjectID := setup(t, &stubGateway{})

		assert.ErrorIs(t, p.ToggleTopicCompletion(context.Background(), "nope", "Limits"),
			planner.ErrSubjectNotFound)
		assert.ErrorIs(t, p.ToggleTopicCompletion(context.Background(), subjectID, "Telepathy"),
			planner.ErrTopicNotFound)
	})

	t.Run("remote failure leaves the flag untouched", func(t *testing.T) {
		t.Parallel()

		gateway := &stubGateway{}
		p, subjectID := setup(t, gateway)

		gateway.CallFn = func(ctx context.Context, action remote.Action, payload any) (json.RawMessage, error) {
			return nil, errGatewayDown
		}

		err := p.ToggleTopicCompletion(context.Background(), subjectID, "Limits")
		assert.ErrorIs(t, err, errGatewayDown)
		assert.False(t, p.FlattenedTopics()[0].IsCompleted)
	})
}
