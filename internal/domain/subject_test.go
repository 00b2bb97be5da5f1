package domain_test

import (
	"testing"

	"github.com/studyforge/planner-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubject(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		subjectName string
		description string
		wantErr     error
	}{
		{
			name:        "valid subject",
			subjectName: "Calculus",
			description: "Limits and derivatives",
			wantErr:     nil,
		},
		{
			name:        "empty name",
			subjectName: "",
			description: "Limits and derivatives",
			wantErr:     domain.ErrEmptySubjectName,
		},
		{
			name:        "empty description",
			subjectName: "Calculus",
			description: "",
			wantErr:     domain.ErrEmptySubjectDescription,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			subject, err := domain.NewSubject(tt.subjectName, tt.description)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, subject)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, subject.ID)
			assert.Equal(t, tt.subjectName, subject.Name)
			assert.Equal(t, tt.description, subject.Description)
			assert.False(t, subject.IsBrokenDown)
			assert.Empty(t, subject.SubTopics)
			assert.False(t, subject.IsLoading)
			assert.Empty(t, subject.Error)
		})
	}
}

func TestNewSubject_UniqueIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		subject, err := domain.NewSubject("Physics", "Mechanics")
		require.NoError(t, err)
		assert.False(t, seen[subject.ID], "duplicate subject ID generated")
		seen[subject.ID] = true
	}
}

func TestSubjectClone(t *testing.T) {
	t.Parallel()

	subject, err := domain.NewSubject("Chemistry", "Organic reactions")
	require.NoError(t, err)
	subject.SubTopics = []domain.SubTopic{
		{Topic: "Alkanes", Difficulty: 3, StudyHours: 2},
	}

	clone := subject.Clone()
	clone.SubTopics[0].IsCompleted = true

	assert.False(t, subject.SubTopics[0].IsCompleted,
		"mutating a clone must not touch the original")
}
