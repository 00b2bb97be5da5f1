package domain_test

import (
	"testing"

	"github.com/studyforge/planner-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		subjectID string
		date      string
		wantErr   error
	}{
		{
			name:      "valid exam",
			subjectID: "subject-1",
			date:      "2024-05-01",
			wantErr:   nil,
		},
		{
			name:      "missing subject reference",
			subjectID: "",
			date:      "2024-05-01",
			wantErr:   domain.ErrEmptySubjectID,
		},
		{
			name:      "empty date",
			subjectID: "subject-1",
			date:      "",
			wantErr:   domain.ErrInvalidExamDate,
		},
		{
			name:      "not a calendar date",
			subjectID: "subject-1",
			date:      "May 1st 2024",
			wantErr:   domain.ErrInvalidExamDate,
		},
		{
			name:      "impossible day",
			subjectID: "subject-1",
			date:      "2024-02-31",
			wantErr:   domain.ErrInvalidExamDate,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			exam, err := domain.NewExam(tt.subjectID, tt.date)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, exam)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, exam.ID)
			assert.Equal(t, tt.subjectID, exam.SubjectID)
			assert.Equal(t, tt.date, exam.Date)
		})
	}
}
