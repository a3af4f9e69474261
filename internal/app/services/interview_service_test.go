package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

func newInterviewService(t *testing.T) (*InterviewService, *repositories.Store) {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Students.Create(context.Background(), &models.Student{
		USN: "4SF22CS001", Name: "A", Branch: "CSE",
	}))
	return NewInterviewService(store.Interviews, store.Students), store
}

func TestScheduleDefaultsStatusAndResult(t *testing.T) {
	svc, _ := newInterviewService(t)

	interview, err := svc.Schedule(context.Background(), &dto.InterviewRequest{
		StudentUSN:    "4SF22CS001",
		Company:       "Acme",
		Position:      "Software Engineer",
		InterviewDate: time.Now().Add(72 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)
	assert.NotZero(t, interview.ID)
	assert.Equal(t, "Scheduled", interview.Status)
	assert.Equal(t, "Pending", interview.Result)
}

func TestScheduleValidatesStudentAndDate(t *testing.T) {
	svc, _ := newInterviewService(t)
	ctx := context.Background()
	when := time.Now().Add(72 * time.Hour).Format(time.RFC3339)

	_, err := svc.Schedule(ctx, &dto.InterviewRequest{
		StudentUSN:    "not-a-usn",
		Company:       "Acme",
		InterviewDate: when,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUSN)

	_, err = svc.Schedule(ctx, &dto.InterviewRequest{
		StudentUSN:    "4SF22CS999",
		Company:       "Acme",
		InterviewDate: when,
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	_, err = svc.Schedule(ctx, &dto.InterviewRequest{
		StudentUSN:    "4SF22CS001",
		Company:       "Acme",
		InterviewDate: "2026-05-20", // missing the time part
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestInterviewUpdateRecordsOutcome(t *testing.T) {
	svc, store := newInterviewService(t)
	ctx := context.Background()

	interview, err := svc.Schedule(ctx, &dto.InterviewRequest{
		StudentUSN:    "4SF22CS001",
		Company:       "Acme",
		InterviewDate: time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, interview.ID, &dto.InterviewRequest{
		StudentUSN:    "4SF22CS001",
		Company:       "Acme",
		InterviewDate: interview.InterviewDate.Format(time.RFC3339),
		Status:        "Completed",
		Result:        "Selected",
		Feedback:      "Strong problem solving",
	})
	require.NoError(t, err)
	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "Selected", updated.Result)
	assert.Equal(t, "Strong problem solving", updated.Feedback)

	stored, err := store.Interviews.GetByID(ctx, interview.ID)
	require.NoError(t, err)
	assert.Equal(t, "Selected", stored.Result)
}

func TestInterviewUpdateUnknownID(t *testing.T) {
	svc, _ := newInterviewService(t)

	_, err := svc.Update(context.Background(), 999, &dto.InterviewRequest{
		StudentUSN:    "4SF22CS001",
		Company:       "Acme",
		InterviewDate: time.Now().Format(time.RFC3339),
	})
	assert.ErrorIs(t, err, apperrors.ErrInterviewNotFound)
}
