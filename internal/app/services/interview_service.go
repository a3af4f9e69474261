package services

import (
	"context"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/validation"
)

// InterviewService lets the placement office schedule and update interviews.
type InterviewService struct {
	interviews repositories.InterviewRepository
	students   repositories.StudentRepository
}

// NewInterviewService creates a new interview service instance.
func NewInterviewService(interviews repositories.InterviewRepository, students repositories.StudentRepository) *InterviewService {
	return &InterviewService{interviews: interviews, students: students}
}

// Schedule records a new interview for an existing student.
func (s *InterviewService) Schedule(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error) {
	interview, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.interviews.Create(ctx, interview); err != nil {
		return nil, err
	}
	return interview, nil
}

// Update replaces the mutable fields of an existing interview.
func (s *InterviewService) Update(ctx context.Context, id int64, req *dto.InterviewRequest) (*models.Interview, error) {
	if _, err := s.interviews.GetByID(ctx, id); err != nil {
		return nil, err
	}

	interview, err := s.fromRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	interview.ID = id
	if err := s.interviews.Update(ctx, interview); err != nil {
		return nil, err
	}
	return s.interviews.GetByID(ctx, id)
}

func (s *InterviewService) fromRequest(ctx context.Context, req *dto.InterviewRequest) (*models.Interview, error) {
	if !validation.CompiledPatterns.USN.MatchString(req.StudentUSN) {
		return nil, apperrors.ErrInvalidUSN
	}
	if _, err := s.students.GetByUSN(ctx, req.StudentUSN); err != nil {
		return nil, err
	}

	date, err := time.Parse(time.RFC3339, req.InterviewDate)
	if err != nil {
		return nil, apperrors.ErrValidationFailed
	}

	interview := &models.Interview{
		StudentUSN:    req.StudentUSN,
		Company:       req.Company,
		Position:      req.Position,
		InterviewDate: date,
		Type:          req.Type,
		Status:        req.Status,
		Result:        req.Result,
		Feedback:      req.Feedback,
	}
	if interview.Status == "" {
		interview.Status = "Scheduled"
	}
	if interview.Result == "" {
		interview.Result = "Pending"
	}
	return interview, nil
}
