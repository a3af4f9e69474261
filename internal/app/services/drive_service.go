package services

import (
	"context"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/helpers"
)

// DriveService handles placement drive CRUD, student registration and the
// employer-facing job projection.
type DriveService struct {
	drives   repositories.DriveRepository
	students repositories.StudentRepository
}

// NewDriveService creates a new drive service instance.
func NewDriveService(drives repositories.DriveRepository, students repositories.StudentRepository) *DriveService {
	return &DriveService{drives: drives, students: students}
}

// List returns all drives.
func (s *DriveService) List(ctx context.Context) ([]*models.PlacementDrive, error) {
	return s.drives.List(ctx)
}

// Create adds a drive.
func (s *DriveService) Create(ctx context.Context, req *dto.DriveRequest) (*models.PlacementDrive, error) {
	drive, err := driveFromRequest(req)
	if err != nil {
		return nil, err
	}
	if drive.Status == "" {
		drive.Status = models.DriveStatusUpcoming
	}
	if err := s.drives.Create(ctx, drive); err != nil {
		return nil, err
	}
	return drive, nil
}

// Update applies the allow-listed fields onto an existing drive.
func (s *DriveService) Update(ctx context.Context, id int64, req *dto.DriveRequest) (*models.PlacementDrive, error) {
	existing, err := s.drives.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := driveFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = id
	updated.StudentsSelected = existing.StudentsSelected
	if updated.Status == "" {
		updated.Status = existing.Status
	}

	if err := s.drives.Update(ctx, updated); err != nil {
		return nil, err
	}
	return s.drives.GetByID(ctx, id)
}

// Delete removes a drive.
func (s *DriveService) Delete(ctx context.Context, id int64) error {
	return s.drives.Delete(ctx, id)
}

// Register signs a student up for a drive. Registration closes when the
// deadline has passed or the drive has completed.
func (s *DriveService) Register(ctx context.Context, driveID int64, usn string) error {
	if _, err := s.students.GetByUSN(ctx, usn); err != nil {
		return err
	}
	drive, err := s.drives.GetByID(ctx, driveID)
	if err != nil {
		return err
	}
	if drive.Status == models.DriveStatusCompleted {
		return apperrors.ErrDriveClosed
	}
	if drive.RegistrationDeadline != nil && drive.RegistrationDeadline.Before(time.Now().Truncate(24*time.Hour)) {
		return apperrors.ErrDriveClosed
	}

	return s.drives.RegisterStudent(ctx, driveID, usn)
}

// OpenJobs projects drives that are still accepting candidates into the
// employer job listing shape.
func (s *DriveService) OpenJobs(ctx context.Context) ([]*dto.JobPosting, error) {
	drives, err := s.drives.List(ctx)
	if err != nil {
		return nil, err
	}

	jobs := []*dto.JobPosting{}
	for _, d := range drives {
		if d.Status == models.DriveStatusCompleted {
			continue
		}
		jobs = append(jobs, &dto.JobPosting{
			ID:       d.ID,
			Company:  d.Company,
			Title:    d.Title,
			Position: d.Position,
			Package:  d.Package,
			Location: d.Location,
			Status:   d.Status,
		})
	}
	return jobs, nil
}

func driveFromRequest(req *dto.DriveRequest) (*models.PlacementDrive, error) {
	switch req.Status {
	case "", models.DriveStatusUpcoming, models.DriveStatusOngoing, models.DriveStatusCompleted:
	default:
		return nil, apperrors.ErrValidationFailed
	}

	driveDate, err := helpers.ParseDate(req.DriveDate)
	if err != nil {
		return nil, apperrors.ErrValidationFailed
	}
	deadline, err := helpers.ParseDate(req.RegistrationDeadline)
	if err != nil {
		return nil, apperrors.ErrValidationFailed
	}

	return &models.PlacementDrive{
		Company:              req.Company,
		Title:                req.Title,
		Position:             req.Position,
		DriveDate:            driveDate,
		RegistrationDeadline: deadline,
		Location:             req.Location,
		Eligibility:          req.Eligibility,
		Roles:                req.Roles,
		Package:              req.Package,
		Status:               req.Status,
	}, nil
}
