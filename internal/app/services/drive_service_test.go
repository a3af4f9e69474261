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

func newDriveService(t *testing.T) (*DriveService, *repositories.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewDriveService(store.Drives, store.Students), store
}

func dateString(t time.Time) *string {
	s := t.Format("2006-01-02")
	return &s
}

func TestDriveCreateDefaultsToUpcoming(t *testing.T) {
	svc, _ := newDriveService(t)

	drive, err := svc.Create(context.Background(), &dto.DriveRequest{
		Company: "Acme",
		Title:   "Software Engineer Recruitment 2026",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DriveStatusUpcoming, drive.Status)
	assert.NotZero(t, drive.ID)
	assert.Zero(t, drive.StudentsRegistered)
}

func TestDriveCreateRejectsUnknownStatus(t *testing.T) {
	svc, _ := newDriveService(t)

	_, err := svc.Create(context.Background(), &dto.DriveRequest{
		Company: "Acme",
		Title:   "Recruitment",
		Status:  "Cancelled",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestDriveUpdatePreservesCounters(t *testing.T) {
	svc, store := newDriveService(t)
	ctx := context.Background()

	require.NoError(t, store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))
	drive, err := svc.Create(ctx, &dto.DriveRequest{
		Company: "Acme",
		Title:   "Recruitment",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Register(ctx, drive.ID, "4SF22CS001"))

	updated, err := svc.Update(ctx, drive.ID, &dto.DriveRequest{
		Company:  "Acme",
		Title:    "Recruitment (rescheduled)",
		Location: "Campus",
	})
	require.NoError(t, err)
	assert.Equal(t, "Recruitment (rescheduled)", updated.Title)
	assert.Equal(t, 1, updated.StudentsRegistered)
	assert.Equal(t, models.DriveStatusUpcoming, updated.Status)
}

func TestRegisterIncrementsAndRejectsDuplicates(t *testing.T) {
	svc, store := newDriveService(t)
	ctx := context.Background()

	require.NoError(t, store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))
	drive, err := svc.Create(ctx, &dto.DriveRequest{
		Company:              "Acme",
		Title:                "Recruitment",
		RegistrationDeadline: dateString(time.Now().AddDate(0, 0, 7)),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Register(ctx, drive.ID, "4SF22CS001"))

	got, err := store.Drives.GetByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.StudentsRegistered)

	err = svc.Register(ctx, drive.ID, "4SF22CS001")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)

	got, err = store.Drives.GetByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.StudentsRegistered)
}

func TestRegisterClosedDrive(t *testing.T) {
	svc, store := newDriveService(t)
	ctx := context.Background()

	require.NoError(t, store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))

	completed, err := svc.Create(ctx, &dto.DriveRequest{
		Company: "Acme",
		Title:   "Finished drive",
		Status:  models.DriveStatusCompleted,
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Register(ctx, completed.ID, "4SF22CS001"), apperrors.ErrDriveClosed)

	expired, err := svc.Create(ctx, &dto.DriveRequest{
		Company:              "Initech",
		Title:                "Deadline passed",
		RegistrationDeadline: dateString(time.Now().AddDate(0, 0, -3)),
	})
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Register(ctx, expired.ID, "4SF22CS001"), apperrors.ErrDriveClosed)
}

func TestRegisterUnknownStudent(t *testing.T) {
	svc, _ := newDriveService(t)
	ctx := context.Background()

	drive, err := svc.Create(ctx, &dto.DriveRequest{Company: "Acme", Title: "Recruitment"})
	require.NoError(t, err)

	err = svc.Register(ctx, drive.ID, "4SF22CS999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestOpenJobsExcludeCompletedDrives(t *testing.T) {
	svc, _ := newDriveService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.DriveRequest{Company: "Acme", Title: "Open", Package: "18-24 LPA"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.DriveRequest{Company: "Initech", Title: "Done", Status: models.DriveStatusCompleted})
	require.NoError(t, err)

	jobs, err := svc.OpenJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company)
	assert.Equal(t, "18-24 LPA", jobs[0].Package)
}
