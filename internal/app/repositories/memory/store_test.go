package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

func TestDocumentListingHidesDeletingRows(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	doc := &models.StudentDocument{
		StudentUSN:   "4SF22CS001",
		DocumentName: "Resume",
		DocumentType: "resume",
		FilePath:     "abc.pdf",
		Status:       models.DocumentStatusPending,
	}
	require.NoError(t, store.Documents.Create(ctx, doc))

	listed, err := store.Documents.ListByStudent(ctx, "4SF22CS001")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, store.Documents.UpdateStatus(ctx, doc.ID, models.DocumentStatusDeleting))

	listed, err = store.Documents.ListByStudent(ctx, "4SF22CS001")
	require.NoError(t, err)
	assert.Empty(t, listed)

	// The half-deleted row stays addressable by ID for the reaper.
	got, err := store.Documents.GetByID(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DocumentStatusDeleting, got.Status)
}

func TestStudentUpdateProfileKeepsIdentityAndFiles(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	student := &models.Student{
		USN:          "4SF22CS001",
		Name:         "Rakshith V",
		Branch:       "CSE",
		PasswordHash: "hash",
	}
	require.NoError(t, store.Students.Create(ctx, student))
	resume := "resume.pdf"
	require.NoError(t, store.Students.UpdateResumeFile(ctx, student.USN, &resume))

	require.NoError(t, store.Students.UpdateProfile(ctx, &models.Student{
		USN:    "4SF22CS001",
		Name:   "Rakshith V",
		Branch: "CSE",
		BeCGPA: 8.8,
	}))

	got, err := store.Students.GetByUSN(ctx, "4SF22CS001")
	require.NoError(t, err)
	assert.Equal(t, student.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	require.NotNil(t, got.ResumeFile)
	assert.Equal(t, "resume.pdf", *got.ResumeFile)
	assert.InDelta(t, 8.8, got.BeCGPA, 1e-9)
}

func TestStudentUpdateProfileUnknownUSN(t *testing.T) {
	store := NewStore()

	err := store.Students.UpdateProfile(context.Background(), &models.Student{USN: "4SF22CS999"})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDriveDeleteCascadesApplications(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))
	drive := &models.PlacementDrive{Company: "Acme", Title: "Recruitment", Status: models.DriveStatusUpcoming}
	require.NoError(t, store.Drives.Create(ctx, drive))
	require.NoError(t, store.Drives.RegisterStudent(ctx, drive.ID, "4SF22CS001"))

	apps, err := store.Applications.ListByStudent(ctx, "4SF22CS001")
	require.NoError(t, err)
	require.Len(t, apps, 1)

	require.NoError(t, store.Drives.Delete(ctx, drive.ID))

	apps, err = store.Applications.ListByStudent(ctx, "4SF22CS001")
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestRegisterStudentIsIdempotentOnError(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))
	drive := &models.PlacementDrive{Company: "Acme", Title: "Recruitment", Status: models.DriveStatusUpcoming}
	require.NoError(t, store.Drives.Create(ctx, drive))

	require.NoError(t, store.Drives.RegisterStudent(ctx, drive.ID, "4SF22CS001"))
	assert.ErrorIs(t, store.Drives.RegisterStudent(ctx, drive.ID, "4SF22CS001"), apperrors.ErrAlreadyRegistered)

	got, err := store.Drives.GetByID(ctx, drive.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.StudentsRegistered)
}

func TestListedRowsAreCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))

	first, err := store.Students.GetByUSN(ctx, "4SF22CS001")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := store.Students.GetByUSN(ctx, "4SF22CS001")
	require.NoError(t, err)
	assert.Equal(t, "A", second.Name)
}
