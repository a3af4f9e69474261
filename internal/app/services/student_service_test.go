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
	"github.com/rakshithv/placemate/internal/pkg/filestorage"
)

func newStudentService(t *testing.T) (*StudentService, *memoryFixtures) {
	t.Helper()
	store := memory.NewStore()
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	svc := NewStudentService(store.Students, store.Interviews, store.Applications, storage)
	return svc, &memoryFixtures{store: store, storage: storage}
}

type memoryFixtures struct {
	store   *repositories.Store
	storage *filestorage.LocalStorage
}

func TestUpsertProfileCreatesThenUpdatesInPlace(t *testing.T) {
	svc, fx := newStudentService(t)
	ctx := context.Background()

	req := &dto.StudentProfileRequest{
		USN:           "4SF22CS001",
		Name:          "Rakshith V",
		Email:         "rakshith.cs22@sahyadri.edu.in",
		YearOfPassing: 2026,
		BeCGPA:        8.4,
	}
	created, err := svc.UpsertProfile(ctx, req, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "CSE", created.Branch)
	assert.Equal(t, 2022, created.YearOfAdmission)
	assert.InDelta(t, 8.4, created.BeCGPA, 1e-9)

	// Second submit for the same USN edits the existing row.
	req.BeCGPA = 8.9
	req.Placed = true
	pkg := 12.5
	req.PackageOffered = &pkg
	updated, err := svc.UpsertProfile(ctx, req, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.InDelta(t, 8.9, updated.BeCGPA, 1e-9)
	assert.True(t, updated.Placed)
	require.NotNil(t, updated.PackageOffered)
	assert.InDelta(t, 12.5, *updated.PackageOffered, 1e-9)

	all, err := fx.store.Students.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpsertProfileRejectsMalformedUSN(t *testing.T) {
	svc, _ := newStudentService(t)

	_, err := svc.UpsertProfile(context.Background(), &dto.StudentProfileRequest{
		USN:           "4SF22ZZ001",
		Name:          "Nobody",
		YearOfPassing: 2026,
	}, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUSN)
}

func TestUpsertProfilePreservesFilesAcrossUpdates(t *testing.T) {
	svc, fx := newStudentService(t)
	ctx := context.Background()

	req := &dto.StudentProfileRequest{USN: "4SF22CS001", Name: "Rakshith V", YearOfPassing: 2026}
	_, err := svc.UpsertProfile(ctx, req, nil, nil)
	require.NoError(t, err)

	filename := "resume.pdf"
	require.NoError(t, fx.store.Students.UpdateResumeFile(ctx, "4SF22CS001", &filename))

	updated, err := svc.UpsertProfile(ctx, req, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.ResumeFile)
	assert.Equal(t, "resume.pdf", *updated.ResumeFile)
}

func TestListForAnalyticsOrdersByCGPADescending(t *testing.T) {
	svc, fx := newStudentService(t)
	ctx := context.Background()

	for _, s := range []*models.Student{
		{USN: "4SF22CS001", Name: "A", Branch: "CSE", BeCGPA: 7.2},
		{USN: "4SF22IS042", Name: "B", Branch: "ISE", BeCGPA: 9.1},
		{USN: "4SF22EC105", Name: "C", Branch: "ECE", BeCGPA: 8.0},
	} {
		require.NoError(t, fx.store.Students.Create(ctx, s))
	}

	students, err := svc.ListForAnalytics(ctx)
	require.NoError(t, err)
	require.Len(t, students, 3)
	assert.Equal(t, "4SF22IS042", students[0].USN)
	assert.Equal(t, "4SF22EC105", students[1].USN)
	assert.Equal(t, "4SF22CS001", students[2].USN)
}

func TestInterviewsSplitAroundNow(t *testing.T) {
	svc, fx := newStudentService(t)
	ctx := context.Background()

	require.NoError(t, fx.store.Students.Create(ctx, &models.Student{USN: "4SF22CS001", Name: "A", Branch: "CSE"}))
	past := &models.Interview{
		StudentUSN:    "4SF22CS001",
		Company:       "Acme",
		InterviewDate: time.Now().Add(-48 * time.Hour),
		Status:        "Completed",
	}
	upcoming := &models.Interview{
		StudentUSN:    "4SF22CS001",
		Company:       "Initech",
		InterviewDate: time.Now().Add(48 * time.Hour),
		Status:        "Scheduled",
	}
	require.NoError(t, fx.store.Interviews.Create(ctx, past))
	require.NoError(t, fx.store.Interviews.Create(ctx, upcoming))

	resp, err := svc.Interviews(ctx, "4SF22CS001")
	require.NoError(t, err)
	require.Len(t, resp.Upcoming, 1)
	require.Len(t, resp.Past, 1)
	assert.Equal(t, "Initech", resp.Upcoming[0].Company)
	assert.Equal(t, "Acme", resp.Past[0].Company)
}
