package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

func newReportService(t *testing.T) (*ReportService, *repositories.Store) {
	t.Helper()
	store := memory.NewStore()
	return NewReportService(store.Students, NewAnalyticsService(store.Analytics)), store
}

func seedReportStudents(t *testing.T, store *repositories.Store) {
	t.Helper()
	ctx := context.Background()
	students := []*models.Student{
		{USN: "4SF22CS001", Name: "A", Branch: "CSE", BeCGPA: 9.2, YearOfPassing: 2026, Placed: true, PackageOffered: floatPtr(12.5)},
		{USN: "4SF22CS002", Name: "B", Branch: "CSE", BeCGPA: 7.5, YearOfPassing: 2026},
		{USN: "4SF22IS042", Name: "C", Branch: "ISE", BeCGPA: 8.1, YearOfPassing: 2025, Placed: true, PackageOffered: floatPtr(18.0)},
	}
	for _, s := range students {
		require.NoError(t, store.Students.Create(ctx, s))
	}
}

func TestGenerateReportAllTypes(t *testing.T) {
	svc, store := newReportService(t)
	seedReportStudents(t, store)

	for _, reportType := range []string{
		dto.ReportTypeAnnual,
		dto.ReportTypeDepartment,
		dto.ReportTypeDetailed,
		dto.ReportTypeAnalytics,
	} {
		out, filename, err := svc.GenerateReport(context.Background(), &dto.ReportRequest{ReportType: reportType})
		require.NoError(t, err, reportType)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), reportType)
		assert.Equal(t, reportType+"-placement-report.pdf", filename)
	}
}

func TestGenerateReportUnknownType(t *testing.T) {
	svc, _ := newReportService(t)

	_, _, err := svc.GenerateReport(context.Background(), &dto.ReportRequest{ReportType: "quarterly"})
	assert.ErrorIs(t, err, apperrors.ErrUnknownReportType)
}

func TestGenerateChartTypes(t *testing.T) {
	svc, store := newReportService(t)
	seedReportStudents(t, store)

	for _, chartType := range []string{dto.ChartTypeDepartmentRate, dto.ChartTypeSalaryDistribution} {
		out, filename, err := svc.GenerateChart(context.Background(), chartType)
		require.NoError(t, err, chartType)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), chartType)
		assert.Equal(t, chartType+".pdf", filename)
	}

	_, _, err := svc.GenerateChart(context.Background(), "pie")
	assert.ErrorIs(t, err, apperrors.ErrUnknownChartType)
}

func TestFilteredStudents(t *testing.T) {
	svc, store := newReportService(t)
	seedReportStudents(t, store)
	ctx := context.Background()

	byBranch, err := svc.filteredStudents(ctx, dto.ReportFilters{Department: "CSE"})
	require.NoError(t, err)
	assert.Len(t, byBranch, 2)

	byCGPA, err := svc.filteredStudents(ctx, dto.ReportFilters{CGPARange: "9-10"})
	require.NoError(t, err)
	require.Len(t, byCGPA, 1)
	assert.Equal(t, "4SF22CS001", byCGPA[0].USN)

	byYear, err := svc.filteredStudents(ctx, dto.ReportFilters{Year: "2025"})
	require.NoError(t, err)
	require.Len(t, byYear, 1)
	assert.Equal(t, "4SF22IS042", byYear[0].USN)

	all, err := svc.filteredStudents(ctx, dto.ReportFilters{Department: "all", CGPARange: "all", Year: "all"})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.filteredStudents(ctx, dto.ReportFilters{Year: "not-a-year"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCGPABoundsIncludeTen(t *testing.T) {
	min, max, bounded := cgpaBounds("9-10")
	require.True(t, bounded)
	assert.InDelta(t, 9.0, min, 1e-9)
	// A perfect 10.0 belongs to the top band.
	assert.Greater(t, max, 10.0)

	_, _, bounded = cgpaBounds("all")
	assert.False(t, bounded)
}
