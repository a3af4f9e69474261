package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
)

func floatPtr(v float64) *float64 { return &v }

func TestDepartmentChartRatesRoundedToOneDecimal(t *testing.T) {
	store := memory.NewStore()
	svc := NewAnalyticsService(store.Analytics)
	ctx := context.Background()

	// CSE: 2 of 3 placed -> 66.7; ISE: 0 of 1 placed -> 0.
	students := []*models.Student{
		{USN: "4SF22CS001", Name: "A", Branch: "CSE", Placed: true, PackageOffered: floatPtr(12.5)},
		{USN: "4SF22CS002", Name: "B", Branch: "CSE", Placed: true, PackageOffered: floatPtr(4.0)},
		{USN: "4SF22CS003", Name: "C", Branch: "CSE"},
		{USN: "4SF22IS042", Name: "D", Branch: "ISE"},
	}
	for _, s := range students {
		require.NoError(t, store.Students.Create(ctx, s))
	}

	rows, err := svc.DepartmentChart(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byName := map[string]float64{}
	for _, row := range rows {
		byName[row.Name] = row.PlacementRate
	}
	assert.InDelta(t, 66.7, byName["CSE"], 1e-9)
	assert.InDelta(t, 0.0, byName["ISE"], 1e-9)

	// Branches with no students never show up, so no rate is ever 0/0.
	assert.NotContains(t, byName, "ECE")
}

func TestSalaryChartKeepsEmptyBuckets(t *testing.T) {
	store := memory.NewStore()
	svc := NewAnalyticsService(store.Analytics)
	ctx := context.Background()

	students := []*models.Student{
		{USN: "4SF22CS001", Name: "A", Branch: "CSE", Placed: true, PackageOffered: floatPtr(4.5)},
		{USN: "4SF22CS002", Name: "B", Branch: "CSE", Placed: true, PackageOffered: floatPtr(12.5)},
		{USN: "4SF22IS042", Name: "C", Branch: "ISE", Placed: true, PackageOffered: floatPtr(25.0)},
		{USN: "4SF22EC105", Name: "D", Branch: "ECE"}, // unplaced, never counted
	}
	for _, s := range students {
		require.NoError(t, store.Students.Create(ctx, s))
	}

	rows, err := svc.SalaryChart(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, "Below 5 LPA", rows[0].Name)
	assert.Equal(t, 1, rows[0].Value)
	assert.Equal(t, "5-10 LPA", rows[1].Name)
	assert.Equal(t, 0, rows[1].Value)
	assert.Equal(t, "10-15 LPA", rows[2].Name)
	assert.Equal(t, 1, rows[2].Value)
	assert.Equal(t, "15-20 LPA", rows[3].Name)
	assert.Equal(t, 0, rows[3].Value)
	assert.Equal(t, "Above 20 LPA", rows[4].Name)
	assert.Equal(t, 1, rows[4].Value)
}

func TestSalaryChartBucketBoundaries(t *testing.T) {
	store := memory.NewStore()
	svc := NewAnalyticsService(store.Analytics)
	ctx := context.Background()

	// Exactly on a boundary lands in the higher bucket.
	students := []*models.Student{
		{USN: "4SF22CS001", Name: "A", Branch: "CSE", Placed: true, PackageOffered: floatPtr(5.0)},
		{USN: "4SF22CS002", Name: "B", Branch: "CSE", Placed: true, PackageOffered: floatPtr(20.0)},
	}
	for _, s := range students {
		require.NoError(t, store.Students.Create(ctx, s))
	}

	rows, err := svc.SalaryChart(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows[1].Value) // 5-10
	assert.Equal(t, 1, rows[4].Value) // Above 20
	assert.Equal(t, 0, rows[0].Value)
	assert.Equal(t, 0, rows[3].Value)
}
