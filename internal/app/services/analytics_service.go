package services

import (
	"context"

	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/helpers"
)

// salaryBuckets defines the LPA ranges of the salary-distribution chart,
// in render order.
var salaryBuckets = []struct {
	Name string
	Min  float64
	Max  float64 // exclusive, 0 means unbounded
}{
	{"Below 5 LPA", 0, 5},
	{"5-10 LPA", 5, 10},
	{"10-15 LPA", 10, 15},
	{"15-20 LPA", 15, 20},
	{"Above 20 LPA", 20, 0},
}

// AnalyticsService turns stored rows into the chart payloads.
type AnalyticsService struct {
	analytics repositories.AnalyticsRepository
}

// NewAnalyticsService creates a new analytics service instance.
func NewAnalyticsService(analytics repositories.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{analytics: analytics}
}

// DepartmentChart returns one row per branch that has students, with the
// placement rate as a percentage rounded to one decimal.
func (s *AnalyticsService) DepartmentChart(ctx context.Context) ([]*dto.DepartmentChartRow, error) {
	stats, err := s.analytics.DepartmentStats(ctx)
	if err != nil {
		return nil, err
	}

	rows := []*dto.DepartmentChartRow{}
	for _, stat := range stats {
		rows = append(rows, &dto.DepartmentChartRow{
			Name:          stat.Branch,
			Total:         stat.Total,
			Placed:        stat.Placed,
			PlacementRate: helpers.Round1(100 * float64(stat.Placed) / float64(stat.Total)),
		})
	}
	return rows, nil
}

// SalaryChart buckets the packages of placed students into LPA ranges.
// Empty buckets are kept so the chart axis stays stable.
func (s *AnalyticsService) SalaryChart(ctx context.Context) ([]*dto.SalaryBucketRow, error) {
	packages, err := s.analytics.PackagesOfPlaced(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]*dto.SalaryBucketRow, len(salaryBuckets))
	for i, b := range salaryBuckets {
		rows[i] = &dto.SalaryBucketRow{Name: b.Name}
	}
	for _, p := range packages {
		for i, b := range salaryBuckets {
			if p >= b.Min && (b.Max == 0 || p < b.Max) {
				rows[i].Value++
				break
			}
		}
	}
	return rows, nil
}
