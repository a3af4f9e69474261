package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakshithv/placemate/internal/app/repositories"
)

// AnalyticsRepository computes placement aggregates in SQL.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new analytics repository.
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// DepartmentStats groups students per branch with placement counts.
// GROUP BY only produces branches that have at least one student.
func (r *AnalyticsRepository) DepartmentStats(ctx context.Context) ([]repositories.DepartmentStat, error) {
	query := `
		SELECT branch,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE placed) AS placed
		FROM students
		GROUP BY branch
		ORDER BY branch
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error computing department stats: %w", err)
	}
	defer rows.Close()

	stats := []repositories.DepartmentStat{}
	for rows.Next() {
		var s repositories.DepartmentStat
		if err := rows.Scan(&s.Branch, &s.Total, &s.Placed); err != nil {
			return nil, fmt.Errorf("error scanning department stat: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

// PackagesOfPlaced returns the offered package of every placed student that
// has one recorded.
func (r *AnalyticsRepository) PackagesOfPlaced(ctx context.Context) ([]float64, error) {
	query := `SELECT package_offered FROM students WHERE placed AND package_offered IS NOT NULL`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing packages: %w", err)
	}
	defer rows.Close()

	packages := []float64{}
	for rows.Next() {
		var p float64
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("error scanning package: %w", err)
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return packages, nil
}
