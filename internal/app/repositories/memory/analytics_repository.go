package memory

import (
	"context"
	"sort"

	"github.com/rakshithv/placemate/internal/app/repositories"
)

// AnalyticsRepository computes placement aggregates over the map store.
type AnalyticsRepository struct {
	d *data
}

// DepartmentStats groups students per branch with placement counts. Only
// branches that have at least one student appear.
func (r *AnalyticsRepository) DepartmentStats(ctx context.Context) ([]repositories.DepartmentStat, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	byBranch := map[string]*repositories.DepartmentStat{}
	for _, s := range r.d.students {
		stat, ok := byBranch[s.Branch]
		if !ok {
			stat = &repositories.DepartmentStat{Branch: s.Branch}
			byBranch[s.Branch] = stat
		}
		stat.Total++
		if s.Placed {
			stat.Placed++
		}
	}

	stats := make([]repositories.DepartmentStat, 0, len(byBranch))
	for _, stat := range byBranch {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Branch < stats[j].Branch })
	return stats, nil
}

// PackagesOfPlaced returns the offered package of every placed student that
// has one recorded.
func (r *AnalyticsRepository) PackagesOfPlaced(ctx context.Context) ([]float64, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	packages := []float64{}
	for _, s := range r.d.students {
		if s.Placed && s.PackageOffered != nil {
			packages = append(packages, *s.PackageOffered)
		}
	}
	return packages, nil
}
