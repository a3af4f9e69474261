package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// CompanyRepository is the map-backed company store.
type CompanyRepository struct {
	d *data
}

func cloneCompany(c *models.Company) *models.Company {
	cc := *c
	return &cc
}

// GetByID retrieves a company by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	c, ok := r.d.companies[id]
	if !ok {
		return nil, apperrors.ErrCompanyNotFound
	}
	return cloneCompany(c), nil
}

// GetByName retrieves a company by exact name.
func (r *CompanyRepository) GetByName(ctx context.Context, name string) (*models.Company, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	for _, c := range r.d.companies {
		if c.Name == name {
			return cloneCompany(c), nil
		}
	}
	return nil, apperrors.ErrCompanyNotFound
}

// List returns all companies ordered by name.
func (r *CompanyRepository) List(ctx context.Context) ([]*models.Company, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	companies := make([]*models.Company, 0, len(r.d.companies))
	for _, c := range r.d.companies {
		companies = append(companies, cloneCompany(c))
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].Name < companies[j].Name })
	return companies, nil
}

// Create stores a new company.
func (r *CompanyRepository) Create(ctx context.Context, company *models.Company) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	for _, c := range r.d.companies {
		if c.Name == company.Name {
			return apperrors.ErrCompanyAlreadyExists
		}
	}

	r.d.nextCompanyID++
	company.ID = r.d.nextCompanyID
	company.CreatedAt = time.Now()

	r.d.companies[company.ID] = cloneCompany(company)
	return nil
}

// Update replaces a stored company.
func (r *CompanyRepository) Update(ctx context.Context, company *models.Company) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	existing, ok := r.d.companies[company.ID]
	if !ok {
		return apperrors.ErrCompanyNotFound
	}
	for id, c := range r.d.companies {
		if id != company.ID && c.Name == company.Name {
			return apperrors.ErrCompanyAlreadyExists
		}
	}

	updated := cloneCompany(company)
	updated.CreatedAt = existing.CreatedAt
	r.d.companies[company.ID] = updated
	return nil
}

// Delete removes a company.
func (r *CompanyRepository) Delete(ctx context.Context, id int64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if _, ok := r.d.companies[id]; !ok {
		return apperrors.ErrCompanyNotFound
	}
	delete(r.d.companies, id)
	return nil
}
