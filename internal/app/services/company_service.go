package services

import (
	"context"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/helpers"
)

// CompanyService handles company CRUD for the placement office.
type CompanyService struct {
	companies repositories.CompanyRepository
}

// NewCompanyService creates a new company service instance.
func NewCompanyService(companies repositories.CompanyRepository) *CompanyService {
	return &CompanyService{companies: companies}
}

// List returns all companies.
func (s *CompanyService) List(ctx context.Context) ([]*models.Company, error) {
	return s.companies.List(ctx)
}

// Create adds a company. Counters start at zero unless the payload sets them.
func (s *CompanyService) Create(ctx context.Context, req *dto.CompanyRequest) (*models.Company, error) {
	company, err := companyFromRequest(req)
	if err != nil {
		return nil, err
	}
	if company.Status == "" {
		company.Status = models.CompanyStatusActive
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Update applies the allow-listed fields onto an existing company. Fields
// absent from the payload keep their stored values.
func (s *CompanyService) Update(ctx context.Context, id int64, req *dto.CompanyRequest) (*models.Company, error) {
	existing, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := companyFromRequest(req)
	if err != nil {
		return nil, err
	}
	updated.ID = id
	if req.Offers == nil {
		updated.Offers = existing.Offers
	}
	if req.Visits == nil {
		updated.Visits = existing.Visits
	}
	if req.LastVisit == nil {
		updated.LastVisit = existing.LastVisit
	}
	if updated.Status == "" {
		updated.Status = existing.Status
	}

	if err := s.companies.Update(ctx, updated); err != nil {
		return nil, err
	}
	return s.companies.GetByID(ctx, id)
}

// Delete removes a company.
func (s *CompanyService) Delete(ctx context.Context, id int64) error {
	return s.companies.Delete(ctx, id)
}

func companyFromRequest(req *dto.CompanyRequest) (*models.Company, error) {
	if req.Status != "" && req.Status != models.CompanyStatusActive && req.Status != models.CompanyStatusInactive {
		return nil, apperrors.ErrValidationFailed
	}

	lastVisit, err := helpers.ParseDate(req.LastVisit)
	if err != nil {
		return nil, apperrors.ErrValidationFailed
	}

	company := &models.Company{
		Name:      req.Name,
		Industry:  req.Industry,
		Location:  req.Location,
		Contact:   req.Contact,
		Email:     req.Email,
		Status:    req.Status,
		LastVisit: lastVisit,
	}
	if req.Offers != nil {
		company.Offers = *req.Offers
	}
	if req.Visits != nil {
		company.Visits = *req.Visits
	}
	return company, nil
}
