package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

func TestCompanyCreateDefaults(t *testing.T) {
	store := memory.NewStore()
	svc := NewCompanyService(store.Companies)
	ctx := context.Background()

	company, err := svc.Create(ctx, &dto.CompanyRequest{
		Name:     "Acme",
		Industry: "Technology",
	})
	require.NoError(t, err)
	assert.NotZero(t, company.ID)
	assert.Equal(t, models.CompanyStatusActive, company.Status)
	assert.Zero(t, company.Offers)
	assert.Zero(t, company.Visits)
	assert.Nil(t, company.LastVisit)

	listed, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Acme", listed[0].Name)
}

func TestCompanyCreateRejectsBadStatusAndDate(t *testing.T) {
	store := memory.NewStore()
	svc := NewCompanyService(store.Companies)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CompanyRequest{Name: "Acme", Status: "Dormant"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	bad := "10/02/2026"
	_, err = svc.Create(ctx, &dto.CompanyRequest{Name: "Acme", LastVisit: &bad})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCompanyUpdateKeepsOmittedCounters(t *testing.T) {
	store := memory.NewStore()
	svc := NewCompanyService(store.Companies)
	ctx := context.Background()

	offers, visits := 4, 2
	company, err := svc.Create(ctx, &dto.CompanyRequest{
		Name:   "Acme",
		Offers: &offers,
		Visits: &visits,
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, company.ID, &dto.CompanyRequest{
		Name:     "Acme Corp",
		Location: "Bangalore",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", updated.Name)
	assert.Equal(t, 4, updated.Offers)
	assert.Equal(t, 2, updated.Visits)
	assert.Equal(t, models.CompanyStatusActive, updated.Status)
}

func TestCompanyDeleteThenGet(t *testing.T) {
	store := memory.NewStore()
	svc := NewCompanyService(store.Companies)
	ctx := context.Background()

	company, err := svc.Create(ctx, &dto.CompanyRequest{Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, company.ID))
	_, err = store.Companies.GetByID(ctx, company.ID)
	assert.ErrorIs(t, err, apperrors.ErrCompanyNotFound)
}
