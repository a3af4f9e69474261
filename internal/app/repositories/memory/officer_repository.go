package memory

import (
	"context"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// OfficerRepository is the map-backed officer store.
type OfficerRepository struct {
	d *data
}

// GetByUsername retrieves an officer by username.
func (r *OfficerRepository) GetByUsername(ctx context.Context, username string) (*models.PlacementOfficer, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	o, ok := r.d.officers[username]
	if !ok {
		return nil, apperrors.ErrOfficerNotFound
	}
	c := *o
	return &c, nil
}

// ExistsByUsername checks whether an officer exists for the username.
func (r *OfficerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	_, ok := r.d.officers[username]
	return ok, nil
}

// Create stores a new officer.
func (r *OfficerRepository) Create(ctx context.Context, officer *models.PlacementOfficer) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if _, ok := r.d.officers[officer.Username]; ok {
		return apperrors.ErrUsernameExists
	}

	r.d.nextOfficerID++
	officer.ID = r.d.nextOfficerID
	officer.CreatedAt = time.Now()

	c := *officer
	r.d.officers[officer.Username] = &c
	return nil
}
