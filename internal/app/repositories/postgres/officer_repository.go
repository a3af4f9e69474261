package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/dberrors"
)

// OfficerRepository handles database operations for placement officers.
type OfficerRepository struct {
	db *pgxpool.Pool
}

// NewOfficerRepository creates a new officer repository.
func NewOfficerRepository(db *pgxpool.Pool) *OfficerRepository {
	return &OfficerRepository{db: db}
}

// GetByUsername retrieves an officer by username.
func (r *OfficerRepository) GetByUsername(ctx context.Context, username string) (*models.PlacementOfficer, error) {
	query := `
		SELECT id, username, name, designation, password_hash, created_at
		FROM placement_officers
		WHERE username = $1
	`

	var officer models.PlacementOfficer
	err := r.db.QueryRow(ctx, query, username).Scan(
		&officer.ID,
		&officer.Username,
		&officer.Name,
		&officer.Designation,
		&officer.PasswordHash,
		&officer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOfficerNotFound
		}
		return nil, fmt.Errorf("error retrieving officer: %w", err)
	}
	return &officer, nil
}

// ExistsByUsername checks whether an officer row exists for the username.
func (r *OfficerRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM placement_officers WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking officer existence: %w", err)
	}
	return exists, nil
}

// Create inserts a new officer row.
func (r *OfficerRepository) Create(ctx context.Context, officer *models.PlacementOfficer) error {
	query := `
		INSERT INTO placement_officers (username, name, designation, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		officer.Username, officer.Name, officer.Designation, officer.PasswordHash,
	).Scan(&officer.ID, &officer.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUsernameExists
		}
		return fmt.Errorf("error creating officer: %w", err)
	}
	return nil
}
