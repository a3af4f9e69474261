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

const driveColumns = `
	id, company, title, position, drive_date, registration_deadline,
	location, eligibility, roles, package, status,
	students_registered, students_selected, created_at`

// DriveRepository handles database operations for placement drives.
type DriveRepository struct {
	db *pgxpool.Pool
}

// NewDriveRepository creates a new drive repository.
func NewDriveRepository(db *pgxpool.Pool) *DriveRepository {
	return &DriveRepository{db: db}
}

func scanDrive(row pgx.Row) (*models.PlacementDrive, error) {
	var d models.PlacementDrive
	err := row.Scan(
		&d.ID, &d.Company, &d.Title, &d.Position, &d.DriveDate, &d.RegistrationDeadline,
		&d.Location, &d.Eligibility, &d.Roles, &d.Package, &d.Status,
		&d.StudentsRegistered, &d.StudentsSelected, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID retrieves a drive by ID.
func (r *DriveRepository) GetByID(ctx context.Context, id int64) (*models.PlacementDrive, error) {
	query := `SELECT ` + driveColumns + ` FROM placement_drives WHERE id = $1`

	drive, err := scanDrive(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDriveNotFound
		}
		return nil, fmt.Errorf("error retrieving drive: %w", err)
	}
	return drive, nil
}

// List retrieves all drives, newest drive date first.
func (r *DriveRepository) List(ctx context.Context) ([]*models.PlacementDrive, error) {
	query := `SELECT ` + driveColumns + ` FROM placement_drives ORDER BY drive_date DESC NULLS LAST, id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing drives: %w", err)
	}
	defer rows.Close()

	drives := []*models.PlacementDrive{}
	for rows.Next() {
		drive, err := scanDrive(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning drive: %w", err)
		}
		drives = append(drives, drive)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return drives, nil
}

// Create inserts a new drive row.
func (r *DriveRepository) Create(ctx context.Context, drive *models.PlacementDrive) error {
	query := `
		INSERT INTO placement_drives (
			company, title, position, drive_date, registration_deadline,
			location, eligibility, roles, package, status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, students_registered, students_selected, created_at
	`

	err := r.db.QueryRow(ctx, query,
		drive.Company, drive.Title, drive.Position, drive.DriveDate, drive.RegistrationDeadline,
		drive.Location, drive.Eligibility, drive.Roles, drive.Package, drive.Status,
	).Scan(&drive.ID, &drive.StudentsRegistered, &drive.StudentsSelected, &drive.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating drive: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of a drive row. Registration counters
// are maintained by RegisterStudent and by explicit selection updates only.
func (r *DriveRepository) Update(ctx context.Context, drive *models.PlacementDrive) error {
	query := `
		UPDATE placement_drives SET
			company = $2, title = $3, position = $4,
			drive_date = $5, registration_deadline = $6,
			location = $7, eligibility = $8, roles = $9, package = $10,
			status = $11, students_selected = $12
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		drive.ID, drive.Company, drive.Title, drive.Position,
		drive.DriveDate, drive.RegistrationDeadline,
		drive.Location, drive.Eligibility, drive.Roles, drive.Package,
		drive.Status, drive.StudentsSelected,
	)
	if err != nil {
		return fmt.Errorf("error updating drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}

// Delete removes a drive row; applications cascade at the schema level.
func (r *DriveRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM placement_drives WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting drive: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}
	return nil
}

// RegisterStudent records an application and bumps the drive's registration
// counter in one transaction, so the counter never drifts from the rows.
func (r *DriveRepository) RegisterStudent(ctx context.Context, driveID int64, usn string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting registration: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO drive_applications (student_usn, drive_id, status) VALUES ($1, $2, 'Applied')`,
		usn, driveID,
	)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadyRegistered
		}
		return fmt.Errorf("error recording application: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE placement_drives SET students_registered = students_registered + 1 WHERE id = $1`,
		driveID,
	)
	if err != nil {
		return fmt.Errorf("error updating registration count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDriveNotFound
	}

	return tx.Commit(ctx)
}
