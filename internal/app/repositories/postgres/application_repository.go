package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakshithv/placemate/internal/app/models"
)

// ApplicationRepository reads drive registrations.
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository.
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// ListByStudent retrieves a student's applications joined with their drives,
// newest application first.
func (r *ApplicationRepository) ListByStudent(ctx context.Context, usn string) ([]*models.Application, error) {
	query := `
		SELECT
			a.id, a.student_usn, a.drive_id, a.status, a.applied_date,
			d.id, d.company, d.title, d.position, d.drive_date, d.registration_deadline,
			d.location, d.eligibility, d.roles, d.package, d.status,
			d.students_registered, d.students_selected, d.created_at
		FROM drive_applications a
		JOIN placement_drives d ON d.id = a.drive_id
		WHERE a.student_usn = $1
		ORDER BY a.applied_date DESC
	`

	rows, err := r.db.Query(ctx, query, usn)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	applications := []*models.Application{}
	for rows.Next() {
		var a models.Application
		var d models.PlacementDrive
		err := rows.Scan(
			&a.ID, &a.StudentUSN, &a.DriveID, &a.Status, &a.AppliedDate,
			&d.ID, &d.Company, &d.Title, &d.Position, &d.DriveDate, &d.RegistrationDeadline,
			&d.Location, &d.Eligibility, &d.Roles, &d.Package, &d.Status,
			&d.StudentsRegistered, &d.StudentsSelected, &d.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		a.Drive = &d
		applications = append(applications, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

// ExistsForDrive checks whether the student already registered for the drive.
func (r *ApplicationRepository) ExistsForDrive(ctx context.Context, driveID int64, usn string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM drive_applications WHERE drive_id = $1 AND student_usn = $2)`,
		driveID, usn,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application: %w", err)
	}
	return exists, nil
}
