package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

const interviewColumns = `id, student_usn, company, position, interview_date, type, status, result, feedback, created_at`

// InterviewRepository handles database operations for interviews.
type InterviewRepository struct {
	db *pgxpool.Pool
}

// NewInterviewRepository creates a new interview repository.
func NewInterviewRepository(db *pgxpool.Pool) *InterviewRepository {
	return &InterviewRepository{db: db}
}

func scanInterview(row pgx.Row) (*models.Interview, error) {
	var iv models.Interview
	err := row.Scan(
		&iv.ID, &iv.StudentUSN, &iv.Company, &iv.Position, &iv.InterviewDate,
		&iv.Type, &iv.Status, &iv.Result, &iv.Feedback, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

// GetByID retrieves an interview by ID.
func (r *InterviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	iv, err := scanInterview(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInterviewNotFound
		}
		return nil, fmt.Errorf("error retrieving interview: %w", err)
	}
	return iv, nil
}

// ListByStudent retrieves a student's interviews ordered by date ascending.
func (r *InterviewRepository) ListByStudent(ctx context.Context, usn string) ([]*models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE student_usn = $1 ORDER BY interview_date`

	rows, err := r.db.Query(ctx, query, usn)
	if err != nil {
		return nil, fmt.Errorf("error listing interviews: %w", err)
	}
	defer rows.Close()

	interviews := []*models.Interview{}
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning interview: %w", err)
		}
		interviews = append(interviews, iv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return interviews, nil
}

// Create inserts a new interview row.
func (r *InterviewRepository) Create(ctx context.Context, interview *models.Interview) error {
	query := `
		INSERT INTO interviews (student_usn, company, position, interview_date, type, status, result, feedback)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		interview.StudentUSN, interview.Company, interview.Position, interview.InterviewDate,
		interview.Type, interview.Status, interview.Result, interview.Feedback,
	).Scan(&interview.ID, &interview.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating interview: %w", err)
	}
	return nil
}

// Update replaces the mutable columns of an interview row.
func (r *InterviewRepository) Update(ctx context.Context, interview *models.Interview) error {
	query := `
		UPDATE interviews SET
			company = $2, position = $3, interview_date = $4,
			type = $5, status = $6, result = $7, feedback = $8
		WHERE id = $1
	`

	tag, err := r.db.Exec(ctx, query,
		interview.ID, interview.Company, interview.Position, interview.InterviewDate,
		interview.Type, interview.Status, interview.Result, interview.Feedback,
	)
	if err != nil {
		return fmt.Errorf("error updating interview: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrInterviewNotFound
	}
	return nil
}
