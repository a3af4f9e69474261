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

const documentColumns = `id, student_usn, document_name, document_type, file_path, status, upload_date`

// DocumentRepository handles database operations for student documents.
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository.
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func scanDocument(row pgx.Row) (*models.StudentDocument, error) {
	var d models.StudentDocument
	err := row.Scan(
		&d.ID, &d.StudentUSN, &d.DocumentName, &d.DocumentType,
		&d.FilePath, &d.Status, &d.UploadDate,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByID retrieves a document by ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.StudentDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM student_documents WHERE id = $1`

	doc, err := scanDocument(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("error retrieving document: %w", err)
	}
	return doc, nil
}

// ListByStudent retrieves a student's documents, newest first. Rows in the
// transient "deleting" state are excluded.
func (r *DocumentRepository) ListByStudent(ctx context.Context, usn string) ([]*models.StudentDocument, error) {
	query := `
		SELECT ` + documentColumns + `
		FROM student_documents
		WHERE student_usn = $1 AND status <> 'deleting'
		ORDER BY upload_date DESC
	`

	rows, err := r.db.Query(ctx, query, usn)
	if err != nil {
		return nil, fmt.Errorf("error listing documents: %w", err)
	}
	defer rows.Close()

	docs := []*models.StudentDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

// Create inserts a new document row.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.StudentDocument) error {
	query := `
		INSERT INTO student_documents (student_usn, document_name, document_type, file_path, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, upload_date
	`

	err := r.db.QueryRow(ctx, query,
		doc.StudentUSN, doc.DocumentName, doc.DocumentType, doc.FilePath, doc.Status,
	).Scan(&doc.ID, &doc.UploadDate)
	if err != nil {
		return fmt.Errorf("error creating document: %w", err)
	}
	return nil
}

// UpdateStatus sets the review status of a document.
func (r *DocumentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	tag, err := r.db.Exec(ctx, `UPDATE student_documents SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("error updating document status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

// Delete removes a document row.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM student_documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}
