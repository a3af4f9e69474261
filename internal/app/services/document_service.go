package services

import (
	"context"
	"mime/multipart"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/filestorage"
	"github.com/rakshithv/placemate/internal/pkg/logger"
)

// DocumentService handles student document uploads, listing, review status
// and the two-phase delete.
type DocumentService struct {
	documents      repositories.DocumentRepository
	storage        filestorage.Storage
	maxUploadBytes int64
}

// NewDocumentService creates a new document service instance.
func NewDocumentService(documents repositories.DocumentRepository, storage filestorage.Storage, maxUploadBytes int64) *DocumentService {
	return &DocumentService{
		documents:      documents,
		storage:        storage,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload validates and stores one document for the owning student.
func (s *DocumentService) Upload(ctx context.Context, usn string, req *dto.DocumentUploadRequest, fh *multipart.FileHeader) (*models.StudentDocument, error) {
	if fh == nil {
		return nil, apperrors.ErrBadRequest
	}
	if fh.Size > s.maxUploadBytes {
		return nil, apperrors.ErrFileTooLarge
	}
	contentType := fh.Header.Get("Content-Type")
	if !filestorage.AllowedMIMETypes[contentType] {
		return nil, apperrors.ErrUnsupportedFileType
	}

	filename, err := s.storage.SaveFile(fh)
	if err != nil {
		return nil, err
	}

	doc := &models.StudentDocument{
		StudentUSN:   usn,
		DocumentName: req.DocumentName,
		DocumentType: req.DocumentType,
		FilePath:     filename,
		Status:       models.DocumentStatusPending,
	}
	if err := s.documents.Create(ctx, doc); err != nil {
		if delErr := s.storage.DeleteFile(filename); delErr != nil {
			logger.Error().Err(delErr).Str("filename", filename).Msg("Failed to clean up orphaned upload")
		}
		return nil, err
	}
	return doc, nil
}

// List returns the student's documents.
func (s *DocumentService) List(ctx context.Context, usn string) ([]*models.StudentDocument, error) {
	return s.documents.ListByStudent(ctx, usn)
}

// Delete removes a document owned by usn in two phases: the row is first
// marked deleting, then the file is unlinked, then the row goes. A crash
// between the phases leaves a row that is hidden from listings and can be
// reaped later, never a dangling file reference served to clients.
func (s *DocumentService) Delete(ctx context.Context, usn string, id int64) error {
	doc, err := s.documents.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.StudentUSN != usn {
		return apperrors.ErrPermissionDenied
	}

	if err := s.documents.UpdateStatus(ctx, id, models.DocumentStatusDeleting); err != nil {
		return err
	}
	if err := s.storage.DeleteFile(doc.FilePath); err != nil {
		return err
	}
	return s.documents.Delete(ctx, id)
}

// UpdateStatus sets the review status of a document (placement office only).
func (s *DocumentService) UpdateStatus(ctx context.Context, id int64, status string) error {
	switch status {
	case models.DocumentStatusPending, models.DocumentStatusVerified, models.DocumentStatusRejected:
	default:
		return apperrors.ErrValidationFailed
	}
	return s.documents.UpdateStatus(ctx, id, status)
}

// ResolveFile returns the on-disk path of a stored file, but only when the
// requesting student owns a document row referencing it.
func (s *DocumentService) ResolveFile(ctx context.Context, usn, filename string) (string, error) {
	docs, err := s.documents.ListByStudent(ctx, usn)
	if err != nil {
		return "", err
	}

	for _, doc := range docs {
		if doc.FilePath == filename {
			if !s.storage.Exists(filename) {
				return "", apperrors.ErrDocumentNotFound
			}
			return s.storage.FullPath(filename), nil
		}
	}
	return "", apperrors.ErrDocumentNotFound
}
