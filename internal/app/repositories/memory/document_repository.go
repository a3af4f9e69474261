package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// DocumentRepository is the map-backed document store.
type DocumentRepository struct {
	d *data
}

func cloneDocument(d *models.StudentDocument) *models.StudentDocument {
	c := *d
	return &c
}

// GetByID retrieves a document by ID.
func (r *DocumentRepository) GetByID(ctx context.Context, id int64) (*models.StudentDocument, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	doc, ok := r.d.documents[id]
	if !ok {
		return nil, apperrors.ErrDocumentNotFound
	}
	return cloneDocument(doc), nil
}

// ListByStudent returns a student's documents, newest first, excluding rows
// in the transient "deleting" state.
func (r *DocumentRepository) ListByStudent(ctx context.Context, usn string) ([]*models.StudentDocument, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	docs := []*models.StudentDocument{}
	for _, doc := range r.d.documents {
		if doc.StudentUSN == usn && doc.Status != models.DocumentStatusDeleting {
			docs = append(docs, cloneDocument(doc))
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		if !docs[i].UploadDate.Equal(docs[j].UploadDate) {
			return docs[i].UploadDate.After(docs[j].UploadDate)
		}
		return docs[i].ID > docs[j].ID
	})
	return docs, nil
}

// Create stores a new document.
func (r *DocumentRepository) Create(ctx context.Context, doc *models.StudentDocument) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	r.d.nextDocumentID++
	doc.ID = r.d.nextDocumentID
	doc.UploadDate = time.Now()

	r.d.documents[doc.ID] = cloneDocument(doc)
	return nil
}

// UpdateStatus sets the review status of a document.
func (r *DocumentRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	doc, ok := r.d.documents[id]
	if !ok {
		return apperrors.ErrDocumentNotFound
	}
	doc.Status = status
	return nil
}

// Delete removes a document.
func (r *DocumentRepository) Delete(ctx context.Context, id int64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if _, ok := r.d.documents[id]; !ok {
		return apperrors.ErrDocumentNotFound
	}
	delete(r.d.documents, id)
	return nil
}
