package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakshithv/placemate/internal/app/models"
	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/repositories/memory"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
	"github.com/rakshithv/placemate/internal/pkg/filestorage"
)

const testMaxUpload = 1 << 20

func newDocumentService(t *testing.T) (*DocumentService, *filestorage.LocalStorage) {
	t.Helper()
	store := memory.NewStore()
	storage, err := filestorage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return NewDocumentService(store.Documents, storage, testMaxUpload), storage
}

// uploadHeader builds a real multipart.FileHeader by round-tripping a form
// through the HTTP multipart parser.
func uploadHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="document"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", contentType)
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(testMaxUpload))

	files := req.MultipartForm.File["document"]
	require.Len(t, files, 1)
	return files[0]
}

func TestDocumentUploadStoresPendingRow(t *testing.T) {
	svc, storage := newDocumentService(t)
	ctx := context.Background()

	fh := uploadHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	doc, err := svc.Upload(ctx, "4SF22CS001", &dto.DocumentUploadRequest{
		DocumentName: "Resume 2026",
		DocumentType: "resume",
	}, fh)
	require.NoError(t, err)
	assert.NotZero(t, doc.ID)
	assert.Equal(t, models.DocumentStatusPending, doc.Status)
	assert.True(t, storage.Exists(doc.FilePath))

	listed, err := svc.List(ctx, "4SF22CS001")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Resume 2026", listed[0].DocumentName)
}

func TestDocumentUploadRejectsBadInput(t *testing.T) {
	svc, _ := newDocumentService(t)
	ctx := context.Background()
	meta := &dto.DocumentUploadRequest{DocumentName: "Resume", DocumentType: "resume"}

	_, err := svc.Upload(ctx, "4SF22CS001", meta, nil)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)

	exe := uploadHeader(t, "malware.exe", "application/octet-stream", []byte{0x4d, 0x5a})
	_, err = svc.Upload(ctx, "4SF22CS001", meta, exe)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedFileType)

	big := uploadHeader(t, "resume.pdf", "application/pdf", []byte("x"))
	big.Size = testMaxUpload + 1
	_, err = svc.Upload(ctx, "4SF22CS001", meta, big)
	assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
}

func TestDocumentDeleteRemovesRowAndFile(t *testing.T) {
	svc, storage := newDocumentService(t)
	ctx := context.Background()

	fh := uploadHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	doc, err := svc.Upload(ctx, "4SF22CS001", &dto.DocumentUploadRequest{
		DocumentName: "Resume 2026",
		DocumentType: "resume",
	}, fh)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "4SF22CS001", doc.ID))

	assert.False(t, storage.Exists(doc.FilePath))
	listed, err := svc.List(ctx, "4SF22CS001")
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = svc.ResolveFile(ctx, "4SF22CS001", doc.FilePath)
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
}

func TestDocumentDeleteRequiresOwnership(t *testing.T) {
	svc, storage := newDocumentService(t)
	ctx := context.Background()

	fh := uploadHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	doc, err := svc.Upload(ctx, "4SF22CS001", &dto.DocumentUploadRequest{
		DocumentName: "Resume 2026",
		DocumentType: "resume",
	}, fh)
	require.NoError(t, err)

	err = svc.Delete(ctx, "4SF22IS042", doc.ID)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.True(t, storage.Exists(doc.FilePath))
}

func TestResolveFileIsOwnerScoped(t *testing.T) {
	svc, _ := newDocumentService(t)
	ctx := context.Background()

	fh := uploadHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	doc, err := svc.Upload(ctx, "4SF22CS001", &dto.DocumentUploadRequest{
		DocumentName: "Resume 2026",
		DocumentType: "resume",
	}, fh)
	require.NoError(t, err)

	path, err := svc.ResolveFile(ctx, "4SF22CS001", doc.FilePath)
	require.NoError(t, err)
	assert.NotEmpty(t, path)

	// Another student cannot resolve the same stored file.
	_, err = svc.ResolveFile(ctx, "4SF22IS042", doc.FilePath)
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
}

func TestDocumentStatusUpdateValidatesStatus(t *testing.T) {
	svc, _ := newDocumentService(t)
	ctx := context.Background()

	fh := uploadHeader(t, "marks.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	doc, err := svc.Upload(ctx, "4SF22CS001", &dto.DocumentUploadRequest{
		DocumentName: "Marks card",
		DocumentType: "marksheet",
	}, fh)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, doc.ID, models.DocumentStatusVerified))
	listed, err := svc.List(ctx, "4SF22CS001")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, models.DocumentStatusVerified, listed[0].Status)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, doc.ID, "archived"), apperrors.ErrValidationFailed)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, doc.ID, models.DocumentStatusDeleting), apperrors.ErrValidationFailed)
}
