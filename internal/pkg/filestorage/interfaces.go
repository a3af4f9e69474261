package filestorage

import "mime/multipart"

// Storage abstracts where uploaded files live. The only implementation today
// is local disk; the interface keeps services testable with a temp directory.
type Storage interface {
	// SaveFile stores an uploaded file under a randomized name and returns
	// the stored filename.
	SaveFile(fileHeader *multipart.FileHeader) (string, error)
	// DeleteFile removes a stored file. Deleting a missing file is not an error.
	DeleteFile(filename string) error
	// Exists reports whether a stored file is present.
	Exists(filename string) bool
	// FullPath returns the filesystem path for a stored filename.
	FullPath(filename string) string
}

// AllowedMIMETypes lists the upload types accepted for student documents:
// PDF, Word, the common video containers, and images.
var AllowedMIMETypes = map[string]bool{
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"video/mp4":       true,
	"video/avi":       true,
	"video/x-msvideo": true,
	"video/quicktime": true,
	"image/jpeg":      true,
	"image/png":       true,
}
