package models

import "time"

// StudentDocument defines an uploaded document owned by one student.
// Status transitions only through manual review by the placement office,
// except for "deleting" which is set by the two-phase delete.
type StudentDocument struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	StudentUSN   string `json:"studentUsn" db:"student_usn" example:"4SF22CS001"`
	DocumentName string `json:"documentName" db:"document_name" example:"Resume 2026"`
	DocumentType string `json:"documentType" db:"document_type" example:"resume"`
	FilePath     string `json:"filePath" db:"file_path"` // stored filename only, never a caller-supplied path
	Status       string `json:"status" db:"status" example:"pending"`

	UploadDate time.Time `json:"uploadDate" db:"upload_date"`
}
