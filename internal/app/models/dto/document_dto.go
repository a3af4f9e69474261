package dto

// DocumentUploadRequest carries the metadata fields of a document upload.
// The file itself arrives as the multipart part named "document".
type DocumentUploadRequest struct {
	DocumentName string `form:"documentName" binding:"required" example:"Resume 2026"`
	DocumentType string `form:"documentType" binding:"required" example:"resume" enums:"resume,marksheet,certificate,other"`
}

// DocumentStatusRequest updates a document's verification status (manual review).
type DocumentStatusRequest struct {
	Status string `json:"status" binding:"required" example:"verified" enums:"verified,rejected,pending"`
}
