package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/services"
	"github.com/rakshithv/placemate/internal/middleware"
	"github.com/rakshithv/placemate/internal/pkg/apperrors"
)

// DocumentController handles student document endpoints.
type DocumentController struct {
	documentService *services.DocumentService
	logger          zerolog.Logger
}

// NewDocumentController creates a new DocumentController.
func NewDocumentController(documentService *services.DocumentService, logger zerolog.Logger) *DocumentController {
	return &DocumentController{
		documentService: documentService,
		logger:          logger,
	}
}

// Upload stores a new document for the caller
// @Summary Upload a document
// @Description Stores a PDF, Word, video or image file up to the configured size limit. The file arrives as the multipart part named "document".
// @Tags documents
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param documentName formData string true "Display name"
// @Param documentType formData string true "resume, marksheet, certificate or other"
// @Param document formData file true "The file"
// @Success 201 {object} dto.APIResponse "Stored document"
// @Failure 400 {object} dto.ErrorResponse "Missing file, unsupported type or too large"
// @Router /students/documents/upload [post]
func (c *DocumentController) Upload(ctx *gin.Context) {
	var req dto.DocumentUploadRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	fh, err := ctx.FormFile("document")
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrBadRequest)
		return
	}

	usn := ctx.GetString(middleware.ContextUsername)
	doc, err := c.documentService.Upload(ctx, usn, &req, fh)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("usn", usn).Int64("documentId", doc.ID).Msg("Document uploaded")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(doc, "Document uploaded"))
}

// List returns the caller's documents
// @Summary List documents
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Documents, newest first"
// @Router /students/documents [get]
func (c *DocumentController) List(ctx *gin.Context) {
	usn := ctx.GetString(middleware.ContextUsername)

	docs, err := c.documentService.List(ctx, usn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(docs, ""))
}

// Delete removes one of the caller's documents
// @Summary Delete a document
// @Description Removes the document row and its stored file.
// @Tags documents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 403 {object} dto.ErrorResponse "Document owned by another student"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /students/documents/{id} [delete]
func (c *DocumentController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	usn := ctx.GetString(middleware.ContextUsername)
	if err := c.documentService.Delete(ctx, usn, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("usn", usn).Int64("documentId", id).Msg("Document deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Document deleted"))
}

// View streams one of the caller's stored files
// @Summary View a document file
// @Description Serves the stored file when a document row of the caller references it.
// @Tags documents
// @Produce octet-stream
// @Security BearerAuth
// @Param filename path string true "Stored filename"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} dto.ErrorResponse "No such file for this student"
// @Router /students/documents/view/{filename} [get]
func (c *DocumentController) View(ctx *gin.Context) {
	usn := ctx.GetString(middleware.ContextUsername)

	path, err := c.documentService.ResolveFile(ctx, usn, ctx.Param("filename"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.File(path)
}

// UpdateStatus sets a document's review status
// @Summary Update document status
// @Description Marks a document verified, rejected or pending. Placement office only.
// @Tags documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Document ID"
// @Param request body dto.DocumentStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse "Updated"
// @Failure 404 {object} dto.ErrorResponse "Document not found"
// @Router /placements/documents/{id}/status [put]
func (c *DocumentController) UpdateStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	var req dto.DocumentStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	if err := c.documentService.UpdateStatus(ctx, id, req.Status); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Status updated"))
}
