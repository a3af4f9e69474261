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

// DriveController handles placement drive endpoints.
type DriveController struct {
	driveService *services.DriveService
	logger       zerolog.Logger
}

// NewDriveController creates a new DriveController.
func NewDriveController(driveService *services.DriveService, logger zerolog.Logger) *DriveController {
	return &DriveController{
		driveService: driveService,
		logger:       logger,
	}
}

// List returns all drives
// @Summary List placement drives
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Drives, newest first"
// @Router /placements/drives [get]
func (c *DriveController) List(ctx *gin.Context) {
	drives, err := c.driveService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(drives, ""))
}

// Create adds a drive
// @Summary Create a placement drive
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.DriveRequest true "Drive fields"
// @Success 201 {object} dto.APIResponse "Created drive"
// @Failure 400 {object} dto.ErrorResponse "Invalid payload"
// @Router /placements/drives [post]
func (c *DriveController) Create(ctx *gin.Context) {
	var req dto.DriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	drive, err := c.driveService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("company", drive.Company).Int64("driveId", drive.ID).Msg("Drive created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(drive, "Drive created"))
}

// Update modifies a drive
// @Summary Update a placement drive
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Param request body dto.DriveRequest true "Drive fields"
// @Success 200 {object} dto.APIResponse "Updated drive"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /placements/drives/{id} [put]
func (c *DriveController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	var req dto.DriveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	drive, err := c.driveService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(drive, "Drive updated"))
}

// Delete removes a drive
// @Summary Delete a placement drive
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Drive not found"
// @Router /placements/drives/{id} [delete]
func (c *DriveController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	if err := c.driveService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("driveId", id).Msg("Drive deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Drive deleted"))
}

// Register signs the caller up for a drive
// @Summary Register for a drive
// @Description Records the student's application and increments the drive's registration counter.
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Drive ID"
// @Success 200 {object} dto.APIResponse "Registered"
// @Failure 400 {object} dto.ErrorResponse "Registration closed"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /placements/drives/{id}/register [post]
func (c *DriveController) Register(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	usn := ctx.GetString(middleware.ContextUsername)
	if err := c.driveService.Register(ctx, id, usn); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("usn", usn).Int64("driveId", id).Msg("Student registered for drive")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Registered for drive"))
}
