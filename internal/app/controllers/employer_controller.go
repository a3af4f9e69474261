package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/services"
	"github.com/rakshithv/placemate/internal/middleware"
)

// EmployerController exposes the employer-facing job listing.
type EmployerController struct {
	driveService *services.DriveService
	logger       zerolog.Logger
}

// NewEmployerController creates a new EmployerController.
func NewEmployerController(driveService *services.DriveService, logger zerolog.Logger) *EmployerController {
	return &EmployerController{
		driveService: driveService,
		logger:       logger,
	}
}

// Jobs returns open drives as job postings
// @Summary List open jobs
// @Description Projects drives that are still accepting candidates into job postings.
// @Tags employers
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.JobPosting} "Open postings"
// @Router /employers/jobs [get]
func (c *EmployerController) Jobs(ctx *gin.Context) {
	jobs, err := c.driveService.OpenJobs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(jobs, ""))
}
