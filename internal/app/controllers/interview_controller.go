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

// InterviewController lets the placement office schedule interviews.
type InterviewController struct {
	interviewService *services.InterviewService
	logger           zerolog.Logger
}

// NewInterviewController creates a new InterviewController.
func NewInterviewController(interviewService *services.InterviewService, logger zerolog.Logger) *InterviewController {
	return &InterviewController{
		interviewService: interviewService,
		logger:           logger,
	}
}

// Schedule records a new interview
// @Summary Schedule an interview
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.InterviewRequest true "Interview fields"
// @Success 201 {object} dto.APIResponse "Scheduled interview"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /placements/interviews [post]
func (c *InterviewController) Schedule(ctx *gin.Context) {
	var req dto.InterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	interview, err := c.interviewService.Schedule(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("usn", req.StudentUSN).Str("company", req.Company).Msg("Interview scheduled")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(interview, "Interview scheduled"))
}

// Update modifies an interview
// @Summary Update an interview
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Interview ID"
// @Param request body dto.InterviewRequest true "Interview fields"
// @Success 200 {object} dto.APIResponse "Updated interview"
// @Failure 404 {object} dto.ErrorResponse "Interview not found"
// @Router /placements/interviews/{id} [put]
func (c *InterviewController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	var req dto.InterviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	interview, err := c.interviewService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(interview, "Interview updated"))
}
