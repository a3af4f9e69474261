package controllers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/services"
	"github.com/rakshithv/placemate/internal/middleware"
)

// StudentController handles student profile, interview and application
// endpoints.
type StudentController struct {
	studentService *services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController.
func NewStudentController(studentService *services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// GetProfile returns one student profile
// @Summary Get a student profile
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param usn path string true "University Seat Number"
// @Success 200 {object} dto.APIResponse "Student profile"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/profile/{usn} [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	student, err := c.studentService.GetProfile(ctx, ctx.Param("usn"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, ""))
}

// UpsertProfile creates or updates the caller's profile
// @Summary Save a student profile
// @Description Creates or updates a profile keyed by USN. Accepts JSON or multipart; optional resumeFile and videoResumeFile parts replace the stored files.
// @Tags students
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentProfileRequest true "Profile fields"
// @Success 200 {object} dto.APIResponse "Saved profile"
// @Failure 400 {object} dto.ErrorResponse "Invalid USN or payload"
// @Router /students/profile [post]
func (c *StudentController) UpsertProfile(ctx *gin.Context) {
	var req dto.StudentProfileRequest
	var resume, videoResume *multipart.FileHeader

	if isMultipart(ctx) {
		if err := ctx.ShouldBind(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
			return
		}
		resume = formFile(ctx, "resumeFile")
		videoResume = formFile(ctx, "videoResumeFile")
	} else {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
			return
		}
	}

	student, err := c.studentService.UpsertProfile(ctx, &req, resume, videoResume)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("usn", req.USN).Msg("Student profile saved")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student, "Profile saved"))
}

// Analytics returns the full student table for the placement dashboard
// @Summary Student analytics table
// @Description Returns every student ordered by CGPA descending. Placement office only.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Students ordered by CGPA"
// @Failure 403 {object} dto.ErrorResponse "Not a placement officer"
// @Router /students/analytics [get]
func (c *StudentController) Analytics(ctx *gin.Context) {
	students, err := c.studentService.ListForAnalytics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students, ""))
}

// Interviews returns the caller's interviews
// @Summary Student interviews
// @Description Returns the caller's interviews split into upcoming and past.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InterviewsResponse} "Interviews"
// @Router /students/interviews [get]
func (c *StudentController) Interviews(ctx *gin.Context) {
	usn := ctx.GetString(middleware.ContextUsername)

	resp, err := c.studentService.Interviews(ctx, usn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp, ""))
}

// Applications returns the caller's drive registrations
// @Summary Student applications
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Applications with drive details"
// @Router /students/applications [get]
func (c *StudentController) Applications(ctx *gin.Context) {
	usn := ctx.GetString(middleware.ContextUsername)

	applications, err := c.studentService.Applications(ctx, usn)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications, ""))
}

func isMultipart(ctx *gin.Context) bool {
	contentType := ctx.ContentType()
	return contentType == "multipart/form-data"
}

func formFile(ctx *gin.Context, field string) *multipart.FileHeader {
	fh, err := ctx.FormFile(field)
	if err != nil {
		return nil
	}
	return fh
}
