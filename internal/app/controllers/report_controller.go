package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakshithv/placemate/internal/app/models/dto"
	"github.com/rakshithv/placemate/internal/app/services"
	"github.com/rakshithv/placemate/internal/middleware"
)

// ReportController handles chart data and PDF downloads.
type ReportController struct {
	analyticsService *services.AnalyticsService
	reportService    *services.ReportService
	logger           zerolog.Logger
}

// NewReportController creates a new ReportController.
func NewReportController(analyticsService *services.AnalyticsService, reportService *services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		analyticsService: analyticsService,
		reportService:    reportService,
		logger:           logger,
	}
}

// DepartmentChart returns the per-branch placement rates
// @Summary Department placement chart
// @Description Returns one row per branch with total, placed and the placement rate rounded to one decimal. Branches without students are absent.
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentChartRow} "Chart rows"
// @Router /placements/charts/department [get]
func (c *ReportController) DepartmentChart(ctx *gin.Context) {
	rows, err := c.analyticsService.DepartmentChart(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(rows, ""))
}

// DownloadChart streams one chart as a PDF
// @Summary Download a chart as PDF
// @Tags placements
// @Produce application/pdf
// @Security BearerAuth
// @Param chartType path string true "department-placement-rate or salary-distribution"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} dto.ErrorResponse "Unknown chart type"
// @Router /placements/charts/download/{chartType} [get]
func (c *ReportController) DownloadChart(ctx *gin.Context) {
	chartType := ctx.Param("chartType")

	pdf, filename, err := c.reportService.GenerateChart(ctx, chartType)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("chartType", chartType).Msg("Chart PDF generated")
	streamPDF(ctx, pdf, filename)
}

// DownloadReport generates a placement report PDF
// @Summary Download a placement report
// @Description Builds the requested report type over the filtered student set and streams it as PDF.
// @Tags placements
// @Accept json
// @Produce application/pdf
// @Security BearerAuth
// @Param request body dto.ReportRequest true "Report type and filters"
// @Success 200 {file} binary "PDF document"
// @Failure 400 {object} dto.ErrorResponse "Unknown report type or bad filters"
// @Router /placements/reports/download [post]
func (c *ReportController) DownloadReport(ctx *gin.Context) {
	var req dto.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	pdf, filename, err := c.reportService.GenerateReport(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("reportType", req.ReportType).Msg("Report PDF generated")
	streamPDF(ctx, pdf, filename)
}

func streamPDF(ctx *gin.Context, pdf []byte, filename string) {
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}
