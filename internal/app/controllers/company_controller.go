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

// CompanyController handles company management for the placement office.
type CompanyController struct {
	companyService *services.CompanyService
	logger         zerolog.Logger
}

// NewCompanyController creates a new CompanyController.
func NewCompanyController(companyService *services.CompanyService, logger zerolog.Logger) *CompanyController {
	return &CompanyController{
		companyService: companyService,
		logger:         logger,
	}
}

// List returns all companies
// @Summary List companies
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse "Companies ordered by name"
// @Router /placements/companies [get]
func (c *CompanyController) List(ctx *gin.Context) {
	companies, err := c.companyService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(companies, ""))
}

// Create adds a company
// @Summary Create a company
// @Description Adds a recruiting company. Offer and visit counters start at zero.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CompanyRequest true "Company fields"
// @Success 201 {object} dto.APIResponse "Created company"
// @Failure 409 {object} dto.ErrorResponse "Name already exists"
// @Router /placements/companies [post]
func (c *CompanyController) Create(ctx *gin.Context) {
	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	company, err := c.companyService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("name", company.Name).Int64("companyId", company.ID).Msg("Company created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(company, "Company created"))
}

// Update modifies a company
// @Summary Update a company
// @Description Applies the allow-listed fields; omitted counters keep their stored values.
// @Tags placements
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Param request body dto.CompanyRequest true "Company fields"
// @Success 200 {object} dto.APIResponse "Updated company"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /placements/companies/{id} [put]
func (c *CompanyController) Update(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	var req dto.CompanyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").WithDetails(err.Error())))
		return
	}

	company, err := c.companyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(company, "Company updated"))
}

// Delete removes a company
// @Summary Delete a company
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Param id path int true "Company ID"
// @Success 200 {object} dto.APIResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Company not found"
// @Router /placements/companies/{id} [delete]
func (c *CompanyController) Delete(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.ErrValidationFailed)
		return
	}

	if err := c.companyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("companyId", id).Msg("Company deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Company deleted"))
}
