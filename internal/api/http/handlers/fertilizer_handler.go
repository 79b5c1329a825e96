package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/api/dto"
	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/service"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// FertilizerHandler manages fertilizer distribution endpoints.
type FertilizerHandler struct {
	service *service.FertilizerService
}

// NewFertilizerHandler constructs the handler.
func NewFertilizerHandler(fertilizerService *service.FertilizerService) *FertilizerHandler {
	return &FertilizerHandler{service: fertilizerService}
}

// Request POST /api/fertilizer-distributions (farmer).
func (h *FertilizerHandler) Request(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.FertilizerRequestPayload
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if missing, bad := apperrors.FirstMissingField(map[string]any{
		"fertilizerType": req.FertilizerType,
		"quantityKg":     req.QuantityKg,
	}, []string{"fertilizerType", "quantityKg"}); bad {
		return apperrors.NewValidationError(missing+" is required", nil)
	}

	dist, err := h.service.Request(c.Context(), principal, service.DistributionInput{
		FertilizerType: req.FertilizerType,
		QuantityKg:     req.QuantityKg,
		LandSizeAcres:  req.LandSizeAcres,
		CropType:       req.CropType,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewFertilizerDistributionResponse(dist))
}

// List GET /api/fertilizer-distributions.
func (h *FertilizerHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	query := service.DistributionQuery{
		FertilizerType: optionalString(c, "fertilizerType"),
		AssignedOnly:   c.QueryBool("assigned"),
		Page:           parsePage(c),
	}
	for _, status := range splitCSV(c.Query("status")) {
		query.Statuses = append(query.Statuses, domain.DistributionStatus(strings.ToUpper(status)))
	}

	items, total, err := h.service.List(c.Context(), principal, query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      dto.NewFertilizerDistributionResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}

// Get GET /api/fertilizer-distributions/:id.
func (h *FertilizerHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	dist, err := h.service.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFertilizerDistributionResponse(dist))
}

// UpdateStatus PUT /api/fertilizer-distributions/:id/status (officer).
func (h *FertilizerHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateDistributionStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", nil)
	}

	dist, err := h.service.UpdateStatus(c.Context(), principal, c.Params("id"),
		domain.DistributionStatus(strings.ToUpper(req.Status)), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewFertilizerDistributionResponse(dist))
}
