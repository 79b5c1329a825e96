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

// CropSubmissionsHandler manages crop submission endpoints.
type CropSubmissionsHandler struct {
	service *service.CropSubmissionService
}

// NewCropSubmissionsHandler constructs the handler.
func NewCropSubmissionsHandler(submissionService *service.CropSubmissionService) *CropSubmissionsHandler {
	return &CropSubmissionsHandler{service: submissionService}
}

func (h *CropSubmissionsHandler) parseInput(c *fiber.Ctx) (service.SubmissionInput, error) {
	var req dto.CropSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return service.SubmissionInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if missing, bad := apperrors.FirstMissingField(map[string]any{
		"cropType":    req.CropType,
		"quantity":    req.Quantity,
		"unit":        req.Unit,
		"harvestDate": req.HarvestDate,
	}, []string{"cropType", "quantity", "unit", "harvestDate"}); bad {
		return service.SubmissionInput{}, apperrors.NewValidationError(missing+" is required", nil)
	}
	harvestDate, ok := parseDate(req.HarvestDate)
	if !ok {
		return service.SubmissionInput{}, apperrors.NewValidationError("harvestDate must be YYYY-MM-DD", nil)
	}
	return service.SubmissionInput{
		CropType:    req.CropType,
		Variety:     req.Variety,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		HarvestDate: harvestDate,
	}, nil
}

// Create POST /api/crop-submissions (farmer).
func (h *CropSubmissionsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}
	sub, err := h.service.Create(c.Context(), principal, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewCropSubmissionResponse(sub))
}

// List GET /api/crop-submissions.
func (h *CropSubmissionsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	query := service.SubmissionQuery{
		CropType:     optionalString(c, "cropType"),
		Search:       optionalString(c, "search"),
		AssignedOnly: c.QueryBool("assigned"),
		Page:         parsePage(c),
	}
	for _, status := range splitCSV(c.Query("status")) {
		query.Statuses = append(query.Statuses, domain.SubmissionStatus(strings.ToUpper(status)))
	}

	items, total, err := h.service.List(c.Context(), principal, query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      dto.NewCropSubmissionResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}

// Get GET /api/crop-submissions/:id.
func (h *CropSubmissionsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	sub, err := h.service.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCropSubmissionResponse(sub))
}

// Update PUT /api/crop-submissions/:id (owning farmer, pending only).
func (h *CropSubmissionsHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	input, err := h.parseInput(c)
	if err != nil {
		return err
	}
	sub, err := h.service.UpdateOwn(c.Context(), principal, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCropSubmissionResponse(sub))
}

// Review PUT /api/crop-submissions/:id/review (officer).
func (h *CropSubmissionsHandler) Review(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.ReviewSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", nil)
	}

	sub, err := h.service.Review(c.Context(), principal, c.Params("id"),
		domain.SubmissionStatus(strings.ToUpper(req.Status)), req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCropSubmissionResponse(sub))
}
