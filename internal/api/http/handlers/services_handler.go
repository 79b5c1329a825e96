package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/api/dto"
	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/service"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// ServicesHandler manages the services catalog endpoints.
type ServicesHandler struct {
	catalog *service.CatalogService
}

// NewServicesHandler constructs the handler.
func NewServicesHandler(catalogService *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{catalog: catalogService}
}

// List GET /api/services. Officers may include inactive entries; everyone
// else sees the active catalog only.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	query := service.CatalogQuery{
		Category: optionalString(c, "category"),
		Search:   optionalString(c, "search"),
		Page:     parsePage(c),
	}
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.Role == domain.RoleOfficer {
		query.IncludeInactive = c.QueryBool("includeInactive")
	}

	items, total, err := h.catalog.List(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      dto.NewServiceResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}

// Get GET /api/services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	svc, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponse(svc))
}

func parseServiceRequest(c *fiber.Ctx) (service.CatalogInput, error) {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return service.CatalogInput{}, apperrors.NewValidationError("invalid payload", nil)
	}
	if missing, bad := apperrors.FirstMissingField(map[string]any{
		"name": req.Name,
	}, []string{"name"}); bad {
		return service.CatalogInput{}, apperrors.NewValidationError(missing+" is required", nil)
	}
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	return service.CatalogInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		IsActive:    active,
	}, nil
}

// Create POST /api/services (officer).
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	input, err := parseServiceRequest(c)
	if err != nil {
		return err
	}
	svc, err := h.catalog.Create(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewServiceResponse(svc))
}

// Update PUT /api/services/:id (officer).
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	input, err := parseServiceRequest(c)
	if err != nil {
		return err
	}
	svc, err := h.catalog.Update(c.Context(), c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponse(svc))
}

// Delete DELETE /api/services/:id (officer) deactivates the entry.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	svc, err := h.catalog.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewServiceResponse(svc))
}
