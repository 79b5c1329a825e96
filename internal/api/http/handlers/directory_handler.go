package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/api/dto"
	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/service"
)

// DirectoryHandler serves officer and farmer listings.
type DirectoryHandler struct {
	directory *service.DirectoryService
}

// NewDirectoryHandler constructs the handler.
func NewDirectoryHandler(directoryService *service.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{directory: directoryService}
}

func directoryQuery(c *fiber.Ctx) service.DirectoryQuery {
	return service.DirectoryQuery{
		District: optionalString(c, "district"),
		Search:   optionalString(c, "search"),
		Page:     parsePage(c),
	}
}

func userResponses(users []domain.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return out
}

// ListOfficers GET /api/officers (any authenticated identity).
func (h *DirectoryHandler) ListOfficers(c *fiber.Ctx) error {
	query := directoryQuery(c)
	items, total, err := h.directory.ListOfficers(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      userResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}

// ListFarmers GET /api/farmers (officer only, enforced by the route guard).
func (h *DirectoryHandler) ListFarmers(c *fiber.Ctx) error {
	query := directoryQuery(c)
	items, total, err := h.directory.ListFarmers(c.Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      userResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}
