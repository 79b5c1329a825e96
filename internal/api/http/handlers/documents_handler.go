package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agrilink/internal/api/dto"
	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/service"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// DocumentsHandler manages document metadata endpoints.
type DocumentsHandler struct {
	service *service.DocumentService
}

// NewDocumentsHandler constructs the handler.
func NewDocumentsHandler(documentService *service.DocumentService) *DocumentsHandler {
	return &DocumentsHandler{service: documentService}
}

// Upload POST /api/documents.
func (h *DocumentsHandler) Upload(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UploadDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if missing, bad := apperrors.FirstMissingField(map[string]any{
		"title":      req.Title,
		"fileName":   req.FileName,
		"storageKey": req.StorageKey,
	}, []string{"title", "fileName", "storageKey"}); bad {
		return apperrors.NewValidationError(missing+" is required", nil)
	}

	doc, err := h.service.Upload(c.Context(), principal, service.DocumentInput{
		Title:      req.Title,
		Category:   req.Category,
		FileName:   req.FileName,
		MimeType:   req.MimeType,
		SizeBytes:  req.SizeBytes,
		StorageKey: req.StorageKey,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewDocumentResponse(doc))
}

// List GET /api/documents.
func (h *DocumentsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	query := service.DocumentQuery{
		Category: optionalString(c, "category"),
		Search:   optionalString(c, "search"),
		Page:     parsePage(c),
	}
	items, total, err := h.service.List(c.Context(), principal, query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      dto.NewDocumentResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}

// Get GET /api/documents/:id.
func (h *DocumentsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	doc, err := h.service.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewDocumentResponse(doc))
}

// Delete DELETE /api/documents/:id.
func (h *DocumentsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "document deleted"})
}
