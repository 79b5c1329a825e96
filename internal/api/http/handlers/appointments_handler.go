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

// AppointmentsHandler manages appointment endpoints.
type AppointmentsHandler struct {
	service *service.AppointmentService
}

// NewAppointmentsHandler constructs the handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService}
}

// Book POST /api/appointments (farmer).
func (h *AppointmentsHandler) Book(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if missing, bad := apperrors.FirstMissingField(map[string]any{
		"officerId": req.OfficerID,
		"date":      req.Date,
		"timeSlot":  req.TimeSlot,
	}, []string{"officerId", "date", "timeSlot"}); bad {
		return apperrors.NewValidationError(missing+" is required", nil)
	}
	date, ok := parseDate(req.Date)
	if !ok {
		return apperrors.NewValidationError("date must be YYYY-MM-DD", nil)
	}

	appt, err := h.service.Book(c.Context(), principal, service.BookInput{
		OfficerID: req.OfficerID,
		ServiceID: req.ServiceID,
		Date:      date,
		TimeSlot:  req.TimeSlot,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAppointmentResponse(appt))
}

// List GET /api/appointments.
func (h *AppointmentsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	query := service.AppointmentQuery{
		AssignedOnly: c.QueryBool("assigned"),
		Page:         parsePage(c),
	}
	for _, status := range splitCSV(c.Query("status")) {
		query.Statuses = append(query.Statuses, domain.AppointmentStatus(strings.ToUpper(status)))
	}
	if from, ok := parseDate(c.Query("dateFrom")); ok {
		query.DateFrom = &from
	}
	if to, ok := parseDate(c.Query("dateTo")); ok {
		query.DateTo = &to
	}

	items, total, err := h.service.List(c.Context(), principal, query)
	if err != nil {
		return err
	}
	return c.JSON(dto.ListResponse{
		Items:      dto.NewAppointmentResponses(items),
		Pagination: dto.NewPagination(query.Page, total),
	})
}

// Get GET /api/appointments/:id.
func (h *AppointmentsHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	appt, err := h.service.Get(c.Context(), principal, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAppointmentResponse(appt))
}

// UpdateStatus PUT /api/appointments/:id/status.
func (h *AppointmentsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateAppointmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status is required", nil)
	}

	appt, err := h.service.UpdateStatus(c.Context(), principal, c.Params("id"),
		domain.AppointmentStatus(strings.ToUpper(req.Status)))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAppointmentResponse(appt))
}

// Delete DELETE /api/appointments/:id (owning farmer, pending only).
func (h *AppointmentsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.Delete(c.Context(), principal, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "appointment deleted"})
}
