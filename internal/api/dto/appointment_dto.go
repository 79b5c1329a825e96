package dto

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// BookAppointmentRequest payload for appointment booking.
type BookAppointmentRequest struct {
	OfficerID string  `json:"officerId"`
	ServiceID *string `json:"serviceId,omitempty"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"timeSlot"`
	Notes     string  `json:"notes"`
}

// UpdateAppointmentStatusRequest payload for status transitions.
type UpdateAppointmentStatusRequest struct {
	Status string `json:"status"`
}

// AppointmentResponse is the wire view of an appointment.
type AppointmentResponse struct {
	ID          string                   `json:"id"`
	ReferenceNo string                   `json:"referenceNo"`
	FarmerID    string                   `json:"farmerId"`
	OfficerID   string                   `json:"officerId"`
	ServiceID   *string                  `json:"serviceId,omitempty"`
	Date        time.Time                `json:"date"`
	TimeSlot    string                   `json:"timeSlot"`
	Status      domain.AppointmentStatus `json:"status"`
	Notes       string                   `json:"notes,omitempty"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}

// NewAppointmentResponse maps the domain model.
func NewAppointmentResponse(appt *domain.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:          appt.ID,
		ReferenceNo: appt.ReferenceNo,
		FarmerID:    appt.FarmerID,
		OfficerID:   appt.OfficerID,
		ServiceID:   appt.ServiceID,
		Date:        appt.Date,
		TimeSlot:    appt.TimeSlot,
		Status:      appt.Status,
		Notes:       appt.Notes,
		CreatedAt:   appt.CreatedAt,
		UpdatedAt:   appt.UpdatedAt,
	}
}

// NewAppointmentResponses maps a slice.
func NewAppointmentResponses(appts []domain.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for i := range appts {
		out = append(out, NewAppointmentResponse(&appts[i]))
	}
	return out
}
