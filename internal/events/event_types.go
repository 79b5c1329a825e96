package events

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAppointmentBooked        EventType = "appointment_booked"
	EventAppointmentStatusChanged EventType = "appointment_status_changed"
	EventSubmissionCreated        EventType = "crop_submission_created"
	EventSubmissionReviewed       EventType = "crop_submission_reviewed"
	EventFertilizerRequested      EventType = "fertilizer_requested"
	EventFertilizerStatusChanged  EventType = "fertilizer_status_changed"
)

// Actor identifies who triggered an event.
type Actor struct {
	SubjectID string      `json:"subject_id"`
	Role      domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AppointmentBookedPayload payload.
type AppointmentBookedPayload struct {
	FarmerID  string    `json:"farmer_id"`
	OfficerID string    `json:"officer_id"`
	Date      time.Time `json:"date"`
	TimeSlot  string    `json:"time_slot"`
}

// AppointmentStatusChangedPayload payload.
type AppointmentStatusChangedPayload struct {
	FarmerID  string                   `json:"farmer_id"`
	OfficerID string                   `json:"officer_id"`
	OldStatus domain.AppointmentStatus `json:"old_status"`
	NewStatus domain.AppointmentStatus `json:"new_status"`
}

// SubmissionCreatedPayload payload.
type SubmissionCreatedPayload struct {
	FarmerID    string `json:"farmer_id"`
	CropType    string `json:"crop_type"`
	ReferenceNo string `json:"reference_no"`
}

// SubmissionReviewedPayload payload.
type SubmissionReviewedPayload struct {
	FarmerID  string                  `json:"farmer_id"`
	OldStatus domain.SubmissionStatus `json:"old_status"`
	NewStatus domain.SubmissionStatus `json:"new_status"`
	Notes     string                  `json:"notes,omitempty"`
}

// FertilizerRequestedPayload payload.
type FertilizerRequestedPayload struct {
	FarmerID       string  `json:"farmer_id"`
	FertilizerType string  `json:"fertilizer_type"`
	QuantityKg     float64 `json:"quantity_kg"`
	ReferenceNo    string  `json:"reference_no"`
}

// FertilizerStatusChangedPayload payload.
type FertilizerStatusChangedPayload struct {
	FarmerID  string                    `json:"farmer_id"`
	OldStatus domain.DistributionStatus `json:"old_status"`
	NewStatus domain.DistributionStatus `json:"new_status"`
	Notes     string                    `json:"notes,omitempty"`
}
