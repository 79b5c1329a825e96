package domain

import "time"

// AppointmentStatus enumerates lifecycle states for appointments.
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusConfirmed AppointmentStatus = "CONFIRMED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment books a farmer with an officer for a date and time slot.
// At most one non-cancelled appointment may exist per (officer, date, slot);
// the storage layer enforces this with a partial unique index.
type Appointment struct {
	ID          string
	ReferenceNo string
	FarmerID    string
	OfficerID   string
	ServiceID   *string
	Date        time.Time
	TimeSlot    string
	Status      AppointmentStatus
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
