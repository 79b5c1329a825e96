package domain

import "time"

// NotificationType enumerates the kinds of notifications the platform emits.
type NotificationType string

const (
	NotificationAppointmentBooked  NotificationType = "APPOINTMENT_BOOKED"
	NotificationAppointmentUpdated NotificationType = "APPOINTMENT_UPDATED"
	NotificationSubmissionCreated  NotificationType = "SUBMISSION_CREATED"
	NotificationSubmissionReviewed NotificationType = "SUBMISSION_REVIEWED"
	NotificationFertilizerRequest  NotificationType = "FERTILIZER_REQUESTED"
	NotificationFertilizerUpdated  NotificationType = "FERTILIZER_UPDATED"
)

// Notification is a per-recipient message generated as a side effect of a
// cross-role mutation. Visibility is always recipient-scoped.
type Notification struct {
	ID          string
	RecipientID string
	ActorID     *string
	Type        NotificationType
	Title       string
	Message     string
	EntityType  string
	EntityID    string
	Read        bool
	CreatedAt   time.Time
}
