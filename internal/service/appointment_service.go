package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/events"
	"github.com/spec-kit/agrilink/internal/repository"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

const slotTakenMessage = "Time slot is already booked"

// AppointmentService coordinates appointment workflows.
type AppointmentService struct {
	appointments repository.AppointmentRepository
	users        repository.UserRepository
	dispatcher   events.Dispatcher
}

// NewAppointmentService constructs the service.
func NewAppointmentService(appointments repository.AppointmentRepository, users repository.UserRepository, dispatcher events.Dispatcher) *AppointmentService {
	return &AppointmentService{appointments: appointments, users: users, dispatcher: dispatcher}
}

// BookInput describes an appointment booking payload.
type BookInput struct {
	OfficerID string
	ServiceID *string
	Date      time.Time
	TimeSlot  string
	Notes     string
}

// AppointmentQuery carries allow-listed listing parameters.
type AppointmentQuery struct {
	Statuses     []domain.AppointmentStatus
	DateFrom     *time.Time
	DateTo       *time.Time
	AssignedOnly bool
	Page         repository.Page
}

// Book creates an appointment for a farmer. Slot availability is pre-checked
// for a descriptive error; the partial unique index is what actually closes
// the race between concurrent bookings.
func (s *AppointmentService) Book(ctx context.Context, p *auth.Principal, input BookInput) (*domain.Appointment, error) {
	officer, err := s.users.GetByID(ctx, input.OfficerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewValidationError("officer not found", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if officer.Role != domain.RoleOfficer || !officer.Active {
		return nil, apperrors.NewValidationError("officer not available", nil)
	}

	taken, err := s.appointments.CountActiveSlot(ctx, input.OfficerID, input.Date, input.TimeSlot)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if taken > 0 {
		return nil, apperrors.NewValidationError(slotTakenMessage, nil)
	}

	appt := &domain.Appointment{
		ReferenceNo: generateReference("APT"),
		FarmerID:    p.SubjectID,
		OfficerID:   input.OfficerID,
		ServiceID:   input.ServiceID,
		Date:        input.Date,
		TimeSlot:    input.TimeSlot,
		Status:      domain.AppointmentStatusPending,
		Notes:       strings.TrimSpace(input.Notes),
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		if apperrors.IsUniqueViolation(err, "uq_appointments_active_slot") {
			return nil, apperrors.NewValidationError(slotTakenMessage, nil)
		}
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, p, events.Event{
		Type:     events.EventAppointmentBooked,
		EntityID: appt.ID,
		Payload: events.AppointmentBookedPayload{
			FarmerID:  appt.FarmerID,
			OfficerID: appt.OfficerID,
			Date:      appt.Date,
			TimeSlot:  appt.TimeSlot,
		},
	})
	return appt, nil
}

// List returns appointments visible to the identity, newest first.
func (s *AppointmentService) List(ctx context.Context, p *auth.Principal, query AppointmentQuery) ([]domain.Appointment, int, error) {
	scope, err := auth.ScopeFor(p, auth.ScopeOptions{AssignedOnly: query.AssignedOnly})
	if err != nil {
		return nil, 0, apperrors.NewInternalError(err)
	}
	filter := repository.AppointmentFilter{
		FarmerID:  scope.FarmerID,
		OfficerID: scope.OfficerID,
		Statuses:  query.Statuses,
		DateFrom:  query.DateFrom,
		DateTo:    query.DateTo,
		Page:      query.Page,
	}
	items, total, err := s.appointments.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a single appointment the identity may see.
func (s *AppointmentService) Get(ctx context.Context, p *auth.Principal, id string) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("appointment", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if p.Role == domain.RoleFarmer && appt.FarmerID != p.SubjectID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return appt, nil
}

// UpdateStatus transitions an appointment. Officers drive confirmations and
// completions; farmers may only cancel their own pending or confirmed
// appointments.
func (s *AppointmentService) UpdateStatus(ctx context.Context, p *auth.Principal, id string, newStatus domain.AppointmentStatus) (*domain.Appointment, error) {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("appointment", nil)
		}
		return nil, apperrors.MapError(err)
	}

	switch p.Role {
	case domain.RoleOfficer:
	case domain.RoleFarmer:
		if appt.FarmerID != p.SubjectID {
			return nil, apperrors.NewForbidden("access denied")
		}
		if newStatus != domain.AppointmentStatusCancelled {
			return nil, apperrors.NewForbidden("farmers may only cancel")
		}
	default:
		return nil, apperrors.NewInternalError(domain.ErrInvalidRole)
	}

	if !validAppointmentTransition(appt.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": appt.Status, "to": newStatus,
		})
	}

	oldStatus := appt.Status
	appt.Status = newStatus
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, p, events.Event{
		Type:     events.EventAppointmentStatusChanged,
		EntityID: appt.ID,
		Payload: events.AppointmentStatusChangedPayload{
			FarmerID:  appt.FarmerID,
			OfficerID: appt.OfficerID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return appt, nil
}

// Delete removes a pending appointment owned by the caller. Non-pending
// appointments must be cancelled through the status flow instead.
func (s *AppointmentService) Delete(ctx context.Context, p *auth.Principal, id string) error {
	appt, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("appointment", nil)
		}
		return apperrors.MapError(err)
	}
	if !auth.CanMutateOwned(p, appt.FarmerID) {
		return apperrors.NewForbidden("access denied")
	}
	if appt.Status != domain.AppointmentStatusPending {
		return apperrors.NewValidationError("only pending appointments can be deleted", nil)
	}
	if err := s.appointments.Delete(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

var appointmentTransitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.AppointmentStatusPending:   {domain.AppointmentStatusConfirmed, domain.AppointmentStatusCancelled},
	domain.AppointmentStatusConfirmed: {domain.AppointmentStatusCompleted, domain.AppointmentStatusCancelled},
	domain.AppointmentStatusCompleted: {},
	domain.AppointmentStatusCancelled: {},
}

func validAppointmentTransition(current, next domain.AppointmentStatus) bool {
	for _, candidate := range appointmentTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *AppointmentService) publish(ctx context.Context, p *auth.Principal, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	event.Actor = events.Actor{SubjectID: p.SubjectID, Role: p.Role}
	_ = s.dispatcher.Publish(ctx, event)
}

func generateReference(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
