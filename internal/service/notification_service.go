package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/agrilink/internal/auth"
	"github.com/spec-kit/agrilink/internal/domain"
	"github.com/spec-kit/agrilink/internal/events"
	"github.com/spec-kit/agrilink/internal/repository"
	apperrors "github.com/spec-kit/agrilink/pkg/util"
)

// OfficerPicker selects the officers to notify about a new farmer-side
// record. The default picks the longest-registered active officers; swap
// the implementation for a real assignment or geolocation policy without
// touching the authorization core.
type OfficerPicker interface {
	PickOfficers(ctx context.Context, limit int) ([]string, error)
}

type repoOfficerPicker struct {
	users repository.UserRepository
}

// NewRepoOfficerPicker builds the default repository-backed picker.
func NewRepoOfficerPicker(users repository.UserRepository) OfficerPicker {
	return &repoOfficerPicker{users: users}
}

func (p *repoOfficerPicker) PickOfficers(ctx context.Context, limit int) ([]string, error) {
	return p.users.ListIDsByRole(ctx, domain.RoleOfficer, limit)
}

// NotificationService persists notification records for domain events and
// serves the per-recipient notification feed.
type NotificationService struct {
	notifications repository.NotificationRepository
	picker        OfficerPicker
	dispatcher    events.Dispatcher
	logger        *zap.Logger
	fanoutCap     int
}

// NewNotificationService creates the service.
func NewNotificationService(notifications repository.NotificationRepository, picker OfficerPicker, dispatcher events.Dispatcher, logger *zap.Logger, fanoutCap int) *NotificationService {
	if fanoutCap <= 0 {
		fanoutCap = 5
	}
	return &NotificationService{
		notifications: notifications,
		picker:        picker,
		dispatcher:    dispatcher,
		logger:        logger,
		fanoutCap:     fanoutCap,
	}
}

// RegisterHandlers subscribes to domain events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAppointmentBooked, n.handleAppointmentBooked)
	n.dispatcher.Subscribe(events.EventAppointmentStatusChanged, n.handleAppointmentStatusChanged)
	n.dispatcher.Subscribe(events.EventSubmissionCreated, n.handleSubmissionCreated)
	n.dispatcher.Subscribe(events.EventSubmissionReviewed, n.handleSubmissionReviewed)
	n.dispatcher.Subscribe(events.EventFertilizerRequested, n.handleFertilizerRequested)
	n.dispatcher.Subscribe(events.EventFertilizerStatusChanged, n.handleFertilizerStatusChanged)
}

func (n *NotificationService) handleAppointmentBooked(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentBookedPayload)
	if !ok {
		return nil
	}
	return n.create(ctx, &domain.Notification{
		RecipientID: payload.OfficerID,
		ActorID:     actorID(event),
		Type:        domain.NotificationAppointmentBooked,
		Title:       "New appointment request",
		Message:     fmt.Sprintf("A farmer requested the %s slot on %s", payload.TimeSlot, payload.Date.Format("2006-01-02")),
		EntityType:  "appointment",
		EntityID:    event.EntityID,
	})
}

func (n *NotificationService) handleAppointmentStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.AppointmentStatusChangedPayload)
	if !ok {
		return nil
	}
	// notify the counter-party, not the actor
	recipient := payload.FarmerID
	if event.Actor.Role == domain.RoleFarmer {
		recipient = payload.OfficerID
	}
	return n.create(ctx, &domain.Notification{
		RecipientID: recipient,
		ActorID:     actorID(event),
		Type:        domain.NotificationAppointmentUpdated,
		Title:       "Appointment updated",
		Message:     fmt.Sprintf("Appointment status changed from %s to %s", payload.OldStatus, payload.NewStatus),
		EntityType:  "appointment",
		EntityID:    event.EntityID,
	})
}

func (n *NotificationService) handleSubmissionCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SubmissionCreatedPayload)
	if !ok {
		return nil
	}
	return n.fanoutToOfficers(ctx, event, &domain.Notification{
		Type:       domain.NotificationSubmissionCreated,
		Title:      "New crop submission",
		Message:    fmt.Sprintf("Submission %s (%s) awaits review", payload.ReferenceNo, payload.CropType),
		EntityType: "crop_submission",
		EntityID:   event.EntityID,
	})
}

func (n *NotificationService) handleSubmissionReviewed(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SubmissionReviewedPayload)
	if !ok {
		return nil
	}
	return n.create(ctx, &domain.Notification{
		RecipientID: payload.FarmerID,
		ActorID:     actorID(event),
		Type:        domain.NotificationSubmissionReviewed,
		Title:       "Crop submission reviewed",
		Message:     fmt.Sprintf("Your submission moved from %s to %s", payload.OldStatus, payload.NewStatus),
		EntityType:  "crop_submission",
		EntityID:    event.EntityID,
	})
}

func (n *NotificationService) handleFertilizerRequested(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.FertilizerRequestedPayload)
	if !ok {
		return nil
	}
	return n.fanoutToOfficers(ctx, event, &domain.Notification{
		Type:       domain.NotificationFertilizerRequest,
		Title:      "New fertilizer request",
		Message:    fmt.Sprintf("Request %s for %.0fkg of %s awaits review", payload.ReferenceNo, payload.QuantityKg, payload.FertilizerType),
		EntityType: "fertilizer_distribution",
		EntityID:   event.EntityID,
	})
}

func (n *NotificationService) handleFertilizerStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.FertilizerStatusChangedPayload)
	if !ok {
		return nil
	}
	return n.create(ctx, &domain.Notification{
		RecipientID: payload.FarmerID,
		ActorID:     actorID(event),
		Type:        domain.NotificationFertilizerUpdated,
		Title:       "Fertilizer request updated",
		Message:     fmt.Sprintf("Your request moved from %s to %s", payload.OldStatus, payload.NewStatus),
		EntityType:  "fertilizer_distribution",
		EntityID:    event.EntityID,
	})
}

// fanoutToOfficers writes one notification per picked officer, capped.
func (n *NotificationService) fanoutToOfficers(ctx context.Context, event events.Event, template *domain.Notification) error {
	officerIDs, err := n.picker.PickOfficers(ctx, n.fanoutCap)
	if err != nil {
		n.logger.Warn("officer fan-out pick failed", zap.Error(err))
		return nil
	}
	if len(officerIDs) > n.fanoutCap {
		officerIDs = officerIDs[:n.fanoutCap]
	}
	for _, officerID := range officerIDs {
		record := *template
		record.RecipientID = officerID
		record.ActorID = actorID(event)
		if err := n.create(ctx, &record); err != nil {
			n.logger.Warn("notification write failed",
				zap.String("recipient", officerID), zap.Error(err))
		}
	}
	return nil
}

func (n *NotificationService) create(ctx context.Context, record *domain.Notification) error {
	if err := n.notifications.Create(ctx, record); err != nil {
		n.logger.Warn("notification write failed", zap.Error(err))
	}
	return nil
}

func actorID(event events.Event) *string {
	if event.Actor.SubjectID == "" {
		return nil
	}
	id := event.Actor.SubjectID
	return &id
}

// NotificationQuery carries listing parameters for the recipient feed.
type NotificationQuery struct {
	UnreadOnly bool
	Page       repository.Page
}

// ListFor returns the identity's notifications, newest first.
func (n *NotificationService) ListFor(ctx context.Context, p *auth.Principal, query NotificationQuery) ([]domain.Notification, int, error) {
	items, total, err := n.notifications.List(ctx, repository.NotificationFilter{
		RecipientID: p.SubjectID,
		UnreadOnly:  query.UnreadOnly,
		Page:        query.Page,
	})
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// UnreadCount returns the identity's unread notification count.
func (n *NotificationService) UnreadCount(ctx context.Context, p *auth.Principal) (int, error) {
	count, err := n.notifications.CountUnread(ctx, p.SubjectID)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return count, nil
}

// MarkRead marks one of the identity's notifications as read.
func (n *NotificationService) MarkRead(ctx context.Context, p *auth.Principal, id string) error {
	record, err := n.notifications.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("notification", nil)
		}
		return apperrors.MapError(err)
	}
	if record.RecipientID != p.SubjectID {
		return apperrors.NewForbidden("access denied")
	}
	if err := n.notifications.MarkRead(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the identity as read.
func (n *NotificationService) MarkAllRead(ctx context.Context, p *auth.Principal) error {
	if err := n.notifications.MarkAllRead(ctx, p.SubjectID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}
