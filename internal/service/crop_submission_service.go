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

// CropSubmissionService coordinates harvest declaration workflows.
type CropSubmissionService struct {
	submissions repository.CropSubmissionRepository
	dispatcher  events.Dispatcher
}

// NewCropSubmissionService constructs the service.
func NewCropSubmissionService(submissions repository.CropSubmissionRepository, dispatcher events.Dispatcher) *CropSubmissionService {
	return &CropSubmissionService{submissions: submissions, dispatcher: dispatcher}
}

// SubmissionInput describes a crop submission payload.
type SubmissionInput struct {
	CropType    string
	Variety     string
	Quantity    float64
	Unit        string
	HarvestDate time.Time
}

// SubmissionQuery carries allow-listed listing parameters.
type SubmissionQuery struct {
	Statuses     []domain.SubmissionStatus
	CropType     *string
	Search       *string
	AssignedOnly bool
	Page         repository.Page
}

// Create files a new submission for a farmer and announces it so interested
// officers get notified.
func (s *CropSubmissionService) Create(ctx context.Context, p *auth.Principal, input SubmissionInput) (*domain.CropSubmission, error) {
	sub := &domain.CropSubmission{
		ReferenceNo: generateReference("CS"),
		FarmerID:    p.SubjectID,
		CropType:    strings.TrimSpace(input.CropType),
		Variety:     strings.TrimSpace(input.Variety),
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		HarvestDate: input.HarvestDate,
		Status:      domain.SubmissionStatusPending,
	}
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, p, events.Event{
		Type:     events.EventSubmissionCreated,
		EntityID: sub.ID,
		Payload: events.SubmissionCreatedPayload{
			FarmerID:    sub.FarmerID,
			CropType:    sub.CropType,
			ReferenceNo: sub.ReferenceNo,
		},
	})
	return sub, nil
}

// List returns submissions visible to the identity, newest first.
func (s *CropSubmissionService) List(ctx context.Context, p *auth.Principal, query SubmissionQuery) ([]domain.CropSubmission, int, error) {
	scope, err := auth.ScopeFor(p, auth.ScopeOptions{AssignedOnly: query.AssignedOnly})
	if err != nil {
		return nil, 0, apperrors.NewInternalError(err)
	}
	filter := repository.SubmissionFilter{
		FarmerID:          scope.FarmerID,
		AssignedOfficerID: scope.OfficerID,
		Statuses:          query.Statuses,
		CropType:          query.CropType,
		Search:            query.Search,
		Page:              query.Page,
	}
	items, total, err := s.submissions.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a submission the identity may see.
func (s *CropSubmissionService) Get(ctx context.Context, p *auth.Principal, id string) (*domain.CropSubmission, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("crop submission", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if p.Role == domain.RoleFarmer && sub.FarmerID != p.SubjectID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return sub, nil
}

// UpdateOwn lets the owning farmer edit a submission that has not entered
// review yet.
func (s *CropSubmissionService) UpdateOwn(ctx context.Context, p *auth.Principal, id string, input SubmissionInput) (*domain.CropSubmission, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("crop submission", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if sub.FarmerID != p.SubjectID {
		return nil, apperrors.NewForbidden("access denied")
	}
	if sub.Status != domain.SubmissionStatusPending {
		return nil, apperrors.NewValidationError("submission is already in review", nil)
	}

	sub.CropType = strings.TrimSpace(input.CropType)
	sub.Variety = strings.TrimSpace(input.Variety)
	sub.Quantity = input.Quantity
	sub.Unit = input.Unit
	sub.HarvestDate = input.HarvestDate
	if err := s.submissions.Update(ctx, sub); err != nil {
		return nil, apperrors.MapError(err)
	}
	return sub, nil
}

// Review transitions a submission and assigns the reviewing officer. The
// farmer is notified through the reviewed event.
func (s *CropSubmissionService) Review(ctx context.Context, p *auth.Principal, id string, newStatus domain.SubmissionStatus, notes string) (*domain.CropSubmission, error) {
	sub, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("crop submission", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !validSubmissionTransition(sub.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": sub.Status, "to": newStatus,
		})
	}

	oldStatus := sub.Status
	officerID := p.SubjectID
	sub.Status = newStatus
	sub.ReviewNotes = strings.TrimSpace(notes)
	sub.AssignedOfficerID = &officerID
	if err := s.submissions.Update(ctx, sub); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, p, events.Event{
		Type:     events.EventSubmissionReviewed,
		EntityID: sub.ID,
		Payload: events.SubmissionReviewedPayload{
			FarmerID:  sub.FarmerID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Notes:     sub.ReviewNotes,
		},
	})
	return sub, nil
}

var submissionTransitions = map[domain.SubmissionStatus][]domain.SubmissionStatus{
	domain.SubmissionStatusPending:     {domain.SubmissionStatusUnderReview, domain.SubmissionStatusApproved, domain.SubmissionStatusRejected},
	domain.SubmissionStatusUnderReview: {domain.SubmissionStatusApproved, domain.SubmissionStatusRejected},
	domain.SubmissionStatusApproved:    {},
	domain.SubmissionStatusRejected:    {},
}

func validSubmissionTransition(current, next domain.SubmissionStatus) bool {
	for _, candidate := range submissionTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *CropSubmissionService) publish(ctx context.Context, p *auth.Principal, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	event.Actor = events.Actor{SubjectID: p.SubjectID, Role: p.Role}
	_ = s.dispatcher.Publish(ctx, event)
}
