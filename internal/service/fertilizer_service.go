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

// FertilizerService coordinates fertilizer distribution requests.
type FertilizerService struct {
	distributions repository.FertilizerRepository
	dispatcher    events.Dispatcher
}

// NewFertilizerService constructs the service.
func NewFertilizerService(distributions repository.FertilizerRepository, dispatcher events.Dispatcher) *FertilizerService {
	return &FertilizerService{distributions: distributions, dispatcher: dispatcher}
}

// DistributionInput describes a fertilizer request payload.
type DistributionInput struct {
	FertilizerType string
	QuantityKg     float64
	LandSizeAcres  float64
	CropType       string
}

// DistributionQuery carries allow-listed listing parameters.
type DistributionQuery struct {
	Statuses       []domain.DistributionStatus
	FertilizerType *string
	AssignedOnly   bool
	Page           repository.Page
}

// Request files a fertilizer distribution request for a farmer.
func (s *FertilizerService) Request(ctx context.Context, p *auth.Principal, input DistributionInput) (*domain.FertilizerDistribution, error) {
	dist := &domain.FertilizerDistribution{
		ReferenceNo:    generateReference("FD"),
		FarmerID:       p.SubjectID,
		FertilizerType: strings.TrimSpace(input.FertilizerType),
		QuantityKg:     input.QuantityKg,
		LandSizeAcres:  input.LandSizeAcres,
		CropType:       strings.TrimSpace(input.CropType),
		Status:         domain.DistributionStatusPending,
	}
	if err := s.distributions.Create(ctx, dist); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, p, events.Event{
		Type:     events.EventFertilizerRequested,
		EntityID: dist.ID,
		Payload: events.FertilizerRequestedPayload{
			FarmerID:       dist.FarmerID,
			FertilizerType: dist.FertilizerType,
			QuantityKg:     dist.QuantityKg,
			ReferenceNo:    dist.ReferenceNo,
		},
	})
	return dist, nil
}

// List returns distribution requests visible to the identity.
func (s *FertilizerService) List(ctx context.Context, p *auth.Principal, query DistributionQuery) ([]domain.FertilizerDistribution, int, error) {
	scope, err := auth.ScopeFor(p, auth.ScopeOptions{AssignedOnly: query.AssignedOnly})
	if err != nil {
		return nil, 0, apperrors.NewInternalError(err)
	}
	filter := repository.DistributionFilter{
		FarmerID:          scope.FarmerID,
		AssignedOfficerID: scope.OfficerID,
		Statuses:          query.Statuses,
		FertilizerType:    query.FertilizerType,
		Page:              query.Page,
	}
	items, total, err := s.distributions.List(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return items, total, nil
}

// Get fetches a request the identity may see.
func (s *FertilizerService) Get(ctx context.Context, p *auth.Principal, id string) (*domain.FertilizerDistribution, error) {
	dist, err := s.distributions.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("fertilizer distribution", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if p.Role == domain.RoleFarmer && dist.FarmerID != p.SubjectID {
		return nil, apperrors.NewForbidden("access denied")
	}
	return dist, nil
}

// UpdateStatus transitions a request; the acting officer becomes its
// assigned reviewer and the farmer is notified.
func (s *FertilizerService) UpdateStatus(ctx context.Context, p *auth.Principal, id string, newStatus domain.DistributionStatus, notes string) (*domain.FertilizerDistribution, error) {
	dist, err := s.distributions.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("fertilizer distribution", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !validDistributionTransition(dist.Status, newStatus) {
		return nil, apperrors.NewValidationError("invalid status transition", map[string]any{
			"from": dist.Status, "to": newStatus,
		})
	}

	oldStatus := dist.Status
	officerID := p.SubjectID
	dist.Status = newStatus
	dist.ReviewNotes = strings.TrimSpace(notes)
	dist.AssignedOfficerID = &officerID
	if err := s.distributions.Update(ctx, dist); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, p, events.Event{
		Type:     events.EventFertilizerStatusChanged,
		EntityID: dist.ID,
		Payload: events.FertilizerStatusChangedPayload{
			FarmerID:  dist.FarmerID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Notes:     dist.ReviewNotes,
		},
	})
	return dist, nil
}

var distributionTransitions = map[domain.DistributionStatus][]domain.DistributionStatus{
	domain.DistributionStatusPending:     {domain.DistributionStatusApproved, domain.DistributionStatusRejected},
	domain.DistributionStatusApproved:    {domain.DistributionStatusDistributed},
	domain.DistributionStatusRejected:    {},
	domain.DistributionStatusDistributed: {},
}

func validDistributionTransition(current, next domain.DistributionStatus) bool {
	for _, candidate := range distributionTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *FertilizerService) publish(ctx context.Context, p *auth.Principal, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	event.Actor = events.Actor{SubjectID: p.SubjectID, Role: p.Role}
	_ = s.dispatcher.Publish(ctx, event)
}
