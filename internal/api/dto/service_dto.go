package dto

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// ServiceRequest payload for catalog management.
type ServiceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// ServiceResponse is the wire view of a catalog entry.
type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewServiceResponse maps the domain model.
func NewServiceResponse(svc *domain.ServiceOffering) ServiceResponse {
	return ServiceResponse{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Category:    svc.Category,
		IsActive:    svc.IsActive,
		CreatedAt:   svc.CreatedAt,
		UpdatedAt:   svc.UpdatedAt,
	}
}

// NewServiceResponses maps a slice.
func NewServiceResponses(svcs []domain.ServiceOffering) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(svcs))
	for i := range svcs {
		out = append(out, NewServiceResponse(&svcs[i]))
	}
	return out
}
