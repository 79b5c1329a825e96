package dto

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// FertilizerRequestPayload payload for a distribution request.
type FertilizerRequestPayload struct {
	FertilizerType string  `json:"fertilizerType"`
	QuantityKg     float64 `json:"quantityKg"`
	LandSizeAcres  float64 `json:"landSizeAcres"`
	CropType       string  `json:"cropType"`
}

// UpdateDistributionStatusRequest payload for officer review.
type UpdateDistributionStatusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// FertilizerDistributionResponse is the wire view of a request.
type FertilizerDistributionResponse struct {
	ID                string                    `json:"id"`
	ReferenceNo       string                    `json:"referenceNo"`
	FarmerID          string                    `json:"farmerId"`
	AssignedOfficerID *string                   `json:"assignedOfficerId,omitempty"`
	FertilizerType    string                    `json:"fertilizerType"`
	QuantityKg        float64                   `json:"quantityKg"`
	LandSizeAcres     float64                   `json:"landSizeAcres,omitempty"`
	CropType          string                    `json:"cropType,omitempty"`
	Status            domain.DistributionStatus `json:"status"`
	ReviewNotes       string                    `json:"reviewNotes,omitempty"`
	CreatedAt         time.Time                 `json:"createdAt"`
	UpdatedAt         time.Time                 `json:"updatedAt"`
}

// NewFertilizerDistributionResponse maps the domain model.
func NewFertilizerDistributionResponse(dist *domain.FertilizerDistribution) FertilizerDistributionResponse {
	return FertilizerDistributionResponse{
		ID:                dist.ID,
		ReferenceNo:       dist.ReferenceNo,
		FarmerID:          dist.FarmerID,
		AssignedOfficerID: dist.AssignedOfficerID,
		FertilizerType:    dist.FertilizerType,
		QuantityKg:        dist.QuantityKg,
		LandSizeAcres:     dist.LandSizeAcres,
		CropType:          dist.CropType,
		Status:            dist.Status,
		ReviewNotes:       dist.ReviewNotes,
		CreatedAt:         dist.CreatedAt,
		UpdatedAt:         dist.UpdatedAt,
	}
}

// NewFertilizerDistributionResponses maps a slice.
func NewFertilizerDistributionResponses(dists []domain.FertilizerDistribution) []FertilizerDistributionResponse {
	out := make([]FertilizerDistributionResponse, 0, len(dists))
	for i := range dists {
		out = append(out, NewFertilizerDistributionResponse(&dists[i]))
	}
	return out
}
