package dto

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// CropSubmissionRequest payload for creating or editing a submission.
type CropSubmissionRequest struct {
	CropType    string  `json:"cropType"`
	Variety     string  `json:"variety"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	HarvestDate string  `json:"harvestDate"`
}

// ReviewSubmissionRequest payload for officer review.
type ReviewSubmissionRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

// CropSubmissionResponse is the wire view of a submission.
type CropSubmissionResponse struct {
	ID                string                  `json:"id"`
	ReferenceNo       string                  `json:"referenceNo"`
	FarmerID          string                  `json:"farmerId"`
	AssignedOfficerID *string                 `json:"assignedOfficerId,omitempty"`
	CropType          string                  `json:"cropType"`
	Variety           string                  `json:"variety,omitempty"`
	Quantity          float64                 `json:"quantity"`
	Unit              string                  `json:"unit"`
	HarvestDate       time.Time               `json:"harvestDate"`
	Status            domain.SubmissionStatus `json:"status"`
	ReviewNotes       string                  `json:"reviewNotes,omitempty"`
	CreatedAt         time.Time               `json:"createdAt"`
	UpdatedAt         time.Time               `json:"updatedAt"`
}

// NewCropSubmissionResponse maps the domain model.
func NewCropSubmissionResponse(sub *domain.CropSubmission) CropSubmissionResponse {
	return CropSubmissionResponse{
		ID:                sub.ID,
		ReferenceNo:       sub.ReferenceNo,
		FarmerID:          sub.FarmerID,
		AssignedOfficerID: sub.AssignedOfficerID,
		CropType:          sub.CropType,
		Variety:           sub.Variety,
		Quantity:          sub.Quantity,
		Unit:              sub.Unit,
		HarvestDate:       sub.HarvestDate,
		Status:            sub.Status,
		ReviewNotes:       sub.ReviewNotes,
		CreatedAt:         sub.CreatedAt,
		UpdatedAt:         sub.UpdatedAt,
	}
}

// NewCropSubmissionResponses maps a slice.
func NewCropSubmissionResponses(subs []domain.CropSubmission) []CropSubmissionResponse {
	out := make([]CropSubmissionResponse, 0, len(subs))
	for i := range subs {
		out = append(out, NewCropSubmissionResponse(&subs[i]))
	}
	return out
}
