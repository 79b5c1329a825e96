package domain

import "time"

// DistributionStatus enumerates states for fertilizer distribution requests.
type DistributionStatus string

const (
	DistributionStatusPending     DistributionStatus = "PENDING"
	DistributionStatusApproved    DistributionStatus = "APPROVED"
	DistributionStatusRejected    DistributionStatus = "REJECTED"
	DistributionStatusDistributed DistributionStatus = "DISTRIBUTED"
)

// FertilizerDistribution is a farmer's request for subsidized fertilizer.
type FertilizerDistribution struct {
	ID                string
	ReferenceNo       string
	FarmerID          string
	AssignedOfficerID *string
	FertilizerType    string
	QuantityKg        float64
	LandSizeAcres     float64
	CropType          string
	Status            DistributionStatus
	ReviewNotes       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
