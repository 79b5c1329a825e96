package domain

import "time"

// SubmissionStatus enumerates review states for crop submissions.
type SubmissionStatus string

const (
	SubmissionStatusPending     SubmissionStatus = "PENDING"
	SubmissionStatusUnderReview SubmissionStatus = "UNDER_REVIEW"
	SubmissionStatusApproved    SubmissionStatus = "APPROVED"
	SubmissionStatusRejected    SubmissionStatus = "REJECTED"
)

// CropSubmission records a harvest declaration a farmer files for review.
type CropSubmission struct {
	ID                string
	ReferenceNo       string
	FarmerID          string
	AssignedOfficerID *string
	CropType          string
	Variety           string
	Quantity          float64
	Unit              string
	HarvestDate       time.Time
	Status            SubmissionStatus
	ReviewNotes       string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
