package dto

import (
	"time"

	"github.com/spec-kit/agrilink/internal/domain"
)

// UploadDocumentRequest payload for document metadata registration.
type UploadDocumentRequest struct {
	Title      string `json:"title"`
	Category   string `json:"category"`
	FileName   string `json:"fileName"`
	MimeType   string `json:"mimeType"`
	SizeBytes  int64  `json:"sizeBytes"`
	StorageKey string `json:"storageKey"`
}

// DocumentResponse is the wire view of a document.
type DocumentResponse struct {
	ID            string    `json:"id"`
	OwnerFarmerID *string   `json:"ownerFarmerId,omitempty"`
	UploadedByID  string    `json:"uploadedById"`
	Title         string    `json:"title"`
	Category      string    `json:"category,omitempty"`
	FileName      string    `json:"fileName"`
	MimeType      string    `json:"mimeType"`
	SizeBytes     int64     `json:"sizeBytes"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewDocumentResponse maps the domain model. The storage key stays internal.
func NewDocumentResponse(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		OwnerFarmerID: doc.OwnerFarmerID,
		UploadedByID:  doc.UploadedByID,
		Title:         doc.Title,
		Category:      doc.Category,
		FileName:      doc.FileName,
		MimeType:      doc.MimeType,
		SizeBytes:     doc.SizeBytes,
		CreatedAt:     doc.CreatedAt,
	}
}

// NewDocumentResponses maps a slice.
func NewDocumentResponses(docs []domain.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for i := range docs {
		out = append(out, NewDocumentResponse(&docs[i]))
	}
	return out
}
