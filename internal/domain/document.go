package domain

import "time"

// Document is an uploaded file reference. A nil OwnerFarmerID marks an
// advisory document visible to every authenticated identity; otherwise the
// document is scoped to its owning farmer (and to officers).
type Document struct {
	ID            string
	OwnerFarmerID *string
	UploadedByID  string
	Title         string
	Category      string
	FileName      string
	MimeType      string
	SizeBytes     int64
	StorageKey    string
	CreatedAt     time.Time
}
