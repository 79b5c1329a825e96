package domain

import "time"

// ServiceOffering is a catalog entry for a government agricultural service.
// The public listing only shows active entries; officers manage the catalog.
type ServiceOffering struct {
	ID          string
	Name        string
	Description string
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
