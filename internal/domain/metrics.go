package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lead is a captured prospect.
type Lead struct {
	ID        uuid.UUID `json:"id"        db:"id"`
	OwnerID   uuid.UUID `json:"owner_id"  db:"owner_id"`
	Email     string    `json:"email"     db:"email"`
	Name      *string   `json:"name"      db:"name"`
	Source    *string   `json:"source"    db:"source"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Conversion is a lead that turned into a paying customer.
type Conversion struct {
	ID        uuid.UUID  `json:"id"         db:"id"`
	OwnerID   uuid.UUID  `json:"owner_id"   db:"owner_id"`
	LeadID    *uuid.UUID `json:"lead_id"    db:"lead_id"`
	Value     float64    `json:"value"      db:"value"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// RevenueEntry is an amount recognized at a point in time.
type RevenueEntry struct {
	ID           uuid.UUID `json:"id"            db:"id"`
	OwnerID      uuid.UUID `json:"owner_id"      db:"owner_id"`
	Amount       float64   `json:"amount"        db:"amount"`
	Description  *string   `json:"description"   db:"description"`
	RecognizedAt time.Time `json:"recognized_at" db:"recognized_at"`
}

// Campaign is a marketing campaign.
type Campaign struct {
	ID        uuid.UUID      `json:"id"         db:"id"`
	OwnerID   uuid.UUID      `json:"owner_id"   db:"owner_id"`
	Name      string         `json:"name"       db:"name"`
	Status    CampaignStatus `json:"status"     db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
}

// MetricsDataset is a batch of metric rows for bulk loading.
type MetricsDataset struct {
	Leads       []Lead
	Conversions []Conversion
	Revenue     []RevenueEntry
	Campaigns   []Campaign
}

// Rows returns the total number of rows in the dataset.
func (d MetricsDataset) Rows() int {
	return len(d.Leads) + len(d.Conversions) + len(d.Revenue) + len(d.Campaigns)
}
