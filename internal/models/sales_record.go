// internal/models/sales_record.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesRecord is a manually reported sales period for one listing. Gross is
// supplied by the user; commission and net are derived server-side from the
// platform's commission rate and stored rounded to two decimal places.
type SalesRecord struct {
	BaseModel
	ListingID        uuid.UUID       `json:"listing_id" gorm:"type:uuid;not null;index"`
	PeriodStart      time.Time       `json:"period_start" gorm:"not null"`
	PeriodEnd        time.Time       `json:"period_end" gorm:"not null"`
	Quantity         int             `json:"quantity" gorm:"not null;default:0"`
	GrossRevenue     decimal.Decimal `json:"gross_revenue" gorm:"type:decimal(12,2);not null"`
	CommissionAmount decimal.Decimal `json:"commission_amount" gorm:"type:decimal(12,2);not null"`
	NetRevenue       decimal.Decimal `json:"net_revenue" gorm:"type:decimal(12,2);not null"`
	Currency         string          `json:"currency" gorm:"size:3;default:'USD'"`
	Notes            string          `json:"notes" gorm:"type:text"`

	// Relationships
	Listing PlatformListing `json:"listing,omitempty" gorm:"foreignKey:ListingID"`
}
