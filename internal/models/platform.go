// internal/models/platform.go
package models

import "github.com/shopspring/decimal"

// Platform is a third-party marketplace (Etsy, Gumroad, Amazon KDP, ...)
// products get listed on. The commission rate is a percentage in [0,100].
type Platform struct {
	BaseModel
	Name            string          `json:"name" gorm:"size:100;not null"`
	Slug            string          `json:"slug" gorm:"uniqueIndex;size:100;not null"`
	CommissionRate  decimal.Decimal `json:"commission_rate" gorm:"type:decimal(5,2);not null"`
	DefaultCurrency string          `json:"default_currency" gorm:"size:3;default:'USD'"`
	Color           string          `json:"color" gorm:"size:20"`
	// No column default: a zero value with a default tag would be dropped
	// from the INSERT, making inactive platforms impossible to create. The
	// service and seed paths always set this explicitly.
	Active bool `json:"active" gorm:"index"`

	// Relationships
	Listings []PlatformListing `json:"listings,omitempty" gorm:"foreignKey:PlatformID"`
}
