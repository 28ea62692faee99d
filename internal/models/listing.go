// internal/models/listing.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlatformListing associates a product with a platform at a given price.
// The (product_id, platform_id) pair is unique per product.
type PlatformListing struct {
	BaseModel
	ProductID  uuid.UUID       `json:"product_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_listings_product_platform"`
	PlatformID uuid.UUID       `json:"platform_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_listings_product_platform"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Currency   string          `json:"currency" gorm:"size:3;default:'USD'"`
	ProductURL string          `json:"product_url" gorm:"size:500"`
	Status     ListingStatus   `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	// Stamped once, on the first transition to selling.
	ListedAt *time.Time `json:"listed_at"`

	// Relationships
	Product      Product       `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Platform     Platform      `json:"platform,omitempty" gorm:"foreignKey:PlatformID"`
	SalesRecords []SalesRecord `json:"sales_records,omitempty" gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE"`
}
