// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	UserID      uuid.UUID       `json:"user_id" gorm:"type:uuid;not null;index"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Thumbnail   string          `json:"thumbnail" gorm:"size:500"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(30);not null;index"`
	Status      ProductStatus   `json:"status" gorm:"type:varchar(20);default:'draft';index"`
	DownloadURL string          `json:"download_url" gorm:"size:500"`
	FileSize    string          `json:"file_size" gorm:"size:50"`
	Tags        pq.StringArray  `json:"tags" gorm:"type:text[]"`

	// Relationships
	Owner    User              `json:"owner,omitempty" gorm:"foreignKey:UserID"`
	Listings []PlatformListing `json:"listings,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
