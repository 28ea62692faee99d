// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// BeforeCreate assigns the primary key in the application so the same models
// work against Postgres and the in-memory test database.
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Enums
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

type ProductCategory string

const (
	CategoryEbooks            ProductCategory = "ebooks"
	CategoryDigitalProducts   ProductCategory = "digital_products"
	CategoryDigitalBundles    ProductCategory = "digital_bundles"
	CategorySocialMedia       ProductCategory = "social_media"
	CategoryDetectiveProjects ProductCategory = "detective_projects"
	CategoryMusicProjects     ProductCategory = "music_projects"
	CategoryGameSell          ProductCategory = "game_sell"
)

func (c ProductCategory) Valid() bool {
	switch c {
	case CategoryEbooks, CategoryDigitalProducts, CategoryDigitalBundles,
		CategorySocialMedia, CategoryDetectiveProjects, CategoryMusicProjects,
		CategoryGameSell:
		return true
	}
	return false
}

type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusSelling  ProductStatus = "selling"
	ProductStatusArchived ProductStatus = "archived"
)

// Listing statuses are plain labels: any status may follow any other. The
// only side effect is the listed_at stamp on the first transition to selling.
type ListingStatus string

const (
	ListingStatusDraft    ListingStatus = "draft"
	ListingStatusActive   ListingStatus = "active"
	ListingStatusSelling  ListingStatus = "selling"
	ListingStatusPaused   ListingStatus = "paused"
	ListingStatusArchived ListingStatus = "archived"
)
