// internal/services/platform_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/models"
)

// PlatformService manages the marketplace registry (Etsy, Gumroad, ...).
// Platforms are shared across tenants; mutations are admin-gated in the
// router, catalog reads are public.
type PlatformService struct {
	db *gorm.DB
}

type CreatePlatformRequest struct {
	Name            string          `json:"name" validate:"required,max=100"`
	CommissionRate  decimal.Decimal `json:"commission_rate"`
	DefaultCurrency string          `json:"default_currency" validate:"currency_code"`
	Color           string          `json:"color,omitempty"`
	Active          *bool           `json:"active,omitempty"`
}

type UpdatePlatformRequest struct {
	Name            string           `json:"name,omitempty" validate:"omitempty,max=100"`
	CommissionRate  *decimal.Decimal `json:"commission_rate,omitempty"`
	DefaultCurrency string           `json:"default_currency,omitempty" validate:"currency_code"`
	Color           *string          `json:"color,omitempty"`
	Active          *bool            `json:"active,omitempty"`
}

func NewPlatformService(db *gorm.DB) *PlatformService {
	return &PlatformService{db: db}
}

var oneHundred = decimal.NewFromInt(100)

func validCommissionRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && !rate.GreaterThan(oneHundred)
}

func (s *PlatformService) CreatePlatform(req *CreatePlatformRequest) (*models.Platform, error) {
	if err := validateStructReq(req); err != nil {
		return nil, err
	}
	if !validCommissionRate(req.CommissionRate) {
		return nil, fmt.Errorf("%w: commission rate must be between 0 and 100", ErrValidation)
	}

	currency := req.DefaultCurrency
	if currency == "" {
		currency = "USD"
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	platform := &models.Platform{
		Name:            req.Name,
		Slug:            slug.Make(req.Name),
		CommissionRate:  req.CommissionRate.Round(2),
		DefaultCurrency: currency,
		Color:           req.Color,
		Active:          active,
	}

	var count int64
	if err := s.db.Model(&models.Platform{}).
		Where("slug = ?", platform.Slug).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if count > 0 {
		return nil, fmt.Errorf("%w: platform %q already exists", ErrConflict, platform.Slug)
	}

	if err := s.db.Create(platform).Error; err != nil {
		return nil, fmt.Errorf("failed to create platform: %w", err)
	}
	return platform, nil
}

func (s *PlatformService) GetPlatform(id uuid.UUID) (*models.Platform, error) {
	var platform models.Platform
	if err := s.db.First(&platform, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: platform", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &platform, nil
}

func (s *PlatformService) ListPlatforms(activeOnly bool) ([]models.Platform, error) {
	query := s.db.Order("name asc")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var platforms []models.Platform
	if err := query.Find(&platforms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch platforms: %w", err)
	}
	return platforms, nil
}

func (s *PlatformService) UpdatePlatform(id uuid.UUID, req *UpdatePlatformRequest) (*models.Platform, error) {
	if err := validateStructReq(req); err != nil {
		return nil, err
	}

	platform, err := s.GetPlatform(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" && req.Name != platform.Name {
		newSlug := slug.Make(req.Name)
		var count int64
		if err := s.db.Model(&models.Platform{}).
			Where("slug = ? AND id <> ?", newSlug, id).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if count > 0 {
			return nil, fmt.Errorf("%w: platform %q already exists", ErrConflict, newSlug)
		}
		updates["name"] = req.Name
		updates["slug"] = newSlug
	}
	if req.CommissionRate != nil {
		if !validCommissionRate(*req.CommissionRate) {
			return nil, fmt.Errorf("%w: commission rate must be between 0 and 100", ErrValidation)
		}
		updates["commission_rate"] = req.CommissionRate.Round(2)
	}
	if req.DefaultCurrency != "" {
		updates["default_currency"] = req.DefaultCurrency
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Active != nil {
		updates["active"] = *req.Active
	}

	if len(updates) > 0 {
		if err := s.db.Model(platform).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update platform: %w", err)
		}
	}
	return platform, nil
}

// DeletePlatform refuses to remove a platform that listings still reference.
// Delisting first is the caller's responsibility; a cascade here would
// silently destroy other tenants' sales history.
func (s *PlatformService) DeletePlatform(id uuid.UUID) error {
	platform, err := s.GetPlatform(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.PlatformListing{}).
		Where("platform_id = ?", id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check listings: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w: platform has %d listings", ErrConflict, count)
	}

	if err := s.db.Delete(platform).Error; err != nil {
		return fmt.Errorf("failed to delete platform: %w", err)
	}
	return nil
}
