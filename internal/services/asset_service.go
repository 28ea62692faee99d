// internal/services/asset_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/models"
)

// Tracker assets (domains, hosting, servers, software licenses, integrations,
// projects, calendar events) share the same owner-scoped CRUD shape, so the
// operations are generic over the model type. There are no business rules
// here beyond ownership and a non-empty display name.

type TrackerAsset interface {
	models.Domain | models.HostingAccount | models.ServerInstance |
		models.SoftwareLicense | models.Integration | models.Project |
		models.CalendarEvent
}

type assetRow interface {
	AssetName() string
	SetOwner(uuid.UUID)
}

func ListAssets[T TrackerAsset](db *gorm.DB, userID uuid.UUID) ([]T, error) {
	var items []T
	err := db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assets: %w", err)
	}
	return items, nil
}

func GetAsset[T TrackerAsset](db *gorm.DB, id, userID uuid.UUID) (*T, error) {
	var item T
	err := db.Where("user_id = ?", userID).
		First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: asset", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &item, nil
}

func CreateAsset[T TrackerAsset](db *gorm.DB, userID uuid.UUID, item *T) (*T, error) {
	row := any(item).(assetRow)
	if row.AssetName() == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	row.SetOwner(userID)

	if err := db.Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}
	return item, nil
}

func UpdateAsset[T TrackerAsset](db *gorm.DB, id, userID uuid.UUID, item *T) (*T, error) {
	existing, err := GetAsset[T](db, id, userID)
	if err != nil {
		return nil, err
	}

	row := any(item).(assetRow)
	if row.AssetName() == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	// Ownership and identity are never taken from the payload.
	row.SetOwner(userID)

	if err := db.Model(existing).Select("*").
		Omit("id", "user_id", "created_at", "deleted_at").
		Updates(item).Error; err != nil {
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}
	return GetAsset[T](db, id, userID)
}

func DeleteAsset[T TrackerAsset](db *gorm.DB, id, userID uuid.UUID) error {
	existing, err := GetAsset[T](db, id, userID)
	if err != nil {
		return err
	}

	if err := db.Delete(existing).Error; err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	return nil
}
