// internal/services/product_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

// ProductService owns the product catalog: products, their platform listings
// and the transactional listing diff applied on every product edit.
type ProductService struct {
	db *gorm.DB
}

type ListingInput struct {
	PlatformID uuid.UUID            `json:"platform_id" validate:"required"`
	Price      decimal.Decimal      `json:"price"`
	Currency   string               `json:"currency" validate:"currency_code"`
	ProductURL string               `json:"product_url,omitempty"`
	Status     models.ListingStatus `json:"status,omitempty"`
}

type CreateProductRequest struct {
	Title       string                 `json:"title" validate:"required,max=255"`
	Description string                 `json:"description,omitempty"`
	Thumbnail   string                 `json:"thumbnail,omitempty"`
	Category    models.ProductCategory `json:"category" validate:"required,product_category"`
	Status      models.ProductStatus   `json:"status,omitempty"`
	DownloadURL string                 `json:"download_url,omitempty"`
	FileSize    string                 `json:"file_size,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Listings    []ListingInput         `json:"listings,omitempty"`
}

type UpdateProductRequest struct {
	Title       string                 `json:"title,omitempty" validate:"omitempty,max=255"`
	Description *string                `json:"description,omitempty"`
	Thumbnail   *string                `json:"thumbnail,omitempty"`
	Category    models.ProductCategory `json:"category,omitempty" validate:"omitempty,product_category"`
	Status      models.ProductStatus   `json:"status,omitempty"`
	DownloadURL *string                `json:"download_url,omitempty"`
	FileSize    *string                `json:"file_size,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	// Listings is the full desired set: platforms missing from it are
	// delisted, the rest are created or updated in place. Nil leaves the
	// listing set untouched.
	Listings []ListingInput `json:"listings,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	Category *models.ProductCategory `json:"category,omitempty"`
	Status   *models.ProductStatus   `json:"status,omitempty"`
	Tag      string                  `json:"tag,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

func (s *ProductService) CreateProduct(ownerID uuid.UUID, req *CreateProductRequest) (*models.Product, error) {
	if err := validateStructReq(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.ProductStatusDraft
	}

	product := &models.Product{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Status:      status,
		DownloadURL: req.DownloadURL,
		FileSize:    req.FileSize,
		Tags:        req.Tags,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		for i := range req.Listings {
			if _, err := s.createListing(tx, product.ID, &req.Listings[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Listings").Preload("Listings.Platform").First(product, product.ID)
	return product, nil
}

func (s *ProductService) GetProduct(id, callerID uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.Preload("Listings").Preload("Listings.Platform").
		Where("user_id = ?", callerID).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *ProductService) ListProducts(ownerID uuid.UUID, params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).
		Where("user_id = ?", ownerID).
		Preload("Listings").Preload("Listings.Platform")

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "category", "status"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, params.PaginationParams)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

// UpdateProduct applies scalar field changes and the listing diff as one
// transaction: platforms removed from the submitted set are delisted (their
// sales records go with them), the rest are upserted keyed by
// (product_id, platform_id). Any failure rolls the whole edit back.
func (s *ProductService) UpdateProduct(id, callerID uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	if err := validateStructReq(req); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: product", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if product.UserID != callerID {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}

	updates := make(map[string]interface{})
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.Category != "" {
		updates["category"] = req.Category
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.DownloadURL != nil {
		updates["download_url"] = *req.DownloadURL
	}
	if req.FileSize != nil {
		updates["file_size"] = *req.FileSize
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
		}

		if req.Listings != nil {
			if err := s.applyListingDiff(tx, product.ID, req.Listings); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.db.Preload("Listings").Preload("Listings.Platform").First(&product, product.ID)
	return &product, nil
}

func (s *ProductService) DeleteProduct(id, callerID uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: product", ErrNotFound)
		}
		return fmt.Errorf("database error: %w", err)
	}

	if product.UserID != callerID {
		return fmt.Errorf("%w: product", ErrNotFound)
	}

	// Cascade through listings and their sales records so no orphaned rows
	// feed the aggregation queries.
	return s.db.Transaction(func(tx *gorm.DB) error {
		var listingIDs []uuid.UUID
		if err := tx.Model(&models.PlatformListing{}).
			Where("product_id = ?", product.ID).
			Pluck("id", &listingIDs).Error; err != nil {
			return fmt.Errorf("failed to collect listings: %w", err)
		}

		if len(listingIDs) > 0 {
			if err := tx.Where("listing_id IN ?", listingIDs).
				Delete(&models.SalesRecord{}).Error; err != nil {
				return fmt.Errorf("failed to delete sales records: %w", err)
			}
			if err := tx.Where("product_id = ?", product.ID).
				Delete(&models.PlatformListing{}).Error; err != nil {
				return fmt.Errorf("failed to delete listings: %w", err)
			}
		}

		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

func (s *ProductService) GetProductListings(productID, callerID uuid.UUID) ([]models.PlatformListing, error) {
	if _, err := s.GetProduct(productID, callerID); err != nil {
		return nil, err
	}

	var listings []models.PlatformListing
	if err := s.db.Preload("Platform").
		Where("product_id = ?", productID).
		Order("created_at asc").
		Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// applyListingDiff reconciles the stored listing set with the submitted one.
func (s *ProductService) applyListingDiff(tx *gorm.DB, productID uuid.UUID, inputs []ListingInput) error {
	var existing []models.PlatformListing
	if err := tx.Where("product_id = ?", productID).Find(&existing).Error; err != nil {
		return fmt.Errorf("failed to load listings: %w", err)
	}

	current := make(map[uuid.UUID]*models.PlatformListing, len(existing))
	for i := range existing {
		current[existing[i].PlatformID] = &existing[i]
	}

	submitted := make(map[uuid.UUID]bool, len(inputs))
	for i := range inputs {
		submitted[inputs[i].PlatformID] = true
	}

	// Delisted platforms lose their listing and its sales records.
	for platformID, listing := range current {
		if submitted[platformID] {
			continue
		}
		if err := tx.Where("listing_id = ?", listing.ID).
			Delete(&models.SalesRecord{}).Error; err != nil {
			return fmt.Errorf("failed to delete sales records: %w", err)
		}
		if err := tx.Delete(listing).Error; err != nil {
			return fmt.Errorf("failed to delete listing: %w", err)
		}
	}

	for i := range inputs {
		input := &inputs[i]
		listing, exists := current[input.PlatformID]
		if !exists {
			if _, err := s.createListing(tx, productID, input); err != nil {
				return err
			}
			continue
		}

		if err := validateListingInput(tx, input); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"price":       input.Price.Round(2),
			"product_url": input.ProductURL,
		}
		if input.Currency != "" {
			updates["currency"] = input.Currency
		}
		if input.Status != "" {
			updates["status"] = input.Status
			// listed_at is stamped exactly once, on the first transition
			// to selling.
			if input.Status == models.ListingStatusSelling && listing.ListedAt == nil {
				now := time.Now()
				updates["listed_at"] = &now
			}
		}

		if err := tx.Model(listing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update listing: %w", err)
		}
	}

	return nil
}

func (s *ProductService) createListing(tx *gorm.DB, productID uuid.UUID, input *ListingInput) (*models.PlatformListing, error) {
	if err := validateListingInput(tx, input); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.ListingStatusDraft
	}

	listing := &models.PlatformListing{
		ProductID:  productID,
		PlatformID: input.PlatformID,
		Price:      input.Price.Round(2),
		Currency:   input.Currency,
		ProductURL: input.ProductURL,
		Status:     status,
	}
	if status == models.ListingStatusSelling {
		now := time.Now()
		listing.ListedAt = &now
	}

	if err := tx.Create(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}
	return listing, nil
}

func validateListingInput(tx *gorm.DB, input *ListingInput) error {
	if input.Price.IsNegative() {
		return fmt.Errorf("%w: listing price must not be negative", ErrValidation)
	}

	var count int64
	if err := tx.Model(&models.Platform{}).
		Where("id = ?", input.PlatformID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check platform: %w", err)
	}
	if count == 0 {
		return fmt.Errorf("%w: platform %s", ErrNotFound, input.PlatformID)
	}
	return nil
}
