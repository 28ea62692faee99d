// internal/services/sales_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/revenue"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

// SalesService records reported sales periods against listings. Commission
// and net are always recomputed server-side from the platform's commission
// rate; clients never get to store their own arithmetic.
type SalesService struct {
	db *gorm.DB
}

type CreateSalesRecordRequest struct {
	PeriodStart time.Time `json:"period_start" validate:"required"`
	PeriodEnd   time.Time `json:"period_end" validate:"required"`
	Quantity    int       `json:"quantity" validate:"min=0"`
	// GrossRevenue overrides the quantity * listing-price derivation when
	// supplied; quantity is then informational only.
	GrossRevenue *decimal.Decimal `json:"gross_revenue,omitempty"`
	Currency     string           `json:"currency" validate:"currency_code"`
	Notes        string           `json:"notes,omitempty"`
}

type UpdateSalesRecordRequest struct {
	PeriodStart  *time.Time       `json:"period_start,omitempty"`
	PeriodEnd    *time.Time       `json:"period_end,omitempty"`
	Quantity     *int             `json:"quantity,omitempty"`
	GrossRevenue *decimal.Decimal `json:"gross_revenue,omitempty"`
	Currency     string           `json:"currency,omitempty" validate:"currency_code"`
	Notes        *string          `json:"notes,omitempty"`
}

func NewSalesService(db *gorm.DB) *SalesService {
	return &SalesService{db: db}
}

// ownedListing resolves a listing and verifies the record -> listing ->
// product -> user chain. Foreign listings read as not-found.
func (s *SalesService) ownedListing(listingID, callerID uuid.UUID) (*models.PlatformListing, error) {
	var listing models.PlatformListing
	err := s.db.Preload("Product").Preload("Platform").
		First(&listing, "id = ?", listingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: listing", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if listing.Product.UserID != callerID {
		return nil, fmt.Errorf("%w: listing", ErrNotFound)
	}
	return &listing, nil
}

func (s *SalesService) CreateSalesRecord(listingID, callerID uuid.UUID, req *CreateSalesRecordRequest) (*models.SalesRecord, error) {
	if err := validateStructReq(req); err != nil {
		return nil, err
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, fmt.Errorf("%w: period end precedes period start", ErrValidation)
	}

	listing, err := s.ownedListing(listingID, callerID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.computeBreakdown(listing, req.Quantity, req.GrossRevenue)
	if err != nil {
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = listing.Currency
	}

	record := &models.SalesRecord{
		ListingID:        listing.ID,
		PeriodStart:      req.PeriodStart,
		PeriodEnd:        req.PeriodEnd,
		Quantity:         req.Quantity,
		GrossRevenue:     breakdown.Gross,
		CommissionAmount: breakdown.Commission,
		NetRevenue:       breakdown.Net,
		Currency:         currency,
		Notes:            req.Notes,
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create sales record: %w", err)
	}
	return record, nil
}

func (s *SalesService) GetSalesRecord(id, callerID uuid.UUID) (*models.SalesRecord, error) {
	var record models.SalesRecord
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: sales record", ErrNotFound)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if _, err := s.ownedListing(record.ListingID, callerID); err != nil {
		return nil, fmt.Errorf("%w: sales record", ErrNotFound)
	}
	return &record, nil
}

func (s *SalesService) ListSalesRecords(listingID, callerID uuid.UUID, params utils.PaginationParams) ([]models.SalesRecord, int64, error) {
	if _, err := s.ownedListing(listingID, callerID); err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&models.SalesRecord{}).Where("listing_id = ?", listingID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sales records: %w", err)
	}

	allowedSortFields := []string{"created_at", "period_start", "period_end", "quantity", "net_revenue"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var records []models.SalesRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch sales records: %w", err)
	}
	return records, total, nil
}

func (s *SalesService) UpdateSalesRecord(id, callerID uuid.UUID, req *UpdateSalesRecordRequest) (*models.SalesRecord, error) {
	if err := validateStructReq(req); err != nil {
		return nil, err
	}

	record, err := s.GetSalesRecord(id, callerID)
	if err != nil {
		return nil, err
	}
	listing, err := s.ownedListing(record.ListingID, callerID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.PeriodStart != nil {
		updates["period_start"] = *req.PeriodStart
	}
	if req.PeriodEnd != nil {
		updates["period_end"] = *req.PeriodEnd
	}
	if req.Currency != "" {
		updates["currency"] = req.Currency
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	quantity := record.Quantity
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
		}
		quantity = *req.Quantity
		updates["quantity"] = quantity
	}

	// Changed figures re-derive the whole breakdown so stored rows stay
	// consistent with the platform's current commission rate.
	if req.GrossRevenue != nil || req.Quantity != nil {
		gross := req.GrossRevenue
		if gross == nil {
			gross = &record.GrossRevenue
		}
		breakdown, err := s.computeBreakdown(listing, quantity, gross)
		if err != nil {
			return nil, err
		}
		updates["gross_revenue"] = breakdown.Gross
		updates["commission_amount"] = breakdown.Commission
		updates["net_revenue"] = breakdown.Net
	}

	if len(updates) > 0 {
		if err := s.db.Model(record).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update sales record: %w", err)
		}
	}
	return record, nil
}

func (s *SalesService) DeleteSalesRecord(id, callerID uuid.UUID) error {
	record, err := s.GetSalesRecord(id, callerID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(record).Error; err != nil {
		return fmt.Errorf("failed to delete sales record: %w", err)
	}
	return nil
}

func (s *SalesService) computeBreakdown(listing *models.PlatformListing, quantity int, gross *decimal.Decimal) (revenue.Breakdown, error) {
	rate := listing.Platform.CommissionRate

	var breakdown revenue.Breakdown
	var err error
	if gross != nil {
		breakdown, err = revenue.ComputeFromGross(*gross, rate)
	} else {
		breakdown, err = revenue.Compute(quantity, listing.Price, rate)
	}
	if err != nil {
		return revenue.Breakdown{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return breakdown, nil
}
