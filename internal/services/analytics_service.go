// internal/services/analytics_service.go
package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/revenue"
)

// AnalyticsService is the read-only roll-up layer: it derives every number
// on the dashboard by scanning sales records transitively through listings.
// All queries are scoped to the caller; platforms themselves are the only
// shared dimension.
type AnalyticsService struct {
	db *gorm.DB
}

type ProductTotals struct {
	TotalSales   int64           `json:"total_sales"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type PlatformStat struct {
	PlatformID   uuid.UUID       `json:"platform_id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	Color        string          `json:"color"`
	Sales        int64           `json:"sales"`
	Revenue      decimal.Decimal `json:"revenue"`
	RevenueShare decimal.Decimal `json:"revenue_share"`
}

type DashboardStats struct {
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	TotalExpense    decimal.Decimal `json:"total_expense"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	TotalSales      int64           `json:"total_sales"`
	ActiveProducts  int64           `json:"active_products"`
	ActivePlatforms int64           `json:"active_platforms"`
}

type DashboardReport struct {
	Stats         DashboardStats       `json:"stats"`
	RecentSales   []models.SalesRecord `json:"recent_sales"`
	PlatformStats []PlatformStat       `json:"platform_stats"`
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// ProductTotals sums quantity and net revenue across every sales record
// reachable through the product's listings. A product with no listings or no
// records reports zeros.
func (s *AnalyticsService) ProductTotals(productID, callerID uuid.UUID) (*ProductTotals, error) {
	var product models.Product
	if err := s.db.Select("id", "user_id").First(&product, "id = ?", productID).Error; err != nil {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}
	if product.UserID != callerID {
		return nil, fmt.Errorf("%w: product", ErrNotFound)
	}

	var row struct {
		TotalSales   int64
		TotalRevenue decimal.Decimal
	}
	err := s.db.Model(&models.SalesRecord{}).
		Joins("JOIN platform_listings ON platform_listings.id = sales_records.listing_id AND platform_listings.deleted_at IS NULL").
		Where("platform_listings.product_id = ?", productID).
		Select("COALESCE(SUM(sales_records.quantity), 0) AS total_sales, COALESCE(SUM(sales_records.net_revenue), 0) AS total_revenue").
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate product totals: %w", err)
	}

	return &ProductTotals{
		TotalSales:   row.TotalSales,
		TotalRevenue: row.TotalRevenue.Round(2),
	}, nil
}

// PlatformTotals reports sales and gross revenue per active platform for the
// caller's products, plus each platform's share of the caller's gross total.
func (s *AnalyticsService) PlatformTotals(callerID uuid.UUID) ([]PlatformStat, error) {
	platforms, err := NewPlatformService(s.db).ListPlatforms(true)
	if err != nil {
		return nil, err
	}

	var rows []struct {
		PlatformID uuid.UUID
		Sales      int64
		Revenue    decimal.Decimal
	}
	err = s.db.Model(&models.SalesRecord{}).
		Joins("JOIN platform_listings ON platform_listings.id = sales_records.listing_id AND platform_listings.deleted_at IS NULL").
		Joins("JOIN products ON products.id = platform_listings.product_id AND products.deleted_at IS NULL").
		Where("products.user_id = ?", callerID).
		Group("platform_listings.platform_id").
		Select("platform_listings.platform_id AS platform_id, COALESCE(SUM(sales_records.quantity), 0) AS sales, COALESCE(SUM(sales_records.gross_revenue), 0) AS revenue").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate platform totals: %w", err)
	}

	byPlatform := make(map[uuid.UUID]struct {
		sales   int64
		revenue decimal.Decimal
	}, len(rows))
	total := decimal.Zero
	for _, row := range rows {
		byPlatform[row.PlatformID] = struct {
			sales   int64
			revenue decimal.Decimal
		}{row.Sales, row.Revenue}
		total = total.Add(row.Revenue)
	}

	stats := make([]PlatformStat, 0, len(platforms))
	for _, platform := range platforms {
		agg := byPlatform[platform.ID]
		stats = append(stats, PlatformStat{
			PlatformID:   platform.ID,
			Name:         platform.Name,
			Slug:         platform.Slug,
			Color:        platform.Color,
			Sales:        agg.sales,
			Revenue:      agg.revenue.Round(2),
			RevenueShare: revenue.ShareOfTotal(agg.revenue, total),
		})
	}
	return stats, nil
}

// DashboardStats assembles the dashboard envelope: caller-scoped revenue and
// sales totals, tracker running costs as expenses, the most recent sales and
// the per-platform breakdown.
func (s *AnalyticsService) DashboardStats(callerID uuid.UUID) (*DashboardReport, error) {
	var totals struct {
		TotalSales   int64
		TotalRevenue decimal.Decimal
	}
	err := s.db.Model(&models.SalesRecord{}).
		Joins("JOIN platform_listings ON platform_listings.id = sales_records.listing_id AND platform_listings.deleted_at IS NULL").
		Joins("JOIN products ON products.id = platform_listings.product_id AND products.deleted_at IS NULL").
		Where("products.user_id = ?", callerID).
		Select("COALESCE(SUM(sales_records.quantity), 0) AS total_sales, COALESCE(SUM(sales_records.net_revenue), 0) AS total_revenue").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard totals: %w", err)
	}

	stats := DashboardStats{
		TotalRevenue: totals.TotalRevenue.Round(2),
		TotalSales:   totals.TotalSales,
	}

	if err := s.db.Model(&models.Product{}).
		Where("user_id = ?", callerID).
		Count(&stats.ActiveProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	if err := s.db.Model(&models.Platform{}).
		Where("active = ?", true).
		Count(&stats.ActivePlatforms).Error; err != nil {
		return nil, fmt.Errorf("failed to count platforms: %w", err)
	}

	expense, err := s.trackerExpenses(callerID)
	if err != nil {
		return nil, err
	}
	stats.TotalExpense = expense
	stats.NetProfit = stats.TotalRevenue.Sub(expense)

	var recent []models.SalesRecord
	err = s.db.Preload("Listing").Preload("Listing.Product").Preload("Listing.Platform").
		Joins("JOIN platform_listings ON platform_listings.id = sales_records.listing_id AND platform_listings.deleted_at IS NULL").
		Joins("JOIN products ON products.id = platform_listings.product_id AND products.deleted_at IS NULL").
		Where("products.user_id = ?", callerID).
		Order("sales_records.period_end DESC").
		Limit(10).
		Find(&recent).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent sales: %w", err)
	}

	platformStats, err := s.PlatformTotals(callerID)
	if err != nil {
		return nil, err
	}

	return &DashboardReport{
		Stats:         stats,
		RecentSales:   recent,
		PlatformStats: platformStats,
	}, nil
}

// trackerExpenses sums the recurring costs recorded on the caller's tracker
// assets. Integrations, projects and events carry no cost columns.
func (s *AnalyticsService) trackerExpenses(callerID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero

	sums := []struct {
		model  interface{}
		column string
	}{
		{&models.Domain{}, "cost"},
		{&models.HostingAccount{}, "monthly_cost"},
		{&models.ServerInstance{}, "monthly_cost"},
		{&models.SoftwareLicense{}, "cost"},
	}

	for _, sum := range sums {
		var amount decimal.Decimal
		err := s.db.Model(sum.model).
			Where("user_id = ?", callerID).
			Select("COALESCE(SUM(" + sum.column + "), 0)").
			Scan(&amount).Error
		if err != nil {
			return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
		}
		total = total.Add(amount)
	}

	return total.Round(2), nil
}
