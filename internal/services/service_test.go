// internal/services/service_test.go
package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/selltrack/selltrack-backend/internal/models"
	"github.com/selltrack/selltrack-backend/internal/utils"
)

func testPagination() utils.PaginationParams {
	return utils.PaginationParams{Page: 1, Limit: 50, Sort: "created_at", Order: "desc"}
}

// setupTestDB opens a per-test in-memory database so tests can run in
// parallel without sharing state.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Platform{},
		&models.PlatformListing{},
		&models.SalesRecord{},
		&models.Domain{},
		&models.HostingAccount{},
		&models.ServerInstance{},
		&models.SoftwareLicense{},
		&models.Integration{},
		&models.Project{},
		&models.CalendarEvent{},
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     models.UserRoleUser,
		Status:   models.UserStatusActive,
	}
	require.NoError(t, user.SetPassword("Sup3rSecret!"))
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestPlatform(t *testing.T, db *gorm.DB, name string, rate float64) *models.Platform {
	t.Helper()

	svc := NewPlatformService(db)
	platform, err := svc.CreatePlatform(&CreatePlatformRequest{
		Name:           name,
		CommissionRate: decimal.NewFromFloat(rate),
	})
	require.NoError(t, err)
	return platform
}

func createTestProduct(t *testing.T, db *gorm.DB, user *models.User, title string, listings ...ListingInput) *models.Product {
	t.Helper()

	svc := NewProductService(db)
	product, err := svc.CreateProduct(user.ID, &CreateProductRequest{
		Title:    title,
		Category: models.CategoryEbooks,
		Listings: listings,
	})
	require.NoError(t, err)
	return product
}

func period(t *testing.T, start, end string) (time.Time, time.Time) {
	t.Helper()

	from, err := time.Parse("2006-01-02", start)
	require.NoError(t, err)
	to, err := time.Parse("2006-01-02", end)
	require.NoError(t, err)
	return from, to
}
