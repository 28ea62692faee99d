// internal/services/sales_service_test.go
package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selltrack/selltrack-backend/internal/models"
)

func salesFixture(t *testing.T) (*SalesService, *models.User, *models.PlatformListing) {
	t.Helper()

	db := setupTestDB(t)
	user := createTestUser(t, db, "seller")
	etsy := createTestPlatform(t, db, "Etsy", 6.5)
	product := createTestProduct(t, db, user, "Knitting Patterns",
		ListingInput{PlatformID: etsy.ID, Price: decimal.NewFromFloat(20.00), Status: models.ListingStatusSelling},
	)

	var listing models.PlatformListing
	require.NoError(t, db.First(&listing, "product_id = ?", product.ID).Error)

	return NewSalesService(db), user, &listing
}

func TestCreateSalesRecordDerivesBreakdown(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	// 3 units at 20.00 on a 6.5% platform: 60.00 gross, 3.90 commission,
	// 56.10 net.
	record, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart: from,
		PeriodEnd:   to,
		Quantity:    3,
	})
	require.NoError(t, err)

	assert.True(t, record.GrossRevenue.Equal(decimal.NewFromFloat(60.00)), "gross %s", record.GrossRevenue)
	assert.True(t, record.CommissionAmount.Equal(decimal.NewFromFloat(3.90)), "commission %s", record.CommissionAmount)
	assert.True(t, record.NetRevenue.Equal(decimal.NewFromFloat(56.10)), "net %s", record.NetRevenue)
	assert.Equal(t, "USD", record.Currency, "currency defaults from the listing")
}

func TestCreateSalesRecordGrossOverride(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	// Reported gross wins over quantity * price, e.g. when the platform ran a
	// discount.
	gross := decimal.NewFromFloat(45.00)
	record, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart:  from,
		PeriodEnd:    to,
		Quantity:     3,
		GrossRevenue: &gross,
	})
	require.NoError(t, err)

	assert.True(t, record.GrossRevenue.Equal(gross))
	assert.True(t, record.CommissionAmount.Equal(decimal.NewFromFloat(2.93)), "45.00 * 6.5%% rounds to 2.93, got %s", record.CommissionAmount)
	assert.True(t, record.NetRevenue.Equal(decimal.NewFromFloat(42.07)))
}

func TestCreateSalesRecordValidation(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	_, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart: to,
		PeriodEnd:   from,
		Quantity:    1,
	})
	assert.ErrorIs(t, err, ErrValidation, "inverted period")

	negative := decimal.NewFromInt(-10)
	_, err = svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart:  from,
		PeriodEnd:    to,
		GrossRevenue: &negative,
	})
	assert.ErrorIs(t, err, ErrValidation, "negative gross")
}

func TestSalesRecordOwnershipChain(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	record, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart: from,
		PeriodEnd:   to,
		Quantity:    1,
	})
	require.NoError(t, err)

	stranger := createTestUser(t, svc.db, "stranger")

	_, err = svc.GetSalesRecord(record.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.CreateSalesRecord(listing.ID, stranger.ID, &CreateSalesRecordRequest{
		PeriodStart: from,
		PeriodEnd:   to,
		Quantity:    1,
	})
	assert.ErrorIs(t, err, ErrNotFound, "cannot report sales on a foreign listing")

	err = svc.DeleteSalesRecord(record.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSalesRecordRecomputes(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	record, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart: from,
		PeriodEnd:   to,
		Quantity:    3,
	})
	require.NoError(t, err)

	// A new gross re-derives commission and net.
	gross := decimal.NewFromFloat(80.00)
	updated, err := svc.UpdateSalesRecord(record.ID, user.ID, &UpdateSalesRecordRequest{
		GrossRevenue: &gross,
	})
	require.NoError(t, err)

	var fresh models.SalesRecord
	require.NoError(t, svc.db.First(&fresh, "id = ?", updated.ID).Error)
	assert.True(t, fresh.GrossRevenue.Equal(gross))
	assert.True(t, fresh.CommissionAmount.Equal(decimal.NewFromFloat(5.20)))
	assert.True(t, fresh.NetRevenue.Equal(decimal.NewFromFloat(74.80)))
}

func TestUpdateSalesRecordQuantityKeepsGross(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	gross := decimal.NewFromFloat(45.00)
	record, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart:  from,
		PeriodEnd:    to,
		Quantity:     3,
		GrossRevenue: &gross,
	})
	require.NoError(t, err)

	// Correcting the quantity alone keeps the reported gross.
	five := 5
	_, err = svc.UpdateSalesRecord(record.ID, user.ID, &UpdateSalesRecordRequest{
		Quantity: &five,
	})
	require.NoError(t, err)

	var fresh models.SalesRecord
	require.NoError(t, svc.db.First(&fresh, "id = ?", record.ID).Error)
	assert.Equal(t, 5, fresh.Quantity)
	assert.True(t, fresh.GrossRevenue.Equal(gross))
}

func TestDeleteSalesRecord(t *testing.T) {
	svc, user, listing := salesFixture(t)
	from, to := period(t, "2026-07-01", "2026-07-31")

	record, err := svc.CreateSalesRecord(listing.ID, user.ID, &CreateSalesRecordRequest{
		PeriodStart: from,
		PeriodEnd:   to,
		Quantity:    1,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSalesRecord(record.ID, user.ID))

	_, err = svc.GetSalesRecord(record.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
