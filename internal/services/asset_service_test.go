// internal/services/asset_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selltrack/selltrack-backend/internal/models"
)

func TestAssetCRUDLifecycle(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "tracker")

	domain, err := CreateAsset(db, user.ID, &models.Domain{
		Name:      "selltrack.io",
		Registrar: "Namecheap",
		Cost:      decimal.NewFromFloat(12.99),
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, domain.UserID)

	fetched, err := GetAsset[models.Domain](db, domain.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "selltrack.io", fetched.Name)

	fetched.Registrar = "Porkbun"
	updated, err := UpdateAsset(db, domain.ID, user.ID, fetched)
	require.NoError(t, err)
	assert.Equal(t, "Porkbun", updated.Registrar)

	require.NoError(t, DeleteAsset[models.Domain](db, domain.ID, user.ID))
	_, err = GetAsset[models.Domain](db, domain.ID, user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAssetRequiresName(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "tracker")

	_, err := CreateAsset(db, user.ID, &models.Domain{Registrar: "Namecheap"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = CreateAsset(db, user.ID, &models.HostingAccount{Plan: "Starter"})
	assert.ErrorIs(t, err, ErrValidation, "hosting accounts key off the provider")
}

func TestAssetsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")
	stranger := createTestUser(t, db, "stranger")

	server, err := CreateAsset(db, owner.ID, &models.ServerInstance{
		Name:     "web-1",
		Provider: "Hetzner",
	})
	require.NoError(t, err)

	_, err = GetAsset[models.ServerInstance](db, server.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	err = DeleteAsset[models.ServerInstance](db, server.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	mine, err := ListAssets[models.ServerInstance](db, owner.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	theirs, err := ListAssets[models.ServerInstance](db, stranger.ID)
	require.NoError(t, err)
	assert.Empty(t, theirs)
}

func TestUpdateAssetIgnoresOwnerInPayload(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "owner")

	project, err := CreateAsset(db, owner.ID, &models.Project{Name: "Relaunch"})
	require.NoError(t, err)

	// A payload claiming a different owner must not reassign the row.
	payload := &models.Project{Name: "Relaunch v2", UserID: uuid.New()}
	updated, err := UpdateAsset(db, project.ID, owner.ID, payload)
	require.NoError(t, err)

	assert.Equal(t, "Relaunch v2", updated.Name)
	assert.Equal(t, owner.ID, updated.UserID)
}
