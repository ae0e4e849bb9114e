package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/constants"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/database"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, database.NewRedisClientWithClient(client)
}

func TestGetTariffFromDatabase(t *testing.T) {
	db, mock := setupMockDB(t)
	_, cache := setupMiniredis(t)
	repo := NewReferenceRepository(db, cache)

	tariffID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "vehicle_type", "service_type", "rate_per_km", "driver_allowance_per_day", "active", "created_at", "updated_at",
	}).AddRow(tariffID, "Sedan", "One Way", 12.0, 300.0, true, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("FROM tariffs")).
		WithArgs("Sedan", "One Way").
		WillReturnRows(rows)

	tariff, err := repo.GetTariff(context.Background(), "Sedan", "One Way")
	require.NoError(t, err)
	assert.Equal(t, tariffID, tariff.ID)
	assert.Equal(t, 12.0, tariff.RatePerKm)
}

func TestGetTariffServedFromCache(t *testing.T) {
	db, mock := setupMockDB(t)
	mr, cache := setupMiniredis(t)
	repo := NewReferenceRepository(db, cache)

	cached := models.Tariff{ID: uuid.New(), VehicleType: "Sedan", ServiceType: "One Way", RatePerKm: 15, Active: true}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	key := fmt.Sprintf(constants.KeyTariff, "Sedan", "One Way")
	require.NoError(t, mr.Set(key, string(payload)))

	tariff, err := repo.GetTariff(context.Background(), "Sedan", "One Way")
	require.NoError(t, err)
	assert.Equal(t, 15.0, tariff.RatePerKm)
	// no database expectation was set, so a DB hit would fail here
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTariffNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	_, cache := setupMiniredis(t)
	repo := NewReferenceRepository(db, cache)

	mock.ExpectQuery(regexp.QuoteMeta("FROM tariffs")).
		WithArgs("Bus", "One Way").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetTariff(context.Background(), "Bus", "One Way")
	assert.ErrorIs(t, err, booking.ErrTariffNotFound)
}

func TestGetActiveOffersCachesResult(t *testing.T) {
	db, mock := setupMockDB(t)
	mr, cache := setupMiniredis(t)
	repo := NewReferenceRepository(db, cache)

	offerID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)
	rows := sqlmock.NewRows([]string{
		"id", "name", "type", "value", "category", "active", "created_at", "updated_at",
	}).AddRow(offerID, "Festive", "Percentage", 10.0, "All", true, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM offers")).
		WillReturnRows(rows)

	offers, err := repo.GetActiveOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "Festive", offers[0].Name)

	assert.True(t, mr.Exists(constants.KeyActiveOffers))

	// second call is served from the cache
	again, err := repo.GetActiveOffers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, offers, again)
	assert.NoError(t, mock.ExpectationsWereMet())
}
