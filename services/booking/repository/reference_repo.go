package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/constants"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/database"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
)

const (
	tariffCacheTTL = 10 * time.Minute
	offerCacheTTL  = 5 * time.Minute
)

// ReferenceRepo serves tariff and offer reference data with a Redis
// read-through cache in front of PostgreSQL. Cache failures fall back
// to the database silently.
type ReferenceRepo struct {
	db    *sqlx.DB
	cache *database.RedisClient
}

// NewReferenceRepository creates a new reference data repository
func NewReferenceRepository(db *sqlx.DB, cache *database.RedisClient) *ReferenceRepo {
	return &ReferenceRepo{
		db:    db,
		cache: cache,
	}
}

// GetTariff returns the active rate card for a vehicle and service type
func (r *ReferenceRepo) GetTariff(ctx context.Context, vehicleType, serviceType string) (*models.Tariff, error) {
	key := fmt.Sprintf(constants.KeyTariff, vehicleType, serviceType)

	if cached, err := r.cache.Get(ctx, key); err == nil {
		var tariff models.Tariff
		if err := json.Unmarshal([]byte(cached), &tariff); err == nil {
			return &tariff, nil
		}
	}

	query := `
		SELECT id, vehicle_type, service_type, rate_per_km, driver_allowance_per_day, active, created_at, updated_at
		FROM tariffs
		WHERE vehicle_type = $1 AND service_type = $2 AND active = true
	`

	var tariff models.Tariff
	err := r.db.GetContext(ctx, &tariff, query, vehicleType, serviceType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrTariffNotFound
		}
		return nil, fmt.Errorf("failed to get tariff: %w", err)
	}

	r.cacheSet(ctx, key, &tariff, tariffCacheTTL)
	return &tariff, nil
}

// GetOffer returns one offer by ID
func (r *ReferenceRepo) GetOffer(ctx context.Context, id uuid.UUID) (*models.Offer, error) {
	query := `
		SELECT id, name, type, value, category, active, created_at, updated_at
		FROM offers
		WHERE id = $1
	`

	var offer models.Offer
	err := r.db.GetContext(ctx, &offer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return &offer, nil
}

// GetActiveOffers returns all active offers, cached briefly since the
// quote endpoint hits this on every recomputation
func (r *ReferenceRepo) GetActiveOffers(ctx context.Context) ([]models.Offer, error) {
	if cached, err := r.cache.Get(ctx, constants.KeyActiveOffers); err == nil {
		var offers []models.Offer
		if err := json.Unmarshal([]byte(cached), &offers); err == nil {
			return offers, nil
		}
	}

	query := `
		SELECT id, name, type, value, category, active, created_at, updated_at
		FROM offers
		WHERE active = true
		ORDER BY created_at
	`

	var offers []models.Offer
	if err := r.db.SelectContext(ctx, &offers, query); err != nil {
		return nil, fmt.Errorf("failed to list active offers: %w", err)
	}

	r.cacheSet(ctx, constants.KeyActiveOffers, offers, offerCacheTTL)
	return offers, nil
}

func (r *ReferenceRepo) cacheSet(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, key, payload, ttl); err != nil {
		logger.Debug("Failed to cache reference data",
			logger.String("key", key),
			logger.Err(err))
	}
}
