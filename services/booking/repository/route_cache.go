package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/constants"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/database"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/utils"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

type cachedLeg struct {
	DistanceKm  float64 `json:"distance_km"`
	DurationMin float64 `json:"duration_min"`
}

// CachedRouteProvider fronts the routing gateway with a Redis cache.
// Legs are keyed by the geohash cells of their endpoints, so nearby
// coordinates share cache entries and the quote endpoint does not hit
// the provider on every keystroke.
type CachedRouteProvider struct {
	provider booking.RouteProvider
	cache    *database.RedisClient
	ttl      time.Duration
}

// NewCachedRouteProvider wraps a route provider with leg caching
func NewCachedRouteProvider(provider booking.RouteProvider, cache *database.RedisClient, ttlMin int) *CachedRouteProvider {
	ttl := 30 * time.Minute
	if ttlMin > 0 {
		ttl = time.Duration(ttlMin) * time.Minute
	}
	return &CachedRouteProvider{
		provider: provider,
		cache:    cache,
		ttl:      ttl,
	}
}

// Legs resolves consecutive waypoint pairs, serving cached legs where
// possible and querying the provider only for the misses
func (p *CachedRouteProvider) Legs(ctx context.Context, waypoints []fare.Waypoint) ([]fare.LegDistance, error) {
	if len(waypoints) < 2 {
		return nil, nil
	}

	legs := make([]fare.LegDistance, 0, len(waypoints)-1)
	var missing []fare.Waypoint
	var missingAt []int

	for i := 0; i < len(waypoints)-1; i++ {
		key := p.legKey(waypoints[i], waypoints[i+1])

		cached, err := p.cache.Get(ctx, key)
		if err == nil {
			var leg cachedLeg
			if err := json.Unmarshal([]byte(cached), &leg); err == nil {
				legs = append(legs, fare.LegDistance{
					FromIndex:   i,
					ToIndex:     i + 1,
					DistanceKm:  leg.DistanceKm,
					DurationMin: leg.DurationMin,
				})
				continue
			}
		}

		if len(missing) == 0 {
			missing = append(missing, waypoints[i])
		}
		missing = append(missing, waypoints[i+1])
		missingAt = append(missingAt, i)
		legs = append(legs, fare.LegDistance{FromIndex: i, ToIndex: i + 1})
	}

	if len(missingAt) == 0 {
		return legs, nil
	}

	// one provider call covers the full sequence; cheaper than a call
	// per missing pair and the provider prices per request
	resolved, err := p.provider.Legs(ctx, waypoints)
	if err != nil {
		return nil, err
	}

	byPair := make(map[int]fare.LegDistance, len(resolved))
	for _, leg := range resolved {
		byPair[leg.FromIndex] = leg
	}

	for _, i := range missingAt {
		leg, ok := byPair[i]
		if !ok {
			continue
		}
		legs[i] = leg
		p.store(ctx, waypoints[i], waypoints[i+1], leg)
	}

	return legs, nil
}

func (p *CachedRouteProvider) legKey(from, to fare.Waypoint) string {
	return fmt.Sprintf(constants.KeyRouteLeg,
		utils.EncodePoint(from.Latitude, from.Longitude),
		utils.EncodePoint(to.Latitude, to.Longitude))
}

func (p *CachedRouteProvider) store(ctx context.Context, from, to fare.Waypoint, leg fare.LegDistance) {
	payload, err := json.Marshal(cachedLeg{
		DistanceKm:  leg.DistanceKm,
		DurationMin: leg.DurationMin,
	})
	if err != nil {
		return
	}
	if err := p.cache.Set(ctx, p.legKey(from, to), payload, p.ttl); err != nil {
		logger.Debug("Failed to cache route leg", logger.Err(err))
	}
}
