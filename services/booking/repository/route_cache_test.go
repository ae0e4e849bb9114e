package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

type countingProvider struct {
	calls int
	legs  []fare.LegDistance
}

func (p *countingProvider) Legs(_ context.Context, waypoints []fare.Waypoint) ([]fare.LegDistance, error) {
	p.calls++
	return p.legs, nil
}

func routePoints() []fare.Waypoint {
	return []fare.Waypoint{
		{Address: "Chennai", Latitude: 13.0827, Longitude: 80.2707},
		{Address: "Pondicherry", Latitude: 11.9416, Longitude: 79.8083},
	}
}

func TestCachedRouteProviderMissThenHit(t *testing.T) {
	_, cache := setupMiniredis(t)
	upstream := &countingProvider{
		legs: []fare.LegDistance{{FromIndex: 0, ToIndex: 1, DistanceKm: 160, DurationMin: 210}},
	}
	provider := NewCachedRouteProvider(upstream, cache, 30)

	legs, err := provider.Legs(context.Background(), routePoints())
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, 160.0, legs[0].DistanceKm)
	assert.Equal(t, 1, upstream.calls)

	// second resolution of the same pair must not hit the provider
	legs, err = provider.Legs(context.Background(), routePoints())
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, 160.0, legs[0].DistanceKm)
	assert.Equal(t, 210.0, legs[0].DurationMin)
	assert.Equal(t, 1, upstream.calls)
}

func TestCachedRouteProviderNearbyPointsShareCell(t *testing.T) {
	_, cache := setupMiniredis(t)
	upstream := &countingProvider{
		legs: []fare.LegDistance{{FromIndex: 0, ToIndex: 1, DistanceKm: 160, DurationMin: 210}},
	}
	provider := NewCachedRouteProvider(upstream, cache, 30)

	_, err := provider.Legs(context.Background(), routePoints())
	require.NoError(t, err)

	// a pickup a few meters away lands in the same geohash cell
	nearby := routePoints()
	nearby[0].Latitude += 0.0001

	legs, err := provider.Legs(context.Background(), nearby)
	require.NoError(t, err)
	require.Len(t, legs, 1)
	assert.Equal(t, 1, upstream.calls)
}

func TestCachedRouteProviderTooFewWaypoints(t *testing.T) {
	_, cache := setupMiniredis(t)
	upstream := &countingProvider{}
	provider := NewCachedRouteProvider(upstream, cache, 30)

	legs, err := provider.Legs(context.Background(), routePoints()[:1])
	require.NoError(t, err)
	assert.Nil(t, legs)
	assert.Zero(t, upstream.calls)
}
