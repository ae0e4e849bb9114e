package gateway

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	httpclient "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/http"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/retry"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/fare"
)

// routeResponse is the wire shape of the routing provider's answer
type routeResponse struct {
	Legs []struct {
		DistanceMeters  float64 `json:"distance_meters"`
		DurationSeconds float64 `json:"duration_seconds"`
	} `json:"legs"`
}

// RoutingGateway resolves road distances from the external routing
// provider. Transient failures are retried with backoff.
type RoutingGateway struct {
	client  *httpclient.Client
	retrier *retry.Retrier
}

// NewRoutingGateway creates a new routing gateway
func NewRoutingGateway(client *httpclient.Client, retrier *retry.Retrier) *RoutingGateway {
	return &RoutingGateway{
		client:  client,
		retrier: retrier,
	}
}

// Legs queries the provider for the full waypoint sequence and maps
// the answer onto consecutive index pairs
func (g *RoutingGateway) Legs(ctx context.Context, waypoints []fare.Waypoint) ([]fare.LegDistance, error) {
	if len(waypoints) < 2 {
		return nil, nil
	}

	coords := make([]string, 0, len(waypoints))
	for _, w := range waypoints {
		coords = append(coords, fmt.Sprintf("%f,%f", w.Latitude, w.Longitude))
	}

	path := "/route?points=" + url.QueryEscape(strings.Join(coords, "|"))

	var resp routeResponse
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.GetJSON(ctx, path, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("routing provider request failed: %w", err)
	}

	if len(resp.Legs) != len(waypoints)-1 {
		return nil, fmt.Errorf("routing provider returned %d legs for %d waypoints", len(resp.Legs), len(waypoints))
	}

	legs := make([]fare.LegDistance, 0, len(resp.Legs))
	for i, leg := range resp.Legs {
		legs = append(legs, fare.LegDistance{
			FromIndex:   i,
			ToIndex:     i + 1,
			DistanceKm:  leg.DistanceMeters / 1000,
			DurationMin: leg.DurationSeconds / 60,
		})
	}

	return legs, nil
}
