package fare

// ComputeDistance sums externally measured legs into a trip total.
// An itinerary without a usable waypoint sequence aggregates to zero,
// upstream forms block submission in that case.
func ComputeDistance(waypoints []Waypoint, legs []LegDistance) TravelSummary {
	if len(waypoints) < 2 {
		return TravelSummary{}
	}

	var summary TravelSummary
	for _, leg := range legs {
		if leg.FromIndex < 0 || leg.ToIndex >= len(waypoints) {
			continue
		}
		if leg.DistanceKm < 0 || leg.DurationMin < 0 {
			continue
		}
		summary.TotalDistanceKm += leg.DistanceKm
		summary.TotalDurationMin += leg.DurationMin
	}

	return summary
}
