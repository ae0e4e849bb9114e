package utils

import (
	"github.com/mmcloughlin/geohash"
)

// RouteKeyPrecision is the geohash precision used for route cache keys.
// Precision 7 cells are roughly 150m across, tight enough that two
// pickups in the same cell share the same road distance.
const RouteKeyPrecision = 7

// EncodePoint converts a coordinate pair to a geohash cell identifier
func EncodePoint(latitude, longitude float64) string {
	return geohash.EncodeWithPrecision(latitude, longitude, RouteKeyPrecision)
}

// DecodePoint converts a geohash string back to coordinates
func DecodePoint(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}
