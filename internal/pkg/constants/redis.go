package constants

// Redis key formats
const (
	// Route cache: resolved point-to-point legs keyed by geohash pair
	KeyRouteLeg = "route:leg:%s:%s" // Format: route:leg:{from_geohash}:{to_geohash}

	// Reference data cache
	KeyTariff       = "tariff:%s:%s" // Format: tariff:{vehicle_type}:{service_type}
	KeyActiveOffers = "offers:active"

	// Rate limiting
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{resource}:{ip}
)
