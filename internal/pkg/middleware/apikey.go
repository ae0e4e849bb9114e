package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/utils"
)

const (
	APIKeyHeader = "X-API-Key"
)

// ValidateAPIKey validates the API key for machine-to-machine callers,
// such as the vendor portal posting bookings into the dashboard.
func ValidateAPIKey(allowedKeys ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "API key is required")
			}

			validKey := false
			for _, allowed := range allowedKeys {
				if allowed != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(allowed)) == 1 {
					validKey = true
					break
				}
			}

			if !validKey {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}
