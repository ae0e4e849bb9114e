package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	nr "github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every HTTP request with timing, status and
// identity context. Attaches request attributes to the New Relic
// transaction when one is present.
func ZapEchoMiddleware(zapLogger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			req := c.Request()
			res := c.Response()

			userID := ""
			if uid, ok := c.Get("user_id").(string); ok {
				userID = uid
			}

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = res.Header().Get(echo.HeaderXRequestID)
			}

			txn := nr.FromContext(req.Context())
			if txn != nil {
				txn.AddAttribute("http.latency_ms", latency.Milliseconds())
				txn.AddAttribute("user_id", userID)
				txn.AddAttribute("request_id", requestID)
			}

			zapLogger.LogHTTPRequest(
				txn,
				req.Method,
				req.URL.Path,
				c.RealIP(),
				userID,
				requestID,
				res.Status,
				latency,
				err,
			)

			return nil
		}
	}
}
