package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/database"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/middleware"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/utils"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/auth"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	authUC auth.AuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// RegisterRoutes registers the auth routes. Login is rate limited per
// IP to slow down credential stuffing.
func (h *AuthHandler) RegisterRoutes(e *echo.Echo, cfg *models.Config, redisClient *database.RedisClient) {
	g := e.Group("/api/v1/auth")

	limiter := middleware.IPRateLimiter(
		cfg.RateLimit.LoginLimit,
		time.Duration(cfg.RateLimit.LoginPeriodMin)*time.Minute,
		redisClient.GetClient(),
	)

	g.POST("/login", h.Login, limiter)
}

// Login verifies credentials and returns a JWT
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		middleware.NoticeError(c, err)
		return utils.InternalServerErrorResponse(c, "Internal server error")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}
