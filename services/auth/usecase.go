package auth

import (
	"context"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// AuthUseCase defines the authentication operations
type AuthUseCase interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}
