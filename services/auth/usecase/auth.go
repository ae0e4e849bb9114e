package usecase

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/jwt"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/logger"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/auth"
)

// AuthUC implements the auth.AuthUseCase interface
type AuthUC struct {
	cfg      *models.Config
	userRepo auth.UserRepo
}

// NewAuthUC creates a new auth use case
func NewAuthUC(cfg *models.Config, userRepo auth.UserRepo) auth.AuthUseCase {
	return &AuthUC{
		cfg:      cfg,
		userRepo: userRepo,
	}
}

// Login verifies credentials and issues a JWT for the dashboard
func (uc *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Active {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
		logger.String("role", user.Role))

	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      user.Role,
	}, nil
}
