package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/auth"
)

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "silver-taxi-dashboard",
		},
	}
}

func testUser(t *testing.T, password string, active bool) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           uuid.New(),
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       active,
		CreatedAt:    time.Now(),
	}
}

func TestLoginSuccess(t *testing.T) {
	user := testUser(t, "secret123", true)
	repo := &fakeUserRepo{users: map[string]*models.User{user.Email: user}}
	uc := NewAuthUC(testConfig(), repo)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.Role)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestLoginWrongPassword(t *testing.T) {
	user := testUser(t, "secret123", true)
	repo := &fakeUserRepo{users: map[string]*models.User{user.Email: user}}
	uc := NewAuthUC(testConfig(), repo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := &fakeUserRepo{users: map[string]*models.User{}}
	uc := NewAuthUC(testConfig(), repo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginInactiveAccount(t *testing.T) {
	user := testUser(t, "secret123", false)
	repo := &fakeUserRepo{users: map[string]*models.User{user.Email: user}}
	uc := NewAuthUC(testConfig(), repo)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    user.Email,
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
