package auth

import (
	"context"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// UserRepo defines dashboard account lookup operations
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
