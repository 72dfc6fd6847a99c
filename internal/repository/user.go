package repository

import (
	"context"

	"github.com/itemsim/server/internal/domain"
)

// User defines the interface for account persistence
type User interface {
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	InsertUser(ctx context.Context, user *domain.User) error
}
