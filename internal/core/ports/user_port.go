package ports

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type UserRepository interface {
	UpsertUser(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	ListUsers(ctx context.Context) ([]*domain.UserProfile, error)
}
