package ports

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userEmail string, carID int) error
	ListFavoritesByEmail(ctx context.Context, userEmail string) ([]*domain.FavoriteCar, error)
	RemoveFavorite(ctx context.Context, userEmail string, carID int) error
}
