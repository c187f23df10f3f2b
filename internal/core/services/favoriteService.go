package services

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
)

type FavoriteService struct {
	favoriteRepo ports.FavoriteRepository
	logger       ports.LoggerPort
}

func NewFavoriteService(
	favoriteRepo ports.FavoriteRepository,
	logger ports.LoggerPort,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

func (s *FavoriteService) AddFavorite(ctx context.Context, userEmail string, carID int) error {
	if err := s.favoriteRepo.AddFavorite(ctx, userEmail, carID); err != nil {
		s.logger.Warn("Failed to add favorite", map[string]interface{}{
			"error":      err.Error(),
			"user_email": userEmail,
			"car_id":     carID,
		})
		return err
	}

	s.logger.Info("Car added to favorites", map[string]interface{}{
		"user_email": userEmail,
		"car_id":     carID,
	})

	return nil
}

func (s *FavoriteService) ListFavoritesByEmail(ctx context.Context, userEmail string) ([]*domain.FavoriteCar, error) {
	favorites, err := s.favoriteRepo.ListFavoritesByEmail(ctx, userEmail)
	if err != nil {
		s.logger.Error("Failed to list favorites", map[string]interface{}{
			"error":      err.Error(),
			"user_email": userEmail,
		})
		return nil, err
	}

	s.logger.Info("Retrieved favorites", map[string]interface{}{
		"user_email": userEmail,
		"count":      len(favorites),
	})

	return favorites, nil
}

func (s *FavoriteService) RemoveFavorite(ctx context.Context, userEmail string, carID int) error {
	if err := s.favoriteRepo.RemoveFavorite(ctx, userEmail, carID); err != nil {
		s.logger.Warn("Failed to remove favorite", map[string]interface{}{
			"error":      err.Error(),
			"user_email": userEmail,
			"car_id":     carID,
		})
		return err
	}

	s.logger.Info("Car removed from favorites", map[string]interface{}{
		"user_email": userEmail,
		"car_id":     carID,
	})

	return nil
}
