package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type CarService struct {
	carRepo  ports.CarRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewCarService(
	carRepo ports.CarRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *CarService {
	return &CarService{
		carRepo:  carRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func (s *CarService) ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	cars, err := s.carRepo.ListCars(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list cars", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved cars", map[string]interface{}{
		"cars_count": len(cars),
	})

	return cars, nil
}

func (s *CarService) GetCarByID(ctx context.Context, carID int) (*domain.Car, error) {
	cacheKey := fmt.Sprintf("car:%d", carID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedCar domain.Car
		if err := json.Unmarshal(cachedData, &cachedCar); err == nil {
			s.logger.Info("Car found in cache", map[string]interface{}{
				"car_id": carID,
			})
			return &cachedCar, nil
		}
	}

	car, err := s.carRepo.GetCarByID(ctx, carID)
	if err != nil {
		s.logger.Error("Failed to get car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
		return nil, err
	}

	carData, err := json.Marshal(car)
	if err != nil {
		s.logger.Warn("Failed to marshal car for cache", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
	} else {
		if err := s.cache.Set(cacheKey, carData, 15*time.Minute); err != nil {
			s.logger.Warn("Failed to cache car", map[string]interface{}{
				"error":  err.Error(),
				"car_id": carID,
			})
		}
	}

	return car, nil
}

func (s *CarService) CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	if err := s.validate.Struct(car); err != nil {
		s.logger.Error("Car validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	createdCar, err := s.carRepo.CreateCar(ctx, car)
	if err != nil {
		s.logger.Error("Failed to create car", map[string]interface{}{
			"error": err.Error(),
			"name":  car.Name,
		})
		return nil, err
	}

	s.logger.Info("Car created successfully", map[string]interface{}{
		"car_id": createdCar.ID,
		"name":   createdCar.Name,
	})

	return createdCar, nil
}

func (s *CarService) UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	updatedCar, err := s.carRepo.UpdateCar(ctx, car)
	if err != nil {
		s.logger.Error("Failed to update car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": car.ID,
		})
		return nil, err
	}

	s.invalidate(car.ID)

	s.logger.Info("Car updated successfully", map[string]interface{}{
		"car_id": car.ID,
	})

	return updatedCar, nil
}

func (s *CarService) DeleteCar(ctx context.Context, carID int) error {
	err := s.carRepo.DeleteCar(ctx, carID)
	if err != nil {
		s.logger.Error("Failed to delete car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
		return err
	}

	s.invalidate(carID)

	s.logger.Info("Car deleted successfully", map[string]interface{}{
		"car_id": carID,
	})

	return nil
}

func (s *CarService) invalidate(carID int) {
	cacheKey := fmt.Sprintf("car:%d", carID)
	if err := s.cache.Delete(cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate car cache", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
	}
}
