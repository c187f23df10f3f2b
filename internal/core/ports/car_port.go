package ports

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type CarRepository interface {
	ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	GetCarByID(ctx context.Context, carID int) (*domain.Car, error)
	CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, carID int) error
}

type CarService interface {
	ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	GetCarByID(ctx context.Context, carID int) (*domain.Car, error)
	CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error)
	DeleteCar(ctx context.Context, carID int) error
}
