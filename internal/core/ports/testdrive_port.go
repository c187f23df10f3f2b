package ports

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type TestDriveRepository interface {
	CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error)
	GetTestDriveByID(ctx context.Context, id int) (*domain.TestDrive, error)
	ListTestDrives(ctx context.Context, filter domain.TestDriveFilter) ([]*domain.TestDrive, error)
	// FindActiveBySlot returns true when a non-cancelled booking holds
	// the (car name, date, time) combination.
	FindActiveBySlot(ctx context.Context, carName, date, slot string) (bool, error)
	UpdateStatus(ctx context.Context, id int, status domain.BookingStatus) error
	DeleteTestDrive(ctx context.Context, id int) error
}

type TestDriveService interface {
	Schedule(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error)
	GetTestDriveByID(ctx context.Context, id int) (*domain.TestDrive, error)
	ListTestDrives(ctx context.Context, filter domain.TestDriveFilter) ([]*domain.TestDrive, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	DeleteTestDrive(ctx context.Context, id int) error
}
