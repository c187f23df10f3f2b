package services

import (
	"context"
	"fmt"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type TestDriveService struct {
	testDriveRepo ports.TestDriveRepository
	logger        ports.LoggerPort
	validate      *validator.Validate
}

func NewTestDriveService(
	testDriveRepo ports.TestDriveRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *TestDriveService {
	return &TestDriveService{
		testDriveRepo: testDriveRepo,
		logger:        logger,
		validate:      validate,
	}
}

// Schedule runs the showroom rules, checks the slot against existing
// bookings and persists the request as pending. The lookup alone does
// not close the race between concurrent submissions; the repository
// maps the unique-index violation to the same ErrSlotTaken.
func (s *TestDriveService) Schedule(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error) {
	if err := td.ValidateSchedule(time.Now()); err != nil {
		s.logger.Warn("Test drive request rejected", map[string]interface{}{
			"reason":   err.Error(),
			"car_name": td.CarName,
		})
		return nil, err
	}

	if err := s.validate.Struct(td); err != nil {
		s.logger.Error("Test drive validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	taken, err := s.testDriveRepo.FindActiveBySlot(ctx, td.CarName, td.Date, td.Time)
	if err != nil {
		s.logger.Error("Slot lookup failed", map[string]interface{}{
			"error":    err.Error(),
			"car_name": td.CarName,
			"date":     td.Date,
			"time":     td.Time,
		})
		return nil, err
	}
	if taken {
		s.logger.Warn("Slot already booked", map[string]interface{}{
			"car_name": td.CarName,
			"date":     td.Date,
			"time":     td.Time,
		})
		return nil, domain.ErrSlotTaken
	}

	td.Status = domain.StatusPending

	createdTestDrive, err := s.testDriveRepo.CreateTestDrive(ctx, td)
	if err != nil {
		s.logger.Error("Failed to create test drive", map[string]interface{}{
			"error":    err.Error(),
			"car_name": td.CarName,
		})
		return nil, err
	}

	s.logger.Info("Test drive scheduled successfully", map[string]interface{}{
		"test_drive_id": createdTestDrive.ID,
		"car_name":      createdTestDrive.CarName,
		"date":          createdTestDrive.Date,
		"time":          createdTestDrive.Time,
	})

	return createdTestDrive, nil
}

func (s *TestDriveService) GetTestDriveByID(ctx context.Context, id int) (*domain.TestDrive, error) {
	td, err := s.testDriveRepo.GetTestDriveByID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get test drive", map[string]interface{}{
			"error":         err.Error(),
			"test_drive_id": id,
		})
		return nil, err
	}
	return td, nil
}

func (s *TestDriveService) ListTestDrives(ctx context.Context, filter domain.TestDriveFilter) ([]*domain.TestDrive, error) {
	drives, err := s.testDriveRepo.ListTestDrives(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list test drives", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved test drives", map[string]interface{}{
		"count": len(drives),
	})

	return drives, nil
}

func (s *TestDriveService) UpdateStatus(ctx context.Context, id int, status string) error {
	bookingStatus := domain.BookingStatus(status)
	if !bookingStatus.Valid() {
		s.logger.Warn("Invalid booking status", map[string]interface{}{
			"status":        status,
			"test_drive_id": id,
		})
		return domain.ErrInvalidStatus
	}

	if err := s.testDriveRepo.UpdateStatus(ctx, id, bookingStatus); err != nil {
		s.logger.Error("Failed to update test drive", map[string]interface{}{
			"error":         err.Error(),
			"test_drive_id": id,
		})
		return err
	}

	s.logger.Info("Test drive updated successfully", map[string]interface{}{
		"test_drive_id": id,
		"status":        status,
	})

	return nil
}

func (s *TestDriveService) DeleteTestDrive(ctx context.Context, id int) error {
	if err := s.testDriveRepo.DeleteTestDrive(ctx, id); err != nil {
		s.logger.Error("Failed to delete test drive", map[string]interface{}{
			"error":         err.Error(),
			"test_drive_id": id,
		})
		return err
	}

	s.logger.Info("Test drive deleted successfully", map[string]interface{}{
		"test_drive_id": id,
	})

	return nil
}
