package services

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
)

type StatisticsService struct {
	statsRepo ports.StatisticsRepository
	logger    ports.LoggerPort
}

func NewStatisticsService(
	statsRepo ports.StatisticsRepository,
	logger ports.LoggerPort,
) *StatisticsService {
	return &StatisticsService{
		statsRepo: statsRepo,
		logger:    logger,
	}
}

// Collect gathers the dashboard counters with independent lookups; the
// numbers are informational and need not be a consistent snapshot.
func (s *StatisticsService) Collect(ctx context.Context) (*ports.DashboardStats, error) {
	pending, err := s.statsRepo.CountTestDrivesByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("Failed to count pending test drives", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	totalCars, err := s.statsRepo.CountCars(ctx)
	if err != nil {
		s.logger.Error("Failed to count cars", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	newMessages, err := s.statsRepo.CountMessagesByStatus(ctx, domain.MessageNew)
	if err != nil {
		s.logger.Error("Failed to count messages", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	recent, err := s.statsRepo.RecentTestDrives(ctx, 5)
	if err != nil {
		s.logger.Error("Failed to fetch recent test drives", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	if recent == nil {
		recent = []*domain.TestDrive{}
	}

	return &ports.DashboardStats{
		PendingTestDrives: pending,
		TotalCars:         totalCars,
		NewMessages:       newMessages,
		RecentTestDrives:  recent,
	}, nil
}
