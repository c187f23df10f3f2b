package ports

import (
	"context"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

// DashboardStats are the aggregate counts shown on the operations
// dashboard.
type DashboardStats struct {
	PendingTestDrives int                 `json:"pendingTestDrives"`
	TotalCars         int                 `json:"totalCars"`
	NewMessages       int                 `json:"newMessages"`
	RecentTestDrives  []*domain.TestDrive `json:"recentTestDrives"`
}

type StatisticsRepository interface {
	CountTestDrivesByStatus(ctx context.Context, status domain.BookingStatus) (int, error)
	CountCars(ctx context.Context) (int, error)
	CountMessagesByStatus(ctx context.Context, status domain.MessageStatus) (int, error)
	RecentTestDrives(ctx context.Context, limit int) ([]*domain.TestDrive, error)
}
