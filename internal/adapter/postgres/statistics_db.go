package postgres

import (
	"context"
	"database/sql"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type StatisticsRepository struct {
	db *sql.DB
}

func NewStatisticsRepository(db *sql.DB) *StatisticsRepository {
	return &StatisticsRepository{
		db,
	}
}

func (r *StatisticsRepository) CountTestDrivesByStatus(ctx context.Context, status domain.BookingStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM test_drives WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *StatisticsRepository) CountCars(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cars`).Scan(&count)
	return count, err
}

func (r *StatisticsRepository) CountMessagesByStatus(ctx context.Context, status domain.MessageStatus) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM contact_messages WHERE status = $1`, status).Scan(&count)
	return count, err
}

func (r *StatisticsRepository) RecentTestDrives(ctx context.Context, limit int) ([]*domain.TestDrive, error) {
	query := `SELECT id, name, email, phone, date, time, car_id, car_name, COALESCE(message, ''), status, created_at, updated_at
              FROM test_drives ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drives []*domain.TestDrive
	for rows.Next() {
		td, err := scanTestDrive(rows)
		if err != nil {
			return nil, err
		}
		drives = append(drives, td)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return drives, nil
}
