package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/lib/pq"
)

type TestDriveRepository struct {
	db *sql.DB
}

func NewTestDriveRepository(db *sql.DB) *TestDriveRepository {
	return &TestDriveRepository{
		db,
	}
}

func (r *TestDriveRepository) CreateTestDrive(ctx context.Context, td *domain.TestDrive) (*domain.TestDrive, error) {
	query := `INSERT INTO test_drives (name, email, phone, date, time, car_id, car_name, message)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, status, created_at, updated_at`

	err := r.db.QueryRowContext(ctx, query,
		td.Name, td.Email, td.Phone, td.Date, td.Time, td.CarID, td.CarName, td.Message,
	).Scan(
		&td.ID,
		&td.Status,
		&td.CreatedAt,
		&td.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				// partial unique index over non-cancelled bookings
				return nil, domain.ErrSlotTaken
			case "23503":
				return nil, domain.ErrNotFound
			case "23502":
				return nil, fmt.Errorf("required field is missing")
			default:
				return nil, err
			}
		}
		return nil, err
	}
	return td, nil
}

func (r *TestDriveRepository) GetTestDriveByID(ctx context.Context, id int) (*domain.TestDrive, error) {
	query := `SELECT id, name, email, phone, date, time, car_id, car_name, COALESCE(message, ''), status, created_at, updated_at
              FROM test_drives WHERE id = $1`

	td, err := scanTestDrive(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return td, nil
}

func (r *TestDriveRepository) ListTestDrives(ctx context.Context, filter domain.TestDriveFilter) ([]*domain.TestDrive, error) {
	clause := ""
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		clause += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Date != "" {
		args = append(args, filter.Date)
		clause += fmt.Sprintf(" AND date = $%d", len(args))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		clause += fmt.Sprintf(" AND email = $%d", len(args))
	}

	query := `SELECT id, name, email, phone, date, time, car_id, car_name, COALESCE(message, ''), status, created_at, updated_at
              FROM test_drives WHERE 1=1` + clause + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
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

func (r *TestDriveRepository) FindActiveBySlot(ctx context.Context, carName, date, slot string) (bool, error) {
	query := `SELECT EXISTS (
                SELECT 1 FROM test_drives
                WHERE car_name = $1 AND date = $2 AND time = $3 AND status <> 'cancelled')`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, carName, date, slot).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TestDriveRepository) UpdateStatus(ctx context.Context, id int, status domain.BookingStatus) error {
	query := `UPDATE test_drives SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TestDriveRepository) DeleteTestDrive(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM test_drives WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanTestDrive normalizes the DATE column back to the wire format.
func scanTestDrive(row rowScanner) (*domain.TestDrive, error) {
	td := &domain.TestDrive{}
	var date time.Time

	err := row.Scan(
		&td.ID,
		&td.Name,
		&td.Email,
		&td.Phone,
		&date,
		&td.Time,
		&td.CarID,
		&td.CarName,
		&td.Message,
		&td.Status,
		&td.CreatedAt,
		&td.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	td.Date = date.Format(domain.DateLayout)
	return td, nil
}
