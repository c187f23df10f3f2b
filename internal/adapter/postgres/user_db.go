package postgres

import (
	"context"
	"database/sql"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db,
	}
}

// UpsertUser inserts or rewrites a profile keyed on email. join_date is
// set on first insert only.
func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.UserProfile) (*domain.UserProfile, error) {
	query := `INSERT INTO users (name, email, phone, location, bio, join_date)
	VALUES ($1, $2, $3, $4, $5, CURRENT_DATE)
	ON CONFLICT (email) DO UPDATE SET
		name = EXCLUDED.name,
		phone = EXCLUDED.phone,
		location = EXCLUDED.location,
		bio = EXCLUDED.bio
    RETURNING id, name, email, COALESCE(phone, ''), COALESCE(location, ''), COALESCE(bio, ''), join_date, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Phone, user.Location, user.Bio,
	).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Location,
		&user.Bio,
		&user.JoinDate,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	query := `SELECT id, name, email, COALESCE(phone, ''), COALESCE(location, ''), COALESCE(bio, ''), join_date, created_at
              FROM users WHERE email = $1`

	user := &domain.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Location,
		&user.Bio,
		&user.JoinDate,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]*domain.UserProfile, error) {
	query := `SELECT id, name, email, COALESCE(phone, ''), COALESCE(location, ''), COALESCE(bio, ''), join_date, created_at
              FROM users ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.UserProfile
	for rows.Next() {
		user := &domain.UserProfile{}
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Location,
			&user.Bio,
			&user.JoinDate,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}
