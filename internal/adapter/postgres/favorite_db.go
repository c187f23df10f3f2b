package postgres

import (
	"context"
	"database/sql"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/lib/pq"
)

type FavoriteRepository struct {
	db   *sql.DB
	cars *CarRepository
}

func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{
		db:   db,
		cars: NewCarRepository(db),
	}
}

// AddFavorite is deliberately not idempotent: a duplicate pair surfaces
// as ErrDuplicateFavorite so the client can tell the car was already
// saved.
func (r *FavoriteRepository) AddFavorite(ctx context.Context, userEmail string, carID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_email, car_id) VALUES ($1, $2)`,
		userEmail, carID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505":
				return domain.ErrDuplicateFavorite
			case "23503":
				return domain.ErrNotFound
			}
		}
		return err
	}
	return nil
}

func (r *FavoriteRepository) ListFavoritesByEmail(ctx context.Context, userEmail string) ([]*domain.FavoriteCar, error) {
	query := `SELECT c.id, c.name, c.price, c.year, c.mileage, c.fuel, c.transmission,
                     c.rating, c.reviews, c.description, c.created_at, f.created_at AS favorited_at
              FROM favorites f
              JOIN cars c ON f.car_id = c.id
              WHERE f.user_email = $1
              ORDER BY f.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*domain.FavoriteCar
	var carPtrs []*domain.Car
	var carIDs []int

	for rows.Next() {
		fav := &domain.FavoriteCar{}
		err := rows.Scan(
			&fav.ID,
			&fav.Name,
			&fav.Price,
			&fav.Year,
			&fav.Mileage,
			&fav.Fuel,
			&fav.Transmission,
			&fav.Rating,
			&fav.Reviews,
			&fav.Description,
			&fav.CreatedAt,
			&fav.FavoritedAt,
		)
		if err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
		carPtrs = append(carPtrs, &fav.Car)
		carIDs = append(carIDs, fav.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err := r.cars.attachImagesAndFeatures(ctx, carPtrs, carIDs); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *FavoriteRepository) RemoveFavorite(ctx context.Context, userEmail string, carID int) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_email = $1 AND car_id = $2`,
		userEmail, carID)
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
