package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/lib/pq"
)

type CarRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) *CarRepository {
	return &CarRepository{
		db,
	}
}

// buildCarFilter turns the optional catalog filters into a conjunctive
// WHERE tail. Make is a case-sensitive substring match against the full
// car name; there is no separate manufacturer column.
func buildCarFilter(filter domain.CarFilter) (string, []interface{}) {
	clause := ""
	var args []interface{}

	if filter.Make != "" {
		args = append(args, "%"+filter.Make+"%")
		clause += fmt.Sprintf(" AND name LIKE $%d", len(args))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		clause += fmt.Sprintf(" AND year = $%d", len(args))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		clause += fmt.Sprintf(" AND price >= $%d", len(args))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clause += fmt.Sprintf(" AND price <= $%d", len(args))
	}
	if filter.Fuel != "" {
		args = append(args, filter.Fuel)
		clause += fmt.Sprintf(" AND fuel = $%d", len(args))
	}

	return clause, args
}

func (r *CarRepository) ListCars(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	clause, args := buildCarFilter(filter)
	query := `SELECT id, name, price, year, mileage, fuel, transmission, rating, reviews, description, created_at
              FROM cars WHERE 1=1` + clause + ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []*domain.Car
	var carIDs []int

	for rows.Next() {
		car := &domain.Car{}
		err := rows.Scan(
			&car.ID,
			&car.Name,
			&car.Price,
			&car.Year,
			&car.Mileage,
			&car.Fuel,
			&car.Transmission,
			&car.Rating,
			&car.Reviews,
			&car.Description,
			&car.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cars = append(cars, car)
		carIDs = append(carIDs, car.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachImagesAndFeatures(ctx, cars, carIDs); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) GetCarByID(ctx context.Context, carID int) (*domain.Car, error) {
	query := `SELECT id, name, price, year, mileage, fuel, transmission, rating, reviews, description, created_at
              FROM cars WHERE id = $1`

	car := &domain.Car{}
	err := r.db.QueryRowContext(ctx, query, carID).Scan(
		&car.ID,
		&car.Name,
		&car.Price,
		&car.Year,
		&car.Mileage,
		&car.Fuel,
		&car.Transmission,
		&car.Rating,
		&car.Reviews,
		&car.Description,
		&car.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.attachImagesAndFeatures(ctx, []*domain.Car{car}, []int{car.ID}); err != nil {
		return nil, err
	}
	return car, nil
}

func (r *CarRepository) CreateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	query := `INSERT INTO cars (name, price, year, mileage, fuel, transmission, rating, reviews, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		car.Name, car.Price, car.Year, car.Mileage, car.Fuel,
		car.Transmission, car.Rating, car.Reviews, car.Description,
	).Scan(&car.ID, &car.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("required field is missing")
		}
		return nil, err
	}

	for _, img := range car.Images {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO car_images (car_id, image_url, is_primary, display_order) VALUES ($1, $2, $3, $4)`,
			car.ID, img.URL, img.IsPrimary, img.DisplayOrder)
		if err != nil {
			return nil, err
		}
	}
	for pos, feature := range car.Features {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO car_features (car_id, feature, position) VALUES ($1, $2, $3)`,
			car.ID, feature, pos)
		if err != nil {
			return nil, err
		}
	}

	return car, nil
}

func (r *CarRepository) UpdateCar(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	query := `UPDATE cars
		SET
			name = COALESCE(NULLIF($1, ''), name),
			price = COALESCE(NULLIF($2, 0.0), price),
			year = COALESCE(NULLIF($3, 0), year),
			mileage = COALESCE(NULLIF($4, ''), mileage),
			fuel = COALESCE(NULLIF($5, ''), fuel),
			transmission = COALESCE(NULLIF($6, ''), transmission),
			rating = COALESCE(NULLIF($7, 0.0), rating),
			reviews = COALESCE(NULLIF($8, 0), reviews),
			description = COALESCE(NULLIF($9, ''), description)
		WHERE id = $10
		RETURNING id, name, price, year, mileage, fuel, transmission, rating, reviews, description, created_at`

	err := r.db.QueryRowContext(ctx, query,
		car.Name, car.Price, car.Year, car.Mileage, string(car.Fuel),
		car.Transmission, car.Rating, car.Reviews, car.Description, car.ID,
	).Scan(
		&car.ID,
		&car.Name,
		&car.Price,
		&car.Year,
		&car.Mileage,
		&car.Fuel,
		&car.Transmission,
		&car.Rating,
		&car.Reviews,
		&car.Description,
		&car.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating car: %w", err)
	}

	return car, nil
}

func (r *CarRepository) DeleteCar(ctx context.Context, carID int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, carID)
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

// attachImagesAndFeatures fills the one-to-many relations for a set of
// cars with two batched lookups instead of a query per car.
func (r *CarRepository) attachImagesAndFeatures(ctx context.Context, cars []*domain.Car, carIDs []int) error {
	if len(cars) == 0 {
		return nil
	}

	byID := make(map[int]*domain.Car, len(cars))
	for _, car := range cars {
		byID[car.ID] = car
	}

	imgRows, err := r.db.QueryContext(ctx,
		`SELECT id, car_id, image_url, is_primary, display_order
         FROM car_images WHERE car_id = ANY($1) ORDER BY car_id, display_order`,
		pq.Array(carIDs))
	if err != nil {
		return err
	}
	defer imgRows.Close()

	for imgRows.Next() {
		img := domain.CarImage{}
		if err := imgRows.Scan(&img.ID, &img.CarID, &img.URL, &img.IsPrimary, &img.DisplayOrder); err != nil {
			return err
		}
		if car, ok := byID[img.CarID]; ok {
			car.Images = append(car.Images, img)
		}
	}
	if err = imgRows.Err(); err != nil {
		return err
	}

	featRows, err := r.db.QueryContext(ctx,
		`SELECT car_id, feature FROM car_features WHERE car_id = ANY($1) ORDER BY car_id, position`,
		pq.Array(carIDs))
	if err != nil {
		return err
	}
	defer featRows.Close()

	for featRows.Next() {
		var carID int
		var feature string
		if err := featRows.Scan(&carID, &feature); err != nil {
			return err
		}
		if car, ok := byID[carID]; ok {
			car.Features = append(car.Features, feature)
		}
	}
	return featRows.Err()
}
