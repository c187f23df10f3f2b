package services

import (
	"context"
	"testing"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type favKey struct {
	email string
	carID int
}

type memFavoriteRepo struct {
	known map[int]domain.Car
	saved map[favKey]time.Time
}

func newMemFavoriteRepo(cars ...domain.Car) *memFavoriteRepo {
	known := map[int]domain.Car{}
	for _, c := range cars {
		known[c.ID] = c
	}
	return &memFavoriteRepo{known: known, saved: map[favKey]time.Time{}}
}

func (r *memFavoriteRepo) AddFavorite(ctx context.Context, userEmail string, carID int) error {
	if _, ok := r.known[carID]; !ok {
		return domain.ErrNotFound
	}
	key := favKey{userEmail, carID}
	if _, ok := r.saved[key]; ok {
		return domain.ErrDuplicateFavorite
	}
	r.saved[key] = time.Now()
	return nil
}

func (r *memFavoriteRepo) ListFavoritesByEmail(ctx context.Context, userEmail string) ([]*domain.FavoriteCar, error) {
	var out []*domain.FavoriteCar
	for key, at := range r.saved {
		if key.email != userEmail {
			continue
		}
		out = append(out, &domain.FavoriteCar{
			Car:         r.known[key.carID],
			FavoritedAt: at,
		})
	}
	return out, nil
}

func (r *memFavoriteRepo) RemoveFavorite(ctx context.Context, userEmail string, carID int) error {
	key := favKey{userEmail, carID}
	if _, ok := r.saved[key]; !ok {
		return domain.ErrNotFound
	}
	delete(r.saved, key)
	return nil
}

func TestAddFavoriteRejectsDuplicatePair(t *testing.T) {
	repo := newMemFavoriteRepo(domain.Car{ID: 1, Name: "BMW X5"})
	svc := NewFavoriteService(repo, nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, "jane@example.com", 1))

	err := svc.AddFavorite(ctx, "jane@example.com", 1)
	assert.ErrorIs(t, err, domain.ErrDuplicateFavorite)

	// Another user may save the same car.
	assert.NoError(t, svc.AddFavorite(ctx, "john@example.com", 1))
}

func TestAddFavoriteUnknownCar(t *testing.T) {
	repo := newMemFavoriteRepo(domain.Car{ID: 1, Name: "BMW X5"})
	svc := NewFavoriteService(repo, nopLogger{})

	err := svc.AddFavorite(context.Background(), "jane@example.com", 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveFavorite(t *testing.T) {
	repo := newMemFavoriteRepo(domain.Car{ID: 1, Name: "BMW X5"})
	svc := NewFavoriteService(repo, nopLogger{})
	ctx := context.Background()

	require.NoError(t, svc.AddFavorite(ctx, "jane@example.com", 1))
	require.NoError(t, svc.RemoveFavorite(ctx, "jane@example.com", 1))

	// Removing a pair that was never added is not idempotent.
	err := svc.RemoveFavorite(ctx, "jane@example.com", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	favorites, err := svc.ListFavoritesByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}
