package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/services"

	"github.com/gin-gonic/gin"
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

func newFavoriteEngine(cars ...domain.Car) *gin.Engine {
	repo := newMemFavoriteRepo(cars...)
	svc := services.NewFavoriteService(repo, nopLogger{})
	handler := NewFavoriteHandler(svc, nopLogger{}, nopMetrics{})

	engine := gin.New()
	engine.POST("/api/favorites", handler.AddFavorite)
	engine.GET("/api/favorites/:email", handler.ListFavorites)
	engine.DELETE("/api/favorites", handler.RemoveFavorite)
	return engine
}

func TestAddFavorite(t *testing.T) {
	engine := newFavoriteEngine(domain.Car{ID: 1, Name: "BMW X5"})
	body := map[string]interface{}{"userEmail": "jane@example.com", "carId": 1}

	rec, env := doJSON(t, engine, http.MethodPost, "/api/favorites", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Car added to favorites", env.Message)

	// The same pair again is a duplicate, not an idempotent no-op.
	rec, env = doJSON(t, engine, http.MethodPost, "/api/favorites", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Car already in favorites", env.Message)
}

func TestAddFavoriteUnknownCar(t *testing.T) {
	engine := newFavoriteEngine(domain.Car{ID: 1, Name: "BMW X5"})

	rec, env := doJSON(t, engine, http.MethodPost, "/api/favorites", map[string]interface{}{
		"userEmail": "jane@example.com",
		"carId":     42,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Car not found", env.Message)
}

func TestAddFavoriteMissingFields(t *testing.T) {
	engine := newFavoriteEngine()

	rec, env := doJSON(t, engine, http.MethodPost, "/api/favorites", map[string]interface{}{
		"userEmail": "jane@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "User email and car ID are required", env.Message)
}

func TestListFavorites(t *testing.T) {
	engine := newFavoriteEngine(
		domain.Car{ID: 1, Name: "BMW X5"},
		domain.Car{ID: 2, Name: "Audi RS7"},
	)

	for _, carID := range []int{1, 2} {
		rec, _ := doJSON(t, engine, http.MethodPost, "/api/favorites", map[string]interface{}{
			"userEmail": "jane@example.com",
			"carId":     carID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec, env := doJSON(t, engine, http.MethodGet, "/api/favorites/jane@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)

	// Another user sees an empty list, not an error.
	rec, env = doJSON(t, engine, http.MethodGet, "/api/favorites/john@example.com", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}

func TestRemoveFavoriteNotFound(t *testing.T) {
	engine := newFavoriteEngine(domain.Car{ID: 1, Name: "BMW X5"})
	body := map[string]interface{}{"userEmail": "jane@example.com", "carId": 1}

	rec, env := doJSON(t, engine, http.MethodDelete, "/api/favorites", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Favorite not found", env.Message)

	rec, _ = doJSON(t, engine, http.MethodPost, "/api/favorites", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env = doJSON(t, engine, http.MethodDelete, "/api/favorites", body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Car removed from favorites", env.Message)
}
