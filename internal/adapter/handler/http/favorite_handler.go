package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
	"github.com/autoluxe/luxury_cars_backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteService *services.FavoriteService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type FavoriteRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email" example:"jane@example.com"`
	CarID     int    `json:"carId" binding:"required" example:"3"`
}

type FavoriteCarInfo struct {
	CarInfo
	FavoritedAt time.Time `json:"favorited_at"`
}

func NewFavoriteHandler(
	favoriteService *services.FavoriteService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteService: favoriteService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary Add favorite
// @Description Saves a (user email, car) pair; duplicates are rejected
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body FavoriteRequest true "Favorite pair"
// @Success 201 {object} successResponse "Car added to favorites"
// @Failure 400 {object} errorResponse "Missing fields or duplicate pair"
// @Router /api/favorites [post]
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "User email and car ID are required")
		return
	}

	err := h.favoriteService.AddFavorite(c.Request.Context(), req.UserEmail, req.CarID)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateFavorite) {
			newErrorResponse(c, http.StatusBadRequest, "Car already in favorites")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Car not found")
			return
		}
		h.logger.Error("Failed to add favorite", map[string]interface{}{
			"error":      err.Error(),
			"user_email": req.UserEmail,
			"car_id":     req.CarID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to add to favorites")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Car added to favorites", nil)
}

// @Summary List favorites
// @Description Saved cars for a user, newest first
// @Tags favorites
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} successResponse "Favorite cars"
// @Router /api/favorites/{email} [get]
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	email := c.Param("email")

	favorites, err := h.favoriteService.ListFavoritesByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("Failed to list favorites", map[string]interface{}{
			"error":      err.Error(),
			"user_email": email,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch favorites")
		return
	}

	favoriteInfos := make([]FavoriteCarInfo, len(favorites))
	for i, fav := range favorites {
		favoriteInfos[i] = FavoriteCarInfo{
			CarInfo:     toCarInfo(&fav.Car),
			FavoritedAt: fav.FavoritedAt,
		}
	}

	newListResponse(c, len(favoriteInfos), favoriteInfos)
}

// @Summary Remove favorite
// @Description Removes a saved pair; a pair that was never added is a 404
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body FavoriteRequest true "Favorite pair"
// @Success 200 {object} successResponse "Car removed from favorites"
// @Failure 404 {object} errorResponse "Favorite not found"
// @Router /api/favorites [delete]
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "User email and car ID are required")
		return
	}

	err := h.favoriteService.RemoveFavorite(c.Request.Context(), req.UserEmail, req.CarID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Favorite not found")
			return
		}
		h.logger.Error("Failed to remove favorite", map[string]interface{}{
			"error":      err.Error(),
			"user_email": req.UserEmail,
			"car_id":     req.CarID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to remove favorite")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Car removed from favorites", nil)
}
