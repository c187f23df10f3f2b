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

type UserHandler struct {
	userService *services.UserService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type UserProfileRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone    string `json:"phone,omitempty" example:"5551234567"`
	Location string `json:"location,omitempty" example:"Los Angeles, CA"`
	Bio      string `json:"bio,omitempty" example:"Weekend driver"`
}

func NewUserHandler(
	userService *services.UserService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Save user profile
// @Description Upsert keyed on email; the latest write wins
// @Tags users
// @Accept json
// @Produce json
// @Param request body UserProfileRequest true "Profile"
// @Success 201 {object} successResponse "Profile saved"
// @Failure 400 {object} errorResponse "Missing name or email"
// @Router /api/users [post]
func (h *UserHandler) SaveProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req UserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Name and email are required")
		return
	}

	user := &domain.UserProfile{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	}

	savedUser, err := h.userService.SaveProfile(c.Request.Context(), user)
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			newErrorResponse(c, http.StatusBadRequest, reason)
			return
		}
		h.logger.Error("Failed to save user profile", map[string]interface{}{
			"error": err.Error(),
			"email": req.Email,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to save user profile")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "User profile saved successfully", savedUser)
}

// @Summary Get user profile
// @Tags users
// @Accept json
// @Produce json
// @Param email path string true "User email"
// @Success 200 {object} successResponse "Profile found"
// @Failure 404 {object} errorResponse "User not found"
// @Router /api/users/{email} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	email := c.Param("email")

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "User not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	newSuccessResponse(c, http.StatusOK, "", user)
}
