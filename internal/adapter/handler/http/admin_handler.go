package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
	"github.com/autoluxe/luxury_cars_backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

// AdminHandler is the credential-gated console: one configured staff
// account, direct CRUD over the same tables the storefront reads.
type AdminHandler struct {
	carService     *services.CarService
	contactService *services.ContactService
	userService    *services.UserService
	tokenService   ports.TokenService
	adminEmail     string
	adminPassword  string
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@autoluxe.com"`
	Password string `json:"password" binding:"required" example:"secret"`
}

type AdminLoginResponse struct {
	Token string `json:"token"`
}

type CarRequest struct {
	Name         string            `json:"name" binding:"required" example:"Lexus LS 500"`
	Price        float64           `json:"price" binding:"required" example:"76500"`
	Year         int               `json:"year" binding:"required" example:"2024"`
	Mileage      string            `json:"mileage" example:"2,100 mi"`
	Fuel         string            `json:"fuel" example:"Hybrid"`
	Transmission string            `json:"transmission" example:"Automatic"`
	Rating       float64           `json:"rating" example:"4.5"`
	Reviews      int               `json:"reviews" example:"12"`
	Description  string            `json:"description" example:"Flagship sedan"`
	Images       []CarImageRequest `json:"images,omitempty"`
	Features     []string          `json:"features,omitempty"`
}

type CarImageRequest struct {
	URL          string `json:"image_url" binding:"required"`
	IsPrimary    bool   `json:"is_primary"`
	DisplayOrder int    `json:"display_order"`
}

type UpdateCarRequest struct {
	Name         *string  `json:"name,omitempty"`
	Price        *float64 `json:"price,omitempty"`
	Year         *int     `json:"year,omitempty"`
	Mileage      *string  `json:"mileage,omitempty"`
	Fuel         *string  `json:"fuel,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	Rating       *float64 `json:"rating,omitempty"`
	Reviews      *int     `json:"reviews,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

type UpdateMessageRequest struct {
	Status string `json:"status" binding:"required" example:"read"`
}

func NewAdminHandler(
	carService *services.CarService,
	contactService *services.ContactService,
	userService *services.UserService,
	tokenService ports.TokenService,
	adminEmail string,
	adminPassword string,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AdminHandler {
	return &AdminHandler{
		carService:     carService,
		contactService: contactService,
		userService:    userService,
		tokenService:   tokenService,
		adminEmail:     adminEmail,
		adminPassword:  adminPassword,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Admin login
// @Description Exchanges the configured console credentials for a bearer token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "Credentials"
// @Success 200 {object} successResponse "Session token"
// @Failure 401 {object} errorResponse "Invalid credentials"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	if req.Email != h.adminEmail || req.Password != h.adminPassword {
		h.logger.Warn("Failed admin login attempt", map[string]interface{}{
			"email": req.Email,
			"ip":    c.ClientIP(),
		})
		newErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokenService.IssueToken(req.Email)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	h.logger.Info("Admin logged in", map[string]interface{}{
		"email": req.Email,
	})

	newSuccessResponse(c, http.StatusOK, "", AdminLoginResponse{Token: token})
}

// @Summary Create car
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CarRequest true "Car data"
// @Success 201 {object} successResponse "Car created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /admin/cars [post]
func (h *AdminHandler) CreateCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create car", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	car := &domain.Car{
		Name:         req.Name,
		Price:        req.Price,
		Year:         req.Year,
		Mileage:      req.Mileage,
		Fuel:         domain.FuelType(req.Fuel),
		Transmission: req.Transmission,
		Rating:       req.Rating,
		Reviews:      req.Reviews,
		Description:  req.Description,
		Features:     req.Features,
	}
	for _, img := range req.Images {
		car.Images = append(car.Images, domain.CarImage{
			URL:          img.URL,
			IsPrimary:    img.IsPrimary,
			DisplayOrder: img.DisplayOrder,
		})
	}

	createdCar, err := h.carService.CreateCar(c.Request.Context(), car)
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			newErrorResponse(c, http.StatusBadRequest, reason)
			return
		}
		h.logger.Error("Failed to create car", map[string]interface{}{
			"error": err.Error(),
			"admin": payload.Email,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to create car")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Car created successfully", toCarInfo(createdCar))
}

// @Summary Update car
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Param request body UpdateCarRequest true "Fields to update"
// @Success 200 {object} successResponse "Car updated"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /admin/cars/{id} [put]
func (h *AdminHandler) UpdateCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authorizationPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	carID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid car ID")
		return
	}

	var req UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	car := &domain.Car{ID: carID}
	if req.Name != nil {
		car.Name = *req.Name
	}
	if req.Price != nil {
		car.Price = *req.Price
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.Mileage != nil {
		car.Mileage = *req.Mileage
	}
	if req.Fuel != nil {
		car.Fuel = domain.FuelType(*req.Fuel)
	}
	if req.Transmission != nil {
		car.Transmission = *req.Transmission
	}
	if req.Rating != nil {
		car.Rating = *req.Rating
	}
	if req.Reviews != nil {
		car.Reviews = *req.Reviews
	}
	if req.Description != nil {
		car.Description = *req.Description
	}

	updatedCar, err := h.carService.UpdateCar(c.Request.Context(), car)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Car not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to update car")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Car updated successfully", toCarInfo(updatedCar))
}

// @Summary Delete car
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} successResponse "Car deleted"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /admin/cars/{id} [delete]
func (h *AdminHandler) DeleteCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authorizationPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	carID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid car ID")
		return
	}

	if err := h.carService.DeleteCar(c.Request.Context(), carID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Car not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to delete car")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Car deleted successfully", nil)
}

// @Summary Update contact message status
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body UpdateMessageRequest true "New status"
// @Success 200 {object} successResponse "Message updated"
// @Failure 400 {object} errorResponse "Invalid status value"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Message not found"
// @Router /admin/contact/{id} [put]
func (h *AdminHandler) UpdateMessageStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authorizationPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	if err := h.contactService.UpdateMessageStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Message not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to update message")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Message updated successfully", nil)
}

// @Summary List users
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} successResponse "Registered profiles"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if _, exists := getAuthPayload(c, authorizationPayloadKey); !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	if users == nil {
		users = []*domain.UserProfile{}
	}
	newListResponse(c, len(users), users)
}
