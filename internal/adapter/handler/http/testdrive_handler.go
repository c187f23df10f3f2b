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

type TestDriveHandler struct {
	testDriveService *services.TestDriveService
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

type TestDriveRequest struct {
	Name    string `json:"name" binding:"required" example:"John Smith"`
	Email   string `json:"email" binding:"required" example:"john@example.com"`
	Phone   string `json:"phone" binding:"required" example:"12345678"`
	Date    string `json:"date" binding:"required" example:"2026-09-03"`
	Time    string `json:"time" binding:"required" example:"10:00"`
	CarID   *int   `json:"carId,omitempty" example:"1"`
	CarName string `json:"carName" binding:"required" example:"Tesla Model S"`
	Message string `json:"message,omitempty" example:"Weekday mornings preferred"`
}

type UpdateTestDriveRequest struct {
	Status string `json:"status" binding:"required" example:"confirmed"`
}

func NewTestDriveHandler(
	testDriveService *services.TestDriveService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TestDriveHandler {
	return &TestDriveHandler{
		testDriveService: testDriveService,
		logger:           logger,
		metrics:          metrics,
	}
}

// @Summary Schedule test drive
// @Description Validates the request against the showroom rules and books the slot
// @Tags test-drives
// @Accept json
// @Produce json
// @Param request body TestDriveRequest true "Booking request"
// @Success 201 {object} successResponse "Test drive scheduled"
// @Failure 400 {object} errorResponse "Validation failure"
// @Failure 409 {object} errorResponse "Slot already booked"
// @Router /api/test-drives [post]
func (h *TestDriveHandler) ScheduleTestDrive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req TestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in schedule test drive", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	td := &domain.TestDrive{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		CarID:   req.CarID,
		CarName: req.CarName,
		Message: req.Message,
	}

	createdTestDrive, err := h.testDriveService.Schedule(c.Request.Context(), td)
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			newErrorResponse(c, http.StatusBadRequest, reason)
			return
		}
		if errors.Is(err, domain.ErrSlotTaken) {
			newErrorResponse(c, http.StatusConflict, "This slot is already booked")
			return
		}
		h.logger.Error("Failed to schedule test drive", map[string]interface{}{
			"error":    err.Error(),
			"car_name": req.CarName,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to schedule test drive")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Test drive scheduled successfully", createdTestDrive)
}

// @Summary List test drives
// @Description Bookings filtered by status, date or requester email
// @Tags test-drives
// @Accept json
// @Produce json
// @Param status query string false "Booking status"
// @Param date query string false "Booking date (YYYY-MM-DD)"
// @Param email query string false "Requester email"
// @Success 200 {object} successResponse "Booking list"
// @Router /api/test-drives [get]
func (h *TestDriveHandler) ListTestDrives(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter := domain.TestDriveFilter{
		Status: c.Query("status"),
		Date:   c.Query("date"),
		Email:  c.Query("email"),
	}

	drives, err := h.testDriveService.ListTestDrives(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list test drives", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch test drives")
		return
	}

	if drives == nil {
		drives = []*domain.TestDrive{}
	}
	newListResponse(c, len(drives), drives)
}

// @Summary Get test drive
// @Tags test-drives
// @Accept json
// @Produce json
// @Param id path int true "Test drive ID"
// @Success 200 {object} successResponse "Booking found"
// @Failure 404 {object} errorResponse "Booking not found"
// @Router /api/test-drives/{id} [get]
func (h *TestDriveHandler) GetTestDrive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid test drive ID")
		return
	}

	td, err := h.testDriveService.GetTestDriveByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Test drive not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch test drive")
		return
	}

	newSuccessResponse(c, http.StatusOK, "", td)
}

// @Summary Update test drive status
// @Tags test-drives
// @Accept json
// @Produce json
// @Param id path int true "Test drive ID"
// @Param request body UpdateTestDriveRequest true "New status"
// @Success 200 {object} successResponse "Booking updated"
// @Failure 400 {object} errorResponse "Invalid status value"
// @Failure 404 {object} errorResponse "Booking not found"
// @Router /api/test-drives/{id} [put]
func (h *TestDriveHandler) UpdateTestDrive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid test drive ID")
		return
	}

	var req UpdateTestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	if err := h.testDriveService.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			newErrorResponse(c, http.StatusBadRequest, "Invalid status value")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Test drive not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to update test drive")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Test drive updated successfully", nil)
}

// @Summary Delete test drive
// @Tags test-drives
// @Accept json
// @Produce json
// @Param id path int true "Test drive ID"
// @Success 200 {object} successResponse "Booking deleted"
// @Failure 404 {object} errorResponse "Booking not found"
// @Router /api/test-drives/{id} [delete]
func (h *TestDriveHandler) DeleteTestDrive(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid test drive ID")
		return
	}

	if err := h.testDriveService.DeleteTestDrive(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Test drive not found")
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, "Failed to delete test drive")
		return
	}

	newSuccessResponse(c, http.StatusOK, "Test drive deleted successfully", nil)
}
