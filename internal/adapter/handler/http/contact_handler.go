package http

import (
	"net/http"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/domain"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
	"github.com/autoluxe/luxury_cars_backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *services.ContactService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Message string `json:"message" binding:"required" example:"Is the BMW X5 still available?"`
}

func NewContactHandler(
	contactService *services.ContactService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Submit contact message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Message"
// @Success 201 {object} successResponse "Message sent"
// @Failure 400 {object} errorResponse "Missing fields"
// @Router /api/contact [post]
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	msg := &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	createdMsg, err := h.contactService.SubmitMessage(c.Request.Context(), msg)
	if err != nil {
		if reason, ok := rejectionReason(err); ok {
			newErrorResponse(c, http.StatusBadRequest, reason)
			return
		}
		h.logger.Error("Failed to submit contact message", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to send message")
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Message sent successfully", createdMsg)
}

// @Summary List contact messages
// @Tags contact
// @Accept json
// @Produce json
// @Success 200 {object} successResponse "Messages, newest first"
// @Router /api/contact [get]
func (h *ContactHandler) ListMessages(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	messages, err := h.contactService.ListMessages(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list contact messages", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}

	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	newListResponse(c, len(messages), messages)
}
