package http

import (
	"net/http"
	"time"

	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"
	"github.com/autoluxe/luxury_cars_backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statsService *services.StatisticsService
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewStatisticsHandler(
	statsService *services.StatisticsService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *StatisticsHandler {
	return &StatisticsHandler{
		statsService: statsService,
		logger:       logger,
		metrics:      metrics,
	}
}

// @Summary Dashboard statistics
// @Description Aggregate counts for the operations dashboard
// @Tags statistics
// @Accept json
// @Produce json
// @Success 200 {object} successResponse "Aggregate counts"
// @Router /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	stats, err := h.statsService.Collect(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to collect statistics", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch statistics")
		return
	}

	newSuccessResponse(c, http.StatusOK, "", stats)
}
