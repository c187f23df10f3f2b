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

type CarHandler struct {
	carService *services.CarService
	logger     ports.LoggerPort
	metrics    ports.MetricsPort
}

type CarInfo struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Year         int       `json:"year"`
	Mileage      string    `json:"mileage"`
	Fuel         string    `json:"fuel"`
	Transmission string    `json:"transmission"`
	Rating       float64   `json:"rating"`
	Reviews      int       `json:"reviews"`
	Description  string    `json:"description"`
	Images       []string  `json:"images"`
	Features     []string  `json:"features"`
	CreatedAt    time.Time `json:"created_at"`
}

type CarDetailResponse struct {
	CarInfo
	ImageDetails []domain.CarImage `json:"imageDetails"`
}

func NewCarHandler(
	carService *services.CarService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CarHandler {
	return &CarHandler{
		carService: carService,
		logger:     logger,
		metrics:    metrics,
	}
}

func toCarInfo(car *domain.Car) CarInfo {
	images := car.ImageURLs()
	if images == nil {
		images = []string{}
	}
	features := car.Features
	if features == nil {
		features = []string{}
	}

	return CarInfo{
		ID:           car.ID,
		Name:         car.Name,
		Price:        car.Price,
		Year:         car.Year,
		Mileage:      car.Mileage,
		Fuel:         string(car.Fuel),
		Transmission: car.Transmission,
		Rating:       car.Rating,
		Reviews:      car.Reviews,
		Description:  car.Description,
		Images:       images,
		Features:     features,
		CreatedAt:    car.CreatedAt,
	}
}

// @Summary List cars
// @Description Catalog listing with optional conjunctive filters
// @Tags cars
// @Accept json
// @Produce json
// @Param make query string false "Substring of the car name"
// @Param year query int false "Exact model year"
// @Param minPrice query number false "Minimum price, inclusive"
// @Param maxPrice query number false "Maximum price, inclusive"
// @Param fuel query string false "Exact fuel type"
// @Success 200 {object} successResponse "Filtered car list"
// @Failure 400 {object} errorResponse "Malformed filter value"
// @Router /api/cars [get]
func (h *CarHandler) ListCars(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	filter := domain.CarFilter{
		Make: c.Query("make"),
		Fuel: c.Query("fuel"),
	}

	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid year value")
			return
		}
		filter.Year = &year
	}
	if raw := c.Query("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid minPrice value")
			return
		}
		filter.MinPrice = &minPrice
	}
	if raw := c.Query("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid maxPrice value")
			return
		}
		filter.MaxPrice = &maxPrice
	}

	cars, err := h.carService.ListCars(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list cars", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch cars")
		return
	}

	carInfos := make([]CarInfo, len(cars))
	for i, car := range cars {
		carInfos[i] = toCarInfo(car)
	}

	newListResponse(c, len(carInfos), carInfos)
}

// @Summary Get car
// @Description Single car with ordered image details
// @Tags cars
// @Accept json
// @Produce json
// @Param id path int true "Car ID"
// @Success 200 {object} successResponse "Car found"
// @Failure 404 {object} errorResponse "Car not found"
// @Router /api/cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	carID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid car ID")
		return
	}

	car, err := h.carService.GetCarByID(c.Request.Context(), carID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			newErrorResponse(c, http.StatusNotFound, "Car not found")
			return
		}
		h.logger.Error("Failed to get car", map[string]interface{}{
			"error":  err.Error(),
			"car_id": carID,
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to fetch car")
		return
	}

	imageDetails := car.Images
	if imageDetails == nil {
		imageDetails = []domain.CarImage{}
	}

	response := CarDetailResponse{
		CarInfo:      toCarInfo(car),
		ImageDetails: imageDetails,
	}

	newSuccessResponse(c, http.StatusOK, "", response)
}
