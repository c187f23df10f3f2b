package http

import (
	"net/http"
	"strings"

	"github.com/autoluxe/luxury_cars_backend/internal/config"
	"github.com/autoluxe/luxury_cars_backend/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	tokenService ports.TokenService,
	carHandler *CarHandler,
	testDriveHandler *TestDriveHandler,
	favoriteHandler *FavoriteHandler,
	contactHandler *ContactHandler,
	userHandler *UserHandler,
	statisticsHandler *StatisticsHandler,
	adminHandler *AdminHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Server is running",
			})
		})

		api.GET("/cars", carHandler.ListCars)
		api.GET("/cars/:id", carHandler.GetCar)

		api.POST("/test-drives", testDriveHandler.ScheduleTestDrive)
		api.GET("/test-drives", testDriveHandler.ListTestDrives)
		api.GET("/test-drives/:id", testDriveHandler.GetTestDrive)
		api.PUT("/test-drives/:id", testDriveHandler.UpdateTestDrive)
		api.DELETE("/test-drives/:id", testDriveHandler.DeleteTestDrive)

		api.POST("/favorites", favoriteHandler.AddFavorite)
		api.GET("/favorites/:email", favoriteHandler.ListFavorites)
		api.DELETE("/favorites", favoriteHandler.RemoveFavorite)

		api.POST("/contact", contactHandler.SubmitMessage)
		api.GET("/contact", contactHandler.ListMessages)

		api.POST("/users", userHandler.SaveProfile)
		api.GET("/users/:email", userHandler.GetUser)

		api.GET("/statistics", statisticsHandler.GetStatistics)
	}

	// Admin console routes
	admin := router.Group("/admin")
	{
		admin.POST("/login", adminHandler.Login)

		protected := admin.Group("")
		protected.Use(AuthMiddleware(tokenService))
		{
			protected.POST("/cars", adminHandler.CreateCar)
			protected.PUT("/cars/:id", adminHandler.UpdateCar)
			protected.DELETE("/cars/:id", adminHandler.DeleteCar)
			protected.PUT("/contact/:id", adminHandler.UpdateMessageStatus)
			protected.GET("/users", adminHandler.ListUsers)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		newErrorResponse(c, http.StatusNotFound, "Route not found")
	})

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
