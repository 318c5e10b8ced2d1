package main

import (
	"log/slog"
	"net/http"
	"os"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := config.OpenDB(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Error("failed to close database", slog.String("error", err.Error()))
		}
	}()

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	// Service health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
			"version": "1.0.0",
		})
	})

	auth := middleware.NewAuth(db, cfg.JWTSecret, cfg.JWTTTL)
	routes.SetupRoutes(r, auth, routes.Handlers{
		Auth:       handlers.NewAuthHandler(db, auth),
		Public:     handlers.NewPublicHandler(db),
		Cart:       handlers.NewCartHandler(db),
		Customer:   handlers.NewCustomerHandler(db, logger),
		Restaurant: handlers.NewRestaurantHandler(db),
		Admin:      handlers.NewAdminHandler(db),
	})

	logger.Info("server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
