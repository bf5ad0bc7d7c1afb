package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"breakout-trader/internal/api/handlers"
	"breakout-trader/internal/api/middleware"
	"breakout-trader/internal/data"
)

func main() {
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	store := data.NewStore()
	evaluateHandler := handlers.NewEvaluateHandler(store)
	datasetHandler := handlers.NewDatasetHandler(store)
	strategyHandler := handlers.NewStrategyHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		api.POST("/evaluate", evaluateHandler.Evaluate)
		api.POST("/analyze", evaluateHandler.Analyze)

		api.GET("/strategies", strategyHandler.ListStrategies)

		api.PUT("/datasets/:name", datasetHandler.Upload)
		api.GET("/datasets", datasetHandler.List)
		api.DELETE("/datasets/:name", datasetHandler.Delete)
	}

	addr := fmt.Sprintf(":%s", port)
	logrus.Infof("starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		logrus.Fatalf("failed to start server: %v", err)
	}
}
