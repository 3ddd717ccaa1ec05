package routes

import (
	"CoPI_Backend/internal/copi-service/api/handler"

	"github.com/gin-gonic/gin"
)

func SetUpHealthRoutes(r *gin.Engine, healthHandler handler.HealthHandler) {
	r.GET("/api/health", healthHandler.CheckHealth())
}
