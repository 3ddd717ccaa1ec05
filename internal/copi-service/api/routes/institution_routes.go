package routes

import (
	"CoPI_Backend/internal/copi-service/api/handler"
	"CoPI_Backend/internal/copi-service/api/middleware"

	"github.com/gin-gonic/gin"
)

func SetUpInstitutionRoutes(r *gin.Engine, institutionHandler handler.InstitutionHandler, m middleware.AuthMiddleware) {
	institutionRoutes := r.Group("/api/institutions")
	institutionRoutes.GET("", m.RequireSession(), institutionHandler.GetInstitutions())
}
