package handler

import (
	"CoPI_Backend/internal/copi-service/api/dto/request"
	"CoPI_Backend/internal/copi-service/api/dto/response"
	"CoPI_Backend/internal/copi-service/api/middleware"
	"CoPI_Backend/internal/copi-service/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

type InstitutionHandler interface {
	GetInstitutions() gin.HandlerFunc
}

type institutionHandler struct {
	directoryService service.DirectoryService
	logger           Logger
}

func (i *institutionHandler) GetInstitutions() gin.HandlerFunc {
	return func(c *gin.Context) {
		// The route is registered behind RequireSession; the re-check keeps
		// the store untouched if the handler is ever mounted without it.
		callerID := c.GetString(middleware.UserIDContextKey)
		if callerID == "" {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{
				Error: "Unauthorized",
			})
			return
		}
		var req request.InstitutionLookupRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{
				Error: "Invalid query",
			})
			return
		}
		institutions, err := i.directoryService.LookupInstitutions(c, callerID, req.Query)
		if err != nil {
			err = fmt.Errorf("InstitutionHandler.GetInstitutions: %w", err)
			i.logger.LoggingError(c, err, "failed to look up institutions", zapcore.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{
				Error: "Internal server error",
			})
			return
		}
		if institutions == nil {
			institutions = make([]string, 0)
		}
		c.JSON(http.StatusOK, response.InstitutionsResponse{
			Institutions: institutions,
		})
	}
}

func NewInstitutionHandler(directoryService service.DirectoryService, logger Logger) InstitutionHandler {
	return &institutionHandler{
		directoryService: directoryService,
		logger:           logger,
	}
}
