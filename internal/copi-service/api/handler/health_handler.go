package handler

import (
	"CoPI_Backend/internal/copi-service/api/dto/response"
	"CoPI_Backend/internal/copi-service/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap/zapcore"
)

type HealthHandler interface {
	CheckHealth() gin.HandlerFunc
}

type healthHandler struct {
	healthService service.HealthService
	logger        Logger
}

// CheckHealth is deliberately reachable without credentials since it backs
// automated liveness probes. A failing store probe is downgraded into a
// degraded report with a 503, never a hard failure.
func (h *healthHandler) CheckHealth() gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := h.healthService.Check(c)
		if err != nil {
			err = fmt.Errorf("HealthHandler.CheckHealth: %w", err)
			h.logger.LoggingError(c, err, "record store liveness probe failed", zapcore.WarnLevel)
		}
		status := http.StatusOK
		if !report.Healthy() {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, response.HealthResponse{
			Status:    report.Status,
			Timestamp: report.Timestamp,
			Checks:    report.Checks,
		})
	}
}

func NewHealthHandler(healthService service.HealthService, logger Logger) HealthHandler {
	return &healthHandler{
		healthService: healthService,
		logger:        logger,
	}
}
