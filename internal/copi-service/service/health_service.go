package service

import (
	"CoPI_Backend/internal/copi-service/model"
	"CoPI_Backend/internal/copi-service/repository"
	"context"
	"fmt"
	"time"
)

// healthTimestampLayout renders UTC wall-clock time with milliseconds and
// the Z designator, so the value round-trips exactly through an ISO-8601
// parse on the consumer side.
const healthTimestampLayout = "2006-01-02T15:04:05.000Z"

type HealthService interface {
	// Check probes the record store once and reports aggregate health. The
	// report is always valid; the returned error is the underlying probe
	// failure, surfaced for logging only and already reflected in the
	// report as a degraded status.
	Check(ctx context.Context) (model.HealthReport, error)
}

type healthService struct {
	personRepository repository.PersonRepository
}

func (h *healthService) Check(ctx context.Context) (model.HealthReport, error) {
	report := model.HealthReport{
		Status:    model.HealthStatusOK,
		Timestamp: time.Now().UTC().Format(healthTimestampLayout),
		Checks: map[string]string{
			model.CheckDatabase: model.CheckStatusOK,
		},
	}
	if err := h.personRepository.Ping(ctx); err != nil {
		report.Status = model.HealthStatusDegraded
		report.Checks[model.CheckDatabase] = model.CheckStatusUnreachable
		return report, fmt.Errorf("HealthService.Check: %w", err)
	}
	return report, nil
}

func NewHealthService(personRepository repository.PersonRepository) HealthService {
	return &healthService{
		personRepository: personRepository,
	}
}
