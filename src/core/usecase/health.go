package usecase

import (
	"context"
	"log/slog"

	"lessonbox/src/core/ports"
)

// HealthService reports the health of the application's dependencies.
type HealthService struct {
	log        *slog.Logger
	components map[string]ports.ExternalService
}

// NewHealthService creates a HealthService probing the named components.
func NewHealthService(log *slog.Logger, components map[string]ports.ExternalService) *HealthService {
	return &HealthService{
		log:        log,
		components: components,
	}
}

// HealthStatus represents the health of the application.
type HealthStatus struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components,omitempty"`
}

// ComponentHealth represents the health of a single component.
type ComponentHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Check performs a health check of all application components.
// The overall status is "degraded" when any component is unhealthy.
func (s *HealthService) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:     "ok",
		Components: make(map[string]ComponentHealth),
	}

	for name, c := range s.components {
		if err := c.Health(ctx); err != nil {
			status.Status = "degraded"
			status.Components[name] = ComponentHealth{
				Status:  "unhealthy",
				Message: err.Error(),
			}
			if s.log != nil {
				s.log.Warn("component unhealthy", "component", name, "error", err)
			}
			continue
		}
		status.Components[name] = ComponentHealth{Status: "healthy"}
	}

	return status
}

// Health adapts Check to ports.ExternalService.
func (s *HealthService) Health(ctx context.Context) error {
	status := s.Check(ctx)
	if status.Status != "ok" {
		return &healthError{status: status.Status}
	}
	return nil
}

var _ ports.ExternalService = (*HealthService)(nil)

type healthError struct {
	status string
}

func (e *healthError) Error() string {
	return "health check failed: " + e.status
}
