package ports

import (
	"context"
)

// ExternalService is the base interface for anything the health check probes.
type ExternalService interface {
	// Health checks if the external service is reachable.
	Health(ctx context.Context) error
}

// FailureRecorder counts classified failures by kind.
type FailureRecorder interface {
	RecordFailure(source string, err error)
}
