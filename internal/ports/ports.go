package ports

import "context"

// HealthChecker probes a dependency for liveness.
type HealthChecker interface {
	Health(ctx context.Context) error
}
