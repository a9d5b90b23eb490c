// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// The application core depends on these abstractions only. Concrete adapters
// (the Website Carbon HTTP client, the zerolog logger) live in the
// infrastructure layer and are wired together in internal/app.
package ports

import (
	"context"

	"github.com/timharek/wcarbon/internal/domain"
)

// CarbonAPI is the remote carbon-estimation service.
// Each call performs exactly one request with no retries.
type CarbonAPI interface {
	Site(ctx context.Context, url string) (domain.SiteResult, []byte, error)
	Data(ctx context.Context, bytes uint64, green bool) (domain.DataResult, []byte, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stdout, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
