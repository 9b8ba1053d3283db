package ports

import (
	"context"
	"magvar-service/internal/domain"
)

// Contract for persisting evaluated queries. Implementations live outside the
// field model; the model itself never writes anything.
type QueryLog interface {
	// Append one record.
	Record(ctx context.Context, rec domain.QueryRecord) error
	// Return up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.QueryRecord, error)
}
