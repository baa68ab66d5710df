package ports

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/domain"
)

type ObservationWriter interface {
	EnsureSchema(ctx context.Context) error

	// InsertObservation:
	//   created = true,  err = nil  -> new row
	//   created = false, err = nil  -> already stored (idempotent)
	//   created = false, err != nil -> DB error
	InsertObservation(ctx context.Context, rec domain.MetricRecord) (created bool, err error)
}
