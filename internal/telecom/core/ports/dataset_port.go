package ports

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/domain"
)

// TableReader resolves a table family by name. *domain.Dataset implements it.
type TableReader interface {
	GetTable(name string) (*domain.MetricTable, error)
}

// DatasetSource builds the immutable snapshot served by the API.
type DatasetSource interface {
	LoadDataset(ctx context.Context) (*domain.Dataset, error)
}
