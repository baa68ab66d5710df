package sqldb

import (
	"context"
	"fmt"
	"time"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"

	"github.com/rs/zerolog"
)

// DatasetRepository rebuilds the dataset from metric_observations. Unlike
// the workbook loader it is strict: a stored row that does not resolve to a
// known family, column, province or quarter fails the load.
type DatasetRepository struct {
	db  DB
	log zerolog.Logger
	now func() time.Time
}

func NewDatasetRepository(db DB, log zerolog.Logger) *DatasetRepository {
	return &DatasetRepository{db: db, log: log, now: time.Now}
}

var _ ports.DatasetSource = (*DatasetRepository)(nil)

const selectObservationsSQL = `
SELECT
    family,
    province,
    year,
    quarter,
    metric,
    value
FROM metric_observations
ORDER BY family, year, quarter, province, metric`

func (r *DatasetRepository) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	rows, err := r.db.QueryContext(ctx, selectObservationsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[domain.Family][]domain.MetricRecord)
	var order []domain.Family

	for rows.Next() {
		var family, province, metric string
		var year, quarter int64
		var value float64

		if err := rows.Scan(&family, &province, &year, &quarter, &metric, &value); err != nil {
			return nil, err
		}

		rec, err := toRecord(family, province, year, quarter, metric, value)
		if err != nil {
			return nil, err
		}
		if _, ok := records[rec.Family]; !ok {
			order = append(order, rec.Family)
		}
		records[rec.Family] = append(records[rec.Family], rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	tables := make([]*domain.MetricTable, 0, len(order))
	for _, f := range order {
		t, err := domain.BuildMetricTable(f, records[f])
		if err != nil {
			return nil, err
		}
		r.log.Info().
			Str("table", string(f)).
			Int("observations", len(records[f])).
			Int("rows", t.Len()).
			Msg("table loaded")
		tables = append(tables, t)
	}

	return domain.NewDataset(r.now(), tables...)
}

func toRecord(family, province string, year, quarter int64, metric string, value float64) (domain.MetricRecord, error) {
	f, err := domain.ParseFamily(family)
	if err != nil {
		return domain.MetricRecord{}, err
	}
	if metric == "" {
		return domain.MetricRecord{}, fmt.Errorf("%w: empty metric in table %s", domain.ErrUnknownColumn, f)
	}
	col, err := domain.ParseColumn(f, metric)
	if err != nil {
		return domain.MetricRecord{}, err
	}
	p, err := domain.NewQuarterPeriod(int(year), int(quarter))
	if err != nil {
		return domain.MetricRecord{}, fmt.Errorf("table %s: %w", f, err)
	}
	canonical, err := domain.CanonicalProvince(province)
	if err != nil {
		return domain.MetricRecord{}, fmt.Errorf("table %s: %w", f, err)
	}
	return domain.MetricRecord{Family: f, Province: canonical, Period: p, Column: col, Value: value}, nil
}
