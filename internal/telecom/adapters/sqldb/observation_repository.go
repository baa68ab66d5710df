package sqldb

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type ObservationRepository struct {
	db DB
}

func NewObservationRepository(db DB) *ObservationRepository {
	return &ObservationRepository{db: db}
}

var _ ports.ObservationWriter = (*ObservationRepository)(nil)

const createObservationsSQL = `
CREATE TABLE IF NOT EXISTS metric_observations (
    family   TEXT             NOT NULL,
    province TEXT             NOT NULL,
    year     INTEGER          NOT NULL,
    quarter  INTEGER          NOT NULL,
    metric   TEXT             NOT NULL,
    value    DOUBLE PRECISION NOT NULL,
    PRIMARY KEY (family, province, year, quarter, metric)
);
`

const insertObservationSQL = `
INSERT INTO metric_observations (
    family,
    province,
    year,
    quarter,
    metric,
    value
) VALUES (
    $1, $2, $3, $4, $5, $6
)
ON CONFLICT (family, province, year, quarter, metric) DO NOTHING;
`

func (r *ObservationRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createObservationsSQL)
	return err
}

func (r *ObservationRepository) InsertObservation(ctx context.Context, rec domain.MetricRecord) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertObservationSQL,
		string(rec.Family),
		rec.Province,
		rec.Period.Year,
		rec.Period.Quarter,
		string(rec.Column),
		rec.Value,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 0 -> stored by an earlier import
	return rows > 0, nil
}
