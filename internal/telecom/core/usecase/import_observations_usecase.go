package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

var ErrInvalidObservation = errors.New("invalid observation")

type ImportObservationsUseCase struct {
	writer ports.ObservationWriter
}

func NewImportObservationsUseCase(writer ports.ObservationWriter) *ImportObservationsUseCase {
	return &ImportObservationsUseCase{writer: writer}
}

// Execute stores one observation; created is false when it was already there.
func (uc *ImportObservationsUseCase) Execute(ctx context.Context, rec domain.MetricRecord) (bool, error) {
	rec, err := uc.validateInput(rec)
	if err != nil {
		return false, err
	}
	return uc.writer.InsertObservation(ctx, rec)
}

type ImportSummary struct {
	Family     domain.Family
	Created    int
	Duplicates int
}

// ImportDataset writes every record of every loaded table. All records are
// validated before the first insert.
func (uc *ImportObservationsUseCase) ImportDataset(ctx context.Context, ds *domain.Dataset) ([]ImportSummary, error) {
	type batch struct {
		family  domain.Family
		records []domain.MetricRecord
	}

	var batches []batch
	for _, f := range ds.Families() {
		t, err := ds.GetTable(string(f))
		if err != nil {
			return nil, err
		}
		recs := t.AllRecords()
		for i, rec := range recs {
			valid, err := uc.validateInput(rec)
			if err != nil {
				return nil, err
			}
			recs[i] = valid
		}
		batches = append(batches, batch{family: f, records: recs})
	}

	if err := uc.writer.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	out := make([]ImportSummary, 0, len(batches))
	for _, b := range batches {
		sum := ImportSummary{Family: b.family}
		for _, rec := range b.records {
			created, err := uc.Execute(ctx, rec)
			if err != nil {
				return out, fmt.Errorf("insert %s %s %s: %w", rec.Family, rec.Province, rec.Period, err)
			}
			if created {
				sum.Created++
			} else {
				sum.Duplicates++
			}
		}
		out = append(out, sum)
	}
	return out, nil
}

func (uc *ImportObservationsUseCase) validateInput(rec domain.MetricRecord) (domain.MetricRecord, error) {
	f, err := domain.ParseFamily(string(rec.Family))
	if err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidObservation, err)
	}
	if !f.HasColumn(rec.Column) {
		return rec, fmt.Errorf("%w: column %q not in %s", ErrInvalidObservation, rec.Column, f)
	}
	province, err := domain.CanonicalProvince(rec.Province)
	if err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidObservation, err)
	}
	if province == domain.NationalAverage {
		return rec, fmt.Errorf("%w: %s is derived", ErrInvalidObservation, province)
	}
	if _, err := domain.NewQuarterPeriod(rec.Period.Year, rec.Period.Quarter); err != nil {
		return rec, fmt.Errorf("%w: %w", ErrInvalidObservation, err)
	}
	if math.IsNaN(rec.Value) || math.IsInf(rec.Value, 0) {
		return rec, fmt.Errorf("%w: non-finite value", ErrInvalidObservation)
	}

	rec.Province = province
	return rec, nil
}
