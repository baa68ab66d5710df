package usecase_test

import (
	"context"
	"errors"
	"testing"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/usecase"
)

func TestImportObservations_Execute_Canonicalizes(t *testing.T) {
	writer := &fakeObservationWriter{}
	uc := usecase.NewImportObservationsUseCase(writer)

	rec := domain.MetricRecord{
		Family:   domain.FamilySpeed,
		Province: "CORDOBA",
		Period:   period(t, 2022, 2),
		Column:   domain.ColumnMbpsDownload,
		Value:    42,
	}

	created, err := uc.Execute(context.Background(), rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true")
	}
	if len(writer.inserted) != 1 || writer.inserted[0].Province != "Córdoba" {
		t.Fatalf("expected canonical province to be written, got %+v", writer.inserted)
	}
}

func TestImportObservations_Execute_Invalid(t *testing.T) {
	p := domain.QuarterPeriod{Year: 2022, Quarter: 2}
	tests := []struct {
		name string
		rec  domain.MetricRecord
	}{
		{"unknown family", domain.MetricRecord{Family: "weather", Province: "Salta", Period: p, Column: "rain"}},
		{"foreign column", domain.MetricRecord{Family: domain.FamilySpeed, Province: "Salta", Period: p, Column: domain.ColumnFiber}},
		{"unknown province", domain.MetricRecord{Family: domain.FamilySpeed, Province: "Mordor", Period: p, Column: domain.ColumnMbpsDownload}},
		{"derived province", domain.MetricRecord{Family: domain.FamilySpeed, Province: domain.NationalAverage, Period: p, Column: domain.ColumnMbpsDownload}},
		{"bad quarter", domain.MetricRecord{Family: domain.FamilySpeed, Province: "Salta", Period: domain.QuarterPeriod{Year: 2022, Quarter: 7}, Column: domain.ColumnMbpsDownload}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writer := &fakeObservationWriter{}
			uc := usecase.NewImportObservationsUseCase(writer)

			if _, err := uc.Execute(context.Background(), tt.rec); !errors.Is(err, usecase.ErrInvalidObservation) {
				t.Fatalf("expected ErrInvalidObservation, got %v", err)
			}
			if len(writer.inserted) != 0 {
				t.Fatalf("writer must not be called for invalid input")
			}
		})
	}
}

func TestImportDataset_CountsCreatedAndDuplicates(t *testing.T) {
	writer := &fakeObservationWriter{
		InsertFn: func(ctx context.Context, rec domain.MetricRecord) (bool, error) {
			// Salta was imported before
			return rec.Province != "Salta", nil
		},
	}
	uc := usecase.NewImportObservationsUseCase(writer)

	res, err := uc.ImportDataset(context.Background(), testDataset(t, false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !writer.schemaCalled {
		t.Fatalf("expected EnsureSchema to be called")
	}
	if len(res) != 3 {
		t.Fatalf("expected one summary per table, got %d", len(res))
	}

	for _, s := range res {
		if s.Family == domain.FamilySpeed && (s.Created != 6 || s.Duplicates != 3) {
			t.Fatalf("unexpected speed summary: %+v", s)
		}
		if s.Family == domain.FamilyTechnologyAccess && (s.Created != 12 || s.Duplicates != 12) {
			t.Fatalf("unexpected technology summary: %+v", s)
		}
	}
}

func TestImportDataset_SchemaError(t *testing.T) {
	writer := &fakeObservationWriter{
		EnsureSchemaFn: func(ctx context.Context) error { return errors.New("permission denied") },
	}
	uc := usecase.NewImportObservationsUseCase(writer)

	if _, err := uc.ImportDataset(context.Background(), testDataset(t, false)); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(writer.inserted) != 0 {
		t.Fatalf("no insert expected after schema failure")
	}
}

func TestImportDataset_InsertError(t *testing.T) {
	writer := &fakeObservationWriter{
		InsertFn: func(ctx context.Context, rec domain.MetricRecord) (bool, error) {
			return false, errors.New("db error")
		},
	}
	uc := usecase.NewImportObservationsUseCase(writer)

	if _, err := uc.ImportDataset(context.Background(), testDataset(t, false)); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(writer.inserted) != 1 {
		t.Fatalf("expected import to stop at the first failure, got %d inserts", len(writer.inserted))
	}
}
