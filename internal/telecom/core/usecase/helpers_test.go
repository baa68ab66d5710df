package usecase_test

import (
	"context"
	"testing"
	"time"

	"telecom-metrics-service/internal/telecom/core/domain"
)

// fakeTableReader implements ports.TableReader for tests.
type fakeTableReader struct {
	GetTableFn func(name string) (*domain.MetricTable, error)
	lastName   string
	calls      int
}

func (f *fakeTableReader) GetTable(name string) (*domain.MetricTable, error) {
	f.calls++
	f.lastName = name
	if f.GetTableFn != nil {
		return f.GetTableFn(name)
	}
	return nil, domain.ErrTableNotLoaded
}

// fakeObservationWriter implements ports.ObservationWriter for tests.
type fakeObservationWriter struct {
	EnsureSchemaFn func(ctx context.Context) error
	InsertFn       func(ctx context.Context, rec domain.MetricRecord) (bool, error)
	schemaCalled   bool
	inserted       []domain.MetricRecord
}

func (f *fakeObservationWriter) EnsureSchema(ctx context.Context) error {
	f.schemaCalled = true
	if f.EnsureSchemaFn != nil {
		return f.EnsureSchemaFn(ctx)
	}
	return nil
}

func (f *fakeObservationWriter) InsertObservation(ctx context.Context, rec domain.MetricRecord) (bool, error) {
	f.inserted = append(f.inserted, rec)
	if f.InsertFn != nil {
		return f.InsertFn(ctx, rec)
	}
	return true, nil
}

func period(t *testing.T, year, quarter int) domain.QuarterPeriod {
	t.Helper()
	p, err := domain.NewQuarterPeriod(year, quarter)
	if err != nil {
		t.Fatalf("NewQuarterPeriod: %v", err)
	}
	return p
}

func values(col domain.Column, v float64) map[domain.Column]float64 {
	return map[domain.Column]float64{col: v}
}

func tech(adsl, cable, fiber, wireless, other float64) map[domain.Column]float64 {
	return map[domain.Column]float64{
		domain.ColumnADSL:       adsl,
		domain.ColumnCablemodem: cable,
		domain.ColumnFiber:      fiber,
		domain.ColumnWireless:   wireless,
		domain.ColumnOther:      other,
		domain.ColumnTotal:      adsl + cable + fiber + wireless + other,
	}
}

// testDataset covers Q3-2023..Q1-2024 for three provinces.
func testDataset(t *testing.T, withTotals bool) *domain.Dataset {
	t.Helper()
	q1, q2, q3 := period(t, 2023, 3), period(t, 2023, 4), period(t, 2024, 1)

	build := func(f domain.Family, rows ...domain.Row) *domain.MetricTable {
		table, err := domain.NewMetricTable(f, rows)
		if err != nil {
			t.Fatalf("NewMetricTable(%s): %v", f, err)
		}
		return table
	}

	pen := domain.ColumnPer100Households
	household := build(domain.FamilyHouseholdPenetration,
		domain.Row{Province: "Salta", Period: q1, Values: values(pen, 50)},
		domain.Row{Province: "Salta", Period: q2, Values: values(pen, 51)},
		domain.Row{Province: "Salta", Period: q3, Values: values(pen, 52)},
		domain.Row{Province: "Chaco", Period: q1, Values: values(pen, 40)},
		domain.Row{Province: "Chaco", Period: q2, Values: values(pen, 42)},
		domain.Row{Province: "Chaco", Period: q3, Values: values(pen, 44.1)},
		domain.Row{Province: "Capital Federal", Period: q1, Values: values(pen, 100)},
		domain.Row{Province: "Capital Federal", Period: q2, Values: values(pen, 101)},
		domain.Row{Province: "Capital Federal", Period: q3, Values: values(pen, 102)},
	)

	mbps := domain.ColumnMbpsDownload
	speed := build(domain.FamilySpeed,
		domain.Row{Province: "Salta", Period: q1, Values: values(mbps, 10)},
		domain.Row{Province: "Salta", Period: q2, Values: values(mbps, 20)},
		domain.Row{Province: "Salta", Period: q3, Values: values(mbps, 30)},
		domain.Row{Province: "Chaco", Period: q1, Values: values(mbps, 5)},
		domain.Row{Province: "Chaco", Period: q2, Values: values(mbps, 10)},
		domain.Row{Province: "Chaco", Period: q3, Values: values(mbps, 15)},
		domain.Row{Province: "Capital Federal", Period: q1, Values: values(mbps, 50)},
		domain.Row{Province: "Capital Federal", Period: q2, Values: values(mbps, 100)},
		domain.Row{Province: "Capital Federal", Period: q3, Values: values(mbps, 160)},
	)

	access := build(domain.FamilyTechnologyAccess,
		domain.Row{Province: "Salta", Period: q2, Values: tech(10, 20, 20, 5, 5)},
		domain.Row{Province: "Chaco", Period: q2, Values: tech(0, 10, 5, 0, 0)},
		domain.Row{Province: "Salta", Period: q3, Values: tech(10, 20, 30, 5, 5)},
		domain.Row{Province: "Chaco", Period: q3, Values: tech(0, 10, 10, 0, 0)},
	)

	tables := []*domain.MetricTable{household, speed, access}
	if withTotals {
		tables = append(tables, build(domain.FamilyTechnologyTotals,
			domain.Row{Province: domain.NationalTotal, Period: q3, Values: tech(100, 200, 300, 50, 50)},
		))
	}

	ds, err := domain.NewDataset(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), tables...)
	if err != nil {
		t.Fatalf("NewDataset: %v", err)
	}
	return ds
}
