package analysis_test

import (
	"errors"
	"reflect"
	"testing"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
)

// ------------------------------------------------------------
// NationalSeries / NationalTotals
// ------------------------------------------------------------

func TestNationalSeries_MeanAcrossProvinces(t *testing.T) {
	q1 := period(t, 2020, 1)
	q2 := period(t, 2020, 2)
	q3 := period(t, 2020, 3)

	table := newTable(t, domain.FamilySpeed,
		row("Salta", q1, domain.ColumnMbpsDownload, 10),
		row("Chaco", q1, domain.ColumnMbpsDownload, 20),
		row("Jujuy", q1, domain.ColumnMbpsDownload, 30),
		row(domain.NationalTotal, q1, domain.ColumnMbpsDownload, 1000),
		domain.Row{Province: "Salta", Period: q2, Values: map[domain.Column]float64{}},
		row("Salta", q3, domain.ColumnMbpsDownload, 5),
	)

	got, err := analysis.NationalSeries(table, domain.ColumnMbpsDownload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Point{{Period: q1, Value: 20}, {Period: q3, Value: 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNationalSeries_FallsBackToNationalTotalRow(t *testing.T) {
	q1 := period(t, 2021, 1)
	table := newTable(t, domain.FamilyRevenue,
		row(domain.NationalTotal, q1, domain.ColumnRevenueARSThd, 123.5),
	)

	got, err := analysis.NationalSeries(table, domain.ColumnRevenueARSThd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Value != 123.5 {
		t.Fatalf("expected national row value, got %v", got)
	}
}

func TestNationalSeries_ProvinceFamilyIgnoresLoneTotalRow(t *testing.T) {
	q1 := period(t, 2021, 1)
	q2 := period(t, 2021, 2)
	table := newTable(t, domain.FamilySpeed,
		row("Salta", q1, domain.ColumnMbpsDownload, 12),
		row(domain.NationalTotal, q2, domain.ColumnMbpsDownload, 99),
	)

	got, err := analysis.NationalSeries(table, domain.ColumnMbpsDownload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Period != q1 {
		t.Fatalf("expected only %s, got %v", q1, got)
	}
}

func TestNationalTotals_Sum(t *testing.T) {
	q1 := period(t, 2020, 1)
	table := newTable(t, domain.FamilyTechnologyAccess,
		techRow("Salta", q1, 1, 2, 3, 4, 5),
		techRow("Chaco", q1, 10, 20, 30, 40, 50),
	)

	got, err := analysis.NationalTotals(table, domain.ColumnFiber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Value != 33 {
		t.Fatalf("expected sum 33, got %v", got)
	}
}

func TestNationalSeries_UnknownColumn(t *testing.T) {
	table := newTable(t, domain.FamilySpeed)
	if _, err := analysis.NationalSeries(table, domain.ColumnFiber); !errors.Is(err, domain.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

// ------------------------------------------------------------
// TechnologyProportions
// ------------------------------------------------------------

func TestTechnologyProportions_SumToOne(t *testing.T) {
	q1 := period(t, 2019, 1)
	q2 := period(t, 2019, 2)
	q3 := period(t, 2019, 3)

	table := newTable(t, domain.FamilyTechnologyAccess,
		techRow("Salta", q1, 3, 7, 1.5, 0.25, 0.1),
		techRow("Chaco", q1, 11, 0, 13, 17, 19),
		techRow("Salta", q2, 1, 1, 1, 1, 1),
		techRow("Salta", q3, 0, 0, 0, 0, 0),
	)

	got, err := analysis.TechnologyProportions(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := got[q3]; ok {
		t.Fatalf("expected zero-denominator period to be skipped")
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(got))
	}

	for p, shares := range got {
		var sum float64
		for _, s := range shares {
			sum += s
		}
		if !near(sum, 1) {
			t.Fatalf("%s: shares sum to %v", p, sum)
		}
	}
	if !near(got[q2][domain.TechFiber], 0.2) {
		t.Fatalf("expected fiber share 0.2, got %v", got[q2][domain.TechFiber])
	}
}

func TestTechnologyProportions_RequiresTechnologyTable(t *testing.T) {
	table := newTable(t, domain.FamilySpeed)
	if _, err := analysis.TechnologyProportions(table); !errors.Is(err, domain.ErrUnknownColumn) {
		t.Fatalf("expected ErrUnknownColumn, got %v", err)
	}
}

// ------------------------------------------------------------
// PercentChange
// ------------------------------------------------------------

func TestPercentChange_Basic(t *testing.T) {
	q1, q2, q3 := period(t, 2020, 1), period(t, 2020, 2), period(t, 2020, 3)

	// deliberately unsorted
	series := []domain.Point{{Period: q3, Value: 121}, {Period: q1, Value: 100}, {Period: q2, Value: 110}}

	got, err := analysis.PercentChange(series, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []float64{10, 10} {
		if !got[i].Valid || !near(got[i].Percent, want) {
			t.Fatalf("entry %d: expected %v, got %+v", i, want, got[i])
		}
	}
	if got[0].Period != q1 || got[1].Period != q2 {
		t.Fatalf("changes must be keyed by the base period: %+v", got)
	}
	if got[2].Valid {
		t.Fatalf("tail entry without partner must be invalid")
	}
}

func TestPercentChange_ZeroBaseIsUndefined(t *testing.T) {
	series := []domain.Point{{Period: period(t, 2020, 1), Value: 0}, {Period: period(t, 2020, 2), Value: 5}}

	got, err := analysis.PercentChange(series, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Valid {
		t.Fatalf("expected undefined change on zero base, got %+v", got[0])
	}
}

func TestPercentChange_InvalidLag(t *testing.T) {
	if _, err := analysis.PercentChange(nil, 0); !errors.Is(err, analysis.ErrInvalidLag) {
		t.Fatalf("expected ErrInvalidLag, got %v", err)
	}
}

func TestPercentChange_Lag2(t *testing.T) {
	series := []domain.Point{
		{Period: period(t, 2020, 1), Value: 100},
		{Period: period(t, 2020, 2), Value: 150},
		{Period: period(t, 2020, 3), Value: 200},
	}
	got, err := analysis.PercentChange(series, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got[0].Valid || !near(got[0].Percent, 100) || got[1].Valid || got[2].Valid {
		t.Fatalf("unexpected lag-2 changes: %+v", got)
	}
}

// ------------------------------------------------------------
// PercentChangeByProvince
// ------------------------------------------------------------

func TestPercentChangeByProvince_NoCrossContamination(t *testing.T) {
	q1, q2 := period(t, 2020, 1), period(t, 2020, 2)

	table := newTable(t, domain.FamilyHouseholdPenetration,
		row("Salta", q1, domain.ColumnPer100Households, 100),
		row("Chaco", q1, domain.ColumnPer100Households, 50),
		row("Salta", q2, domain.ColumnPer100Households, 110),
		row("Chaco", q2, domain.ColumnPer100Households, 100),
	)

	got, err := analysis.PercentChangeByProvince(table, domain.ColumnPer100Households, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byKey := make(map[string]domain.Change)
	for _, c := range got {
		byKey[c.Province+"|"+c.Period.Label()] = c
	}

	if c := byKey["Salta|Q1-2020"]; !c.Valid || !near(c.Percent, 10) {
		t.Fatalf("Salta: expected 10%%, got %+v", c)
	}
	if c := byKey["Chaco|Q1-2020"]; !c.Valid || !near(c.Percent, 100) {
		t.Fatalf("Chaco: expected 100%%, got %+v", c)
	}

	if got[0].Province != "Chaco" || got[len(got)-1].Province != "Salta" {
		t.Fatalf("expected output sorted by province, got %+v", got)
	}
}

func TestPercentChangeByProvince_Deterministic(t *testing.T) {
	table := wideSpeedTable(t)

	first, err := analysis.PercentChangeByProvince(table, domain.ColumnMbpsDownload, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := analysis.PercentChangeByProvince(table, domain.ColumnMbpsDownload, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs from the first", i)
		}
	}
	if len(first) != 24*4 {
		t.Fatalf("expected %d entries, got %d", 24*4, len(first))
	}
}

// ------------------------------------------------------------
// TechnologyShare
// ------------------------------------------------------------

func TestTechnologyShare_OrderedByCount(t *testing.T) {
	q1 := period(t, 2024, 1)
	table := newTable(t, domain.FamilyTechnologyAccess,
		techRow("Salta", q1, 0, 0, 10, 0, 10),
		techRow("Chaco", q1, 0, 0, 30, 0, 70),
		techRow("Jujuy", q1, 0, 0, 0, 0, 0),
	)

	got, err := analysis.TechnologyShare(table, domain.TechFiber, q1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(got))
	}
	if got[0].Province != "Chaco" || !near(got[0].Percent, 30) {
		t.Fatalf("unexpected first share: %+v", got[0])
	}
	if got[1].Province != "Salta" || !near(got[1].Percent, 50) {
		t.Fatalf("unexpected second share: %+v", got[1])
	}
	if got[2].Valid {
		t.Fatalf("expected zero total to be undefined, got %+v", got[2])
	}

	if _, err := analysis.TechnologyShare(table, "satellite", q1); !errors.Is(err, analysis.ErrUnknownTechnology) {
		t.Fatalf("expected ErrUnknownTechnology, got %v", err)
	}
	if _, err := analysis.TechnologyShare(table, domain.TechFiber, period(t, 2010, 1)); !errors.Is(err, domain.ErrEmptyPeriod) {
		t.Fatalf("expected ErrEmptyPeriod, got %v", err)
	}
}

// ------------------------------------------------------------
// Repeated calls
// ------------------------------------------------------------

func TestNationalSeries_Deterministic(t *testing.T) {
	table := wideSpeedTable(t)

	first, err := analysis.NationalSeries(table, domain.ColumnMbpsDownload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := analysis.NationalSeries(table, domain.ColumnMbpsDownload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("second call differs: %v vs %v", first, again)
	}
	if len(first) != 4 {
		t.Fatalf("expected 4 periods, got %d", len(first))
	}
}

func TestTechnologyProportions_Deterministic(t *testing.T) {
	var rows []domain.Row
	for i, p := range jurisdictions {
		for q := 1; q <= 2; q++ {
			f := float64(i + q)
			rows = append(rows, techRow(p, period(t, 2023, q), 3*f, 7*f, f*f, 2, 1))
		}
	}
	table := newTable(t, domain.FamilyTechnologyAccess, rows...)

	first, err := analysis.TechnologyProportions(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, err := analysis.TechnologyProportions(table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, again) {
		t.Fatalf("second call differs: %v vs %v", first, again)
	}
}
