package analysis_test

import (
	"math"
	"testing"

	"telecom-metrics-service/internal/telecom/core/domain"
)

const eps = 1e-9

func period(t *testing.T, year, quarter int) domain.QuarterPeriod {
	t.Helper()
	p, err := domain.NewQuarterPeriod(year, quarter)
	if err != nil {
		t.Fatalf("NewQuarterPeriod(%d, %d): %v", year, quarter, err)
	}
	return p
}

func row(province string, p domain.QuarterPeriod, col domain.Column, v float64) domain.Row {
	return domain.Row{Province: province, Period: p, Values: map[domain.Column]float64{col: v}}
}

func techRow(province string, p domain.QuarterPeriod, adsl, cable, fiber, wireless, other float64) domain.Row {
	return domain.Row{
		Province: province,
		Period:   p,
		Values: map[domain.Column]float64{
			domain.ColumnADSL:       adsl,
			domain.ColumnCablemodem: cable,
			domain.ColumnFiber:      fiber,
			domain.ColumnWireless:   wireless,
			domain.ColumnOther:      other,
			domain.ColumnTotal:      adsl + cable + fiber + wireless + other,
		},
	}
}

func newTable(t *testing.T, f domain.Family, rows ...domain.Row) *domain.MetricTable {
	t.Helper()
	table, err := domain.NewMetricTable(f, rows)
	if err != nil {
		t.Fatalf("NewMetricTable: %v", err)
	}
	return table
}

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps
}

var jurisdictions = []string{
	"Buenos Aires", "Capital Federal", "Catamarca", "Chaco", "Chubut", "Córdoba",
	"Corrientes", "Entre Ríos", "Formosa", "Jujuy", "La Pampa", "La Rioja",
	"Mendoza", "Misiones", "Neuquén", "Río Negro", "Salta", "San Juan",
	"San Luis", "Santa Cruz", "Santa Fe", "Santiago Del Estero", "Tierra Del Fuego", "Tucumán",
}

// wideSpeedTable has every jurisdiction over the four quarters of 2022, with
// repeated values so that rankings contain ties.
func wideSpeedTable(t *testing.T) *domain.MetricTable {
	t.Helper()
	var rows []domain.Row
	for i, p := range jurisdictions {
		for q := 1; q <= 4; q++ {
			rows = append(rows, row(p, period(t, 2022, q), domain.ColumnMbpsDownload, float64((i%5)*7+q*q)))
		}
	}
	return newTable(t, domain.FamilySpeed, rows...)
}
