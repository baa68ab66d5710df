package analysis

import (
	"fmt"
	"slices"

	"telecom-metrics-service/internal/telecom/core/domain"
)

// SelectRange keeps the rows with column observed in [start, end].
func SelectRange(table *domain.MetricTable, column domain.Column, start, end domain.QuarterPeriod) (*domain.MetricTable, error) {
	if err := checkColumn(table, column); err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, fmt.Errorf("%w: %s after %s", domain.ErrEmptyRange, start, end)
	}

	return table.Filter(func(r domain.Row) bool {
		if r.Period.Before(start) || r.Period.After(end) {
			return false
		}
		_, ok := r.Values[column]
		return ok
	}), nil
}

// CompareProvinces returns the series of each requested province over the
// range. The name "National Average" resolves to NationalSeries of the same
// range. A province without observations maps to an empty series.
func CompareProvinces(
	table *domain.MetricTable,
	column domain.Column,
	names []string,
	start, end domain.QuarterPeriod,
) (map[string][]domain.Point, error) {
	canonical := make([]string, 0, len(names))
	for _, n := range names {
		p, err := domain.CanonicalProvince(n)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(canonical, p) {
			canonical = append(canonical, p)
		}
	}
	if len(canonical) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewProvinces, len(canonical))
	}

	selected, err := SelectRange(table, column, start, end)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]domain.Point, len(canonical))
	for _, p := range canonical {
		if p == domain.NationalAverage {
			series, err := NationalSeries(selected, column)
			if err != nil {
				return nil, err
			}
			out[p] = series
			continue
		}
		out[p] = []domain.Point{}
	}

	for _, r := range selected.Rows() {
		series, ok := out[r.Province]
		if !ok || r.Province == domain.NationalAverage {
			continue
		}
		out[r.Province] = append(series, domain.Point{Period: r.Period, Value: r.Values[column]})
	}
	return out, nil
}

// ProvinceSeries is the chronological series of column for one province.
// "National Average" resolves to NationalSeries.
func ProvinceSeries(table *domain.MetricTable, column domain.Column, province string) ([]domain.Point, error) {
	p, err := domain.CanonicalProvince(province)
	if err != nil {
		return nil, err
	}
	if p == domain.NationalAverage {
		return NationalSeries(table, column)
	}

	recs, err := table.Records(column)
	if err != nil {
		return nil, err
	}
	out := []domain.Point{}
	for _, r := range recs {
		if r.Province == p {
			out = append(out, domain.Point{Period: r.Period, Value: r.Value})
		}
	}
	return out, nil
}

// TopN ranks the real provinces of one period by column, descending. Ties are
// broken by province name so the ranking is stable across calls.
func TopN(table *domain.MetricTable, column domain.Column, period domain.QuarterPeriod, n int) ([]domain.Ranked, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}
	if err := checkColumn(table, column); err != nil {
		return nil, err
	}

	var entries []domain.Ranked
	for _, r := range table.Rows() {
		if r.Period != period || domain.IsSynthetic(r.Province) {
			continue
		}
		v, ok := r.Values[column]
		if !ok {
			continue
		}
		entries = append(entries, domain.Ranked{Province: r.Province, Value: v})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrEmptyPeriod, table.Family(), period)
	}

	slices.SortFunc(entries, func(a, b domain.Ranked) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return domain.CompareProvinceNames(a.Province, b.Province)
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// LatestPeriods returns the last k distinct periods in which column holds a
// value, chronologically. Fewer are returned when the column is shorter.
func LatestPeriods(table *domain.MetricTable, column domain.Column, k int) ([]domain.QuarterPeriod, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, k)
	}
	if err := checkColumn(table, column); err != nil {
		return nil, err
	}

	var periods []domain.QuarterPeriod
	for _, r := range table.Rows() {
		if _, ok := r.Values[column]; !ok {
			continue
		}
		if n := len(periods); n == 0 || periods[n-1] != r.Period {
			periods = append(periods, r.Period)
		}
	}
	if len(periods) == 0 {
		return nil, fmt.Errorf("%w: table %s has no %s values", domain.ErrInsufficientData, table.Family(), column)
	}
	if len(periods) > k {
		periods = periods[len(periods)-k:]
	}
	return periods, nil
}
