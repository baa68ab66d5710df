// Package analysis holds the pure transformations over metric tables:
// aggregation, ranking, correlation and KPI evaluation. Nothing here mutates
// its inputs or keeps state between calls.
package analysis

import (
	"fmt"
	"runtime"
	"slices"

	"telecom-metrics-service/internal/telecom/core/domain"

	"golang.org/x/sync/errgroup"
)

// periodAccum collects one period's contributions to a national figure.
type periodAccum struct {
	period   domain.QuarterPeriod
	sum      float64
	count    int
	national float64
	hasTotal bool
}

func checkColumn(table *domain.MetricTable, column domain.Column) error {
	if !table.Family().HasColumn(column) {
		return fmt.Errorf("%w: %q in table %s", domain.ErrUnknownColumn, column, table.Family())
	}
	return nil
}

// accumulate walks the rows once, in period order.
func accumulate(table *domain.MetricTable, column domain.Column) []*periodAccum {
	var out []*periodAccum
	for _, r := range table.Rows() {
		v, ok := r.Values[column]
		if !ok {
			continue
		}
		if n := len(out); n == 0 || out[n-1].period != r.Period {
			out = append(out, &periodAccum{period: r.Period})
		}
		acc := out[len(out)-1]
		switch r.Province {
		case domain.NationalTotal:
			acc.national = v
			acc.hasTotal = true
		case domain.NationalAverage:
		default:
			acc.sum += v
			acc.count++
		}
	}
	return out
}

// NationalSeries averages column across the real provinces observed in each
// period; periods without contributors are omitted. National-only families
// store a single National Total row per period, which is returned as is.
func NationalSeries(table *domain.MetricTable, column domain.Column) ([]domain.Point, error) {
	if err := checkColumn(table, column); err != nil {
		return nil, err
	}

	out := []domain.Point{}
	for _, acc := range accumulate(table, column) {
		switch {
		case acc.count > 0:
			out = append(out, domain.Point{Period: acc.period, Value: acc.sum / float64(acc.count)})
		case acc.hasTotal && table.Family().National():
			out = append(out, domain.Point{Period: acc.period, Value: acc.national})
		}
	}
	return out, nil
}

// NationalTotals is NationalSeries with a sum in place of the mean.
func NationalTotals(table *domain.MetricTable, column domain.Column) ([]domain.Point, error) {
	if err := checkColumn(table, column); err != nil {
		return nil, err
	}

	out := []domain.Point{}
	for _, acc := range accumulate(table, column) {
		switch {
		case acc.count > 0:
			out = append(out, domain.Point{Period: acc.period, Value: acc.sum})
		case acc.hasTotal:
			out = append(out, domain.Point{Period: acc.period, Value: acc.national})
		}
	}
	return out, nil
}

// TechnologyProportions returns, per period, each technology's share of the
// national access count. Periods whose technology counts sum to zero are
// skipped.
func TechnologyProportions(table *domain.MetricTable) (map[domain.QuarterPeriod]map[domain.Technology]float64, error) {
	if !table.Family().HasTechnologies() {
		return nil, fmt.Errorf("%w: table %s has no technology columns", domain.ErrUnknownColumn, table.Family())
	}

	techs := domain.Technologies()
	totals := make(map[domain.QuarterPeriod]map[domain.Technology]float64)
	for _, tech := range techs {
		series, err := NationalTotals(table, tech.Column())
		if err != nil {
			return nil, err
		}
		for _, p := range series {
			m, ok := totals[p.Period]
			if !ok {
				m = make(map[domain.Technology]float64, len(techs))
				totals[p.Period] = m
			}
			m[tech] = p.Value
		}
	}

	out := make(map[domain.QuarterPeriod]map[domain.Technology]float64, len(totals))
	for period, counts := range totals {
		var denom float64
		for _, tech := range techs {
			denom += counts[tech]
		}
		if denom == 0 {
			continue
		}
		shares := make(map[domain.Technology]float64, len(techs))
		for _, tech := range techs {
			shares[tech] = counts[tech] / denom
		}
		out[period] = shares
	}
	return out, nil
}

// PercentChange computes (v[i+lag]-v[i])/v[i]*100 over a single series,
// keyed by the period of v[i]. The series is sorted chronologically first.
// Entries without a partner or with a zero base stay in the output with
// Valid unset.
func PercentChange(series []domain.Point, lag int) ([]domain.Change, error) {
	if lag < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLag, lag)
	}

	sorted := slices.Clone(series)
	slices.SortStableFunc(sorted, func(a, b domain.Point) int { return a.Period.Compare(b.Period) })

	out := make([]domain.Change, len(sorted))
	for i, p := range sorted {
		out[i] = domain.Change{Period: p.Period}
		if i+lag >= len(sorted) || p.Value == 0 {
			continue
		}
		out[i].Percent = (sorted[i+lag].Value - p.Value) / p.Value * 100
		out[i].Valid = true
	}
	return out, nil
}

// PercentChangeByProvince applies PercentChange to each province's series
// independently and merges the results ordered by (province, period).
func PercentChangeByProvince(table *domain.MetricTable, column domain.Column, lag int) ([]domain.Change, error) {
	if err := checkColumn(table, column); err != nil {
		return nil, err
	}
	if lag < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLag, lag)
	}

	partitions := make(map[string][]domain.Point)
	for _, r := range table.Rows() {
		v, ok := r.Values[column]
		if !ok {
			continue
		}
		partitions[r.Province] = append(partitions[r.Province], domain.Point{Period: r.Period, Value: v})
	}

	names := make([]string, 0, len(partitions))
	for name := range partitions {
		names = append(names, name)
	}
	slices.SortFunc(names, domain.CompareProvinceNames)

	// each goroutine owns exactly one slot
	results := make([][]domain.Change, len(names))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		series := partitions[name]
		g.Go(func() error {
			changes, err := PercentChange(series, lag)
			if err != nil {
				return err
			}
			for j := range changes {
				changes[j].Province = name
			}
			results[i] = changes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, r := range results {
		total += len(r)
	}
	out := make([]domain.Change, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// Share is one province's count of a technology and its percentage of the
// province total. Valid is false when the total is missing or zero.
type Share struct {
	Province string
	Count    float64
	Total    float64
	Percent  float64
	Valid    bool
}

// TechnologyShare lists, for one period, every province's count of tech and
// its share of the province total, ordered by count descending.
func TechnologyShare(table *domain.MetricTable, tech domain.Technology, period domain.QuarterPeriod) ([]Share, error) {
	if !slices.Contains(domain.Technologies(), tech) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTechnology, tech)
	}
	if !table.Family().HasTechnologies() {
		return nil, fmt.Errorf("%w: table %s has no technology columns", domain.ErrUnknownColumn, table.Family())
	}

	var out []Share
	for _, r := range table.Rows() {
		if r.Period != period || domain.IsSynthetic(r.Province) {
			continue
		}
		count, ok := r.Values[tech.Column()]
		if !ok {
			continue
		}
		s := Share{Province: r.Province, Count: count}
		if total, ok := r.Values[domain.ColumnTotal]; ok && total != 0 {
			s.Total = total
			s.Percent = count / total * 100
			s.Valid = true
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrEmptyPeriod, table.Family(), period)
	}

	slices.SortStableFunc(out, func(a, b Share) int {
		switch {
		case a.Count > b.Count:
			return -1
		case a.Count < b.Count:
			return 1
		}
		return domain.CompareProvinceNames(a.Province, b.Province)
	})
	return out, nil
}
