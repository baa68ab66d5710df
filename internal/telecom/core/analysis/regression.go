package analysis

import (
	"fmt"
	"math"
	"slices"

	"telecom-metrics-service/internal/telecom/core/domain"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Regression is an ordinary least squares fit of y on x.
type Regression struct {
	Slope     float64
	Intercept float64
	RSquared  float64
	PValue    float64
	StdErr    float64
	N         int
}

// Gap is the spread of a metric across provinces in one period.
type Gap struct {
	Period      domain.QuarterPeriod
	Max         float64
	MaxProvince string
	Min         float64
	MinProvince string
	Gap         float64
}

// join pairs the values of a and b observed in the same period,
// chronologically.
func join(a, b []domain.Point) (xs, ys []float64) {
	byPeriod := make(map[domain.QuarterPeriod]float64, len(b))
	for _, p := range b {
		byPeriod[p.Period] = p.Value
	}

	sorted := slices.Clone(a)
	slices.SortStableFunc(sorted, func(x, y domain.Point) int { return x.Period.Compare(y.Period) })

	for _, p := range sorted {
		v, ok := byPeriod[p.Period]
		if !ok {
			continue
		}
		xs = append(xs, p.Value)
		ys = append(ys, v)
	}
	return xs, ys
}

// Correlate is the Pearson coefficient of a and b over their common periods.
func Correlate(a, b []domain.Point) (float64, error) {
	xs, ys := join(a, b)
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: %d overlapping periods", domain.ErrInsufficientData, len(xs))
	}

	r := stat.Correlation(xs, ys, nil)
	if math.IsNaN(r) {
		return 0, fmt.Errorf("%w: constant series", domain.ErrInsufficientData)
	}
	return r, nil
}

// LinearRegression fits y = Intercept + Slope*x over the common periods of x
// and y. PValue is the two-sided t-test of the slope with n-2 degrees of
// freedom; an exact fit reports 0 (or 1 for a flat line).
func LinearRegression(x, y []domain.Point) (Regression, error) {
	xs, ys := join(x, y)
	n := len(xs)
	if n < 2 {
		return Regression{}, fmt.Errorf("%w: %d overlapping periods", domain.ErrInsufficientData, n)
	}

	meanX := stat.Mean(xs, nil)
	meanY := stat.Mean(ys, nil)
	var sxx, syy float64
	for i := range xs {
		sxx += (xs[i] - meanX) * (xs[i] - meanX)
		syy += (ys[i] - meanY) * (ys[i] - meanY)
	}
	if sxx == 0 {
		return Regression{}, fmt.Errorf("%w: no variance in x", domain.ErrInsufficientData)
	}

	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	var sse float64
	for i := range xs {
		res := ys[i] - (intercept + slope*xs[i])
		sse += res * res
	}

	reg := Regression{Slope: slope, Intercept: intercept, N: n}

	// a constant y sits on the fitted line
	reg.RSquared = 1
	if syy > 0 {
		reg.RSquared = clamp(1-sse/syy, 0, 1)
	}

	if n == 2 || sse == 0 {
		if slope == 0 {
			reg.PValue = 1
		}
		return reg, nil
	}

	reg.StdErr = math.Sqrt(sse / float64(n-2) / sxx)
	t := slope / reg.StdErr
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 2)}
	reg.PValue = clamp(2*dist.Survival(math.Abs(t)), 0, 1)
	return reg, nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// DigitalGap is max minus min of column across the real provinces of one
// period. Equal values keep the alphabetically first province.
func DigitalGap(table *domain.MetricTable, column domain.Column, period domain.QuarterPeriod) (Gap, error) {
	if err := checkColumn(table, column); err != nil {
		return Gap{}, err
	}

	g := Gap{Period: period}
	found := false
	for _, r := range table.Rows() {
		if r.Period != period || domain.IsSynthetic(r.Province) {
			continue
		}
		v, ok := r.Values[column]
		if !ok {
			continue
		}
		if !found || v > g.Max {
			g.Max, g.MaxProvince = v, r.Province
		}
		if !found || v < g.Min {
			g.Min, g.MinProvince = v, r.Province
		}
		found = true
	}
	if !found {
		return Gap{}, fmt.Errorf("%w: %s %s", domain.ErrEmptyPeriod, table.Family(), period)
	}

	g.Gap = g.Max - g.Min
	return g, nil
}

// DigitalGapSeries computes DigitalGap for every period in [start, end] that
// has province observations.
func DigitalGapSeries(table *domain.MetricTable, column domain.Column, start, end domain.QuarterPeriod) ([]Gap, error) {
	selected, err := SelectRange(table, column, start, end)
	if err != nil {
		return nil, err
	}

	var out []Gap
	for _, p := range selected.Periods() {
		g, err := DigitalGap(selected, column, p)
		if err != nil {
			continue
		}
		out = append(out, g)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no province observations between %s and %s", domain.ErrInsufficientData, start, end)
	}
	return out, nil
}

// TargetDecayCurve projects initialGap shrinking by decayRate per period:
// initialGap*(1-decayRate)^k for k in [0, periodCount).
func TargetDecayCurve(initialGap, decayRate float64, periodCount int) ([]float64, error) {
	if math.IsNaN(initialGap) || math.IsInf(initialGap, 0) {
		return nil, fmt.Errorf("%w: initial gap %v", ErrInvalidTarget, initialGap)
	}
	if math.IsNaN(decayRate) || decayRate < 0 || decayRate > 1 {
		return nil, fmt.Errorf("%w: decay rate %v outside [0,1]", ErrInvalidTarget, decayRate)
	}
	if periodCount < 0 {
		return nil, fmt.Errorf("%w: period count %d", ErrInvalidTarget, periodCount)
	}

	out := make([]float64, periodCount)
	for k := range out {
		out[k] = initialGap * math.Pow(1-decayRate, float64(k))
	}
	return out, nil
}
