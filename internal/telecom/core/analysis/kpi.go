package analysis

import (
	"fmt"
	"math"
	"slices"

	"telecom-metrics-service/internal/telecom/core/domain"
)

// ProvinceGrowth is one province's change between the two latest periods.
type ProvinceGrowth struct {
	Province    string
	Percent     float64
	Delta       float64
	MeetsTarget bool
	Valid       bool
}

type GrowthReport struct {
	Column        domain.Column
	Target        float64
	From          domain.QuarterPeriod
	To            domain.QuarterPeriod
	Provinces     []ProvinceGrowth
	Mean          float64
	Best          ProvinceGrowth
	Worst         ProvinceGrowth
	MeetingTarget int
}

// GrowthKPI measures each province's percent change of column between the
// two latest periods holding that column, against target (a percentage).
// Provinces are listed by percent descending; those with an undefined change
// come last and are left out of the summary.
func GrowthKPI(table *domain.MetricTable, column domain.Column, target float64) (GrowthReport, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return GrowthReport{}, fmt.Errorf("%w: target %v", ErrInvalidTarget, target)
	}

	periods, err := LatestPeriods(table, column, 2)
	if err != nil {
		return GrowthReport{}, err
	}
	if len(periods) < 2 {
		return GrowthReport{}, fmt.Errorf("%w: table %s has a single period of %s", domain.ErrInsufficientData, table.Family(), column)
	}

	rep := GrowthReport{Column: column, Target: target, From: periods[0], To: periods[1]}

	var sum float64
	var valid int
	for _, province := range table.Provinces() {
		base, ok := table.Value(province, rep.From, column)
		if !ok {
			continue
		}
		pg := ProvinceGrowth{Province: province}
		if last, ok := table.Value(province, rep.To, column); ok && base != 0 {
			pg.Percent = (last - base) / base * 100
			pg.Delta = pg.Percent - target
			pg.MeetsTarget = pg.Percent >= target
			pg.Valid = true

			if valid == 0 || pg.Percent > rep.Best.Percent {
				rep.Best = pg
			}
			if valid == 0 || pg.Percent < rep.Worst.Percent {
				rep.Worst = pg
			}
			if pg.MeetsTarget {
				rep.MeetingTarget++
			}
			sum += pg.Percent
			valid++
		}
		rep.Provinces = append(rep.Provinces, pg)
	}
	if valid == 0 {
		return GrowthReport{}, fmt.Errorf("%w: no province has both %s and %s", domain.ErrInsufficientData, rep.From, rep.To)
	}

	slices.SortStableFunc(rep.Provinces, func(a, b ProvinceGrowth) int {
		switch {
		case a.Valid != b.Valid:
			if a.Valid {
				return -1
			}
			return 1
		case a.Percent > b.Percent:
			return -1
		case a.Percent < b.Percent:
			return 1
		}
		return domain.CompareProvinceNames(a.Province, b.Province)
	})

	rep.Mean = sum / float64(valid)
	return rep, nil
}

// ProjectedGap is one point of the target decay curve.
type ProjectedGap struct {
	Period domain.QuarterPeriod
	Gap    float64
}

type GapReductionReport struct {
	Column           domain.Column
	Target           float64
	Previous         Gap
	Latest           Gap
	ReductionPercent float64
	Valid            bool
	MeetsTarget      bool
	Projection       []ProjectedGap
}

// GapReductionKPI compares the digital gap of the two latest periods holding
// column with a reduction target (a percentage) and projects the decay curve from the latest
// gap, starting at the latest period.
func GapReductionKPI(
	table *domain.MetricTable,
	column domain.Column,
	target, decayRate float64,
	periodCount int,
) (GapReductionReport, error) {
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return GapReductionReport{}, fmt.Errorf("%w: target %v", ErrInvalidTarget, target)
	}

	periods, err := LatestPeriods(table, column, 2)
	if err != nil {
		return GapReductionReport{}, err
	}
	if len(periods) < 2 {
		return GapReductionReport{}, fmt.Errorf("%w: table %s has a single period of %s", domain.ErrInsufficientData, table.Family(), column)
	}

	prev, err := DigitalGap(table, column, periods[0])
	if err != nil {
		return GapReductionReport{}, err
	}
	last, err := DigitalGap(table, column, periods[1])
	if err != nil {
		return GapReductionReport{}, err
	}

	curve, err := TargetDecayCurve(last.Gap, decayRate, periodCount)
	if err != nil {
		return GapReductionReport{}, err
	}

	rep := GapReductionReport{
		Column:     column,
		Target:     target,
		Previous:   prev,
		Latest:     last,
		Projection: make([]ProjectedGap, len(curve)),
	}
	if prev.Gap != 0 {
		rep.ReductionPercent = (prev.Gap - last.Gap) / prev.Gap * 100
		rep.Valid = true
		rep.MeetsTarget = rep.ReductionPercent >= target
	}

	p := last.Period
	for i, g := range curve {
		rep.Projection[i] = ProjectedGap{Period: p, Gap: g}
		p = p.Next()
	}
	return rep, nil
}
