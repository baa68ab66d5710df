package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type TechnologyProportionsInput struct {
	Table string // empty = technology_totals, then technology_access
}

type PeriodShares struct {
	Period domain.QuarterPeriod
	Shares map[domain.Technology]float64
}

type TechnologyProportionsResult struct {
	Table   domain.Family
	Periods []PeriodShares
}

type TechnologyShareInput struct {
	Technology string // empty = fiber
	Period     string // empty = latest
}

type TechnologyShareResult struct {
	Technology domain.Technology
	Period     domain.QuarterPeriod
	Shares     []analysis.Share
}

type TechnologyBreakdownInput struct {
	Province string
	Period   string // empty = latest
}

type TechnologyUseCase struct {
	reader ports.TableReader
}

func NewTechnologyUseCase(reader ports.TableReader) *TechnologyUseCase {
	return &TechnologyUseCase{reader: reader}
}

// technologyTable prefers the national totals sheet and falls back to the
// per-province one.
func (uc *TechnologyUseCase) technologyTable(name string) (*domain.MetricTable, error) {
	if name != "" {
		return uc.reader.GetTable(name)
	}
	t, err := uc.reader.GetTable(string(domain.FamilyTechnologyTotals))
	if errors.Is(err, domain.ErrTableNotLoaded) {
		return uc.reader.GetTable(string(domain.FamilyTechnologyAccess))
	}
	return t, err
}

func (uc *TechnologyUseCase) Proportions(ctx context.Context, in TechnologyProportionsInput) (*TechnologyProportionsResult, error) {
	table, err := uc.technologyTable(in.Table)
	if err != nil {
		return nil, err
	}

	byPeriod, err := analysis.TechnologyProportions(table)
	if err != nil {
		return nil, err
	}

	res := &TechnologyProportionsResult{
		Table:   table.Family(),
		Periods: make([]PeriodShares, 0, len(byPeriod)),
	}
	for p, shares := range byPeriod {
		res.Periods = append(res.Periods, PeriodShares{Period: p, Shares: shares})
	}
	slices.SortFunc(res.Periods, func(a, b PeriodShares) int { return a.Period.Compare(b.Period) })
	return res, nil
}

func (uc *TechnologyUseCase) Share(ctx context.Context, in TechnologyShareInput) (*TechnologyShareResult, error) {
	tech := domain.TechFiber
	if in.Technology != "" {
		t, err := domain.ParseTechnology(in.Technology)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", analysis.ErrUnknownTechnology, err)
		}
		tech = t
	}

	table, err := uc.reader.GetTable(string(domain.FamilyTechnologyAccess))
	if err != nil {
		return nil, err
	}
	period, err := resolvePeriod(table, tech.Column(), in.Period)
	if err != nil {
		return nil, err
	}

	shares, err := analysis.TechnologyShare(table, tech, period)
	if err != nil {
		return nil, err
	}

	return &TechnologyShareResult{Technology: tech, Period: period, Shares: shares}, nil
}

// Breakdown reads a province row from technology_access, or the national row
// from technology_totals when the province is "National Total".
func (uc *TechnologyUseCase) Breakdown(ctx context.Context, in TechnologyBreakdownInput) (*domain.TechnologyBreakdown, error) {
	if in.Province == "" {
		return nil, fmt.Errorf("%w: province is required", ErrInvalidQuery)
	}
	province, err := domain.CanonicalProvince(in.Province)
	if err != nil {
		return nil, err
	}
	if province == domain.NationalAverage {
		return nil, fmt.Errorf("%w: breakdown is not defined for %s", ErrInvalidQuery, province)
	}

	family := domain.FamilyTechnologyAccess
	if province == domain.NationalTotal {
		family = domain.FamilyTechnologyTotals
	}
	table, err := uc.reader.GetTable(string(family))
	if err != nil {
		return nil, err
	}
	period, err := latestProvincePeriod(table, province, in.Period)
	if err != nil {
		return nil, err
	}

	b, err := table.Breakdown(province, period)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// latestProvincePeriod parses an optional period; empty selects the latest
// period with a row for province.
func latestProvincePeriod(table *domain.MetricTable, province, label string) (domain.QuarterPeriod, error) {
	if label != "" {
		return domain.ParseQuarterLabel(label)
	}
	var latest domain.QuarterPeriod
	found := false
	for _, r := range table.Rows() {
		if r.Province == province {
			latest, found = r.Period, true
		}
	}
	if !found {
		return latest, fmt.Errorf("%w: no %s rows in table %s", domain.ErrEmptyPeriod, province, table.Family())
	}
	return latest, nil
}
