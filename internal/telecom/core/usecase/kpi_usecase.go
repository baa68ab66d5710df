package usecase

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

// KPITargets are percentages, except DecayRate which is a fraction per
// period.
type KPITargets struct {
	Growth        float64
	FiberAdoption float64
	GapReduction  float64
	DecayRate     float64
	DecayPeriods  int
}

func DefaultKPITargets() KPITargets {
	return KPITargets{
		Growth:        2,
		FiberAdoption: 5,
		GapReduction:  10,
		DecayRate:     0.10,
		DecayPeriods:  8,
	}
}

type KPIInput struct {
	Table  string
	Column string
	Target *float64 // nil = configured target
}

type GapDecayInput struct {
	InitialGap *float64 // nil = latest gap of the household penetration table
	DecayRate  *float64
	Periods    *int
}

type GapDecayResult struct {
	InitialGap float64
	DecayRate  float64
	Curve      []float64
}

type KPIUseCase struct {
	reader  ports.TableReader
	targets KPITargets
}

func NewKPIUseCase(reader ports.TableReader, targets KPITargets) *KPIUseCase {
	return &KPIUseCase{reader: reader, targets: targets}
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func withDefaults(in KPIInput, table domain.Family, column domain.Column) KPIInput {
	if in.Table == "" {
		in.Table = string(table)
		if in.Column == "" {
			in.Column = string(column)
		}
	}
	return in
}

// Growth evaluates the quarter-over-quarter access growth of every province.
func (uc *KPIUseCase) Growth(ctx context.Context, in KPIInput) (*analysis.GrowthReport, error) {
	in = withDefaults(in, domain.FamilyHouseholdPenetration, domain.ColumnPer100Households)
	return uc.growth(in, uc.targets.Growth)
}

// FiberAdoption is the growth KPI over fiber accesses.
func (uc *KPIUseCase) FiberAdoption(ctx context.Context, in KPIInput) (*analysis.GrowthReport, error) {
	in = withDefaults(in, domain.FamilyTechnologyAccess, domain.ColumnFiber)
	return uc.growth(in, uc.targets.FiberAdoption)
}

func (uc *KPIUseCase) growth(in KPIInput, target float64) (*analysis.GrowthReport, error) {
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}
	rep, err := analysis.GrowthKPI(table, column, orDefault(in.Target, target))
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (uc *KPIUseCase) GapReduction(ctx context.Context, in KPIInput) (*analysis.GapReductionReport, error) {
	in = withDefaults(in, domain.FamilyHouseholdPenetration, domain.ColumnPer100Households)
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}

	rep, err := analysis.GapReductionKPI(
		table,
		column,
		orDefault(in.Target, uc.targets.GapReduction),
		uc.targets.DecayRate,
		uc.targets.DecayPeriods,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (uc *KPIUseCase) GapDecay(ctx context.Context, in GapDecayInput) (*GapDecayResult, error) {
	rate := orDefault(in.DecayRate, uc.targets.DecayRate)
	periods := orDefault(in.Periods, uc.targets.DecayPeriods)

	var initial float64
	if in.InitialGap != nil {
		initial = *in.InitialGap
	} else {
		table, column, err := resolveColumn(uc.reader, string(domain.FamilyHouseholdPenetration), "")
		if err != nil {
			return nil, err
		}
		period, err := resolvePeriod(table, column, "")
		if err != nil {
			return nil, err
		}
		gap, err := analysis.DigitalGap(table, column, period)
		if err != nil {
			return nil, err
		}
		initial = gap.Gap
	}

	curve, err := analysis.TargetDecayCurve(initial, rate, periods)
	if err != nil {
		return nil, err
	}
	return &GapDecayResult{InitialGap: initial, DecayRate: rate, Curve: curve}, nil
}
