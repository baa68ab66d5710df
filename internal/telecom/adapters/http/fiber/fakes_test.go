package fiber_test

import (
	"context"
	"time"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/google/uuid"
)

type fakeListTablesUseCase struct {
	ExecuteFn func(ctx context.Context) ([]usecase.TableSummary, error)
	called    bool
}

func (f *fakeListTablesUseCase) Execute(ctx context.Context) ([]usecase.TableSummary, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx)
	}
	return nil, nil
}

type fakeNationalSeriesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.NationalSeriesInput) (*usecase.NationalSeriesResult, error)
	lastInput usecase.NationalSeriesInput
	called    bool
}

func (f *fakeNationalSeriesUseCase) Execute(ctx context.Context, in usecase.NationalSeriesInput) (*usecase.NationalSeriesResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.NationalSeriesResult{}, nil
}

type fakeCompareProvincesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.CompareProvincesInput) (*usecase.CompareProvincesResult, error)
	lastInput usecase.CompareProvincesInput
	called    bool
}

func (f *fakeCompareProvincesUseCase) Execute(ctx context.Context, in usecase.CompareProvincesInput) (*usecase.CompareProvincesResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.CompareProvincesResult{}, nil
}

type fakeTopProvincesUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.TopProvincesInput) (*usecase.TopProvincesResult, error)
	lastInput usecase.TopProvincesInput
	called    bool
}

func (f *fakeTopProvincesUseCase) Execute(ctx context.Context, in usecase.TopProvincesInput) (*usecase.TopProvincesResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.TopProvincesResult{}, nil
}

type fakePercentChangeUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.PercentChangeInput) (*usecase.PercentChangeResult, error)
	lastInput usecase.PercentChangeInput
	called    bool
}

func (f *fakePercentChangeUseCase) Execute(ctx context.Context, in usecase.PercentChangeInput) (*usecase.PercentChangeResult, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.PercentChangeResult{}, nil
}

type fakeDigitalGapUseCase struct {
	ExecuteFn  func(ctx context.Context, in usecase.DigitalGapInput) (*usecase.DigitalGapResult, error)
	SeriesFn   func(ctx context.Context, in usecase.DigitalGapSeriesInput) (*usecase.DigitalGapResult, error)
	lastInput  usecase.DigitalGapInput
	lastSeries usecase.DigitalGapSeriesInput
}

func (f *fakeDigitalGapUseCase) Execute(ctx context.Context, in usecase.DigitalGapInput) (*usecase.DigitalGapResult, error) {
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.DigitalGapResult{}, nil
}

func (f *fakeDigitalGapUseCase) Series(ctx context.Context, in usecase.DigitalGapSeriesInput) (*usecase.DigitalGapResult, error) {
	f.lastSeries = in
	if f.SeriesFn != nil {
		return f.SeriesFn(ctx, in)
	}
	return &usecase.DigitalGapResult{}, nil
}

type fakeTechnologyUseCase struct {
	ProportionsFn func(ctx context.Context, in usecase.TechnologyProportionsInput) (*usecase.TechnologyProportionsResult, error)
	ShareFn       func(ctx context.Context, in usecase.TechnologyShareInput) (*usecase.TechnologyShareResult, error)
	BreakdownFn   func(ctx context.Context, in usecase.TechnologyBreakdownInput) (*domain.TechnologyBreakdown, error)
	called        bool
}

func (f *fakeTechnologyUseCase) Proportions(ctx context.Context, in usecase.TechnologyProportionsInput) (*usecase.TechnologyProportionsResult, error) {
	f.called = true
	if f.ProportionsFn != nil {
		return f.ProportionsFn(ctx, in)
	}
	return &usecase.TechnologyProportionsResult{}, nil
}

func (f *fakeTechnologyUseCase) Share(ctx context.Context, in usecase.TechnologyShareInput) (*usecase.TechnologyShareResult, error) {
	f.called = true
	if f.ShareFn != nil {
		return f.ShareFn(ctx, in)
	}
	return &usecase.TechnologyShareResult{}, nil
}

func (f *fakeTechnologyUseCase) Breakdown(ctx context.Context, in usecase.TechnologyBreakdownInput) (*domain.TechnologyBreakdown, error) {
	f.called = true
	if f.BreakdownFn != nil {
		return f.BreakdownFn(ctx, in)
	}
	return &domain.TechnologyBreakdown{}, nil
}

type fakeCorrelationUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.CorrelationInput) (*usecase.CorrelationResult, error)
	called    bool
}

func (f *fakeCorrelationUseCase) Execute(ctx context.Context, in usecase.CorrelationInput) (*usecase.CorrelationResult, error) {
	f.called = true
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &usecase.CorrelationResult{}, nil
}

type fakeKPIUseCase struct {
	GrowthFn       func(ctx context.Context, in usecase.KPIInput) (*analysis.GrowthReport, error)
	GapReductionFn func(ctx context.Context, in usecase.KPIInput) (*analysis.GapReductionReport, error)
	GapDecayFn     func(ctx context.Context, in usecase.GapDecayInput) (*usecase.GapDecayResult, error)
	lastKPI        usecase.KPIInput
	lastDecay      usecase.GapDecayInput
	called         bool
}

func (f *fakeKPIUseCase) Growth(ctx context.Context, in usecase.KPIInput) (*analysis.GrowthReport, error) {
	f.called = true
	f.lastKPI = in
	if f.GrowthFn != nil {
		return f.GrowthFn(ctx, in)
	}
	return &analysis.GrowthReport{}, nil
}

func (f *fakeKPIUseCase) FiberAdoption(ctx context.Context, in usecase.KPIInput) (*analysis.GrowthReport, error) {
	return f.Growth(ctx, in)
}

func (f *fakeKPIUseCase) GapReduction(ctx context.Context, in usecase.KPIInput) (*analysis.GapReductionReport, error) {
	f.called = true
	f.lastKPI = in
	if f.GapReductionFn != nil {
		return f.GapReductionFn(ctx, in)
	}
	return &analysis.GapReductionReport{}, nil
}

func (f *fakeKPIUseCase) GapDecay(ctx context.Context, in usecase.GapDecayInput) (*usecase.GapDecayResult, error) {
	f.called = true
	f.lastDecay = in
	if f.GapDecayFn != nil {
		return f.GapDecayFn(ctx, in)
	}
	return &usecase.GapDecayResult{}, nil
}

type fakeSnapshot struct {
	id       uuid.UUID
	loadedAt time.Time
	families []domain.Family
}

func (f fakeSnapshot) SnapshotID() uuid.UUID { return f.id }

func (f fakeSnapshot) LoadedAt() time.Time { return f.loadedAt }

func (f fakeSnapshot) Families() []domain.Family { return f.families }
