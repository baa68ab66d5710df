package usecase

import (
	"context"
	"slices"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type PercentChangeInput struct {
	Table     string
	Column    string
	Lag       int      // 0 = 1
	Provinces []string // optional filter
}

type PercentChangeResult struct {
	Table   domain.Family
	Column  domain.Column
	Lag     int
	Changes []domain.Change
}

type PercentChangeUseCase struct {
	reader ports.TableReader
}

func NewPercentChangeUseCase(reader ports.TableReader) *PercentChangeUseCase {
	return &PercentChangeUseCase{reader: reader}
}

func (uc *PercentChangeUseCase) Execute(ctx context.Context, in PercentChangeInput) (*PercentChangeResult, error) {
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}

	var keep []string
	var national bool
	for _, p := range in.Provinces {
		name, err := domain.CanonicalProvince(p)
		if err != nil {
			return nil, err
		}
		if name == domain.NationalAverage {
			national = true
			continue
		}
		keep = append(keep, name)
	}

	lag := in.Lag
	if lag == 0 {
		lag = 1
	}

	changes, err := analysis.PercentChangeByProvince(table, column, lag)
	if err != nil {
		return nil, err
	}

	if len(in.Provinces) > 0 {
		changes = slices.DeleteFunc(changes, func(c domain.Change) bool {
			return !slices.Contains(keep, c.Province)
		})
	}

	// National Average is computed from the national series, after the provinces.
	if national {
		series, err := analysis.NationalSeries(table, column)
		if err != nil {
			return nil, err
		}
		avg, err := analysis.PercentChange(series, lag)
		if err != nil {
			return nil, err
		}
		for i := range avg {
			avg[i].Province = domain.NationalAverage
		}
		changes = append(changes, avg...)
	}

	return &PercentChangeResult{
		Table:   table.Family(),
		Column:  column,
		Lag:     lag,
		Changes: changes,
	}, nil
}
