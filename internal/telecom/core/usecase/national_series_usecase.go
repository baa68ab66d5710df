package usecase

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type NationalSeriesInput struct {
	Table  string
	Column string
	From   string // "Q1-2014"; empty = first period
	To     string // empty = last period
	Agg    string // "mean" (default) / "sum"
}

type NationalSeriesResult struct {
	Table  domain.Family
	Column domain.Column
	Agg    string
	Points []domain.Point
}

type NationalSeriesUseCase struct {
	reader ports.TableReader
}

func NewNationalSeriesUseCase(reader ports.TableReader) *NationalSeriesUseCase {
	return &NationalSeriesUseCase{reader: reader}
}

func (uc *NationalSeriesUseCase) Execute(ctx context.Context, in NationalSeriesInput) (*NationalSeriesResult, error) {
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}
	start, end, err := resolveRange(table, in.From, in.To)
	if err != nil {
		return nil, err
	}

	selected, err := analysis.SelectRange(table, column, start, end)
	if err != nil {
		return nil, err
	}

	points, agg, err := nationalSeries(selected, column, in.Agg)
	if err != nil {
		return nil, err
	}

	return &NationalSeriesResult{
		Table:  table.Family(),
		Column: column,
		Agg:    agg,
		Points: points,
	}, nil
}
