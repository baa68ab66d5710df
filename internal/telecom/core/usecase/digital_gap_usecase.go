package usecase

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type DigitalGapInput struct {
	Table  string
	Column string
	Period string // empty = latest
}

type DigitalGapSeriesInput struct {
	Table  string
	Column string
	From   string
	To     string
}

type DigitalGapResult struct {
	Table  domain.Family
	Column domain.Column
	Gaps   []analysis.Gap
}

type DigitalGapUseCase struct {
	reader ports.TableReader
}

func NewDigitalGapUseCase(reader ports.TableReader) *DigitalGapUseCase {
	return &DigitalGapUseCase{reader: reader}
}

// Execute computes the gap of a single period.
func (uc *DigitalGapUseCase) Execute(ctx context.Context, in DigitalGapInput) (*DigitalGapResult, error) {
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}
	period, err := resolvePeriod(table, column, in.Period)
	if err != nil {
		return nil, err
	}

	gap, err := analysis.DigitalGap(table, column, period)
	if err != nil {
		return nil, err
	}

	return &DigitalGapResult{Table: table.Family(), Column: column, Gaps: []analysis.Gap{gap}}, nil
}

func (uc *DigitalGapUseCase) Series(ctx context.Context, in DigitalGapSeriesInput) (*DigitalGapResult, error) {
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}
	start, end, err := resolveRange(table, in.From, in.To)
	if err != nil {
		return nil, err
	}

	gaps, err := analysis.DigitalGapSeries(table, column, start, end)
	if err != nil {
		return nil, err
	}

	return &DigitalGapResult{Table: table.Family(), Column: column, Gaps: gaps}, nil
}
