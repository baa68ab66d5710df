package usecase

import (
	"context"
	"fmt"
	"strings"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type CompareProvincesInput struct {
	Table     string
	Column    string
	Provinces []string
	From      string
	To        string
}

type CompareProvincesResult struct {
	Table  domain.Family
	Column domain.Column
	From   domain.QuarterPeriod
	To     domain.QuarterPeriod
	Series map[string][]domain.Point
}

type CompareProvincesUseCase struct {
	reader ports.TableReader
}

func NewCompareProvincesUseCase(reader ports.TableReader) *CompareProvincesUseCase {
	return &CompareProvincesUseCase{reader: reader}
}

func (uc *CompareProvincesUseCase) Execute(ctx context.Context, in CompareProvincesInput) (*CompareProvincesResult, error) {
	names := make([]string, 0, len(in.Provinces))
	for _, p := range in.Provinces {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: provinces is required", ErrInvalidQuery)
	}

	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}
	start, end, err := resolveRange(table, in.From, in.To)
	if err != nil {
		return nil, err
	}

	series, err := analysis.CompareProvinces(table, column, names, start, end)
	if err != nil {
		return nil, err
	}

	return &CompareProvincesResult{
		Table:  table.Family(),
		Column: column,
		From:   start,
		To:     end,
		Series: series,
	}, nil
}
