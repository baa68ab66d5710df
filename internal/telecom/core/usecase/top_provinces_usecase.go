package usecase

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

const DefaultTopN = 5

type TopProvincesInput struct {
	Table  string
	Column string
	Period string // empty = latest
	N      int    // 0 = DefaultTopN
}

type TopProvincesResult struct {
	Table   domain.Family
	Column  domain.Column
	Period  domain.QuarterPeriod
	Ranking []domain.Ranked
}

type TopProvincesUseCase struct {
	reader ports.TableReader
}

func NewTopProvincesUseCase(reader ports.TableReader) *TopProvincesUseCase {
	return &TopProvincesUseCase{reader: reader}
}

func (uc *TopProvincesUseCase) Execute(ctx context.Context, in TopProvincesInput) (*TopProvincesResult, error) {
	table, column, err := resolveColumn(uc.reader, in.Table, in.Column)
	if err != nil {
		return nil, err
	}
	period, err := resolvePeriod(table, column, in.Period)
	if err != nil {
		return nil, err
	}

	n := in.N
	if n == 0 {
		n = DefaultTopN
	}

	ranking, err := analysis.TopN(table, column, period, n)
	if err != nil {
		return nil, err
	}

	return &TopProvincesResult{
		Table:   table.Family(),
		Column:  column,
		Period:  period,
		Ranking: ranking,
	}, nil
}
