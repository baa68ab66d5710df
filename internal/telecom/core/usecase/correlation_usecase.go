package usecase

import (
	"context"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type CorrelationInput struct {
	XTable   string
	XColumn  string
	YTable   string
	YColumn  string
	Province string // empty = National Average
	Agg      string // national aggregation: "mean" / "sum"
}

type SeriesRef struct {
	Table  domain.Family
	Column domain.Column
}

type CorrelationResult struct {
	X           SeriesRef
	Y           SeriesRef
	Province    string
	Correlation float64
	Regression  analysis.Regression
}

type CorrelationUseCase struct {
	reader ports.TableReader
}

func NewCorrelationUseCase(reader ports.TableReader) *CorrelationUseCase {
	return &CorrelationUseCase{reader: reader}
}

// Execute correlates two metrics for one province, or for the national
// aggregate, over the periods both observe, and fits y on x.
func (uc *CorrelationUseCase) Execute(ctx context.Context, in CorrelationInput) (*CorrelationResult, error) {
	province := domain.NationalAverage
	if in.Province != "" {
		p, err := domain.CanonicalProvince(in.Province)
		if err != nil {
			return nil, err
		}
		province = p
	}

	xs, xRef, err := uc.series(in.XTable, in.XColumn, province, in.Agg)
	if err != nil {
		return nil, err
	}
	ys, yRef, err := uc.series(in.YTable, in.YColumn, province, in.Agg)
	if err != nil {
		return nil, err
	}

	r, err := analysis.Correlate(xs, ys)
	if err != nil {
		return nil, err
	}
	reg, err := analysis.LinearRegression(xs, ys)
	if err != nil {
		return nil, err
	}

	return &CorrelationResult{
		X:           xRef,
		Y:           yRef,
		Province:    province,
		Correlation: r,
		Regression:  reg,
	}, nil
}

func (uc *CorrelationUseCase) series(table, column, province, agg string) ([]domain.Point, SeriesRef, error) {
	t, c, err := resolveColumn(uc.reader, table, column)
	if err != nil {
		return nil, SeriesRef{}, err
	}
	ref := SeriesRef{Table: t.Family(), Column: c}

	if province == domain.NationalAverage {
		points, _, err := nationalSeries(t, c, agg)
		return points, ref, err
	}
	points, err := analysis.ProvinceSeries(t, c, province)
	return points, ref, err
}
