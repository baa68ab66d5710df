package usecase

import (
	"errors"
	"fmt"
	"strings"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

var ErrInvalidQuery = errors.New("invalid query")

// Aggregations accepted for national series.
const (
	AggMean = "mean"
	AggSum  = "sum"
)

// resolveColumn resolves a table and one of its columns; an empty column
// selects the family default.
func resolveColumn(reader ports.TableReader, table, column string) (*domain.MetricTable, domain.Column, error) {
	if table == "" {
		return nil, "", fmt.Errorf("%w: table is required", ErrInvalidQuery)
	}
	t, err := reader.GetTable(table)
	if err != nil {
		return nil, "", err
	}
	c, err := domain.ParseColumn(t.Family(), column)
	if err != nil {
		return nil, "", err
	}
	return t, c, nil
}

// resolveRange parses optional "Q{q}-{year}" bounds; a missing bound defaults
// to the first or last period of the table.
func resolveRange(table *domain.MetricTable, from, to string) (domain.QuarterPeriod, domain.QuarterPeriod, error) {
	var start, end domain.QuarterPeriod

	periods := table.Periods()
	if len(periods) == 0 {
		return start, end, fmt.Errorf("%w: table %s is empty", domain.ErrInsufficientData, table.Family())
	}

	start, end = periods[0], periods[len(periods)-1]
	if from != "" {
		p, err := domain.ParseQuarterLabel(from)
		if err != nil {
			return start, end, err
		}
		start = p
	}
	if to != "" {
		p, err := domain.ParseQuarterLabel(to)
		if err != nil {
			return start, end, err
		}
		end = p
	}
	return start, end, nil
}

// resolvePeriod parses an optional period; empty selects the latest period
// in which column holds a value.
func resolvePeriod(table *domain.MetricTable, column domain.Column, label string) (domain.QuarterPeriod, error) {
	if label != "" {
		return domain.ParseQuarterLabel(label)
	}
	latest, err := analysis.LatestPeriods(table, column, 1)
	if err != nil {
		return domain.QuarterPeriod{}, err
	}
	return latest[0], nil
}

// nationalSeries dispatches on the aggregation name.
func nationalSeries(table *domain.MetricTable, column domain.Column, agg string) ([]domain.Point, string, error) {
	switch strings.ToLower(agg) {
	case "", AggMean:
		s, err := analysis.NationalSeries(table, column)
		return s, AggMean, err
	case AggSum:
		s, err := analysis.NationalTotals(table, column)
		return s, AggSum, err
	default:
		return nil, "", fmt.Errorf("%w: agg must be mean or sum, got %q", ErrInvalidQuery, agg)
	}
}
