package usecase

import (
	"context"
	"errors"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"
)

type TableSummary struct {
	Family    domain.Family
	Sheet     string
	National  bool
	Columns   []domain.Column
	Rows      int
	Provinces int
	First     *domain.QuarterPeriod
	Last      *domain.QuarterPeriod
}

type ListTablesUseCase struct {
	reader ports.TableReader
}

func NewListTablesUseCase(reader ports.TableReader) *ListTablesUseCase {
	return &ListTablesUseCase{reader: reader}
}

// Execute describes every loaded table, in family order.
func (uc *ListTablesUseCase) Execute(ctx context.Context) ([]TableSummary, error) {
	out := []TableSummary{}
	for _, f := range domain.Families() {
		t, err := uc.reader.GetTable(string(f))
		if errors.Is(err, domain.ErrTableNotLoaded) {
			continue
		}
		if err != nil {
			return nil, err
		}

		s := TableSummary{
			Family:    f,
			Sheet:     f.Sheet(),
			National:  f.National(),
			Columns:   f.Columns(),
			Rows:      t.Len(),
			Provinces: len(t.Provinces()),
		}
		if periods := t.Periods(); len(periods) > 0 {
			first, last := periods[0], periods[len(periods)-1]
			s.First, s.Last = &first, &last
		}
		out = append(out, s)
	}
	return out, nil
}
