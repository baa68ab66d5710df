package domain

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// Row is one (province, period) observation of a family. Values holds only
// the columns that were present in the source; missing cells are absent.
type Row struct {
	Province string
	Period   QuarterPeriod
	Values   map[Column]float64
}

// MetricRecord is a single value of a single column.
type MetricRecord struct {
	Family   Family
	Province string
	Period   QuarterPeriod
	Column   Column
	Value    float64
}

type rowKey struct {
	province string
	period   QuarterPeriod
}

// MetricTable is an immutable, (period, province)-ordered collection of rows
// for one family. Accessors hand out copies.
type MetricTable struct {
	family Family
	rows   []Row
	index  map[rowKey]int
}

// NewMetricTable validates and copies rows. Province names are canonicalized;
// unknown provinces, columns outside the family, non-finite values and a
// second row for the same (province, period) are rejected.
func NewMetricTable(family Family, rows []Row) (*MetricTable, error) {
	if _, err := ParseFamily(string(family)); err != nil {
		return nil, err
	}

	t := &MetricTable{
		family: family,
		rows:   make([]Row, 0, len(rows)),
		index:  make(map[rowKey]int, len(rows)),
	}

	for _, r := range rows {
		province, err := CanonicalProvince(r.Province)
		if err != nil {
			return nil, err
		}
		if _, err := NewQuarterPeriod(r.Period.Year, r.Period.Quarter); err != nil {
			return nil, err
		}
		for c, v := range r.Values {
			if !family.HasColumn(c) {
				return nil, fmt.Errorf("%w: %q in table %s", ErrUnknownColumn, c, family)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("non-finite value for %s %s %s", province, r.Period, c)
			}
		}

		key := rowKey{province: province, period: r.Period}
		if _, dup := t.index[key]; dup {
			return nil, fmt.Errorf("%w: %s %s in table %s", ErrDuplicateRecord, province, r.Period, family)
		}
		t.index[key] = -1

		t.rows = append(t.rows, Row{
			Province: province,
			Period:   r.Period,
			Values:   maps.Clone(r.Values),
		})
	}

	slices.SortFunc(t.rows, compareRows)
	for i, r := range t.rows {
		t.index[rowKey{province: r.Province, period: r.Period}] = i
	}
	return t, nil
}

// BuildMetricTable groups long-format records into rows.
func BuildMetricTable(family Family, records []MetricRecord) (*MetricTable, error) {
	byKey := make(map[rowKey]*Row)
	var order []rowKey

	for _, rec := range records {
		if rec.Family != "" && rec.Family != family {
			return nil, fmt.Errorf("record of table %s passed to %s", rec.Family, family)
		}
		province, err := CanonicalProvince(rec.Province)
		if err != nil {
			return nil, err
		}
		key := rowKey{province: province, period: rec.Period}
		row, ok := byKey[key]
		if !ok {
			row = &Row{Province: province, Period: rec.Period, Values: map[Column]float64{}}
			byKey[key] = row
			order = append(order, key)
		}
		if _, dup := row.Values[rec.Column]; dup {
			return nil, fmt.Errorf("%w: %s %s %s in table %s", ErrDuplicateRecord, province, rec.Period, rec.Column, family)
		}
		row.Values[rec.Column] = rec.Value
	}

	rows := make([]Row, 0, len(order))
	for _, k := range order {
		rows = append(rows, *byKey[k])
	}
	return NewMetricTable(family, rows)
}

func compareRows(a, b Row) int {
	if c := a.Period.Compare(b.Period); c != 0 {
		return c
	}
	return CompareProvinceNames(a.Province, b.Province)
}

func (t *MetricTable) Family() Family { return t.family }

func (t *MetricTable) Len() int { return len(t.rows) }

// Rows returns a deep copy of the rows in (period, province) order.
func (t *MetricTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i, r := range t.rows {
		out[i] = Row{Province: r.Province, Period: r.Period, Values: maps.Clone(r.Values)}
	}
	return out
}

func (t *MetricTable) Row(province string, period QuarterPeriod) (Row, bool) {
	canonical, err := CanonicalProvince(province)
	if err != nil {
		return Row{}, false
	}
	i, ok := t.index[rowKey{province: canonical, period: period}]
	if !ok {
		return Row{}, false
	}
	r := t.rows[i]
	return Row{Province: r.Province, Period: r.Period, Values: maps.Clone(r.Values)}, true
}

// Value looks up a single cell.
func (t *MetricTable) Value(province string, period QuarterPeriod, column Column) (float64, bool) {
	canonical, err := CanonicalProvince(province)
	if err != nil {
		return 0, false
	}
	i, ok := t.index[rowKey{province: canonical, period: period}]
	if !ok {
		return 0, false
	}
	v, ok := t.rows[i].Values[column]
	return v, ok
}

// Periods returns the distinct periods present, chronologically.
func (t *MetricTable) Periods() []QuarterPeriod {
	var out []QuarterPeriod
	for _, r := range t.rows {
		if n := len(out); n == 0 || out[n-1] != r.Period {
			out = append(out, r.Period)
		}
	}
	return out
}

// Provinces returns the real (non-synthetic) provinces observed, sorted.
func (t *MetricTable) Provinces() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t.rows {
		if IsSynthetic(r.Province) {
			continue
		}
		if _, ok := seen[r.Province]; ok {
			continue
		}
		seen[r.Province] = struct{}{}
		out = append(out, r.Province)
	}
	slices.SortFunc(out, CompareProvinceNames)
	return out
}

// Records projects one column into long format, in (period, province) order.
// Rows missing the column are skipped.
func (t *MetricTable) Records(column Column) ([]MetricRecord, error) {
	if !t.family.HasColumn(column) {
		return nil, fmt.Errorf("%w: %q in table %s", ErrUnknownColumn, column, t.family)
	}
	out := make([]MetricRecord, 0, len(t.rows))
	for _, r := range t.rows {
		v, ok := r.Values[column]
		if !ok {
			continue
		}
		out = append(out, MetricRecord{
			Family:   t.family,
			Province: r.Province,
			Period:   r.Period,
			Column:   column,
			Value:    v,
		})
	}
	return out, nil
}

// AllRecords flattens every column of every row, columns in family order.
func (t *MetricTable) AllRecords() []MetricRecord {
	var out []MetricRecord
	cols := t.family.Columns()
	for _, r := range t.rows {
		for _, c := range cols {
			v, ok := r.Values[c]
			if !ok {
				continue
			}
			out = append(out, MetricRecord{Family: t.family, Province: r.Province, Period: r.Period, Column: c, Value: v})
		}
	}
	return out
}

// Filter returns a new table with the rows keep accepts. Value maps are
// shared with the receiver; neither table ever writes to them.
func (t *MetricTable) Filter(keep func(Row) bool) *MetricTable {
	out := &MetricTable{
		family: t.family,
		index:  make(map[rowKey]int),
	}
	for _, r := range t.rows {
		if !keep(r) {
			continue
		}
		out.index[rowKey{province: r.Province, period: r.Period}] = len(out.rows)
		out.rows = append(out.rows, r)
	}
	return out
}
