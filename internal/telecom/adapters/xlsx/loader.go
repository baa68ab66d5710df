// Package xlsx loads the dataset from the ENACOM-style workbook: one sheet
// per table family, a header row, then one row per (year, quarter, province).
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/ports"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

const (
	headerYear     = "Año"
	headerQuarter  = "Trimestre"
	headerProvince = "Provincia"

	// header search stops after this many rows
	maxHeaderRow = 10
)

type Loader struct {
	path string
	log  zerolog.Logger
	now  func() time.Time
}

func NewLoader(path string, log zerolog.Logger) *Loader {
	return &Loader{path: path, log: log, now: time.Now}
}

var _ ports.DatasetSource = (*Loader)(nil)

func (l *Loader) LoadDataset(ctx context.Context) (*domain.Dataset, error) {
	f, err := excelize.OpenFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", l.path, err)
	}
	defer f.Close()

	tables, err := ReadTables(ctx, f, l.log)
	if err != nil {
		return nil, err
	}
	return domain.NewDataset(l.now(), tables...)
}

// SheetStats counts what a sheet contributed and what it dropped.
type SheetStats struct {
	Rows              int
	SkippedQuarter    int
	SkippedProvince   int
	SkippedDuplicates int
	BlankCells        int
	BadCells          int
}

// ReadTables reads every family whose sheet exists in f. Sheet names are
// matched ignoring case and accents; missing sheets are not an error.
func ReadTables(ctx context.Context, f *excelize.File, log zerolog.Logger) ([]*domain.MetricTable, error) {
	sheets := make(map[string]string)
	for _, name := range f.GetSheetList() {
		sheets[domain.FoldName(name)] = name
	}

	var tables []*domain.MetricTable
	for _, family := range domain.Families() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		sheet, ok := sheets[domain.FoldName(family.Sheet())]
		if !ok {
			log.Debug().Str("table", string(family)).Str("sheet", family.Sheet()).Msg("sheet not found, table not loaded")
			continue
		}

		table, stats, err := readSheet(f, sheet, family)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		log.Info().
			Str("table", string(family)).
			Str("sheet", sheet).
			Int("rows", stats.Rows).
			Int("skipped_quarter", stats.SkippedQuarter).
			Int("skipped_province", stats.SkippedProvince).
			Int("skipped_duplicates", stats.SkippedDuplicates).
			Int("blank_cells", stats.BlankCells).
			Int("bad_cells", stats.BadCells).
			Msg("table loaded")

		tables = append(tables, table)
	}
	return tables, nil
}

type layout struct {
	headerRow int
	year      int
	quarter   int
	province  int // -1 on national sheets
	columns   map[domain.Column]int
}

func findLayout(rows [][]string, family domain.Family) (layout, error) {
	for i := 0; i < len(rows) && i < maxHeaderRow; i++ {
		idx := make(map[string]int, len(rows[i]))
		for j, cell := range rows[i] {
			key := domain.FoldName(cell)
			if _, dup := idx[key]; !dup && key != "" {
				idx[key] = j
			}
		}

		year, okYear := idx[domain.FoldName(headerYear)]
		quarter, okQuarter := idx[domain.FoldName(headerQuarter)]
		if !okYear || !okQuarter {
			continue
		}

		l := layout{headerRow: i, year: year, quarter: quarter, province: -1, columns: map[domain.Column]int{}}
		if p, ok := idx[domain.FoldName(headerProvince)]; ok {
			l.province = p
		} else if !family.National() {
			return layout{}, fmt.Errorf("missing %q column", headerProvince)
		}

		for _, spec := range family.ColumnSpecs() {
			if j, ok := idx[domain.FoldName(spec.Header)]; ok {
				l.columns[spec.Key] = j
			}
		}
		if len(l.columns) == 0 {
			return layout{}, errors.New("no value columns found in header")
		}
		return l, nil
	}
	return layout{}, fmt.Errorf("no header row with %q and %q", headerYear, headerQuarter)
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

func blankRow(row []string) bool {
	for _, c := range row {
		if _, err := parseNumber(c); !errors.Is(err, errBlank) {
			return false
		}
	}
	return true
}

func readSheet(f *excelize.File, sheet string, family domain.Family) (*domain.MetricTable, SheetStats, error) {
	var stats SheetStats

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, stats, err
	}

	l, err := findLayout(rows, family)
	if err != nil {
		return nil, stats, err
	}

	type key struct {
		province string
		period   domain.QuarterPeriod
	}
	seen := make(map[key]struct{})

	var out []domain.Row
	for _, row := range rows[l.headerRow+1:] {
		if blankRow(row) {
			continue
		}

		year, err := parseYear(cell(row, l.year))
		if err != nil {
			stats.SkippedQuarter++
			continue
		}
		quarter, err := parseQuarter(cell(row, l.quarter))
		if err != nil {
			stats.SkippedQuarter++
			continue
		}
		period, err := domain.NewQuarterPeriod(year, quarter)
		if err != nil {
			stats.SkippedQuarter++
			continue
		}

		province := domain.NationalTotal
		if l.province >= 0 {
			province, err = domain.CanonicalProvince(cell(row, l.province))
			if err != nil || province == domain.NationalAverage {
				stats.SkippedProvince++
				continue
			}
		}

		k := key{province: province, period: period}
		if _, dup := seen[k]; dup {
			stats.SkippedDuplicates++
			continue
		}
		seen[k] = struct{}{}

		values := make(map[domain.Column]float64, len(l.columns))
		for col, j := range l.columns {
			v, err := parseNumber(cell(row, j))
			switch {
			case errors.Is(err, errBlank):
				stats.BlankCells++
			case err != nil:
				stats.BadCells++
			default:
				values[col] = v
			}
		}

		out = append(out, domain.Row{Province: province, Period: period, Values: values})
	}

	table, err := domain.NewMetricTable(family, out)
	if err != nil {
		return nil, stats, err
	}
	stats.Rows = table.Len()
	return table, stats, nil
}
