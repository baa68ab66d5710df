package domain

import "fmt"

// Technology is an access technology category of the technology tables.
type Technology string

const (
	TechADSL       Technology = "adsl"
	TechCablemodem Technology = "cablemodem"
	TechFiber      Technology = "fiber"
	TechWireless   Technology = "wireless"
	TechOther      Technology = "other"
)

var technologies = []Technology{TechADSL, TechCablemodem, TechFiber, TechWireless, TechOther}

// Technologies returns the categories in sheet order.
func Technologies() []Technology {
	out := make([]Technology, len(technologies))
	copy(out, technologies)
	return out
}

func ParseTechnology(name string) (Technology, error) {
	for _, t := range technologies {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: technology %q", ErrUnknownColumn, name)
}

func (t Technology) Column() Column {
	return Column(t)
}

// HasTechnologies reports whether the family carries the per-technology
// columns.
func (f Family) HasTechnologies() bool {
	for _, t := range technologies {
		if !f.HasColumn(t.Column()) {
			return false
		}
	}
	return f.HasColumn(ColumnTotal)
}

// TechnologyBreakdown is a technology-table row viewed as counts per
// category. Discrepancy is Total minus the category sum; a non-zero value is
// reported, not rejected.
type TechnologyBreakdown struct {
	Province    string
	Period      QuarterPeriod
	Counts      map[Technology]float64
	Total       float64
	Sum         float64
	Discrepancy float64
}

// Breakdown builds the technology view of one row.
func (t *MetricTable) Breakdown(province string, period QuarterPeriod) (TechnologyBreakdown, error) {
	if !t.family.HasTechnologies() {
		return TechnologyBreakdown{}, fmt.Errorf("%w: table %s has no technology columns", ErrUnknownColumn, t.family)
	}
	row, ok := t.Row(province, period)
	if !ok {
		return TechnologyBreakdown{}, fmt.Errorf("%w: %s %s", ErrEmptyPeriod, province, period)
	}

	b := TechnologyBreakdown{
		Province: row.Province,
		Period:   row.Period,
		Counts:   make(map[Technology]float64, len(technologies)),
	}
	for _, tech := range technologies {
		v := row.Values[tech.Column()]
		b.Counts[tech] = v
		b.Sum += v
	}
	if total, ok := row.Values[ColumnTotal]; ok {
		b.Total = total
	} else {
		b.Total = b.Sum
	}
	b.Discrepancy = b.Total - b.Sum
	return b, nil
}
