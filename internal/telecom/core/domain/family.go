package domain

import (
	"fmt"
	"slices"
)

// Family identifies one metric table. The set is closed; free-form names are
// resolved through ParseFamily at the boundary.
type Family string

const (
	FamilySpeed                 Family = "speed"
	FamilyHouseholdPenetration  Family = "household_penetration"
	FamilyPopulationPenetration Family = "population_penetration"
	FamilyTechnologyAccess      Family = "technology_access"
	FamilyTechnologyTotals      Family = "technology_totals"
	FamilySpeedTierAccess       Family = "speed_tier_access"
	FamilyRevenue               Family = "revenue"
)

// Column is a value column inside a family.
type Column string

const (
	ColumnMbpsDownload      Column = "mbps_download"
	ColumnPer100Households  Column = "per_100_households"
	ColumnPer100Inhabitants Column = "per_100_inhabitants"

	ColumnADSL       Column = "adsl"
	ColumnCablemodem Column = "cablemodem"
	ColumnFiber      Column = "fiber"
	ColumnWireless   Column = "wireless"
	ColumnOther      Column = "other"
	ColumnTotal      Column = "total"

	ColumnUpTo512Kbps   Column = "up_to_512kbps"
	Column512Kbps1Mbps  Column = "512kbps_1mbps"
	Column1Mbps6Mbps    Column = "1mbps_6mbps"
	Column6Mbps10Mbps   Column = "6mbps_10mbps"
	Column10Mbps20Mbps  Column = "10mbps_20mbps"
	Column20Mbps30Mbps  Column = "20mbps_30mbps"
	ColumnOver30Mbps    Column = "over_30mbps"
	ColumnRevenueARSThd Column = "revenue_thousands_ars"
)

// ColumnSpec binds a column key to the header used in the source workbook.
type ColumnSpec struct {
	Key    Column
	Header string
}

type familySpec struct {
	sheet    string
	national bool
	columns  []ColumnSpec
}

var technologyColumns = []ColumnSpec{
	{ColumnADSL, "ADSL"},
	{ColumnCablemodem, "Cablemodem"},
	{ColumnFiber, "Fibra óptica"},
	{ColumnWireless, "Wireless"},
	{ColumnOther, "Otros"},
	{ColumnTotal, "Total"},
}

var familySpecs = map[Family]familySpec{
	FamilySpeed: {
		sheet:   "Velocidad % por prov",
		columns: []ColumnSpec{{ColumnMbpsDownload, "Mbps (Media de bajada)"}},
	},
	FamilyHouseholdPenetration: {
		sheet:   "Penetracion-hogares",
		columns: []ColumnSpec{{ColumnPer100Households, "Accesos por cada 100 hogares"}},
	},
	FamilyPopulationPenetration: {
		sheet:   "Penetración-poblacion",
		columns: []ColumnSpec{{ColumnPer100Inhabitants, "Accesos por cada 100 hab"}},
	},
	FamilyTechnologyAccess: {
		sheet:   "Accesos Por Tecnología",
		columns: technologyColumns,
	},
	FamilyTechnologyTotals: {
		sheet:    "Totales Accesos Por Tecnología",
		national: true,
		columns:  technologyColumns,
	},
	FamilySpeedTierAccess: {
		sheet: "Accesos por velocidad",
		columns: []ColumnSpec{
			{ColumnUpTo512Kbps, "HASTA 512 kbps"},
			{Column512Kbps1Mbps, "+ 512 Kbps - 1 Mbps"},
			{Column1Mbps6Mbps, "+ 1 Mbps - 6 Mbps"},
			{Column6Mbps10Mbps, "+ 6 Mbps - 10 Mbps"},
			{Column10Mbps20Mbps, "+ 10 Mbps - 20 Mbps"},
			{Column20Mbps30Mbps, "+ 20 Mbps - 30 Mbps"},
			{ColumnOver30Mbps, "+ 30 Mbps"},
			{ColumnOther, "OTROS"},
			{ColumnTotal, "Total"},
		},
	},
	FamilyRevenue: {
		sheet:    "Ingresos",
		national: true,
		columns:  []ColumnSpec{{ColumnRevenueARSThd, "Ingresos (miles de pesos)"}},
	},
}

// Families returns every recognized family, sorted by key.
func Families() []Family {
	out := make([]Family, 0, len(familySpecs))
	for f := range familySpecs {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func ParseFamily(name string) (Family, error) {
	f := Family(name)
	if _, ok := familySpecs[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return f, nil
}

func (f Family) Sheet() string {
	return familySpecs[f].sheet
}

// National reports whether the source sheet carries only national rows.
func (f Family) National() bool {
	return familySpecs[f].national
}

func (f Family) ColumnSpecs() []ColumnSpec {
	return slices.Clone(familySpecs[f].columns)
}

func (f Family) Columns() []Column {
	specs := familySpecs[f].columns
	out := make([]Column, len(specs))
	for i, c := range specs {
		out[i] = c.Key
	}
	return out
}

func (f Family) HasColumn(c Column) bool {
	for _, spec := range familySpecs[f].columns {
		if spec.Key == c {
			return true
		}
	}
	return false
}

// DefaultColumn is the first declared column, used when a query omits one.
func (f Family) DefaultColumn() Column {
	specs := familySpecs[f].columns
	if len(specs) == 0 {
		return ""
	}
	return specs[0].Key
}

// ParseColumn resolves a column name within f; an empty name selects the
// default column.
func ParseColumn(f Family, name string) (Column, error) {
	if name == "" {
		return f.DefaultColumn(), nil
	}
	c := Column(name)
	if !f.HasColumn(c) {
		return "", fmt.Errorf("%w: %q in table %s", ErrUnknownColumn, name, f)
	}
	return c, nil
}
