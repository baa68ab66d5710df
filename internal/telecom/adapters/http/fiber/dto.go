package fiber

import (
	"time"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/usecase"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"invalid quarter: \"Q5-2020\""`
}

type HealthResponse struct {
	Status     string    `json:"status" example:"ok"`
	SnapshotID string    `json:"snapshot_id"`
	LoadedAt   time.Time `json:"loaded_at"`
	Tables     int       `json:"tables"`
}

type TableSummaryResponse struct {
	Table     string   `json:"table" example:"household_penetration"`
	Sheet     string   `json:"sheet" example:"Penetracion-hogares"`
	National  bool     `json:"national"`
	Columns   []string `json:"columns"`
	Rows      int      `json:"rows"`
	Provinces int      `json:"provinces"`
	First     *string  `json:"first_period" example:"Q1-2014"`
	Last      *string  `json:"last_period" example:"Q1-2024"`
}

type PointResponse struct {
	Period string  `json:"period" example:"Q1-2024"`
	Value  float64 `json:"value"`
}

type NationalSeriesResponse struct {
	Table  string          `json:"table"`
	Column string          `json:"column"`
	Agg    string          `json:"agg" example:"mean"`
	Points []PointResponse `json:"points"`
}

type CompareProvincesResponse struct {
	Table  string                     `json:"table"`
	Column string                     `json:"column"`
	From   string                     `json:"from"`
	To     string                     `json:"to"`
	Series map[string][]PointResponse `json:"series"`
}

type RankedResponse struct {
	Rank     int     `json:"rank" example:"1"`
	Province string  `json:"province" example:"Capital Federal"`
	Value    float64 `json:"value"`
}

type TopProvincesResponse struct {
	Table   string           `json:"table"`
	Column  string           `json:"column"`
	Period  string           `json:"period"`
	Ranking []RankedResponse `json:"ranking"`
}

// ChangeResponse carries a null percent where the change is undefined.
type ChangeResponse struct {
	Province string   `json:"province"`
	Period   string   `json:"period"`
	Percent  *float64 `json:"percent"`
}

type PercentChangeResponse struct {
	Table   string           `json:"table"`
	Column  string           `json:"column"`
	Lag     int              `json:"lag" example:"1"`
	Changes []ChangeResponse `json:"changes"`
}

type GapResponse struct {
	Period      string  `json:"period"`
	Max         float64 `json:"max"`
	MaxProvince string  `json:"max_province"`
	Min         float64 `json:"min"`
	MinProvince string  `json:"min_province"`
	Gap         float64 `json:"gap"`
}

type DigitalGapResponse struct {
	Table  string        `json:"table"`
	Column string        `json:"column"`
	Gaps   []GapResponse `json:"gaps"`
}

type PeriodSharesResponse struct {
	Period string             `json:"period"`
	Shares map[string]float64 `json:"shares"`
}

type TechnologyProportionsResponse struct {
	Table   string                 `json:"table"`
	Periods []PeriodSharesResponse `json:"periods"`
}

type ProvinceShareResponse struct {
	Province string   `json:"province"`
	Count    float64  `json:"count"`
	Total    float64  `json:"total"`
	Percent  *float64 `json:"percent"`
}

type TechnologyShareResponse struct {
	Technology string                  `json:"technology" example:"fiber"`
	Period     string                  `json:"period"`
	Provinces  []ProvinceShareResponse `json:"provinces"`
}

type TechnologyBreakdownResponse struct {
	Province    string             `json:"province"`
	Period      string             `json:"period"`
	Counts      map[string]float64 `json:"counts"`
	Total       float64            `json:"total"`
	Sum         float64            `json:"sum"`
	Discrepancy float64            `json:"discrepancy"`
}

type SeriesRefResponse struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

type RegressionResponse struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	RSquared  float64 `json:"r_squared"`
	PValue    float64 `json:"p_value"`
	StdErr    float64 `json:"std_err"`
	N         int     `json:"n"`
}

type CorrelationResponse struct {
	X           SeriesRefResponse  `json:"x"`
	Y           SeriesRefResponse  `json:"y"`
	Province    string             `json:"province"`
	Correlation float64            `json:"correlation"`
	Regression  RegressionResponse `json:"regression"`
}

type GapDecayResponse struct {
	InitialGap float64   `json:"initial_gap"`
	DecayRate  float64   `json:"decay_rate" example:"0.1"`
	Curve      []float64 `json:"curve"`
}

type ProvinceGrowthResponse struct {
	Province    string   `json:"province"`
	Percent     *float64 `json:"percent"`
	Delta       *float64 `json:"delta"`
	MeetsTarget bool     `json:"meets_target"`
}

type GrowthReportResponse struct {
	Column        string                   `json:"column"`
	Target        float64                  `json:"target" example:"2"`
	From          string                   `json:"from"`
	To            string                   `json:"to"`
	Mean          float64                  `json:"mean"`
	Best          ProvinceGrowthResponse   `json:"best"`
	Worst         ProvinceGrowthResponse   `json:"worst"`
	MeetingTarget int                      `json:"meeting_target"`
	Provinces     []ProvinceGrowthResponse `json:"provinces"`
}

type ProjectedGapResponse struct {
	Period string  `json:"period"`
	Gap    float64 `json:"gap"`
}

type GapReductionResponse struct {
	Column           string                 `json:"column"`
	Target           float64                `json:"target" example:"10"`
	Previous         GapResponse            `json:"previous"`
	Latest           GapResponse            `json:"latest"`
	ReductionPercent *float64               `json:"reduction_percent"`
	MeetsTarget      bool                   `json:"meets_target"`
	Projection       []ProjectedGapResponse `json:"projection"`
}

func optional(v float64, valid bool) *float64 {
	if !valid {
		return nil
	}
	return &v
}

func periodLabel(p *domain.QuarterPeriod) *string {
	if p == nil {
		return nil
	}
	s := p.Label()
	return &s
}

func toPoints(points []domain.Point) []PointResponse {
	out := make([]PointResponse, len(points))
	for i, p := range points {
		out[i] = PointResponse{Period: p.Period.Label(), Value: p.Value}
	}
	return out
}

func toGap(g analysis.Gap) GapResponse {
	return GapResponse{
		Period:      g.Period.Label(),
		Max:         g.Max,
		MaxProvince: g.MaxProvince,
		Min:         g.Min,
		MinProvince: g.MinProvince,
		Gap:         g.Gap,
	}
}

func toTableSummary(s usecase.TableSummary) TableSummaryResponse {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = string(c)
	}
	return TableSummaryResponse{
		Table:     string(s.Family),
		Sheet:     s.Sheet,
		National:  s.National,
		Columns:   cols,
		Rows:      s.Rows,
		Provinces: s.Provinces,
		First:     periodLabel(s.First),
		Last:      periodLabel(s.Last),
	}
}

func toProvinceGrowth(g analysis.ProvinceGrowth) ProvinceGrowthResponse {
	return ProvinceGrowthResponse{
		Province:    g.Province,
		Percent:     optional(g.Percent, g.Valid),
		Delta:       optional(g.Delta, g.Valid),
		MeetsTarget: g.MeetsTarget,
	}
}

func toGrowthReport(r *analysis.GrowthReport) GrowthReportResponse {
	resp := GrowthReportResponse{
		Column:        string(r.Column),
		Target:        r.Target,
		From:          r.From.Label(),
		To:            r.To.Label(),
		Mean:          r.Mean,
		Best:          toProvinceGrowth(r.Best),
		Worst:         toProvinceGrowth(r.Worst),
		MeetingTarget: r.MeetingTarget,
		Provinces:     make([]ProvinceGrowthResponse, 0, len(r.Provinces)),
	}
	for _, p := range r.Provinces {
		resp.Provinces = append(resp.Provinces, toProvinceGrowth(p))
	}
	return resp
}

func toGapReduction(r *analysis.GapReductionReport) GapReductionResponse {
	resp := GapReductionResponse{
		Column:           string(r.Column),
		Target:           r.Target,
		Previous:         toGap(r.Previous),
		Latest:           toGap(r.Latest),
		ReductionPercent: optional(r.ReductionPercent, r.Valid),
		MeetsTarget:      r.MeetsTarget,
		Projection:       make([]ProjectedGapResponse, len(r.Projection)),
	}
	for i, p := range r.Projection {
		resp.Projection[i] = ProjectedGapResponse{Period: p.Period.Label(), Gap: p.Gap}
	}
	return resp
}
