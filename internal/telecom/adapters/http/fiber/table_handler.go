package fiber

import (
	"context"
	"net/http"

	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ListTablesUseCase interface {
	Execute(ctx context.Context) ([]usecase.TableSummary, error)
}

type NationalSeriesUseCase interface {
	Execute(ctx context.Context, in usecase.NationalSeriesInput) (*usecase.NationalSeriesResult, error)
}

type CompareProvincesUseCase interface {
	Execute(ctx context.Context, in usecase.CompareProvincesInput) (*usecase.CompareProvincesResult, error)
}

type TopProvincesUseCase interface {
	Execute(ctx context.Context, in usecase.TopProvincesInput) (*usecase.TopProvincesResult, error)
}

type PercentChangeUseCase interface {
	Execute(ctx context.Context, in usecase.PercentChangeInput) (*usecase.PercentChangeResult, error)
}

type DigitalGapUseCase interface {
	Execute(ctx context.Context, in usecase.DigitalGapInput) (*usecase.DigitalGapResult, error)
	Series(ctx context.Context, in usecase.DigitalGapSeriesInput) (*usecase.DigitalGapResult, error)
}

// TableUseCases groups the per-table queries served by TableHandler.
type TableUseCases struct {
	List          ListTablesUseCase
	National      NationalSeriesUseCase
	Compare       CompareProvincesUseCase
	Top           TopProvincesUseCase
	PercentChange PercentChangeUseCase
	Gap           DigitalGapUseCase
}

type TableHandler struct {
	uc TableUseCases
}

func NewTableHandler(uc TableUseCases) *TableHandler {
	return &TableHandler{uc: uc}
}

// ListTables godoc
// @Summary List loaded tables
// @Description Returns every loaded table with its columns, row count and period span
// @Tags Tables
// @Produce json
// @Success 200 {array} TableSummaryResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables [get]
func (h *TableHandler) ListTables(c *fiber.Ctx) error {
	res, err := h.uc.List.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]TableSummaryResponse, 0, len(res))
	for _, s := range res {
		resp = append(resp, toTableSummary(s))
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// NationalSeries godoc
// @Summary National series
// @Description Aggregates a column across provinces for every period in range
// @Tags Tables
// @Produce json
// @Param table path string true "Table key"
// @Param column query string false "Column key (default: first column of the table)"
// @Param from query string false "First period, Q{n}-{year}"
// @Param to query string false "Last period, Q{n}-{year}"
// @Param agg query string false "mean | sum"
// @Success 200 {object} NationalSeriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables/{table}/national [get]
func (h *TableHandler) NationalSeries(c *fiber.Ctx) error {
	res, err := h.uc.National.Execute(c.UserContext(), usecase.NationalSeriesInput{
		Table:  c.Params("table"),
		Column: c.Query("column", ""),
		From:   c.Query("from", ""),
		To:     c.Query("to", ""),
		Agg:    c.Query("agg", ""),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(NationalSeriesResponse{
		Table:  string(res.Table),
		Column: string(res.Column),
		Agg:    res.Agg,
		Points: toPoints(res.Points),
	})
}

// CompareProvinces godoc
// @Summary Compare provinces
// @Description Returns one series per requested province; "National Average" is accepted as a province
// @Tags Tables
// @Produce json
// @Param table path string true "Table key"
// @Param column query string false "Column key"
// @Param provinces query string true "Comma separated province names (at least two)"
// @Param from query string false "First period, Q{n}-{year}"
// @Param to query string false "Last period, Q{n}-{year}"
// @Success 200 {object} CompareProvincesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables/{table}/compare [get]
func (h *TableHandler) CompareProvinces(c *fiber.Ctx) error {
	res, err := h.uc.Compare.Execute(c.UserContext(), usecase.CompareProvincesInput{
		Table:     c.Params("table"),
		Column:    c.Query("column", ""),
		Provinces: splitList(c.Query("provinces", "")),
		From:      c.Query("from", ""),
		To:        c.Query("to", ""),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := CompareProvincesResponse{
		Table:  string(res.Table),
		Column: string(res.Column),
		From:   res.From.Label(),
		To:     res.To.Label(),
		Series: make(map[string][]PointResponse, len(res.Series)),
	}
	for province, points := range res.Series {
		resp.Series[province] = toPoints(points)
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// TopProvinces godoc
// @Summary Top provinces
// @Description Ranks provinces by a column in one period, ties broken by name
// @Tags Tables
// @Produce json
// @Param table path string true "Table key"
// @Param column query string false "Column key"
// @Param period query string false "Period, Q{n}-{year} (default: latest)"
// @Param n query int false "Ranking size (default 5)"
// @Success 200 {object} TopProvincesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables/{table}/top [get]
func (h *TableHandler) TopProvinces(c *fiber.Ctx) error {
	n, err := optionalInt(c, "n")
	if err != nil {
		return badQuery(c, err.Error())
	}

	in := usecase.TopProvincesInput{
		Table:  c.Params("table"),
		Column: c.Query("column", ""),
		Period: c.Query("period", ""),
	}
	if n != nil {
		if *n == 0 {
			return badQuery(c, "'n' must be positive")
		}
		in.N = *n
	}

	res, err := h.uc.Top.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := TopProvincesResponse{
		Table:   string(res.Table),
		Column:  string(res.Column),
		Period:  res.Period.Label(),
		Ranking: make([]RankedResponse, 0, len(res.Ranking)),
	}
	for _, r := range res.Ranking {
		resp.Ranking = append(resp.Ranking, RankedResponse{Rank: r.Rank, Province: r.Province, Value: r.Value})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// PercentChange godoc
// @Summary Percent change per province
// @Description Lagged percentage change keyed by province and base period; null where undefined
// @Tags Tables
// @Produce json
// @Param table path string true "Table key"
// @Param column query string false "Column key"
// @Param lag query int false "Lag in periods (default 1)"
// @Param provinces query string false "Comma separated province filter; National Average adds the national series"
// @Success 200 {object} PercentChangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables/{table}/percent-change [get]
func (h *TableHandler) PercentChange(c *fiber.Ctx) error {
	lag, err := optionalInt(c, "lag")
	if err != nil {
		return badQuery(c, err.Error())
	}

	in := usecase.PercentChangeInput{
		Table:     c.Params("table"),
		Column:    c.Query("column", ""),
		Provinces: splitList(c.Query("provinces", "")),
	}
	if lag != nil {
		if *lag == 0 {
			return badQuery(c, "'lag' must be positive")
		}
		in.Lag = *lag
	}

	res, err := h.uc.PercentChange.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	resp := PercentChangeResponse{
		Table:   string(res.Table),
		Column:  string(res.Column),
		Lag:     res.Lag,
		Changes: make([]ChangeResponse, 0, len(res.Changes)),
	}
	for _, ch := range res.Changes {
		resp.Changes = append(resp.Changes, ChangeResponse{
			Province: ch.Province,
			Period:   ch.Period.Label(),
			Percent:  optional(ch.Percent, ch.Valid),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// DigitalGap godoc
// @Summary Digital gap
// @Description Max minus min across provinces in one period
// @Tags Tables
// @Produce json
// @Param table path string true "Table key"
// @Param column query string false "Column key"
// @Param period query string false "Period, Q{n}-{year} (default: latest)"
// @Success 200 {object} DigitalGapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables/{table}/gap [get]
func (h *TableHandler) DigitalGap(c *fiber.Ctx) error {
	res, err := h.uc.Gap.Execute(c.UserContext(), usecase.DigitalGapInput{
		Table:  c.Params("table"),
		Column: c.Query("column", ""),
		Period: c.Query("period", ""),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDigitalGap(res))
}

// DigitalGapSeries godoc
// @Summary Digital gap per period
// @Tags Tables
// @Produce json
// @Param table path string true "Table key"
// @Param column query string false "Column key"
// @Param from query string false "First period, Q{n}-{year}"
// @Param to query string false "Last period, Q{n}-{year}"
// @Success 200 {object} DigitalGapResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/tables/{table}/gap-series [get]
func (h *TableHandler) DigitalGapSeries(c *fiber.Ctx) error {
	res, err := h.uc.Gap.Series(c.UserContext(), usecase.DigitalGapSeriesInput{
		Table:  c.Params("table"),
		Column: c.Query("column", ""),
		From:   c.Query("from", ""),
		To:     c.Query("to", ""),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDigitalGap(res))
}

func toDigitalGap(res *usecase.DigitalGapResult) DigitalGapResponse {
	resp := DigitalGapResponse{
		Table:  string(res.Table),
		Column: string(res.Column),
		Gaps:   make([]GapResponse, 0, len(res.Gaps)),
	}
	for _, g := range res.Gaps {
		resp.Gaps = append(resp.Gaps, toGap(g))
	}
	return resp
}
