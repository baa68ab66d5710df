package fiber

import (
	"context"
	"net/http"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type CorrelationUseCase interface {
	Execute(ctx context.Context, in usecase.CorrelationInput) (*usecase.CorrelationResult, error)
}

type KPIUseCase interface {
	Growth(ctx context.Context, in usecase.KPIInput) (*analysis.GrowthReport, error)
	FiberAdoption(ctx context.Context, in usecase.KPIInput) (*analysis.GrowthReport, error)
	GapReduction(ctx context.Context, in usecase.KPIInput) (*analysis.GapReductionReport, error)
	GapDecay(ctx context.Context, in usecase.GapDecayInput) (*usecase.GapDecayResult, error)
}

type AnalyticsHandler struct {
	correlationUC CorrelationUseCase
	kpiUC         KPIUseCase
}

func NewAnalyticsHandler(correlationUC CorrelationUseCase, kpiUC KPIUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{correlationUC: correlationUC, kpiUC: kpiUC}
}

// Correlation godoc
// @Summary Correlate two series
// @Description Pearson correlation and least-squares fit of y on x over the periods both series share
// @Tags Analytics
// @Produce json
// @Param x_table query string true "Table of the x series"
// @Param x_column query string false "Column of the x series"
// @Param y_table query string true "Table of the y series"
// @Param y_column query string false "Column of the y series"
// @Param province query string false "Province (default: National Average)"
// @Param agg query string false "National aggregation: mean | sum"
// @Success 200 {object} CorrelationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/correlation [get]
func (h *AnalyticsHandler) Correlation(c *fiber.Ctx) error {
	in := usecase.CorrelationInput{
		XTable:   c.Query("x_table", ""),
		XColumn:  c.Query("x_column", ""),
		YTable:   c.Query("y_table", ""),
		YColumn:  c.Query("y_column", ""),
		Province: c.Query("province", ""),
		Agg:      c.Query("agg", ""),
	}
	if in.XTable == "" || in.YTable == "" {
		return badQuery(c, "x_table and y_table are required")
	}

	res, err := h.correlationUC.Execute(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(CorrelationResponse{
		X:           SeriesRefResponse{Table: string(res.X.Table), Column: string(res.X.Column)},
		Y:           SeriesRefResponse{Table: string(res.Y.Table), Column: string(res.Y.Column)},
		Province:    res.Province,
		Correlation: res.Correlation,
		Regression: RegressionResponse{
			Slope:     res.Regression.Slope,
			Intercept: res.Regression.Intercept,
			RSquared:  res.Regression.RSquared,
			PValue:    res.Regression.PValue,
			StdErr:    res.Regression.StdErr,
			N:         res.Regression.N,
		},
	})
}

// GapDecay godoc
// @Summary Gap reduction target curve
// @Description Geometric decay of a gap: gap * (1 - rate)^k for k = 0..periods-1
// @Tags Analytics
// @Produce json
// @Param initial_gap query number false "Starting gap (default: latest household penetration gap)"
// @Param decay_rate query number false "Rate in [0,1] (default: configured)"
// @Param periods query int false "Curve length (default: configured)"
// @Success 200 {object} GapDecayResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/targets/gap-decay [get]
func (h *AnalyticsHandler) GapDecay(c *fiber.Ctx) error {
	var in usecase.GapDecayInput
	var err error

	if in.InitialGap, err = optionalFloat(c, "initial_gap"); err != nil {
		return badQuery(c, err.Error())
	}
	if in.DecayRate, err = optionalFloat(c, "decay_rate"); err != nil {
		return badQuery(c, err.Error())
	}
	if in.Periods, err = optionalInt(c, "periods"); err != nil {
		return badQuery(c, err.Error())
	}

	res, err := h.kpiUC.GapDecay(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(GapDecayResponse{
		InitialGap: res.InitialGap,
		DecayRate:  res.DecayRate,
		Curve:      res.Curve,
	})
}

func kpiInput(c *fiber.Ctx) (usecase.KPIInput, error) {
	target, err := optionalFloat(c, "target")
	if err != nil {
		return usecase.KPIInput{}, err
	}
	return usecase.KPIInput{
		Table:  c.Query("table", ""),
		Column: c.Query("column", ""),
		Target: target,
	}, nil
}

// GrowthKPI godoc
// @Summary Access growth KPI
// @Description Quarter-over-quarter growth of each province against the growth target
// @Tags KPI
// @Produce json
// @Param table query string false "Table key (default: household_penetration)"
// @Param column query string false "Column key"
// @Param target query number false "Target percentage (default: configured)"
// @Success 200 {object} GrowthReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/kpi/growth [get]
func (h *AnalyticsHandler) GrowthKPI(c *fiber.Ctx) error {
	in, err := kpiInput(c)
	if err != nil {
		return badQuery(c, err.Error())
	}

	res, err := h.kpiUC.Growth(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toGrowthReport(res))
}

// FiberAdoptionKPI godoc
// @Summary Fiber adoption KPI
// @Description Quarter-over-quarter growth of fiber accesses per province against the fiber target
// @Tags KPI
// @Produce json
// @Param target query number false "Target percentage (default: configured)"
// @Success 200 {object} GrowthReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/kpi/fiber-adoption [get]
func (h *AnalyticsHandler) FiberAdoptionKPI(c *fiber.Ctx) error {
	in, err := kpiInput(c)
	if err != nil {
		return badQuery(c, err.Error())
	}

	res, err := h.kpiUC.FiberAdoption(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toGrowthReport(res))
}

// GapReductionKPI godoc
// @Summary Digital gap reduction KPI
// @Description Reduction of the digital gap between the two latest periods, with the projected target curve
// @Tags KPI
// @Produce json
// @Param table query string false "Table key (default: household_penetration)"
// @Param column query string false "Column key"
// @Param target query number false "Target reduction percentage (default: configured)"
// @Success 200 {object} GapReductionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/kpi/gap-reduction [get]
func (h *AnalyticsHandler) GapReductionKPI(c *fiber.Ctx) error {
	in, err := kpiInput(c)
	if err != nil {
		return badQuery(c, err.Error())
	}

	res, err := h.kpiUC.GapReduction(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toGapReduction(res))
}
