package fiber

import (
	"context"
	"net/http"

	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type TechnologyUseCase interface {
	Proportions(ctx context.Context, in usecase.TechnologyProportionsInput) (*usecase.TechnologyProportionsResult, error)
	Share(ctx context.Context, in usecase.TechnologyShareInput) (*usecase.TechnologyShareResult, error)
	Breakdown(ctx context.Context, in usecase.TechnologyBreakdownInput) (*domain.TechnologyBreakdown, error)
}

type TechnologyHandler struct {
	uc TechnologyUseCase
}

func NewTechnologyHandler(uc TechnologyUseCase) *TechnologyHandler {
	return &TechnologyHandler{uc: uc}
}

// Proportions godoc
// @Summary National technology mix
// @Description Share of each access technology in the national total, per period
// @Tags Technology
// @Produce json
// @Param table query string false "technology_totals (default) | technology_access"
// @Success 200 {object} TechnologyProportionsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/technology/proportions [get]
func (h *TechnologyHandler) Proportions(c *fiber.Ctx) error {
	res, err := h.uc.Proportions(c.UserContext(), usecase.TechnologyProportionsInput{
		Table: c.Query("table", ""),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := TechnologyProportionsResponse{
		Table:   string(res.Table),
		Periods: make([]PeriodSharesResponse, 0, len(res.Periods)),
	}
	for _, p := range res.Periods {
		shares := make(map[string]float64, len(p.Shares))
		for tech, v := range p.Shares {
			shares[string(tech)] = v
		}
		resp.Periods = append(resp.Periods, PeriodSharesResponse{Period: p.Period.Label(), Shares: shares})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// Share godoc
// @Summary Technology share per province
// @Description Count of one technology per province and its percentage of the province total
// @Tags Technology
// @Produce json
// @Param technology query string false "adsl | cablemodem | fiber (default) | wireless | other"
// @Param period query string false "Period, Q{n}-{year} (default: latest)"
// @Success 200 {object} TechnologyShareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/technology/share [get]
func (h *TechnologyHandler) Share(c *fiber.Ctx) error {
	res, err := h.uc.Share(c.UserContext(), usecase.TechnologyShareInput{
		Technology: c.Query("technology", ""),
		Period:     c.Query("period", ""),
	})
	if err != nil {
		return writeError(c, err)
	}

	resp := TechnologyShareResponse{
		Technology: string(res.Technology),
		Period:     res.Period.Label(),
		Provinces:  make([]ProvinceShareResponse, 0, len(res.Shares)),
	}
	for _, s := range res.Shares {
		resp.Provinces = append(resp.Provinces, ProvinceShareResponse{
			Province: s.Province,
			Count:    s.Count,
			Total:    s.Total,
			Percent:  optional(s.Percent, s.Valid),
		})
	}
	return c.Status(http.StatusOK).JSON(resp)
}

// Breakdown godoc
// @Summary Technology breakdown
// @Description Per-technology counts of one province, with the difference between the reported total and the sum
// @Tags Technology
// @Produce json
// @Param province query string true "Province name, or National Total"
// @Param period query string false "Period, Q{n}-{year} (default: latest)"
// @Success 200 {object} TechnologyBreakdownResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/technology/breakdown [get]
func (h *TechnologyHandler) Breakdown(c *fiber.Ctx) error {
	province := c.Query("province", "")
	if province == "" {
		return badQuery(c, "province is required")
	}

	res, err := h.uc.Breakdown(c.UserContext(), usecase.TechnologyBreakdownInput{
		Province: province,
		Period:   c.Query("period", ""),
	})
	if err != nil {
		return writeError(c, err)
	}

	counts := make(map[string]float64, len(res.Counts))
	for tech, v := range res.Counts {
		counts[string(tech)] = v
	}
	return c.Status(http.StatusOK).JSON(TechnologyBreakdownResponse{
		Province:    res.Province,
		Period:      res.Period.Label(),
		Counts:      counts,
		Total:       res.Total,
		Sum:         res.Sum,
		Discrepancy: res.Discrepancy,
	})
}
