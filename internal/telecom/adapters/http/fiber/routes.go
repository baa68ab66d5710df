package fiber

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the query API under /api/v1 and the health check at
// the root.
func RegisterRoutes(app *fiber.App, tables *TableHandler, tech *TechnologyHandler, analytics *AnalyticsHandler, health *HealthHandler) {
	app.Get("/health", health.Health)

	v1 := app.Group("/api/v1")

	v1.Get("/tables", tables.ListTables)
	v1.Get("/tables/:table/national", tables.NationalSeries)
	v1.Get("/tables/:table/compare", tables.CompareProvinces)
	v1.Get("/tables/:table/top", tables.TopProvinces)
	v1.Get("/tables/:table/percent-change", tables.PercentChange)
	v1.Get("/tables/:table/gap", tables.DigitalGap)
	v1.Get("/tables/:table/gap-series", tables.DigitalGapSeries)

	v1.Get("/technology/proportions", tech.Proportions)
	v1.Get("/technology/share", tech.Share)
	v1.Get("/technology/breakdown", tech.Breakdown)

	v1.Get("/correlation", analytics.Correlation)
	v1.Get("/targets/gap-decay", analytics.GapDecay)
	v1.Get("/kpi/growth", analytics.GrowthKPI)
	v1.Get("/kpi/fiber-adoption", analytics.FiberAdoptionKPI)
	v1.Get("/kpi/gap-reduction", analytics.GapReductionKPI)
}
