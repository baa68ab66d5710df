package fiber

import (
	"errors"
	"net/http"

	"telecom-metrics-service/internal/telecom/core/analysis"
	"telecom-metrics-service/internal/telecom/core/domain"
	"telecom-metrics-service/internal/telecom/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// writeError maps use case and domain errors to a status and error code.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnknownTable),
		errors.Is(err, domain.ErrUnknownColumn),
		errors.Is(err, domain.ErrUnknownProvince),
		errors.Is(err, analysis.ErrUnknownTechnology):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrInvalidQuery),
		errors.Is(err, domain.ErrInvalidQuarter),
		errors.Is(err, domain.ErrEmptyRange),
		errors.Is(err, analysis.ErrInvalidLag),
		errors.Is(err, analysis.ErrInvalidLimit),
		errors.Is(err, analysis.ErrInvalidTarget),
		errors.Is(err, analysis.ErrTooFewProvinces):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_query",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrEmptyPeriod),
		errors.Is(err, domain.ErrInsufficientData),
		errors.Is(err, domain.ErrTableNotLoaded):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Error:   "no_data",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}

func badQuery(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Error:   "invalid_query",
		Message: msg,
	})
}
