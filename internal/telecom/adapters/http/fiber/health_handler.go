package fiber

import (
	"net/http"
	"time"

	"telecom-metrics-service/internal/telecom/core/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Snapshot is the part of the dataset the health check reports on.
type Snapshot interface {
	SnapshotID() uuid.UUID
	LoadedAt() time.Time
	Families() []domain.Family
}

type HealthHandler struct {
	snapshot Snapshot
}

func NewHealthHandler(snapshot Snapshot) *HealthHandler {
	return &HealthHandler{snapshot: snapshot}
}

// Health godoc
// @Summary Liveness and dataset snapshot
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{
		Status:     "ok",
		SnapshotID: h.snapshot.SnapshotID().String(),
		LoadedAt:   h.snapshot.LoadedAt(),
		Tables:     len(h.snapshot.Families()),
	})
}
