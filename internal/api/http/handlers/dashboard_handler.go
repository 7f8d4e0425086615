package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/openboard/issue-service/internal/auth"
	"github.com/openboard/issue-service/internal/service"
	apperrors "github.com/openboard/issue-service/pkg/util"
)

// DashboardHandler serves status-count summaries.
type DashboardHandler struct {
	stats *service.StatsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// UserSummary GET /dashboard.
func (h *DashboardHandler) UserSummary(c *fiber.Ctx) error {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	counts, err := h.stats.UserSummary(c.Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": counts})
}

// AdminOverview GET /admin/stats.
func (h *DashboardHandler) AdminOverview(c *fiber.Ctx) error {
	overview, err := h.stats.AdminOverview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": overview})
}
