package joins

import (
	"errors"

	"invite-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the join log.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the join log routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/joins")
	group.Get("/:guildID", h.HandleListJoins)
	group.Get("/:guildID/leaderboard", h.HandleLeaderboard)
}

// HandleListJoins returns the latest attributed joins of a guild.
// @Summary List Joins
// @Description List the latest member joins of a guild with the invite they were attributed to.
// @Tags joins
// @Produce json
// @Param guildID path string true "Guild ID"
// @Param limit query int false "Maximum number of records (default 50, max 500)"
// @Success 200 {array} joins.JoinRecord "Join records"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Join log disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /joins/{guildID} [get]
func (h *Handler) HandleListJoins(c *fiber.Ctx) error {
	guildID := c.Params("guildID")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("guild_id", guildID))

	limit := c.QueryInt("limit", DefaultLimit)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must not be negative"})
	}

	records, err := h.service.List(c.Context(), guildID, limit)
	if err != nil {
		return h.fail(c, l, "Listing joins failed", err)
	}
	return c.JSON(records)
}

// HandleLeaderboard ranks the inviters of a guild.
// @Summary Inviter Leaderboard
// @Description Count the joins attributed to each inviter of a guild.
// @Tags joins
// @Produce json
// @Param guildID path string true "Guild ID"
// @Param limit query int false "Maximum number of inviters (default 50, max 500)"
// @Success 200 {array} joins.LeaderboardEntry "Leaderboard"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "Join log disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /joins/{guildID}/leaderboard [get]
func (h *Handler) HandleLeaderboard(c *fiber.Ctx) error {
	guildID := c.Params("guildID")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("guild_id", guildID))

	limit := c.QueryInt("limit", DefaultLimit)
	if limit < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must not be negative"})
	}

	entries, err := h.service.Leaderboard(c.Context(), guildID, limit)
	if err != nil {
		return h.fail(c, l, "Leaderboard failed", err)
	}
	return c.JSON(entries)
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
