package invites

import (
	"errors"

	"invite-tracker/core/logger"
	"invite-tracker/core/tracker"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the invite cache.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the invite routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/invites")
	group.Get("/", h.HandleListGuilds)
	group.Get("/:guildID", h.HandleGetSnapshot)
	group.Post("/:guildID/resync", h.HandleResync)
	group.Post("/:guildID/export", h.HandleExport)
	group.Get("/:guildID/exports", h.HandleListExports)
}

// HandleListGuilds lists the tracked guilds.
// @Summary List Guilds
// @Description List the ids of all guilds with cached invites.
// @Tags invites
// @Produce json
// @Success 200 {array} string "Guild IDs"
// @Failure 503 {object} map[string]string "Tracker stopped"
// @Router /invites [get]
func (h *Handler) HandleListGuilds(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	ids, err := h.service.Guilds(c.Context())
	if err != nil {
		return fail(c, l, "Listing guilds failed", err)
	}
	return c.JSON(ids)
}

// HandleGetSnapshot returns the cached invites of a guild.
// @Summary Get Guild Snapshot
// @Description Get the cached invites of a guild, including revoked entries.
// @Tags invites
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 200 {object} invites.GuildSnapshot "Snapshot"
// @Failure 404 {object} map[string]string "Guild not tracked"
// @Failure 503 {object} map[string]string "Tracker stopped"
// @Router /invites/{guildID} [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	guildID := c.Params("guildID")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("guild_id", guildID))

	snap, err := h.service.Snapshot(c.Context(), guildID)
	if err != nil {
		return fail(c, l, "Snapshot failed", err)
	}
	return c.JSON(snap)
}

// HandleResync reloads a guild from the platform.
// @Summary Resync Guild
// @Description Re-list the invites of a guild and replace its cached state.
// @Tags invites
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 200 {object} invites.GuildSnapshot "Fresh snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Tracker stopped"
// @Router /invites/{guildID}/resync [post]
func (h *Handler) HandleResync(c *fiber.Ctx) error {
	guildID := c.Params("guildID")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("guild_id", guildID))

	snap, err := h.service.Resync(c.Context(), guildID)
	if err != nil {
		return fail(c, l, "Resync failed", err)
	}
	return c.JSON(snap)
}

// HandleExport writes the guild snapshot to object storage.
// @Summary Export Guild Snapshot
// @Description Upload the cached invites of a guild as JSON to the snapshot bucket.
// @Tags invites
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 201 {object} invites.ExportInfo "Stored export"
// @Failure 404 {object} map[string]string "Guild not tracked"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Router /invites/{guildID}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	guildID := c.Params("guildID")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("guild_id", guildID))

	info, err := h.service.Export(c.Context(), guildID)
	if err != nil {
		return fail(c, l, "Export failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(info)
}

// HandleListExports lists the stored exports of a guild.
// @Summary List Exports
// @Description List the snapshot exports stored for a guild.
// @Tags invites
// @Produce json
// @Param guildID path string true "Guild ID"
// @Success 200 {array} invites.ExportInfo "Exports"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Storage disabled"
// @Router /invites/{guildID}/exports [get]
func (h *Handler) HandleListExports(c *fiber.Ctx) error {
	guildID := c.Params("guildID")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("guild_id", guildID))

	exports, err := h.service.ListExports(c.Context(), guildID)
	if err != nil {
		return fail(c, l, "Listing exports failed", err)
	}
	return c.JSON(exports)
}

func fail(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrUnknownGuild):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrStorageDisabled), errors.Is(err, tracker.ErrStopped):
		status = fiber.StatusServiceUnavailable
	default:
		l.Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
