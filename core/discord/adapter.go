package discord

import (
	"context"
	"time"

	"invite-tracker/core/tracker"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// InviteTracker is the part of *tracker.Tracker the adapter drives.
type InviteTracker interface {
	Start(ctx context.Context) error
	HasGuild(ctx context.Context, guildID string) (bool, error)
	AddGuildCache(ctx context.Context, guildID string) error
	RemoveGuildCache(ctx context.Context, guildID string) error
	UpdateInviteCache(ctx context.Context, inv tracker.Invite) error
	RemoveInviteCache(ctx context.Context, guildID, code string) error
	FetchInviter(ctx context.Context, guildID, memberID string) (tracker.Attribution, error)
}

// AttributionSink receives the outcome of every member join.
type AttributionSink interface {
	Record(ctx context.Context, guildID, memberID string, attr tracker.Attribution) error
}

// Adapter routes gateway events into the tracker.
type Adapter struct {
	tracker InviteTracker
	sink    AttributionSink
	logger  *zap.Logger
	timeout time.Duration
}

// NewAdapter creates a new gateway adapter. sink may be nil.
func NewAdapter(t InviteTracker, sink AttributionSink, logger *zap.Logger, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Adapter{
		tracker: t,
		sink:    sink,
		logger:  logger.Named("discord"),
		timeout: timeout,
	}
}

// Register adds the adapter's handlers to the session and returns a function
// that removes them.
func (a *Adapter) Register(s *discordgo.Session) func() {
	removers := []func(){
		s.AddHandler(a.onReady),
		s.AddHandler(a.onGuildCreate),
		s.AddHandler(a.onGuildDelete),
		s.AddHandler(a.onInviteCreate),
		s.AddHandler(a.onInviteDelete),
		s.AddHandler(a.onMemberAdd),
	}
	return func() {
		for _, remove := range removers {
			remove()
		}
	}
}

func (a *Adapter) eventContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), a.timeout)
}

func (a *Adapter) onReady(_ *discordgo.Session, e *discordgo.Ready) {
	ctx, cancel := a.eventContext()
	defer cancel()

	a.logger.Info("Gateway ready, caching invites", zap.Int("guilds", len(e.Guilds)))
	if err := a.tracker.Start(ctx); err != nil {
		a.logger.Error("Failed to cache invites", zap.Error(err))
	}
}

func (a *Adapter) onGuildCreate(_ *discordgo.Session, e *discordgo.GuildCreate) {
	if e.Guild == nil || e.Unavailable {
		return
	}
	ctx, cancel := a.eventContext()
	defer cancel()

	// Guild creates also replay on every reconnect; only load guilds we do not know.
	known, err := a.tracker.HasGuild(ctx, e.ID)
	if err != nil {
		a.logger.Error("Failed to check guild cache", zap.String("guild_id", e.ID), zap.Error(err))
		return
	}
	if known {
		return
	}
	if err := a.tracker.AddGuildCache(ctx, e.ID); err != nil {
		a.logger.Error("Failed to cache guild invites", zap.String("guild_id", e.ID), zap.Error(err))
	}
}

func (a *Adapter) onGuildDelete(_ *discordgo.Session, e *discordgo.GuildDelete) {
	// An unavailable guild is an outage, not a removal.
	if e.Guild == nil || e.Unavailable {
		return
	}
	ctx, cancel := a.eventContext()
	defer cancel()

	if err := a.tracker.RemoveGuildCache(ctx, e.ID); err != nil {
		a.logger.Error("Failed to evict guild invites", zap.String("guild_id", e.ID), zap.Error(err))
	}
}

func (a *Adapter) onInviteCreate(_ *discordgo.Session, e *discordgo.InviteCreate) {
	if e.Invite == nil {
		return
	}
	ctx, cancel := a.eventContext()
	defer cancel()

	if err := a.tracker.UpdateInviteCache(ctx, toInvite(e.GuildID, e.Invite)); err != nil {
		a.logger.Error("Failed to cache invite",
			zap.String("guild_id", e.GuildID),
			zap.String("code", e.Code),
			zap.Error(err))
	}
}

func (a *Adapter) onInviteDelete(_ *discordgo.Session, e *discordgo.InviteDelete) {
	ctx, cancel := a.eventContext()
	defer cancel()

	if err := a.tracker.RemoveInviteCache(ctx, e.GuildID, e.Code); err != nil {
		a.logger.Error("Failed to remove invite",
			zap.String("guild_id", e.GuildID),
			zap.String("code", e.Code),
			zap.Error(err))
	}
}

func (a *Adapter) onMemberAdd(_ *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if e.Member == nil || e.User == nil || e.User.Bot {
		return
	}
	ctx, cancel := a.eventContext()
	defer cancel()

	l := a.logger.With(zap.String("guild_id", e.GuildID), zap.String("member_id", e.User.ID))

	attr, err := a.tracker.FetchInviter(ctx, e.GuildID, e.User.ID)
	if err != nil {
		l.Warn("Join attribution failed", zap.Error(err))
		if !attr.Matched() {
			return
		}
	}

	if a.sink == nil {
		return
	}
	if err := a.sink.Record(ctx, e.GuildID, e.User.ID, attr); err != nil {
		l.Error("Failed to record join attribution", zap.Error(err))
	}
}
