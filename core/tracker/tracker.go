package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Tracker owns the invite cache and the single guard that serializes access to it.
// All exported methods are safe for concurrent use.
type Tracker struct {
	platform Platform
	cfg      Config
	logger   *zap.Logger

	guard   *guard
	cache   *cache
	stopped bool

	now func() time.Time
}

// New creates a Tracker backed by the given platform.
// The cache starts empty; call Start to load it.
func New(platform Platform, cfg Config, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.LoadConcurrency <= 0 {
		cfg.LoadConcurrency = 1
	}
	return &Tracker{
		platform: platform,
		cfg:      cfg,
		logger:   logger.Named("tracker"),
		guard:    newGuard(),
		cache:    newCache(),
		now:      time.Now,
	}
}

// Start loads the invites of every guild the process belongs to.
func (t *Tracker) Start(ctx context.Context) error {
	if err := t.CacheInvites(ctx); err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}
	return nil
}

// Stop drops all cached state. Every later call returns ErrStopped.
func (t *Tracker) Stop(ctx context.Context) error {
	if err := t.lock(ctx); err != nil {
		if errors.Is(err, ErrStopped) {
			return nil
		}
		return err
	}
	defer t.guard.release()

	t.stopped = true
	t.cache.reset()
	t.logger.Info("Tracker stopped")
	return nil
}

// CacheInvites bulk-loads the invites of every known guild.
// Guilds whose invites cannot be listed for lack of permission are cached empty.
// Guilds that fail for any other reason keep their previous state and are
// reported in the returned error.
func (t *Tracker) CacheInvites(ctx context.Context) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.guard.release()

	guildIDs, err := t.platform.Guilds(ctx)
	if err != nil {
		return fmt.Errorf("failed to list guilds: %w", err)
	}

	type fetched struct {
		invites []Invite
		err     error
	}
	results := make([]fetched, len(guildIDs))

	var g errgroup.Group
	g.SetLimit(t.cfg.LoadConcurrency)
	for i, guildID := range guildIDs {
		i, guildID := i, guildID
		g.Go(func() error {
			invites, err := t.platform.ListInvites(ctx, guildID)
			results[i] = fetched{invites: invites, err: err}
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	loaded := 0
	for i, guildID := range guildIDs {
		res := results[i]
		switch {
		case errors.Is(res.err, ErrPermissionDenied):
			t.logger.Debug("No permission to list invites", zap.String("guild_id", guildID))
			t.cache.bulkLoad(guildID, nil)
		case res.err != nil:
			t.logger.Warn("Failed to load guild invites", zap.String("guild_id", guildID), zap.Error(res.err))
			errs = append(errs, fmt.Errorf("guild %s: %w", guildID, res.err))
		default:
			t.cache.bulkLoad(guildID, res.invites)
			loaded += len(res.invites)
		}
	}

	t.logger.Info("Invite cache loaded",
		zap.Int("guilds", len(guildIDs)),
		zap.Int("invites", loaded),
		zap.Int("failed", len(errs)))

	return errors.Join(errs...)
}

// AddGuildCache bulk-loads one guild, replacing whatever was cached for it.
func (t *Tracker) AddGuildCache(ctx context.Context, guildID string) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.guard.release()

	invites, err := t.platform.ListInvites(ctx, guildID)
	if err != nil {
		if !errors.Is(err, ErrPermissionDenied) {
			return fmt.Errorf("failed to list invites for guild %s: %w", guildID, err)
		}
		t.logger.Debug("No permission to list invites", zap.String("guild_id", guildID))
		invites = nil
	}

	t.cache.bulkLoad(guildID, invites)
	t.logger.Debug("Guild invites cached", zap.String("guild_id", guildID), zap.Int("invites", len(invites)))
	return nil
}

// RemoveGuildCache drops everything cached for a guild.
func (t *Tracker) RemoveGuildCache(ctx context.Context, guildID string) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.guard.release()

	t.cache.evictGuild(guildID)
	t.logger.Debug("Guild invites evicted", zap.String("guild_id", guildID))
	return nil
}

// UpdateInviteCache inserts or overwrites one invite.
func (t *Tracker) UpdateInviteCache(ctx context.Context, inv Invite) error {
	if inv.GuildID == "" || inv.Code == "" {
		return ErrInvalidInvite
	}
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.guard.release()

	t.cache.upsert(inv)
	return nil
}

// SnapshotFor returns a copy of a guild's cached invites, sorted by code.
// An unknown guild yields an empty slice.
func (t *Tracker) SnapshotFor(ctx context.Context, guildID string) ([]Snapshot, error) {
	if err := t.lock(ctx); err != nil {
		return nil, err
	}
	defer t.guard.release()

	return t.cache.snapshotFor(guildID), nil
}

// HasGuild reports whether a guild has been loaded.
func (t *Tracker) HasGuild(ctx context.Context, guildID string) (bool, error) {
	if err := t.lock(ctx); err != nil {
		return false, err
	}
	defer t.guard.release()

	return t.cache.hasGuild(guildID), nil
}

// Guilds returns the ids of every loaded guild, sorted.
func (t *Tracker) Guilds(ctx context.Context) ([]string, error) {
	if err := t.lock(ctx); err != nil {
		return nil, err
	}
	defer t.guard.release()

	return t.cache.guildIDs(), nil
}

// lock acquires the guard and fails if the tracker was stopped.
// On success the caller must release the guard.
func (t *Tracker) lock(ctx context.Context) error {
	if err := t.guard.acquire(ctx); err != nil {
		return err
	}
	if t.stopped {
		t.guard.release()
		return ErrStopped
	}
	return nil
}
