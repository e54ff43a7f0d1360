package invites

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"invite-tracker/core/storage"
	"invite-tracker/core/tracker"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrUnknownGuild is returned for guilds the tracker holds no state for.
	ErrUnknownGuild = errors.New("guild is not tracked")
	// ErrStorageDisabled is returned by exports when no object storage is configured.
	ErrStorageDisabled = errors.New("snapshot storage is not configured")
)

// Cache is the part of *tracker.Tracker the inspection API reads.
type Cache interface {
	Guilds(ctx context.Context) ([]string, error)
	HasGuild(ctx context.Context, guildID string) (bool, error)
	SnapshotFor(ctx context.Context, guildID string) ([]tracker.Snapshot, error)
	AddGuildCache(ctx context.Context, guildID string) error
}

// GuildSnapshot is the exported view of one guild.
type GuildSnapshot struct {
	GuildID  string             `json:"guild_id"`
	TakenAt  time.Time          `json:"taken_at"`
	Invites  []tracker.Snapshot `json:"invites"`
	Revoked  int                `json:"revoked"`
	Vanities int                `json:"vanities"`
}

// ExportInfo describes a stored export.
type ExportInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// Service exposes the invite cache and exports it to object storage.
type Service struct {
	cache  Cache
	client storage.Client
	bucket string
	prefix string
	logger *zap.Logger
	now    func() time.Time

	// resyncs collapses concurrent resyncs of the same guild into one listing.
	resyncs singleflight.Group
}

// NewService creates the invite service. client may be nil.
func NewService(cache Cache, client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	return &Service{
		cache:  cache,
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger,
		now:    time.Now,
	}
}

// Guilds returns the tracked guild ids.
func (s *Service) Guilds(ctx context.Context) ([]string, error) {
	return s.cache.Guilds(ctx)
}

// Snapshot returns the cached invites of a guild.
func (s *Service) Snapshot(ctx context.Context, guildID string) (*GuildSnapshot, error) {
	known, err := s.cache.HasGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, ErrUnknownGuild
	}

	invites, err := s.cache.SnapshotFor(ctx, guildID)
	if err != nil {
		return nil, err
	}

	snap := &GuildSnapshot{GuildID: guildID, TakenAt: s.now().UTC(), Invites: invites}
	for _, inv := range invites {
		if inv.Revoked {
			snap.Revoked++
		}
		if !inv.HasInviter() {
			snap.Vanities++
		}
	}
	return snap, nil
}

// Resync reloads a guild from the platform and returns the fresh snapshot.
func (s *Service) Resync(ctx context.Context, guildID string) (*GuildSnapshot, error) {
	_, err, shared := s.resyncs.Do(guildID, func() (any, error) {
		return nil, s.cache.AddGuildCache(ctx, guildID)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("Guild resynced", zap.String("guild_id", guildID), zap.Bool("shared", shared))
	return s.Snapshot(ctx, guildID)
}

// Export writes the guild snapshot to <prefix>/<guildID>/<unix-nano>.json.
func (s *Service) Export(ctx context.Context, guildID string) (*ExportInfo, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	snap, err := s.Snapshot(ctx, guildID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := storage.ObjectKey(s.prefix, guildID, strconv.FormatInt(snap.TakenAt.UnixNano(), 10)+".json")
	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("guild_id", guildID),
		zap.String("key", key),
		zap.Int("invites", len(snap.Invites)),
	)
	return &ExportInfo{Key: key, Size: int64(len(data)), LastModified: snap.TakenAt}, nil
}

// ListExports returns the stored exports of a guild.
func (s *Service) ListExports(ctx context.Context, guildID string) ([]ExportInfo, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	exports := []ExportInfo{}
	opts := minio.ListObjectsOptions{Prefix: storage.ObjectKey(s.prefix, guildID) + "/", Recursive: true}
	for obj := range s.client.ListObjects(ctx, s.bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list exports: %w", obj.Err)
		}
		exports = append(exports, ExportInfo{Key: obj.Key, Size: obj.Size, LastModified: obj.LastModified})
	}
	return exports, nil
}
