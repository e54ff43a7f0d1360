package mocks

import (
	"context"
	"time"

	"invite-tracker/core/tracker"

	"github.com/stretchr/testify/mock"
)

// Platform is a mock implementation of tracker.Platform
type Platform struct {
	mock.Mock
}

func (m *Platform) Guilds(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if ids, ok := args.Get(0).([]string); ok {
		return ids, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Platform) ListInvites(ctx context.Context, guildID string) ([]tracker.Invite, error) {
	args := m.Called(ctx, guildID)
	if invites, ok := args.Get(0).([]tracker.Invite); ok {
		return invites, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Platform) QueryDeletionAudit(ctx context.Context, guildID string, limit int) ([]tracker.AuditRecord, error) {
	args := m.Called(ctx, guildID, limit)
	if records, ok := args.Get(0).([]tracker.AuditRecord); ok {
		return records, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Platform) ResolveMember(ctx context.Context, guildID, userID string) (*tracker.Member, error) {
	args := m.Called(ctx, guildID, userID)
	if member, ok := args.Get(0).(*tracker.Member); ok {
		return member, args.Error(1)
	}
	return nil, args.Error(1)
}

// LatencyPlatform is a Platform that also reports a fixed latency.
type LatencyPlatform struct {
	Platform
	Delay time.Duration
}

func (m *LatencyPlatform) Latency() time.Duration {
	return m.Delay
}
