package tracker

import (
	"context"
	"time"
)

// Platform is the narrow view of the chat platform the Tracker needs.
// Implementations wrap permission failures in ErrPermissionDenied and report
// missing members as (nil, nil).
type Platform interface {
	// Guilds returns the ids of every guild the process currently belongs to.
	Guilds(ctx context.Context) ([]string, error)

	// ListInvites fetches the live invite list of a guild.
	ListInvites(ctx context.Context, guildID string) ([]Invite, error)

	// QueryDeletionAudit returns up to limit of the most recent invite deletion
	// records of a guild, newest first.
	QueryDeletionAudit(ctx context.Context, guildID string, limit int) ([]AuditRecord, error)

	// ResolveMember looks up a member of a guild. It returns nil when the user
	// is not a member.
	ResolveMember(ctx context.Context, guildID, userID string) (*Member, error)
}

// LatencyReporter is implemented by platforms that can report their current
// round-trip latency.
type LatencyReporter interface {
	Latency() time.Duration
}
