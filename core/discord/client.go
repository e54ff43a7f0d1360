package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"invite-tracker/core/tracker"
	"invite-tracker/core/utils"

	"github.com/bwmarrin/discordgo"
)

// Intents the tracker needs from the gateway.
const Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildInvites | discordgo.IntentsGuildMembers

// NewSession creates a discordgo session for the configured bot token.
// The session is not opened.
func NewSession(cfg Config) (*discordgo.Session, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, errors.New("discord token is not configured")
	}
	if !strings.HasPrefix(token, "Bot ") {
		token = "Bot " + token
	}

	s, err := discordgo.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	s.Identify.Intents = Intents
	s.StateEnabled = true
	return s, nil
}

// Client implements tracker.Platform with a discordgo session.
type Client struct {
	session *discordgo.Session
}

var (
	_ tracker.Platform        = (*Client)(nil)
	_ tracker.LatencyReporter = (*Client)(nil)
)

// NewClient creates a new platform client.
func NewClient(session *discordgo.Session) *Client {
	return &Client{session: session}
}

// Guilds returns the guilds held in the session state.
func (c *Client) Guilds(ctx context.Context) ([]string, error) {
	state := c.session.State
	if state == nil {
		return nil, errors.New("discord session has no state")
	}

	state.RLock()
	defer state.RUnlock()

	ids := make([]string, 0, len(state.Guilds))
	for _, g := range state.Guilds {
		ids = append(ids, g.ID)
	}
	return ids, nil
}

// ListInvites fetches the live invites of a guild.
func (c *Client) ListInvites(ctx context.Context, guildID string) ([]tracker.Invite, error) {
	invites, err := c.session.GuildInvites(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapError(err)
	}

	out := make([]tracker.Invite, 0, len(invites))
	for _, inv := range invites {
		if inv == nil {
			continue
		}
		out = append(out, toInvite(guildID, inv))
	}
	return out, nil
}

// QueryDeletionAudit returns the most recent invite deletions from the audit log.
func (c *Client) QueryDeletionAudit(ctx context.Context, guildID string, limit int) ([]tracker.AuditRecord, error) {
	log, err := c.session.GuildAuditLog(guildID, "", "", int(discordgo.AuditLogActionInviteDelete), limit, discordgo.WithContext(ctx))
	if err != nil {
		return nil, wrapError(err)
	}
	if log == nil {
		return nil, nil
	}

	records := make([]tracker.AuditRecord, 0, len(log.AuditLogEntries))
	for _, entry := range log.AuditLogEntries {
		if entry == nil {
			continue
		}
		records = append(records, toAuditRecord(entry))
	}
	return records, nil
}

// ResolveMember looks the member up in state first, then over REST.
func (c *Client) ResolveMember(ctx context.Context, guildID, userID string) (*tracker.Member, error) {
	if c.session.State != nil {
		if m, err := c.session.State.Member(guildID, userID); err == nil {
			return toMember(guildID, m), nil
		}
	}

	m, err := c.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, wrapError(err)
	}
	return toMember(guildID, m), nil
}

// Latency returns the gateway heartbeat round trip.
func (c *Client) Latency() time.Duration {
	return c.session.HeartbeatLatency()
}

func toInvite(guildID string, inv *discordgo.Invite) tracker.Invite {
	out := tracker.Invite{
		GuildID:   guildID,
		Code:      inv.Code,
		Uses:      inv.Uses,
		MaxUses:   inv.MaxUses,
		MaxAge:    inv.MaxAge,
		CreatedAt: inv.CreatedAt,
	}
	if inv.Inviter != nil {
		out.InviterID = inv.Inviter.ID
	}
	return out
}

func toMember(guildID string, m *discordgo.Member) *tracker.Member {
	if m == nil || m.User == nil {
		return nil
	}
	return &tracker.Member{
		GuildID:  guildID,
		UserID:   m.User.ID,
		Username: m.User.Username,
		Nick:     m.Nick,
	}
}

// toAuditRecord extracts the deleted invite code from an audit entry.
// Invite deletions carry no target id; the code is the old value of the "code" change.
func toAuditRecord(entry *discordgo.AuditLogEntry) tracker.AuditRecord {
	record := tracker.AuditRecord{
		ID:      entry.ID,
		ActorID: entry.UserID,
	}
	if ts, err := discordgo.SnowflakeTimestamp(entry.ID); err == nil {
		record.CreatedAt = ts
	}
	for _, change := range entry.Changes {
		if change == nil || change.Key == nil || *change.Key != discordgo.AuditLogChangeKeyCode {
			continue
		}
		if change.OldValue != nil {
			record.TargetCode = utils.ToString(change.OldValue)
		} else if change.NewValue != nil {
			record.TargetCode = utils.ToString(change.NewValue)
		}
		break
	}
	return record
}

// wrapError maps discordgo REST errors onto tracker sentinels.
func wrapError(err error) error {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return err
	}
	if restErr.Message != nil {
		switch restErr.Message.Code {
		case discordgo.ErrCodeMissingPermissions, discordgo.ErrCodeMissingAccess:
			return fmt.Errorf("%w: %s", tracker.ErrPermissionDenied, restErr.Message.Message)
		}
	}
	if restErr.Response != nil && restErr.Response.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%w: %v", tracker.ErrPermissionDenied, err)
	}
	return err
}

func isNotFound(err error) bool {
	if errors.Is(err, discordgo.ErrStateNotFound) {
		return true
	}
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeUnknownMember {
		return true
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
