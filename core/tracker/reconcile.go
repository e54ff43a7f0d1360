package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// FetchInviter attributes a member who just joined a guild to the invite they used.
//
// It waits for the configured pre-fetch delay, then diffs the live invite list against
// the cache under the guard. The first cached invite whose use count moved by exactly
// one is the consumed invite. A join nothing accounts for yields OutcomeNoMatch and no
// error. Errors are returned only when a platform call fails; if the consumed invite
// was already identified, the returned Attribution still carries it.
func (t *Tracker) FetchInviter(ctx context.Context, guildID, memberID string) (Attribution, error) {
	noMatch := Attribution{Outcome: OutcomeNoMatch}

	if err := t.wait(ctx); err != nil {
		return noMatch, err
	}
	if err := t.lock(ctx); err != nil {
		return noMatch, err
	}
	defer t.guard.release()

	l := t.logger.With(zap.String("guild_id", guildID), zap.String("member_id", memberID))

	live, err := t.platform.ListInvites(ctx, guildID)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			l.Debug("No permission to list invites, join not attributed")
			return noMatch, nil
		}
		return noMatch, fmt.Errorf("failed to list invites for guild %s: %w", guildID, err)
	}

	attr, err := t.reconcile(ctx, guildID, live)
	l.Debug("Join reconciled",
		zap.String("outcome", string(attr.Outcome)),
		zap.String("code", attr.Code),
		zap.String("inviter_id", attr.InviterID))
	return attr, err
}

// reconcile diffs the live invite list against the cached guild and returns the
// attribution. It must be called with the guard held.
func (t *Tracker) reconcile(ctx context.Context, guildID string, live []Invite) (Attribution, error) {
	present := make(map[string]struct{}, len(live))
	for _, inv := range live {
		present[inv.Code] = struct{}{}
	}

	for _, inv := range live {
		cached, ok := t.cache.get(guildID, inv.Code)
		if !ok {
			// Created since the last sync; cannot be attributed retroactively.
			continue
		}
		if cached.Revoked {
			t.cache.remove(guildID, inv.Code)
			continue
		}
		if inv.Uses-cached.Uses != 1 {
			continue
		}

		inv.GuildID = guildID
		inviterID := t.consume(cached, inv)
		t.evictVanished(guildID, present)
		return t.attribute(ctx, guildID, inv.Code, inviterID)
	}

	candidates := t.evictVanished(guildID, present)
	if t.cfg.AttributeRevoked && len(candidates) == 1 {
		exhausted := candidates[0]
		t.logger.Debug("Attributing join to exhausted invite",
			zap.String("guild_id", guildID),
			zap.String("code", exhausted.Code))
		return t.attribute(ctx, guildID, exhausted.Code, exhausted.InviterID)
	}

	return Attribution{Outcome: OutcomeNoMatch}, nil
}

// consume applies one observed use to the cached snapshot and returns the inviter
// the join is credited to.
func (t *Tracker) consume(cached *Snapshot, live Invite) string {
	if live.InviterID == cached.InviterID || !t.cfg.TrustCachedInviter {
		*cached = Snapshot{Invite: live}
		return live.InviterID
	}

	// The platform sometimes returns the inviter empty or wrong. Keep ours and
	// count the use ourselves.
	t.logger.Debug("Live inviter differs from cache, keeping cached inviter",
		zap.String("guild_id", cached.GuildID),
		zap.String("code", cached.Code),
		zap.String("cached_inviter_id", cached.InviterID),
		zap.String("live_inviter_id", live.InviterID))
	cached.Uses++
	return cached.InviterID
}

// evictVanished removes revoked snapshots that are absent from the live list.
// It returns copies of the evicted snapshots that were one use short of their limit
// and whose deletion the audit log did not confirm.
func (t *Tracker) evictVanished(guildID string, present map[string]struct{}) []Snapshot {
	entries, ok := t.cache.guilds[guildID]
	if !ok {
		return nil
	}

	var exhausted []Snapshot
	for code, s := range entries {
		if !s.Revoked {
			continue
		}
		if _, ok := present[code]; ok {
			continue
		}
		delete(entries, code)
		if s.OneUseLeft() && !s.DeletionConfirmed {
			exhausted = append(exhausted, *s)
		}
	}
	return exhausted
}

// attribute builds the Attribution for a consumed invite, resolving the inviter.
func (t *Tracker) attribute(ctx context.Context, guildID, code, inviterID string) (Attribution, error) {
	if inviterID == "" {
		return Attribution{Outcome: OutcomeNoInviter, Code: code}, nil
	}

	attr := Attribution{Outcome: OutcomeInviter, Code: code, InviterID: inviterID}
	member, err := t.platform.ResolveMember(ctx, guildID, inviterID)
	if err != nil {
		if errors.Is(err, ErrPermissionDenied) {
			return attr, nil
		}
		return attr, fmt.Errorf("failed to resolve inviter %s in guild %s: %w", inviterID, guildID, err)
	}
	attr.Inviter = member
	return attr, nil
}

// RemoveInviteCache handles an invite deletion notification.
//
// Ordinary deletions and expiries evict the entry at once. An invite that was one use
// away from its limit, and still inside its age window, may have vanished because the
// join being reconciled right now consumed it. Such an entry is only marked revoked so
// that reconciliation can still see its last known state; the next pass evicts it.
// The latest audit deletion record is consulted to tell the two apart in the logs.
func (t *Tracker) RemoveInviteCache(ctx context.Context, guildID, code string) error {
	if err := t.lock(ctx); err != nil {
		return err
	}
	defer t.guard.release()

	cached, ok := t.cache.get(guildID, code)
	if !ok {
		return nil
	}

	if cached.Expired(t.now()) || !cached.OneUseLeft() {
		t.cache.remove(guildID, code)
		return nil
	}

	cached.Revoked = true

	l := t.logger.With(zap.String("guild_id", guildID), zap.String("code", code))
	records, err := t.platform.QueryDeletionAudit(ctx, guildID, 1)
	switch {
	case errors.Is(err, ErrPermissionDenied):
		l.Debug("Invite marked revoked, audit log not readable")
	case err != nil:
		return fmt.Errorf("failed to query deletion audit for guild %s: %w", guildID, err)
	case len(records) == 0:
		l.Debug("Invite marked revoked, no deletion recorded")
	case records[0].TargetCode != code:
		l.Debug("Invite marked revoked, latest deletion targets another invite",
			zap.String("audit_code", records[0].TargetCode))
	default:
		cached.DeletionConfirmed = true
		l.Debug("Invite marked revoked, deletion recorded",
			zap.String("actor_id", records[0].ActorID))
	}
	return nil
}

// wait sleeps for the pre-fetch delay or until ctx is done.
func (t *Tracker) wait(ctx context.Context) error {
	delay := t.cfg.PrefetchDelay
	if t.cfg.FollowLatency {
		if lr, ok := t.platform.(LatencyReporter); ok && lr.Latency() > 0 {
			delay = lr.Latency()
		}
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
