// Package tracker attributes newly joined guild members to the invite link they used.
//
// The platform never says which invite a member joined through. The Tracker keeps a
// per-guild snapshot of every invite's last known state and, when a member joins,
// diffs that snapshot against the live invite list: the invite whose use count moved
// by exactly one is the one that was consumed.
//
// # Architecture
//
// The package consists of four parts:
//
// 1. Snapshot: the cached state of one invite, wrapping the upstream attributes with
// the cache-local Revoked flag.
//
// 2. Cache: the guild -> code -> Snapshot map with bulk load, upsert and evict primitives.
//
// 3. Guard: a single non-reentrant lock. Every public Tracker operation holds it for its
// whole duration, including the network calls it makes.
//
// 4. Reconciliation: join attribution and revocation detection, tolerant of the
// platform's eventual consistency (lagging counts, stale inviter fields, deletions
// racing joins).
//
// # Usage Example
//
//	t := tracker.New(platform, cfg.Tracker, logger)
//	if err := t.Start(ctx); err != nil {
//	    return err
//	}
//	defer t.Stop(ctx)
//
//	// On member join
//	attr, err := t.FetchInviter(ctx, guildID)
//	switch attr.Outcome {
//	case tracker.OutcomeInviter:   // attr.InviterID, attr.Inviter
//	case tracker.OutcomeNoInviter: // vanity link
//	case tracker.OutcomeNoMatch:   // nothing moved; caller decides
//	}
//
// State is kept in memory for the lifetime of the process only.
package tracker
