package tracker

import "sort"

// cache maps guild id -> invite code -> snapshot.
// It has no locking of its own; the Tracker only touches it while holding the guard.
type cache struct {
	guilds map[string]map[string]*Snapshot
}

func newCache() *cache {
	return &cache{guilds: make(map[string]map[string]*Snapshot)}
}

// bulkLoad replaces the guild's entire sub-map with the fetched invites.
// Codes missing from the fetch are dropped.
func (c *cache) bulkLoad(guildID string, invites []Invite) {
	entries := make(map[string]*Snapshot, len(invites))
	for _, inv := range invites {
		inv.GuildID = guildID
		entries[inv.Code] = &Snapshot{Invite: inv}
	}
	c.guilds[guildID] = entries
}

// upsert inserts or overwrites one entry, creating the guild's sub-map if needed.
func (c *cache) upsert(inv Invite) {
	entries, ok := c.guilds[inv.GuildID]
	if !ok {
		entries = make(map[string]*Snapshot)
		c.guilds[inv.GuildID] = entries
	}
	entries[inv.Code] = &Snapshot{Invite: inv}
}

// evictGuild drops the guild's sub-map entirely.
func (c *cache) evictGuild(guildID string) {
	delete(c.guilds, guildID)
}

func (c *cache) get(guildID, code string) (*Snapshot, bool) {
	entries, ok := c.guilds[guildID]
	if !ok {
		return nil, false
	}
	s, ok := entries[code]
	return s, ok
}

func (c *cache) remove(guildID, code string) {
	if entries, ok := c.guilds[guildID]; ok {
		delete(entries, code)
	}
}

func (c *cache) hasGuild(guildID string) bool {
	_, ok := c.guilds[guildID]
	return ok
}

// snapshotFor returns copies of the guild's entries sorted by code.
func (c *cache) snapshotFor(guildID string) []Snapshot {
	entries := c.guilds[guildID]
	out := make([]Snapshot, 0, len(entries))
	for _, s := range entries {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

func (c *cache) guildIDs() []string {
	ids := make([]string, 0, len(c.guilds))
	for id := range c.guilds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *cache) reset() {
	c.guilds = make(map[string]map[string]*Snapshot)
}
