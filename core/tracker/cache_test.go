package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCache_BulkLoad tests that a bulk load leaves exactly the fetched codes, unrevoked.
func TestCache_BulkLoad(t *testing.T) {
	c := newCache()
	c.upsert(Invite{GuildID: "g1", Code: "stale", Uses: 3})
	c.guilds["g1"]["stale"].Revoked = true

	c.bulkLoad("g1", []Invite{
		{Code: "abc", Uses: 4, InviterID: "u1"},
		{Code: "def", Uses: 0, MaxUses: 10},
	})

	snap := c.snapshotFor("g1")
	require.Len(t, snap, 2)
	assert.Equal(t, "abc", snap[0].Code)
	assert.Equal(t, 4, snap[0].Uses)
	assert.Equal(t, "g1", snap[0].GuildID)
	assert.Equal(t, "def", snap[1].Code)
	for _, s := range snap {
		assert.False(t, s.Revoked)
	}

	_, ok := c.get("g1", "stale")
	assert.False(t, ok)
}

// TestCache_UpsertIdempotent tests that upserting an unchanged invite twice is a no-op.
func TestCache_UpsertIdempotent(t *testing.T) {
	c := newCache()
	inv := Invite{GuildID: "g1", Code: "abc", Uses: 2, InviterID: "u1", CreatedAt: time.Unix(100, 0)}

	c.upsert(inv)
	first := c.snapshotFor("g1")
	c.upsert(inv)
	second := c.snapshotFor("g1")

	assert.Equal(t, first, second)
	assert.Len(t, second, 1)
}

// TestCache_EvictGuild tests that evicting a guild empties its view and leaves others alone.
func TestCache_EvictGuild(t *testing.T) {
	c := newCache()
	c.bulkLoad("g1", []Invite{{Code: "abc"}})
	c.bulkLoad("g2", []Invite{{Code: "xyz"}})

	c.evictGuild("g1")

	assert.Empty(t, c.snapshotFor("g1"))
	assert.False(t, c.hasGuild("g1"))
	assert.Len(t, c.snapshotFor("g2"), 1)
	assert.Equal(t, []string{"g2"}, c.guildIDs())
}

// TestCache_SnapshotForReturnsCopies tests that mutating a view does not reach the cache.
func TestCache_SnapshotForReturnsCopies(t *testing.T) {
	c := newCache()
	c.bulkLoad("g1", []Invite{{Code: "abc", Uses: 1}})

	snap := c.snapshotFor("g1")
	snap[0].Uses = 99
	snap[0].Revoked = true

	s, ok := c.get("g1", "abc")
	require.True(t, ok)
	assert.Equal(t, 1, s.Uses)
	assert.False(t, s.Revoked)
}

func TestInvite_Expired(t *testing.T) {
	now := time.Unix(10_000, 0)
	tests := []struct {
		name string
		inv  Invite
		want bool
	}{
		{"Never expires", Invite{MaxAge: 0, CreatedAt: time.Unix(0, 0)}, false},
		{"Inside window", Invite{MaxAge: 60, CreatedAt: now.Add(-30 * time.Second)}, false},
		{"At boundary", Invite{MaxAge: 60, CreatedAt: now.Add(-60 * time.Second)}, true},
		{"Past window", Invite{MaxAge: 60, CreatedAt: now.Add(-time.Hour)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.inv.Expired(now))
		})
	}
}

func TestInvite_OneUseLeft(t *testing.T) {
	assert.True(t, Invite{Uses: 4, MaxUses: 5}.OneUseLeft())
	assert.False(t, Invite{Uses: 3, MaxUses: 5}.OneUseLeft())
	assert.False(t, Invite{Uses: 0, MaxUses: 0}.OneUseLeft())
}
