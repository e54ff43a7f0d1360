package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"invite-tracker/core/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintSnapshot(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	snapshot := []tracker.Snapshot{
		{Invite: tracker.Invite{Code: "abc", InviterID: "u1", Uses: 2, MaxUses: 5, MaxAge: 3600, CreatedAt: now}},
		{Invite: tracker.Invite{Code: "old", InviterID: "u2", MaxAge: 60, CreatedAt: now.Add(-time.Hour)}, Revoked: true},
		{Invite: tracker.Invite{Code: "vanity", Uses: 40}},
	}

	var buf bytes.Buffer
	require.NoError(t, printSnapshot(&buf, snapshot, now))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "CODE"))
	assert.Contains(t, lines[1], "2024-01-01T13:00:00Z")
	assert.Contains(t, lines[1], "5")
	assert.Contains(t, lines[2], "expired")
	assert.Contains(t, lines[2], "true")
	assert.Contains(t, lines[3], "(vanity)")
	assert.Contains(t, lines[3], "unlimited")
	assert.Contains(t, lines[3], "never")
	assert.Equal(t, "Total Invites: 3", lines[5])
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["start"])
	assert.True(t, names["inspect"])

	flag := inspectCmd.Flags().Lookup("guild")
	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}
