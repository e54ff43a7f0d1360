package joins

import (
	"context"
	"testing"

	"invite-tracker/core/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecorder_LogOnly(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	rec := NewRecorder(nil, zap.New(core))

	err := rec.Record(context.Background(), "g1", "m1", tracker.Attribution{
		Outcome:   tracker.OutcomeInviter,
		Code:      "abc",
		InviterID: "alice",
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("Member joined through invite").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "g1", fields["guild_id"])
	assert.Equal(t, "alice", fields["inviter_id"])
	assert.Equal(t, true, fields["inviter_left"])

	require.NoError(t, rec.Record(context.Background(), "g1", "m2", tracker.Attribution{Outcome: tracker.OutcomeNoMatch}))
	assert.Equal(t, 1, logs.FilterMessage("Member join could not be attributed").Len())
}

func TestRecorder_Persists(t *testing.T) {
	repo := NewRepository(setupSQLite(t))
	rec := NewRecorder(repo, zap.NewNop())

	err := rec.Record(context.Background(), "g1", "m1", tracker.Attribution{
		Outcome:   tracker.OutcomeInviter,
		Code:      "abc",
		InviterID: "alice",
		Inviter:   &tracker.Member{GuildID: "g1", UserID: "alice", Username: "Alice"},
	})
	require.NoError(t, err)
	require.NoError(t, rec.Record(context.Background(), "g1", "m2", tracker.Attribution{Outcome: tracker.OutcomeNoInviter, Code: "vanity"}))

	records, err := repo.ListByGuild(context.Background(), "g1", 10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	byMember := map[string]JoinRecord{}
	for _, r := range records {
		byMember[r.MemberID] = r
	}
	assert.Equal(t, "Alice", byMember["m1"].InviterName)
	assert.Equal(t, tracker.OutcomeInviter, byMember["m1"].Outcome)
	assert.Equal(t, "vanity", byMember["m2"].Code)
	assert.Empty(t, byMember["m2"].InviterID)
}
