package joins

import (
	"sync"
	"testing"

	"invite-tracker/core/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestJoinRecordSchema(t *testing.T) {
	s, err := schema.Parse(&JoinRecord{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	assert.Equal(t, "invite_joins", s.Table)
	var names []string
	for _, f := range s.Fields {
		if f.DBName != "" {
			names = append(names, f.DBName)
		}
	}
	assert.ElementsMatch(t, columns, names)
}

func TestNewJoinRecord(t *testing.T) {
	rec := NewJoinRecord("g1", "m1", tracker.Attribution{
		Outcome:   tracker.OutcomeInviter,
		Code:      "abc",
		InviterID: "u1",
		Inviter:   &tracker.Member{UserID: "u1", Username: "Alice"},
	})
	assert.Equal(t, "g1", rec.GuildID)
	assert.Equal(t, "m1", rec.MemberID)
	assert.Equal(t, "abc", rec.Code)
	assert.Equal(t, "u1", rec.InviterID)
	assert.Equal(t, "Alice", rec.InviterName)

	left := NewJoinRecord("g1", "m2", tracker.Attribution{Outcome: tracker.OutcomeInviter, Code: "abc", InviterID: "u1"})
	assert.Empty(t, left.InviterName)
}
