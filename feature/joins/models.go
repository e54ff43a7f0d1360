package joins

import (
	"time"

	"invite-tracker/core/tracker"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JoinRecord is one attributed member join.
type JoinRecord struct {
	ID          string          `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	GuildID     string          `gorm:"column:guild_id;type:varchar(32);index:idx_invite_joins_guild" json:"guild_id"`
	MemberID    string          `gorm:"column:member_id;type:varchar(32)" json:"member_id"`
	Outcome     tracker.Outcome `gorm:"column:outcome;type:varchar(16)" json:"outcome"`
	Code        string          `gorm:"column:code;type:varchar(32)" json:"code,omitempty"`
	InviterID   string          `gorm:"column:inviter_id;type:varchar(32);index" json:"inviter_id,omitempty"`
	InviterName string          `gorm:"column:inviter_name;type:varchar(100)" json:"inviter_name,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;index:idx_invite_joins_guild" json:"created_at"`
}

// TableName pins the table name.
func (JoinRecord) TableName() string {
	return "invite_joins"
}

// BeforeCreate assigns a uuid to new records.
func (r *JoinRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// NewJoinRecord builds the record for an attribution.
func NewJoinRecord(guildID, memberID string, attr tracker.Attribution) *JoinRecord {
	rec := &JoinRecord{
		GuildID:   guildID,
		MemberID:  memberID,
		Outcome:   attr.Outcome,
		Code:      attr.Code,
		InviterID: attr.InviterID,
	}
	if attr.Inviter != nil {
		rec.InviterName = attr.Inviter.Username
	}
	return rec
}

// LeaderboardEntry counts the joins credited to one inviter.
type LeaderboardEntry struct {
	InviterID string `json:"inviter_id"`
	Joins     int64  `json:"joins"`
}

// columns lists what Migrate verifies after AutoMigrate.
var columns = []string{"id", "guild_id", "member_id", "outcome", "code", "inviter_id", "inviter_name", "created_at"}
