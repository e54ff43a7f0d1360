package tracker

import "time"

// Invite holds the upstream attributes of a single invite link.
type Invite struct {
	// GuildID is the guild the invite belongs to.
	GuildID string `json:"guild_id"`

	// Code is the invite code, unique within a guild.
	Code string `json:"code"`

	// InviterID is the user who created the invite.
	// Empty for vanity links, which have no individual inviter.
	InviterID string `json:"inviter_id,omitempty"`

	// Uses is how many times the invite has been used.
	Uses int `json:"uses"`

	// MaxUses is the use limit. Zero means unlimited.
	MaxUses int `json:"max_uses"`

	// MaxAge is the lifetime in seconds. Zero means the invite never expires.
	MaxAge int `json:"max_age"`

	// CreatedAt is when the invite was created.
	CreatedAt time.Time `json:"created_at"`
}

// HasInviter reports whether the invite carries an inviter reference.
func (i Invite) HasInviter() bool {
	return i.InviterID != ""
}

// Expired reports whether the invite's age window has closed at now.
func (i Invite) Expired(now time.Time) bool {
	if i.MaxAge == 0 {
		return false
	}
	return !i.CreatedAt.Add(time.Duration(i.MaxAge) * time.Second).After(now)
}

// OneUseLeft reports whether the invite is limited and a single use away from its limit.
func (i Invite) OneUseLeft() bool {
	return i.MaxUses > 0 && i.Uses == i.MaxUses-1
}

// Snapshot is the cached view of an invite.
type Snapshot struct {
	Invite

	// Revoked marks an entry whose deletion was reported while it was one use away
	// from exhaustion. It is kept for one more reconciliation pass and then evicted.
	// This flag is local to the cache and never comes from upstream.
	Revoked bool `json:"revoked"`

	// DeletionConfirmed is set when the audit log records the deletion of this
	// revoked entry. Such an entry was removed by someone, not used up.
	DeletionConfirmed bool `json:"deletion_confirmed,omitempty"`
}

// Member is a guild member as resolved by the platform.
type Member struct {
	GuildID  string `json:"guild_id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Nick     string `json:"nick,omitempty"`
}

// AuditRecord is an invite deletion entry from a guild's audit trail.
type AuditRecord struct {
	ID         string    `json:"id"`
	TargetCode string    `json:"target_code"`
	ActorID    string    `json:"actor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Outcome classifies the result of a join attribution.
type Outcome string

const (
	// OutcomeNoMatch means no cached invite accounts for the join.
	OutcomeNoMatch Outcome = "no_match"
	// OutcomeInviter means the join was attributed to an invite with an inviter.
	OutcomeInviter Outcome = "inviter"
	// OutcomeNoInviter means the join came through a vanity link.
	OutcomeNoInviter Outcome = "no_inviter"
)

// Attribution is the result of FetchInviter.
type Attribution struct {
	// Outcome tells the three results apart.
	Outcome Outcome `json:"outcome"`

	// Code is the consumed invite. Empty for OutcomeNoMatch.
	Code string `json:"code,omitempty"`

	// InviterID is the cached inviter of the consumed invite.
	// Set only for OutcomeInviter.
	InviterID string `json:"inviter_id,omitempty"`

	// Inviter is the inviter resolved as a member of the guild.
	// Nil when the inviter is no longer a member.
	Inviter *Member `json:"inviter,omitempty"`
}

// Matched reports whether the join was attributed to an invite.
func (a Attribution) Matched() bool {
	return a.Outcome != OutcomeNoMatch
}
