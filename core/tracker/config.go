package tracker

import "time"

// Config holds configuration for the invite tracker.
type Config struct {
	// PrefetchDelay is how long a join waits before fetching live invites,
	// giving the platform time to propagate the new use count.
	PrefetchDelay time.Duration `mapstructure:"prefetch_delay" default:"250ms"`
	// FollowLatency uses the platform's reported latency as the pre-fetch delay
	// when the platform reports one.
	FollowLatency bool `mapstructure:"follow_latency" default:"false"`
	// TrustCachedInviter keeps the cached inviter when the live invite reports a
	// different or empty one.
	TrustCachedInviter bool `mapstructure:"trust_cached_inviter" default:"true"`
	// AttributeRevoked attributes an otherwise unmatched join to a revoked invite
	// that vanished one use short of its limit. Deletions the audit log attributes
	// to a moderator are never credited.
	AttributeRevoked bool `mapstructure:"attribute_revoked" default:"false"`
	// LoadConcurrency bounds concurrent guild fetches during a full load.
	LoadConcurrency int `mapstructure:"load_concurrency" default:"8"`
}

// DefaultConfig returns the configuration used when none is loaded.
func DefaultConfig() Config {
	return Config{
		PrefetchDelay:      250 * time.Millisecond,
		TrustCachedInviter: true,
		LoadConcurrency:    8,
	}
}
