package discord

import "time"

// Config holds configuration for the Discord connection.
type Config struct {
	// Token is the bot token, without the "Bot " prefix.
	Token string `mapstructure:"token" default:""`
	// EventTimeoutSeconds bounds how long a single gateway event may take to process.
	EventTimeoutSeconds int `mapstructure:"event_timeout_seconds" default:"30"`
}

// EventTimeout returns the per-event processing timeout.
func (c Config) EventTimeout() time.Duration {
	if c.EventTimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.EventTimeoutSeconds) * time.Second
}
