// Package joins keeps the log of attributed member joins.
//
// The gateway adapter hands every FetchInviter result to the Recorder, which logs
// it and, when a database is configured, stores it as a JoinRecord in the
// invite_joins table.
//
// # Endpoints
//
//   - GET /joins/:guildID lists the latest joins of a guild.
//   - GET /joins/:guildID/leaderboard ranks inviters by attributed joins.
//
// Both accept ?limit= (default 50, capped at 500).
package joins
