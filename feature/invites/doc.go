// Package invites exposes the invite cache over HTTP.
//
// # Endpoints
//
//   - GET /invites lists the tracked guilds.
//   - GET /invites/:guildID returns a guild's cached invites with revoked and
//     vanity counts.
//   - POST /invites/:guildID/resync re-lists a guild from Discord.
//   - POST /invites/:guildID/export uploads the snapshot as JSON to
//     <prefix>/<guildID>/<unix-nano>.json in the storage bucket.
//   - GET /invites/:guildID/exports lists those uploads.
//
// Every read goes through the tracker, so requests wait behind reconciliations
// in progress.
package invites
