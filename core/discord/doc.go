// Package discord connects the invite tracker to Discord through discordgo.
//
// # Components
//
//   - Client: implements tracker.Platform on top of a *discordgo.Session. REST
//     permission failures are reported as tracker.ErrPermissionDenied and unknown
//     members as a nil result.
//   - Adapter: registers gateway handlers and routes invite, guild and member
//     events into the Tracker. Attributions produced on member join are handed to an
//     AttributionSink.
//
// # Usage
//
//	session, err := discord.NewSession(cfg.Discord)
//	t := tracker.New(discord.NewClient(session), cfg.Tracker, logger)
//	adapter := discord.NewAdapter(t, recorder, logger, cfg.Discord.EventTimeout())
//	adapter.Register(session)
//	err = session.Open()
package discord
