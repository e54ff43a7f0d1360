package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"invite-tracker/core/config"
	"invite-tracker/core/database"
	"invite-tracker/core/discord"
	"invite-tracker/core/loader"
	"invite-tracker/core/logger"
	"invite-tracker/core/middleware/auth"
	"invite-tracker/core/middleware/rayid"
	"invite-tracker/core/storage"
	"invite-tracker/core/tracker"

	"invite-tracker/feature/invites"
	"invite-tracker/feature/joins"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "invite-tracker/docs/swagger"
)

// @title Invite Tracker API
// @version 1.0
// @description Inspection API for the Discord invite cache and join log.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Connect to Discord and start tracking invites",
	Long:  `Opens the gateway session, loads the invites of every guild and serves the inspection API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if cfg.Database.Enabled {
			conn, err := database.Connect(cfg.Database)
			if err != nil {
				logg.Warn("Join log database unavailable, attributions will only be logged", zap.Error(err))
			} else if err := joins.Migrate(conn); err != nil {
				logg.Warn("Join log migration failed, attributions will only be logged", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to join log database", zap.String("driver", cfg.Database.Driver))
			}
		}

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			if err := storage.EnsureBucket(cmd.Context(), client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
				logg.Warn("Snapshot storage unavailable, exports disabled", zap.Error(err))
			} else {
				store = client
			}
		}

		// 5. Discord Session and Tracker
		session, err := discord.NewSession(cfg.Discord)
		if err != nil {
			return err
		}
		trk := tracker.New(discord.NewClient(session), cfg.Tracker, logg)

		joinLog := joins.NewFeature(db, logg)
		adapter := discord.NewAdapter(trk, joinLog.Recorder(), logg, cfg.Discord.EventTimeout())
		unregister := adapter.Register(session)
		defer unregister()

		// 6. Inspection API
		var app *fiber.App
		if cfg.Server.Enabled {
			app = fiber.New(fiber.Config{
				DisableStartupMessage: true,
			})

			// RayID first so every log line of a request carries it.
			app.Use(rayid.New())
			app.Use(func(c *fiber.Ctx) error {
				l := logger.WithRayID(logg, c)
				l.Debug("Request started",
					zap.String("method", c.Method()),
					zap.String("path", c.Path()),
					zap.String("ip", c.IP()),
				)
				err := c.Next()
				if err != nil {
					l.Error("Request error", zap.Error(err))
				}
				return err
			})

			app.Get("/swagger/*", swagger.HandlerDefault)
			app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

			mgr := loader.NewManager(logg)
			mgr.Register(invites.NewFeature(trk, store, cfg.Storage, logg))
			mgr.Register(joinLog)
			if err := mgr.LoadAll(app); err != nil {
				return err
			}

			go func() {
				logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
				if err := app.Listen(cfg.Server.Addr()); err != nil {
					logg.Error("Server stopped", zap.Error(err))
				}
			}()
		}

		// 7. Open the gateway; Ready triggers the initial invite load.
		if err := session.Open(); err != nil {
			return fmt.Errorf("failed to open discord session: %w", err)
		}
		logg.Info("Connected to Discord gateway")

		// 8. Graceful Shutdown
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logg.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		defer cancel()

		if err := trk.Stop(ctx); err != nil {
			logg.Warn("Tracker did not stop cleanly", zap.Error(err))
		}
		if err := session.Close(); err != nil {
			logg.Warn("Discord session close failed", zap.Error(err))
		}
		if app != nil {
			if err := app.ShutdownWithContext(ctx); err != nil {
				logg.Warn("Server shutdown failed", zap.Error(err))
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
