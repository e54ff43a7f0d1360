package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"invite-tracker/core/config"
	"invite-tracker/core/discord"
	"invite-tracker/core/logger"
	"invite-tracker/core/tracker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Load and print the invites of one guild",
	Long:  `Lists the invites of a guild over the REST API, loads them into a fresh cache and prints the cached snapshot. No gateway session is opened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		guildID, _ := cmd.Flags().GetString("guild")
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if guildID == "" {
			return fmt.Errorf("--guild is required")
		}

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		session, err := discord.NewSession(cfg.Discord)
		if err != nil {
			return err
		}

		trk := tracker.New(discord.NewClient(session), cfg.Tracker, logg)
		if err := trk.AddGuildCache(ctx, guildID); err != nil {
			return fmt.Errorf("failed to load guild %s: %w", guildID, err)
		}
		snapshot, err := trk.SnapshotFor(ctx, guildID)
		if err != nil {
			return err
		}
		logg.Debug("Guild loaded", zap.String("guild_id", guildID), zap.Int("invites", len(snapshot)))

		if jsonOutput {
			data, err := json.MarshalIndent(snapshot, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}
		return printSnapshot(os.Stdout, snapshot, time.Now())
	},
}

// printSnapshot renders a guild snapshot as an aligned table.
func printSnapshot(out io.Writer, snapshot []tracker.Snapshot, now time.Time) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tINVITER\tUSES\tMAX USES\tEXPIRES\tREVOKED")
	for _, s := range snapshot {
		inviter := s.InviterID
		if !s.HasInviter() {
			inviter = "(vanity)"
		}
		maxUses := "unlimited"
		if s.MaxUses > 0 {
			maxUses = fmt.Sprint(s.MaxUses)
		}
		expires := "never"
		if s.MaxAge > 0 {
			if s.Expired(now) {
				expires = "expired"
			} else {
				expires = s.CreatedAt.Add(time.Duration(s.MaxAge) * time.Second).Format(time.RFC3339)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\t%v\n", s.Code, inviter, s.Uses, maxUses, expires, s.Revoked)
	}
	fmt.Fprintf(w, "\nTotal Invites: %d\n", len(snapshot))
	return w.Flush()
}

func init() {
	inspectCmd.Flags().String("guild", "", "Guild ID to inspect")
	inspectCmd.Flags().Bool("json", false, "Output the snapshot as JSON")
	RootCmd.AddCommand(inspectCmd)
}
