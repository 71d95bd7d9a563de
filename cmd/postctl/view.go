package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/plentylife/mattermost-redux/internal/database"
	redisclient "github.com/plentylife/mattermost-redux/internal/redis"
	"github.com/plentylife/mattermost-redux/internal/service"
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Show a page of a channel as a user sees it",
	Long: `Load a page of posts from DATABASE_URL, merge activity posts, and print
the page together with the posts the user flagged and what they may do
with each post.

Example:
  postctl view --channel 4xp9fdt77pncbef59f4k1qe83o --user 9kd3cb7g1jfoxm1hxqakdp9wyc --limit 30`,
	Args: cobra.NoArgs,
	RunE: runView,
}

var (
	viewChannelID     string
	viewUserID        string
	viewBefore        int64
	viewLimit         int
	viewShowJoinLeave bool
)

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().StringVar(&viewChannelID, "channel", "", "channel id (required)")
	viewCmd.Flags().StringVar(&viewUserID, "user", "", "id of the viewing user (required)")
	viewCmd.Flags().Int64Var(&viewBefore, "before", 0, "only posts created before this time, in ms since the epoch")
	viewCmd.Flags().IntVar(&viewLimit, "limit", 0, "page size (default 60, at most 200)")
	viewCmd.Flags().BoolVar(&viewShowJoinLeave, "show-join-leave", true, "show join and leave messages (default: the user's preference)")

	viewCmd.MarkFlagRequired("channel")
	viewCmd.MarkFlagRequired("user")
}

func runView(cmd *cobra.Command, args []string) error {
	if err := cfg.RequireDatabase(); err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pool, err := database.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()

	var cache service.PreferenceCache
	if rdb, err := redisclient.NewClient(cfg.RedisURL, cfg.PreferenceTTL); err != nil {
		slog.Warn("preference cache unavailable, reading from the database", "error", err)
	} else {
		defer rdb.Close()
		cache = rdb
	}

	users := database.NewUserRepository(pool)
	checker := service.NewPermissionChecker(
		database.NewChannelRepository(pool),
		users,
		database.NewMemberRepository(pool),
		database.NewRoleRepository(pool),
		database.NewChannelOverrideRepository(pool),
		cfg.Server.Version,
	)
	svc := service.NewPostService(
		database.NewPostRepository(pool),
		database.NewPreferenceRepository(pool),
		users,
		cache,
		checker,
		cfg.Server.Post,
		cfg.Server.License,
		nil,
	)

	opts := service.ChannelViewOptions{Before: viewBefore, Limit: viewLimit}
	if cmd.Flags().Changed("show-join-leave") {
		show := viewShowJoinLeave
		opts.ShowJoinLeave = &show
	}

	view, err := svc.GetChannelView(ctx, viewChannelID, viewUserID, opts)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
