package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/plentylife/mattermost-redux/internal/models"
	"github.com/plentylife/mattermost-redux/internal/posts"
	"github.com/spf13/cobra"
)

var combineCmd = &cobra.Command{
	Use:   "combine [file]",
	Short: "Merge user activity posts in a post list",
	Long: `Read a post list as JSON ({"order": [...], "posts": {...}}) from a file,
or from stdin when no file is given, and print it with every run of
consecutive join, leave, add and remove posts merged into a combined post.

Example:
  postctl combine --channel 4xp9fdt77pncbef59f4k1qe83o posts.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCombine,
}

var combineChannelID string

func init() {
	rootCmd.AddCommand(combineCmd)
	combineCmd.Flags().StringVar(&combineChannelID, "channel", "", "channel id for the combined posts")
}

func runCombine(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open post list: %w", err)
		}
		defer f.Close()
		in = f
	}
	return combinePostList(in, cmd.OutOrStdout(), combineChannelID)
}

func combinePostList(r io.Reader, w io.Writer, channelID string) error {
	var list models.PostList
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		return fmt.Errorf("decode post list: %w", err)
	}
	if channelID == "" {
		channelID = channelOf(list)
	}

	combined := posts.CombineSystemPosts(list.Order, list.Posts, channelID)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(combined)
}

// channelOf returns the channel of the first post in order.
func channelOf(list models.PostList) string {
	for _, id := range list.Order {
		if p := list.Posts[id]; p != nil && p.ChannelID != "" {
			return p.ChannelID
		}
	}
	return ""
}
