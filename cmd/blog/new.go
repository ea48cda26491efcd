package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-blog/internal/posts"
)

func newNewCommand(state *cliState) *cobra.Command {
	var (
		date string
		body string
	)

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new post file named after today's date and the title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft := posts.Draft{
				Title: strings.Join(args, " "),
				Date:  time.Now(),
				Body:  body,
			}
			if date != "" {
				parsed, err := time.Parse(posts.DateLayout, date)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
				draft.Date = parsed
			}

			slug, err := posts.CreateDraft(state.cfg.Posts.Dir, draft)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(state.cfg.Posts.Dir, posts.Filename(slug)))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "publication date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&body, "body", "", "initial Markdown body (default is a heading with the title)")
	return cmd
}
