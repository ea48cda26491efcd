package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newListCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the post listing as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := state.module()
			if err != nil {
				return err
			}
			summaries, err := module.Posts().List(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(summaries)
		},
	}
}
