package main

import (
	"github.com/spf13/cobra"
)

func newRenderCommand(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "render <slug>",
		Short: "Print the HTML document for one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := state.module()
			if err != nil {
				return err
			}
			doc, err := module.Renderer().Render(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
}
