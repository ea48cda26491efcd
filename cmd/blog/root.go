package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-blog"
)

type cliState struct {
	configPath string
	v          *viper.Viper
	cfg        blog.Config
}

func (s *cliState) module() (*blog.Module, error) {
	return blog.New(s.cfg)
}

func newRootCommand() *cobra.Command {
	state := &cliState{v: blog.NewViper()}

	root := &cobra.Command{
		Use:   "blog",
		Short: "Serve a directory of Markdown posts",
		Long: `blog reads YYYY-MM-DD-title.md files from a posts directory, lists them as
JSON and renders each one into a styled HTML page.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := blog.LoadConfigWith(state.v, state.configPath)
			if err != nil {
				return err
			}
			state.cfg = cfg
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&state.configPath, "config", "", "config file (default is ./blog.yaml)")
	flags.String("posts-dir", "", "directory holding the Markdown posts")
	flags.Bool("strict-slugs", false, "reject posts whose filename lacks a date and title")
	flags.String("log-level", "", "log level (trace, debug, info, warn, error)")
	_ = state.v.BindPFlag("posts.dir", flags.Lookup("posts-dir"))
	_ = state.v.BindPFlag("posts.strict_slugs", flags.Lookup("strict-slugs"))
	_ = state.v.BindPFlag("logging.level", flags.Lookup("log-level"))

	root.AddCommand(
		newServeCommand(state),
		newListCommand(state),
		newRenderCommand(state),
		newNewCommand(state),
	)
	return root
}
