package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand(state *cliState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the blog over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, state)
		},
	}

	cmd.Flags().Int("port", 0, "port to listen on (default 3000, or $PORT)")
	cmd.Flags().String("static-dir", "", "directory served at the site root")
	_ = state.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))
	_ = state.v.BindPFlag("static.dir", cmd.Flags().Lookup("static-dir"))
	return cmd
}

func runServe(ctx context.Context, state *cliState) error {
	module, err := state.module()
	if err != nil {
		return err
	}
	cfg := module.Config()
	logger := module.Logger("blog.cli")

	if cfg.Server.Serverless {
		logger.Info("serve.skipped", "reason", "serverless host invokes the handler directly")
		return nil
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           module.Handler(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serve.listening", "addr", srv.Addr, "posts_dir", cfg.Posts.Dir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if cfg.Server.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, cfg.Server.ShutdownTimeout)
		defer cancel()
	}
	logger.Info("serve.shutting_down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
