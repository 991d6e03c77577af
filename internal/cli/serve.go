package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/mazedle-go/internal/api"
	"github.com/mcoot/mazedle-go/internal/api/handler"
	"github.com/mcoot/mazedle-go/internal/api/sse"
)

func newServeCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the game over a local HTTP API",
		Long: `Serve the game over a local HTTP API under /api/v1.

The countdown stream at /api/v1/countdown/stream also announces each new day.
Stops gracefully on Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.serve(cmd)
		},
	}

	cmd.Flags().String("listen", "", "Listen address (env: MAZEDLE_API_LISTEN_ADDR)")

	return cmd
}

func (st *state) serve(cmd *cobra.Command) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	hub := sse.NewHub(st.logger)
	go hub.Run()
	defer hub.Close()

	router := api.NewRouter(api.RouterConfig{
		Logger:            st.logger,
		SessionController: st.app.SessionController,
		SelectionEngine:   st.app.SelectionEngine,
		ComparisonService: st.app.ComparisonService,
		Roster:            st.app.Roster,
		Calendar:          st.app.Calendar,
		Hub:               hub,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = st.cfg.API.ListenAddr
	server := api.NewServer(router, serverConfig, st.logger)
	server.OnShutdown(hub.Close)

	if err := server.Listen(); err != nil {
		return err
	}

	go st.app.SessionController.WatchRollover(ctx, st.cfg.Game.RolloverCheckInterval, handler.RolloverBroadcaster(hub))

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Serving mazedle on http://%s/api/v1\n", server.Addr())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		st.logger.Info("shutdown signal received")
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout+time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		st.logger.Error("shutdown error", slog.String("error", err.Error()))
		return err
	}
	return <-errCh
}
