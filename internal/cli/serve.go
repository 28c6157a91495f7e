package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/octofit/internal/apiclient"
	"github.com/mesh-intelligence/octofit/internal/web"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web dashboard",
		Long: `Serve runs the dashboard over HTTP: the home page, one page per view,
/healthz and /metrics. Each page request performs its own fetch.

Example:
  octofit serve
  octofit serve --addr :8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.ListenAddrOrDefault()
			}
			return a.runServe(cmd, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: listen_addr from config)")
	return cmd
}

func (a *app) runServe(cmd *cobra.Command, addr string) error {
	logger := log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
	// The server always traces fetches; --verbose only affects one-shot commands.
	client := apiclient.New(a.cfg.BaseURL(), a.cfg.RequestTimeout, apiclient.WithLogger(logger))

	handler := web.NewHandler(client, a.env, logger)
	server := web.NewServer(web.DefaultServerConfig(addr), web.NewRouter(handler))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Printf("octofit dashboard listening on %s (api %s)", addr, a.cfg.BaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return sysError(fmt.Errorf("serve: %w", err))
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
	<-errCh
	return nil
}
