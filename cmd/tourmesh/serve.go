package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/tourmesh"
	"github.com/hupe1980/tourmesh/transport/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the advisor as an HTTP API",
	Long: `Run the advisor as an HTTP API.

Endpoints:
  GET  /healthz
  POST /v1/turn                          {"user_id": "...", "utterance": "..."}
  POST /v1/sessions/{userID}/clear
  GET  /v1/sessions/{userID}/profile`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		m, err := newModel(cmd)
		if err != nil {
			return err
		}

		advisor := tourmesh.NewDefaultAdvisor(m, func(o *tourmesh.Options) {
			o.Logger = logger
		})

		handler := httpapi.NewHandler(httpapi.Deps{
			Engine: advisor,
			Logger: logger,
		})

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			fmt.Fprintf(os.Stderr, "tourmesh listening on %s\n", addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case <-ctx.Done():
			fmt.Fprintln(os.Stderr, "shutting down...")
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "127.0.0.1:8080", "listen address")
}
