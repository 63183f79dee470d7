package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gcbaptista/geoquery/api"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		if port, _ := cmd.Flags().GetInt("port"); port > 0 {
			cfg.Server.Port = port
		}

		a, err := buildApp(cfg)
		if err != nil {
			return err
		}

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(
			gin.Recovery(),
			api.RequestIDMiddleware(),
			api.LoggerMiddleware(),
			api.CORSMiddleware(cfg.Server.AllowedOrigins),
			api.RequestSizeLimitMiddleware(cfg.Server.MaxBodyBytes),
		)
		api.SetupRoutes(router, a.apiDependencies(cfg))

		// Files under the data directory are exposed at the public prefix
		if info, err := os.Stat(cfg.Data.Dir); err == nil && info.IsDir() {
			router.Static(cfg.Data.PublicPrefix, cfg.Data.Dir)
		} else {
			log.Warn().Str("path", cfg.Data.Dir).Msg("Data directory not found, static files disabled")
		}

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
			Handler: router,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info().Int("port", cfg.Server.Port).Msg("Starting server")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides server.port)")
}
