package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/urlrisk/internal/config"
	"github.com/nao1215/urlrisk/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scorer over HTTP",
		Long: `Serve exposes the scorer as a JSON API.

Endpoints:
  GET  /healthz     liveness and loaded artifact fingerprints
  POST /v1/score    {"url": "..."} or {"urls": ["...", "..."]}
  POST /v1/report   {"url": "..."}

Blank input is answered with HTTP 422. The server stops gracefully on
SIGINT or SIGTERM.

Examples:
  # Listen on the default address
  urlrisk serve

  # Listen on localhost only, logging JSON lines
  urlrisk serve --listen 127.0.0.1:9000 --log-json`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	addArtifactFlags(cmd)

	cmd.Flags().String("listen", config.DefaultListenAddr,
		"Address to listen on")
	cmd.Flags().Bool("log-json", false,
		"Write logs as JSON lines")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of URLs of one batch request scored concurrently")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd, nil)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	s, bundle, err := loadScorer(cfg, logger)
	if err != nil {
		return err
	}

	srv := server.New(s,
		server.WithLogger(logger),
		server.WithArtifacts(bundle.ScalerInfo, bundle.ClassifierInfo),
		server.WithBatchConcurrency(cfg.BatchSize),
	)

	ctx, cancel := signalContext(cmd.Context(), logger)
	defer cancel()

	return srv.Run(ctx, cfg.ListenAddr, cfg.ShutdownTimeout)
}
