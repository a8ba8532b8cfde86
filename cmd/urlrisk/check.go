package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nao1215/urlrisk/internal/config"
	"github.com/nao1215/urlrisk/internal/model"
	"github.com/nao1215/urlrisk/internal/pipeline"
	"github.com/nao1215/urlrisk/internal/scorer"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [url...]",
		Short: "Score URLs for phishing risk",
		Long: `Check scores one or more URLs for phishing risk.

Each URL is scored from its text only: its length, its number of dots and
whether it contains '@'. The result is one of three tiers:

  Safe                  probability <= 45%
  Suspicious            probability  > 45%
  High Risk (Phishing)  probability  > 75%

Examples:
  # Score a single URL
  urlrisk check "http://example.com"

  # Score every URL in a file (one per line, '#' starts a comment)
  urlrisk check --list urls.txt

  # Output a Markdown report to a file
  urlrisk check --markdown -o report.md --list urls.txt

  # Save JSON to a file and still see the result in the terminal
  urlrisk check --json -o result.json --tee "http://example.com"

  # Use specific model artifacts
  urlrisk check --model ./model.yaml --scaler ./scaler.yaml "http://a@b.example"`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	addArtifactFlags(cmd)
	addFormatFlags(cmd)

	cmd.Flags().StringP("list", "l", "",
		"File with one URL per line")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of URLs scored concurrently")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	// Artifacts load before input is examined; a load failure is fatal.
	s, _, err := loadScorer(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.ListFile != "" {
		urls, err := readListFile(cfg.ListFile)
		if err != nil {
			return err
		}
		cfg.Targets = append(cfg.Targets, urls...)
	}

	targets := nonBlank(cfg.Targets)
	if len(targets) < len(cfg.Targets) || len(targets) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), model.WarnBlankCheck)
	}
	if len(targets) == 0 {
		return nil
	}
	cfg.Targets = targets

	ctx, cancel := signalContext(cmd.Context(), logger)
	defer cancel()

	return runCheck(ctx, cmd, cfg, s, logger)
}

// runCheck scores cfg.Targets and writes the report.
func runCheck(ctx context.Context, cmd *cobra.Command, cfg *config.Config, s *scorer.Scorer, logger *slog.Logger) error {
	output, closeOutput, err := openOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // best effort on error paths

	writer := withTee(cfg, newReportWriter(cfg, output), cmd.OutOrStdout())

	if len(cfg.Targets) == 1 {
		a, err := s.Assess(cfg.Targets[0])
		if err != nil {
			return fmt.Errorf("failed to score %q: %w", cfg.Targets[0], err)
		}
		if _, err := writer.Write(&a); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return closeOutput()
	}

	bp := pipeline.NewBatchProcessor(s,
		pipeline.WithConcurrency(cfg.BatchSize),
		pipeline.WithBatchLogger(logger),
	)
	results, err := bp.ProcessBatch(ctx, cfg.Targets)
	if err != nil {
		return err
	}

	assessments, failed := pipeline.Assessments(results)
	if len(assessments) > 0 {
		if _, err := writer.WriteBatch(assessments); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	if err := closeOutput(); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to score %d of %d URLs, first %q: %w",
			len(failed), len(results), failed[0].URL, failed[0].Err)
	}
	return nil
}

// nonBlank returns urls without blank entries.
func nonBlank(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if !model.IsBlank(u) {
			out = append(out, u)
		}
	}
	return out
}
