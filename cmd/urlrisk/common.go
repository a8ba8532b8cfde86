package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/urlrisk/internal/classifier"
	"github.com/nao1215/urlrisk/internal/config"
	urlrisklog "github.com/nao1215/urlrisk/internal/log"
	"github.com/nao1215/urlrisk/internal/report"
	"github.com/nao1215/urlrisk/internal/scorer"
)

// addArtifactFlags registers the flags that locate the model artifacts.
func addArtifactFlags(cmd *cobra.Command) {
	cmd.Flags().String("model", "",
		"Classifier artifact path (default: model.yaml in the XDG data directory)")
	cmd.Flags().String("scaler", "",
		"Scaler artifact path (default: scaler.yaml in the XDG data directory)")
	cmd.Flags().String("model-checksum", "",
		"Expected SHA3-256 digest of the classifier artifact")
	cmd.Flags().String("scaler-checksum", "",
		"Expected SHA3-256 digest of the scaler artifact")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .urlrisk in current or home directory)")
}

// addFormatFlags registers the report format flags.
func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"With --output, also print a plain-text report to stdout")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the config file, the environment and
// the flags defined on cmd, in increasing order of precedence.
// Only flags the user actually set override earlier sources.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	config.LoadDotEnv()

	configPath, err := stringFlag(cmd, "config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath, os.LookupEnv)
	if err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		"model":           &cfg.ModelPath,
		"scaler":          &cfg.ScalerPath,
		"model-checksum":  &cfg.ModelChecksum,
		"scaler-checksum": &cfg.ScalerChecksum,
		"output":          &cfg.ReportFile,
		"list":            &cfg.ListFile,
		"listen":          &cfg.ListenAddr,
	} {
		if !changed(cmd, name) {
			continue
		}
		if *dst, err = cmd.Flags().GetString(name); err != nil {
			return nil, err
		}
	}

	for name, dst := range map[string]*bool{
		"json":     &cfg.JSONReport,
		"markdown": &cfg.MarkdownReport,
		"log-json": &cfg.LogJSON,
		"tee":      &cfg.Tee,
	} {
		if !changed(cmd, name) {
			continue
		}
		if *dst, err = cmd.Flags().GetBool(name); err != nil {
			return nil, err
		}
	}

	if changed(cmd, "batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return nil, err
		}
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args

	return cfg, nil
}

// changed reports whether the flag exists on cmd and was set by the user.
func changed(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

// stringFlag returns the flag value, or "" if cmd has no such flag.
func stringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	return cmd.Flags().GetString(name)
}

// setupLogger creates the secure structured logger for cfg.
// Logs go to w, which is stderr outside tests.
func setupLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogJSON {
		return urlrisklog.NewSecureJSONLogger(w, cfg.Verbose)
	}
	return urlrisklog.NewSecureLogger(w, cfg.Verbose)
}

// loadScorer loads both artifacts and builds a Scorer.
// Any failure here is fatal for the command.
func loadScorer(cfg *config.Config, logger *slog.Logger) (*scorer.Scorer, *classifier.Bundle, error) {
	bundle, err := classifier.Load(classifier.LoadOptions{
		ScalerPath:         cfg.ScalerPath,
		ScalerChecksum:     cfg.ScalerChecksum,
		ClassifierPath:     cfg.ModelPath,
		ClassifierChecksum: cfg.ModelChecksum,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load model artifacts: %w", err)
	}

	logger.Debug("model artifacts loaded",
		"scaler", bundle.ScalerInfo.Path,
		"scaler_fingerprint", bundle.ScalerInfo.Fingerprint,
		"classifier", bundle.ClassifierInfo.Path,
		"classifier_fingerprint", bundle.ClassifierInfo.Fingerprint,
		"features", bundle.ClassifierInfo.Features,
	)

	s, err := scorer.NewFromBundle(bundle, scorer.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return s, bundle, nil
}

// newReportWriter returns the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}
}

// withTee adds a plain-text terminal copy of the report when cfg.Tee is set.
func withTee(cfg *config.Config, w report.Writer, stdout io.Writer) report.Writer {
	if !cfg.Tee {
		return w
	}
	return report.NewMultiWriter(w, report.NewSimpleWriter(stdout, report.WithVerbose(cfg.Verbose)))
}

// openOutput returns the report destination: cfg.ReportFile when set,
// otherwise stdout. The returned close function is never nil.
func openOutput(cfg *config.Config, stdout io.Writer) (io.Writer, func() error, error) {
	if cfg.ReportFile == "" {
		return stdout, func() error { return nil }, nil
	}

	// Reports echo user-supplied URLs, so only the owner may read them
	f, err := createPrivateFile(cfg.ReportFile, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// createPrivateFile creates path with mode 0600, creating parent directories
// as needed. With exclusive set it fails with fs.ErrExist if path exists;
// otherwise an existing file is truncated.
func createPrivateFile(path string, exclusive bool) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, err
		}
	}

	flag := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if exclusive {
		flag |= os.O_EXCL
	}
	return os.OpenFile(path, flag, 0600) //nolint:gosec // User-provided output path is intentional
}

// readListFile reads one URL per line. Lines that are blank or whose first
// non-space character is '#' are skipped. Other lines are kept verbatim
// apart from a trailing '\r', since URLs are never normalized.
func readListFile(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open list file: %w", err)
	}
	defer f.Close()

	var urls []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}
	return urls, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context, logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
