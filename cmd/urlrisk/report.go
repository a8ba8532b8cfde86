package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/urlrisk/internal/model"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [url]",
		Short: "Report a URL as suspicious",
		Long: `Report acknowledges a URL you believe is a phishing site.

The report is acknowledged and logged; it is not stored or forwarded.

Examples:
  urlrisk report "http://paypal.com.verify-account.example"`,
		Args: cobra.MaximumNArgs(1),
		RunE: runReportCmd,
	}

	addFormatFlags(cmd)

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg)

	var url string
	if len(cfg.Targets) > 0 {
		url = cfg.Targets[0]
	}
	if model.IsBlank(url) {
		fmt.Fprintln(cmd.ErrOrStderr(), model.WarnBlankReport)
		return nil
	}

	ack := model.Acknowledge(url)
	logger.Info("url reported", "url", url)

	output, closeOutput, err := openOutput(cfg, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // best effort on error paths

	if _, err := withTee(cfg, newReportWriter(cfg, output), cmd.OutOrStdout()).WriteAck(ack); err != nil {
		return fmt.Errorf("failed to write acknowledgment: %w", err)
	}
	return closeOutput()
}
