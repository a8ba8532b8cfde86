package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for urlrisk.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlrisk",
		Short: "Phishing risk scorer for URLs",
		Long: `urlrisk scores a URL for phishing risk using its text only.

It derives three lexical features (length, number of dots, presence of '@'),
feeds them through a pre-fitted scaler and classifier, and reports one of
three tiers: Safe, Suspicious or High Risk (Phishing), together with the
confidence and the reasons behind it.

No request is ever made to the URL being scored.`,
		Version:       readVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
