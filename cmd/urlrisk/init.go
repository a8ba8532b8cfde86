package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/nao1215/urlrisk/internal/config"
)

// configTemplate is the documented .urlrisk written by init.
//
//go:embed templates/urlrisk.yaml
var configTemplate []byte

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a documented urlrisk configuration file",
		Long: `Init writes a .urlrisk configuration file documenting every option:
artifact paths and checksums, batch concurrency, and the HTTP listen address.

An existing file is left untouched unless --force is given.

Examples:
  # Write .urlrisk in the current directory
  urlrisk init

  # Write it somewhere else, creating directories as needed
  urlrisk init -o ~/.config/urlrisk/config.yaml

  # Replace an existing file
  urlrisk init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Path of the configuration file to write")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	f, err := createPrivateFile(path, !force)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", path)
	}
	if err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}
	if _, err := f.Write(configTemplate); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), `Wrote %s

Next steps:
  1. Set model.path and scaler.path to your artifacts.
  2. Optionally pin their sha3-256 checksums.
  3. Run: urlrisk check --config %s "http://example.com"
`, path, path)
	return nil
}
