package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "urlrisk"

	// DefaultModelFile is the classifier artifact file name inside the data directory.
	DefaultModelFile = "model.yaml"

	// DefaultScalerFile is the scaler artifact file name inside the data directory.
	DefaultScalerFile = "scaler.yaml"

	// DefaultBatchSize is the number of URLs scored concurrently for list input.
	// Scoring is CPU-only and cheap, so this mainly bounds goroutine count.
	DefaultBatchSize = 10

	// DefaultListenAddr is the address the HTTP surface listens on.
	DefaultListenAddr = ":8080"

	// DefaultShutdownTimeout bounds how long serve waits for in-flight
	// requests after an interrupt.
	DefaultShutdownTimeout = 10 * time.Second
)

// Config holds all configuration options for urlrisk.
// This struct is populated from defaults, the config file, the environment
// and CLI flags, then passed through the application explicitly.
//
// Design decision: We use a single flat struct instead of nested structs.
// The number of options is small; the nested shape only exists in the
// YAML file (see File).
type Config struct {
	// ModelPath is the path of the classifier artifact.
	ModelPath string

	// ModelChecksum is the expected SHA3-256 digest of the classifier
	// artifact. Empty disables the check.
	ModelChecksum string

	// ScalerPath is the path of the scaler artifact.
	ScalerPath string

	// ScalerChecksum is the expected SHA3-256 digest of the scaler
	// artifact. Empty disables the check.
	ScalerChecksum string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent scorings for multiple URLs.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .urlrisk in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// JSONReport enables JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Tee also prints a plain-text report to stdout while ReportFile
	// receives the configured format. Requires ReportFile.
	Tee bool

	// Targets is the list of URLs to score, as given on the command line.
	Targets []string

	// ListFile is a file with one URL per line. Its URLs are appended to Targets.
	ListFile string

	// ListenAddr is the host:port the HTTP surface binds.
	ListenAddr string

	// ShutdownTimeout bounds graceful shutdown of the HTTP surface.
	ShutdownTimeout time.Duration

	// LogJSON switches the logger to JSON lines.
	LogJSON bool
}

// NewConfig creates a new Config with default values.
// Artifact paths default to files inside XDGDataDir.
func NewConfig() *Config {
	return &Config{
		ModelPath:       filepath.Join(XDGDataDir(), DefaultModelFile),
		ScalerPath:      filepath.Join(XDGDataDir(), DefaultScalerFile),
		BatchSize:       DefaultBatchSize,
		ListenAddr:      DefaultListenAddr,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// XDGDataDir returns the XDG data directory for urlrisk, where model
// artifacts are looked up by default.
// On Linux: ~/.local/share/urlrisk
// On macOS: ~/Library/Application Support/urlrisk
// On Windows: %LOCALAPPDATA%\urlrisk
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found as a sentinel error.
//
// Targets are not validated here: blank or missing input is a user-facing
// warning handled by the commands, not a configuration error.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return ErrNoModelPath
	}

	if c.ScalerPath == "" {
		return ErrNoScalerPath
	}

	// BatchSize must be positive; zero would mean no scoring
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.Tee && c.ReportFile == "" {
		return ErrTeeWithoutOutput
	}

	if c.ListenAddr == "" {
		return ErrNoListenAddr
	}

	if c.ShutdownTimeout <= 0 {
		return ErrInvalidShutdownTimeout
	}

	return nil
}
