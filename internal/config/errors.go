package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the loaders, and
// allow callers to use errors.Is() while still printing readable messages.
var (
	// ErrNoModelPath is returned when no classifier artifact path is configured.
	ErrNoModelPath = errors.New("no classifier artifact specified: use --model or URLRISK_MODEL")

	// ErrNoScalerPath is returned when no scaler artifact path is configured.
	ErrNoScalerPath = errors.New("no scaler artifact specified: use --scaler or URLRISK_SCALER")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrTeeWithoutOutput is returned when --tee is given without --output.
	ErrTeeWithoutOutput = errors.New("--tee requires --output")

	// ErrNoListenAddr is returned when the HTTP listen address is empty.
	ErrNoListenAddr = errors.New("no listen address specified")

	// ErrInvalidShutdownTimeout is returned when the shutdown timeout is not positive.
	ErrInvalidShutdownTimeout = errors.New("invalid shutdown timeout: must be positive")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidEnv is returned when an environment variable cannot be parsed.
	ErrInvalidEnv = errors.New("invalid environment variable")
)
