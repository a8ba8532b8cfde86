package config

// ArtifactConfig locates one model artifact.
type ArtifactConfig struct {
	// Path is the artifact file path. Relative paths are resolved against
	// the directory of the config file.
	Path string `yaml:"path,omitempty"`

	// Checksum is the expected SHA3-256 digest, optionally prefixed with
	// "sha3-256:".
	Checksum string `yaml:"checksum,omitempty"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Listen is the host:port to bind.
	Listen string `yaml:"listen,omitempty"`

	// ShutdownTimeout is a Go duration string such as "10s".
	ShutdownTimeout string `yaml:"shutdownTimeout,omitempty"`

	// LogJSON switches the logger to JSON lines.
	LogJSON bool `yaml:"logJSON,omitempty"`
}

// File represents the structure of the .urlrisk configuration file.
type File struct {
	// Model locates the classifier artifact.
	Model ArtifactConfig `yaml:"model,omitempty"`

	// Scaler locates the scaler artifact.
	Scaler ArtifactConfig `yaml:"scaler,omitempty"`

	// Batch overrides the default number of concurrent scorings.
	Batch int `yaml:"batch,omitempty"`

	// Server holds settings for the serve command.
	Server ServerConfig `yaml:"server,omitempty"`

	// dir is the directory of the file, used to resolve relative paths.
	dir string
}
