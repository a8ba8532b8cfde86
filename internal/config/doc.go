// Package config provides configuration structures and utilities for urlrisk.
// It defines where the model artifacts live, how results are rendered, and
// how the HTTP surface listens. Values come from defaults, the .urlrisk
// YAML file, .env/environment variables and CLI flags, in increasing order
// of precedence.
package config
