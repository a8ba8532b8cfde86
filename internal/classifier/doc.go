// Package classifier provides the scaler and classifier capabilities used by
// the scorer, together with artifact-backed implementations.
//
// The scorer depends only on two operations:
//   - Scaler.Transform: rows of raw features to rows of scaled features
//   - Classifier.PredictProba: rows of scaled features to class distributions
//
// Any implementation satisfying these interfaces can be substituted. This
// package ships a standard scaler and a logistic regression whose parameters
// are read from YAML (or JSON) artifacts produced by an external training job.
//
// # Artifact format
//
//	kind: standard_scaler
//	features: [length, num_dots, has_at]
//	mean: [45.2, 2.1, 0.03]
//	scale: [21.7, 1.4, 0.17]
//
//	kind: logistic_regression
//	features: [length, num_dots, has_at]
//	coefficients: [0.9, 1.2, 2.4]
//	intercept: -1.1
//
// Loading verifies the kind, the feature column order and the parameter
// widths, and optionally a SHA3-256 checksum of the artifact file. Loaded
// implementations are immutable and safe for concurrent use.
package classifier
