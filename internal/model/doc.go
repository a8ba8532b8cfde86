// Package model defines the core data structures used throughout urlrisk.
//
// This package contains the following main types:
//   - FeatureVector: The ordered lexical features fed to the scaler
//   - RawFeatures: The same values keyed by name, used for explanations
//   - RiskTier: The discrete risk category derived from a probability
//   - Assessment: The complete, immutable result of scoring one URL
//   - ReportAck: The acknowledgment returned by the report action
//
// Design decision: We separate models into their own package to avoid circular
// dependencies. The feature, scorer, report and server packages all need these
// types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// the HTTP surface.
package model
