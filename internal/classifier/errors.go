package classifier

import "errors"

// Artifact and inference errors.
// Callers use errors.Is to tell them apart; messages carry the details.
var (
	// ErrArtifactNotFound is returned when an artifact file does not exist.
	ErrArtifactNotFound = errors.New("artifact not found")

	// ErrInvalidArtifact is returned when an artifact cannot be decoded or
	// its parameters are inconsistent.
	ErrInvalidArtifact = errors.New("invalid artifact")

	// ErrWrongKind is returned when an artifact declares an unexpected kind,
	// for example a classifier file passed where a scaler is expected.
	ErrWrongKind = errors.New("unexpected artifact kind")

	// ErrFeatureMismatch is returned when an artifact was fitted on a
	// different feature list or column order.
	ErrFeatureMismatch = errors.New("artifact feature list does not match extractor")

	// ErrChecksumMismatch is returned when an artifact's SHA3-256 digest
	// differs from the configured checksum.
	ErrChecksumMismatch = errors.New("artifact checksum mismatch")

	// ErrRowWidth is returned when an input row has the wrong number of columns.
	ErrRowWidth = errors.New("row width does not match artifact")
)
