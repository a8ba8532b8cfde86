package classifier

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/crypto/sha3"
	"gopkg.in/yaml.v3"

	"github.com/nao1215/urlrisk/internal/model"
)

// Artifact kinds understood by the loader.
const (
	KindStandardScaler     = "standard_scaler"
	KindLogisticRegression = "logistic_regression"
)

// checksumPrefix may precede a configured checksum, e.g. "sha3-256:ab12...".
const checksumPrefix = "sha3-256:"

// artifactFile is the on-disk representation of a fitted artifact.
type artifactFile struct {
	Kind     string   `yaml:"kind"`
	Features []string `yaml:"features"`

	// standard_scaler
	Mean  []float64 `yaml:"mean,omitempty"`
	Scale []float64 `yaml:"scale,omitempty"`

	// logistic_regression
	Coefficients []float64 `yaml:"coefficients,omitempty"`
	Intercept    float64   `yaml:"intercept,omitempty"`
}

// ArtifactInfo describes a loaded artifact for logs and reports.
type ArtifactInfo struct {
	// Path is the file the artifact was read from.
	Path string `json:"path"`

	// Kind is the declared artifact kind.
	Kind string `json:"kind"`

	// Fingerprint is the SHA3-256 hex digest of the artifact file.
	Fingerprint string `json:"fingerprint"`

	// Features are the feature names the artifact was fitted on, in order.
	Features []string `json:"features"`
}

// Fingerprint returns the SHA3-256 hex digest of data.
func Fingerprint(data []byte) string {
	sum := sha3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// LoadScaler reads a standard scaler artifact from path.
// If checksum is non-empty the file's SHA3-256 digest must match it.
func LoadScaler(path, checksum string) (*StandardScaler, ArtifactInfo, error) {
	af, info, err := readArtifact(path, checksum, KindStandardScaler)
	if err != nil {
		return nil, ArtifactInfo{}, err
	}
	s, err := NewStandardScaler(af.Features, af.Mean, af.Scale)
	if err != nil {
		return nil, ArtifactInfo{}, fmt.Errorf("%s: %w", path, err)
	}
	info.Features = s.Features()
	return s, info, nil
}

// LoadClassifier reads a logistic regression artifact from path.
// If checksum is non-empty the file's SHA3-256 digest must match it.
func LoadClassifier(path, checksum string) (*LogisticRegression, ArtifactInfo, error) {
	af, info, err := readArtifact(path, checksum, KindLogisticRegression)
	if err != nil {
		return nil, ArtifactInfo{}, err
	}
	m, err := NewLogisticRegression(af.Features, af.Coefficients, af.Intercept)
	if err != nil {
		return nil, ArtifactInfo{}, fmt.Errorf("%s: %w", path, err)
	}
	info.Features = m.Features()
	return m, info, nil
}

// readArtifact loads, verifies and decodes an artifact file.
func readArtifact(path, checksum, kind string) (*artifactFile, ArtifactInfo, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Artifact path comes from operator configuration
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ArtifactInfo{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, ArtifactInfo{}, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}

	info := ArtifactInfo{
		Path:        path,
		Kind:        kind,
		Fingerprint: Fingerprint(data),
	}

	if checksum != "" {
		want := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(checksum)), checksumPrefix)
		if want != info.Fingerprint {
			return nil, ArtifactInfo{}, fmt.Errorf("%w: %s has %s, expected %s",
				ErrChecksumMismatch, path, info.Fingerprint, want)
		}
	}

	var af artifactFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&af); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ArtifactInfo{}, fmt.Errorf("%w: %s is empty", ErrInvalidArtifact, path)
		}
		return nil, ArtifactInfo{}, fmt.Errorf("%w: %s: %v", ErrInvalidArtifact, path, err)
	}

	if af.Kind != kind {
		return nil, ArtifactInfo{}, fmt.Errorf("%w: %s declares %q, expected %q",
			ErrWrongKind, path, af.Kind, kind)
	}

	if !slices.Equal(af.Features, model.FeatureNames) {
		return nil, ArtifactInfo{}, fmt.Errorf("%w: %s declares %v, extractor produces %v",
			ErrFeatureMismatch, path, af.Features, model.FeatureNames)
	}

	return &af, info, nil
}
