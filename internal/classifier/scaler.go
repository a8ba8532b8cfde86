package classifier

import (
	"fmt"
	"math"
)

// StandardScaler subtracts a per-feature mean and divides by a per-feature
// scale. A zero scale is treated as 1 so constant features pass through
// centred instead of producing infinities.
type StandardScaler struct {
	features []string
	mean     []float64
	scale    []float64
}

// NewStandardScaler creates a StandardScaler from fitted parameters.
// The slices are copied.
func NewStandardScaler(features []string, mean, scale []float64) (*StandardScaler, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: scaler has no features", ErrInvalidArtifact)
	}
	if len(mean) != len(features) || len(scale) != len(features) {
		return nil, fmt.Errorf("%w: scaler expects %d parameters per vector, got mean=%d scale=%d",
			ErrInvalidArtifact, len(features), len(mean), len(scale))
	}
	if err := requireFinite("mean", mean); err != nil {
		return nil, err
	}
	if err := requireFinite("scale", scale); err != nil {
		return nil, err
	}
	s := &StandardScaler{
		features: append([]string(nil), features...),
		mean:     append([]float64(nil), mean...),
		scale:    make([]float64, len(scale)),
	}
	for i, v := range scale {
		if v == 0 {
			v = 1
		}
		s.scale[i] = v
	}
	return s, nil
}

// Features returns the feature names the scaler was fitted on.
func (s *StandardScaler) Features() []string {
	return append([]string(nil), s.features...)
}

// Transform implements Scaler.
func (s *StandardScaler) Transform(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(s.mean) {
			return nil, fmt.Errorf("%w: row %d has %d columns, scaler expects %d",
				ErrRowWidth, i, len(row), len(s.mean))
		}
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.mean[j]) / s.scale[j]
		}
		out[i] = scaled
	}
	return out, nil
}

// requireFinite rejects NaN and infinite parameters.
func requireFinite(name string, values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is %v, must be finite", ErrInvalidArtifact, name, i, v)
		}
	}
	return nil
}
