package classifier

import (
	"fmt"
	"math"
)

// LogisticRegression is a fitted binary logistic regression.
// PredictProba returns [1-p, p] where p = sigmoid(coefficients·x + intercept).
type LogisticRegression struct {
	features     []string
	coefficients []float64
	intercept    float64
}

// NewLogisticRegression creates a LogisticRegression from fitted parameters.
// The slices are copied.
func NewLogisticRegression(features []string, coefficients []float64, intercept float64) (*LogisticRegression, error) {
	if len(features) == 0 {
		return nil, fmt.Errorf("%w: classifier has no features", ErrInvalidArtifact)
	}
	if len(coefficients) != len(features) {
		return nil, fmt.Errorf("%w: classifier expects %d coefficients, got %d",
			ErrInvalidArtifact, len(features), len(coefficients))
	}
	if err := requireFinite("coefficients", coefficients); err != nil {
		return nil, err
	}
	if err := requireFinite("intercept", []float64{intercept}); err != nil {
		return nil, err
	}
	return &LogisticRegression{
		features:     append([]string(nil), features...),
		coefficients: append([]float64(nil), coefficients...),
		intercept:    intercept,
	}, nil
}

// Features returns the feature names the classifier was fitted on.
func (m *LogisticRegression) Features() []string {
	return append([]string(nil), m.features...)
}

// PredictProba implements Classifier.
func (m *LogisticRegression) PredictProba(rows [][]float64) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(m.coefficients) {
			return nil, fmt.Errorf("%w: row %d has %d columns, classifier expects %d",
				ErrRowWidth, i, len(row), len(m.coefficients))
		}
		z := m.intercept
		for j, v := range row {
			z += m.coefficients[j] * v
		}
		p := sigmoid(z)
		out[i] = []float64{1 - p, p}
	}
	return out, nil
}

// sigmoid is evaluated in a form that does not overflow for large |z|.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
