package classifier

// Scaler normalizes feature magnitudes before inference.
type Scaler interface {
	// Transform scales each row. The result has the same shape as rows.
	Transform(rows [][]float64) ([][]float64, error)
}

// Classifier estimates class probabilities for scaled feature rows.
type Classifier interface {
	// PredictProba returns one distribution per row. For the binary
	// phishing classifier each distribution is [P(legitimate), P(phishing)].
	PredictProba(rows [][]float64) ([][]float64, error)
}

// Class indexes in a binary distribution.
const (
	ClassLegitimate = 0
	ClassPhishing   = 1
)
