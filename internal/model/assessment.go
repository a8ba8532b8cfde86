package model

// Assessment is the result of scoring a single URL.
// It is built once by the scorer and never modified afterwards.
//
// Design decision: Assessment carries no timestamp so that scoring the same
// URL twice with the same artifacts produces byte-identical output.
type Assessment struct {
	// URL is the scored input exactly as supplied.
	URL string `json:"url"`

	// Features is the extracted feature vector.
	Features FeatureVector `json:"features"`

	// Probability is the classifier's phishing-class probability in [0,1].
	Probability float64 `json:"probability"`

	// Tier is the risk category derived from Probability.
	Tier RiskTier `json:"tier"`

	// Advice is the action recommended for Tier.
	Advice string `json:"advice"`

	// Explanations lists the reasons behind the tier in evaluation order.
	// It is empty only for SAFE results without lexical red flags.
	Explanations []string `json:"explanations"`
}

// HasExplanations reports whether the assessment carries any explanation.
func (a *Assessment) HasExplanations() bool {
	return len(a.Explanations) > 0
}

// TierCounts tallies assessments per tier.
func TierCounts(assessments []Assessment) map[RiskTier]int {
	counts := make(map[RiskTier]int, len(Tiers))
	for _, a := range assessments {
		counts[a.Tier]++
	}
	return counts
}
