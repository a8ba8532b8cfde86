package report

import (
	"github.com/shopspring/decimal"

	"github.com/nao1215/urlrisk/internal/model"
	"github.com/nao1215/urlrisk/internal/urlinfo"
)

// FormatConfidence renders a probability as a percentage with two decimals,
// e.g. 0.87654 becomes "87.65%".
//
// Design decision: We format through shopspring/decimal instead of
// fmt's %.2f on p*100 so that values such as 0.285 render as "28.50%"
// instead of picking up binary float noise from the multiplication.
func FormatConfidence(p float64) string {
	return decimal.NewFromFloat(p).Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// View is the presentation form of an Assessment shared by the JSON writer
// and the HTTP API.
type View struct {
	*model.Assessment

	// Label is the display label of the tier.
	Label string `json:"label"`

	// Color is the severity color hint of the tier.
	Color string `json:"color"`

	// Confidence is Probability as a two-decimal percentage.
	Confidence string `json:"confidence"`

	// Details are display-only facts about the URL's host.
	Details urlinfo.Info `json:"details"`
}

// NewView builds the presentation form of a.
func NewView(a *model.Assessment) View {
	return View{
		Assessment: a,
		Label:      a.Tier.Label(),
		Color:      a.Tier.Color(),
		Confidence: FormatConfidence(a.Probability),
		Details:    urlinfo.Describe(a.URL),
	}
}

// BatchView is the presentation form of several assessments.
type BatchView struct {
	Results []View         `json:"results"`
	Summary map[string]int `json:"summary"`
}

// NewBatchView builds the presentation form of assessments.
// Summary holds a count for every tier, including zero counts.
func NewBatchView(assessments []model.Assessment) BatchView {
	results := make([]View, len(assessments))
	for i := range assessments {
		results[i] = NewView(&assessments[i])
	}

	counts := model.TierCounts(assessments)
	summary := make(map[string]int, len(model.Tiers))
	for _, tier := range model.Tiers {
		summary[tier.String()] = counts[tier]
	}

	return BatchView{Results: results, Summary: summary}
}
