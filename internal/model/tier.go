package model

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RiskTier represents the risk category of a scored URL.
// Tiers are totally ordered: TierSafe < TierSuspicious < TierHighRisk.
type RiskTier int

const (
	// TierSafe is assigned when the phishing probability is at most 0.45.
	TierSafe RiskTier = iota

	// TierSuspicious is assigned when the phishing probability is above 0.45
	// and at most 0.75.
	TierSuspicious

	// TierHighRisk is assigned when the phishing probability is above 0.75.
	TierHighRisk
)

// Tiers lists every tier from most to least severe.
var Tiers = []RiskTier{TierHighRisk, TierSuspicious, TierSafe}

// String returns the canonical name of the tier.
func (t RiskTier) String() string {
	switch t {
	case TierSafe:
		return "SAFE"
	case TierSuspicious:
		return "SUSPICIOUS"
	case TierHighRisk:
		return "HIGH_RISK"
	default:
		return "UNKNOWN"
	}
}

// Label returns the display label of the tier, e.g. "High Risk (Phishing)".
func (t RiskTier) Label() string {
	title := cases.Title(language.English).String(strings.ReplaceAll(t.String(), "_", " "))
	if t == TierHighRisk {
		return title + " (Phishing)"
	}
	return title
}

// Color returns the severity color hint for presentation layers.
func (t RiskTier) Color() string {
	switch t {
	case TierSafe:
		return "green"
	case TierSuspicious:
		return "orange"
	case TierHighRisk:
		return "red"
	default:
		return "gray"
	}
}

// Advice returns the recommended user action for the tier.
func (t RiskTier) Advice() string {
	switch t {
	case TierSafe:
		return "This URL appears safe."
	case TierSuspicious:
		return "Proceed with caution. Verify site identity."
	case TierHighRisk:
		return "Do NOT click! This site looks dangerous."
	default:
		return ""
	}
}

// MarshalText encodes the tier as its canonical name.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a canonical tier name.
func (t *RiskTier) UnmarshalText(text []byte) error {
	tier, err := ParseRiskTier(string(text))
	if err != nil {
		return err
	}
	*t = tier
	return nil
}

// ParseRiskTier converts a canonical tier name back to a RiskTier.
// Matching is case-insensitive.
func ParseRiskTier(s string) (RiskTier, error) {
	for _, tier := range Tiers {
		if strings.EqualFold(tier.String(), s) {
			return tier, nil
		}
	}
	return TierSafe, fmt.Errorf("unknown risk tier %q", s)
}
