package model

import (
	"encoding/json"
	"testing"
)

// TestRiskTierString tests the String method of RiskTier.
func TestRiskTierString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tier     RiskTier
		expected string
	}{
		{TierSafe, "SAFE"},
		{TierSuspicious, "SUSPICIOUS"},
		{TierHighRisk, "HIGH_RISK"},
		{RiskTier(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.tier.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.tier.String(), tc.expected)
			}
		})
	}
}

// TestRiskTierDisplay tests label, color and advice for every tier.
func TestRiskTierDisplay(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		tier   RiskTier
		label  string
		color  string
		advice string
	}{
		{TierSafe, "Safe", "green", "This URL appears safe."},
		{TierSuspicious, "Suspicious", "orange", "Proceed with caution. Verify site identity."},
		{TierHighRisk, "High Risk (Phishing)", "red", "Do NOT click! This site looks dangerous."},
	}

	for _, tc := range testCases {
		t.Run(tc.tier.String(), func(t *testing.T) {
			t.Parallel()
			if got := tc.tier.Label(); got != tc.label {
				t.Errorf("Label() = %q, expected %q", got, tc.label)
			}
			if got := tc.tier.Color(); got != tc.color {
				t.Errorf("Color() = %q, expected %q", got, tc.color)
			}
			if got := tc.tier.Advice(); got != tc.advice {
				t.Errorf("Advice() = %q, expected %q", got, tc.advice)
			}
		})
	}
}

// TestRiskTierOrdering verifies tiers are totally ordered by severity.
func TestRiskTierOrdering(t *testing.T) {
	t.Parallel()

	if !(TierSafe < TierSuspicious && TierSuspicious < TierHighRisk) {
		t.Error("expected SAFE < SUSPICIOUS < HIGH_RISK")
	}
	if len(Tiers) != 3 || Tiers[0] != TierHighRisk || Tiers[2] != TierSafe {
		t.Errorf("expected Tiers ordered from most to least severe, got %v", Tiers)
	}
}

// TestParseRiskTier tests parsing canonical names.
func TestParseRiskTier(t *testing.T) {
	t.Parallel()

	t.Run("parses canonical names case-insensitively", func(t *testing.T) {
		t.Parallel()
		for input, expected := range map[string]RiskTier{
			"SAFE":       TierSafe,
			"suspicious": TierSuspicious,
			"High_Risk":  TierHighRisk,
		} {
			got, err := ParseRiskTier(input)
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", input, err)
			}
			if got != expected {
				t.Errorf("ParseRiskTier(%q) = %v, expected %v", input, got, expected)
			}
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		t.Parallel()
		if _, err := ParseRiskTier("MEDIUM"); err == nil {
			t.Error("expected error for unknown tier")
		}
	})
}

// TestRiskTierJSON verifies tiers encode as their canonical name.
func TestRiskTierJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(struct {
		Tier RiskTier `json:"tier"`
	}{TierHighRisk})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"tier":"HIGH_RISK"}` {
		t.Errorf("unexpected JSON: %s", data)
	}

	var decoded struct {
		Tier RiskTier `json:"tier"`
	}
	if err := json.Unmarshal([]byte(`{"tier":"SUSPICIOUS"}`), &decoded); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Tier != TierSuspicious {
		t.Errorf("expected SUSPICIOUS, got %v", decoded.Tier)
	}
}
