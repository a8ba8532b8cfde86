package feature

import (
	"strings"
	"testing"

	"github.com/nao1215/urlrisk/internal/model"
)

// TestExtract tests feature extraction on representative inputs.
func TestExtract(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		url      string
		expected model.FeatureVector
	}{
		{
			name:     "plain url",
			url:      "http://example.com",
			expected: model.FeatureVector{Length: 18, NumDots: 1, HasAt: 0},
		},
		{
			name:     "url with at sign",
			url:      "http://a@b.com",
			expected: model.FeatureVector{Length: 14, NumDots: 1, HasAt: 1},
		},
		{
			name:     "empty string",
			url:      "",
			expected: model.FeatureVector{},
		},
		{
			name:     "many dots",
			url:      "http://a.b.c.d.e.f.com",
			expected: model.FeatureVector{Length: 22, NumDots: 6, HasAt: 0},
		},
		{
			name:     "multiple at signs count once",
			url:      "@@@",
			expected: model.FeatureVector{Length: 3, NumDots: 0, HasAt: 1},
		},
		{
			name:     "length counts characters not bytes",
			url:      "http://例え.jp",
			expected: model.FeatureVector{Length: 12, NumDots: 1, HasAt: 0},
		},
		{
			name:     "no normalization of case or whitespace",
			url:      " HTTP://EXAMPLE.COM/ ",
			expected: model.FeatureVector{Length: 21, NumDots: 1, HasAt: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			vec, raw := Extract(tc.url)
			if vec != tc.expected {
				t.Errorf("Extract(%q) = %+v, expected %+v", tc.url, vec, tc.expected)
			}
			if raw[model.FeatureLength] != tc.expected.Length ||
				raw[model.FeatureNumDots] != tc.expected.NumDots ||
				raw[model.FeatureHasAt] != tc.expected.HasAt {
				t.Errorf("raw features %v do not match vector %+v", raw, tc.expected)
			}
		})
	}
}

// TestExtractLongURL verifies the length of a 75 character URL.
func TestExtractLongURL(t *testing.T) {
	t.Parallel()

	url := "http://example.com/" + strings.Repeat("a", 56)
	vec, _ := Extract(url)
	if vec.Length != 75 {
		t.Errorf("expected length 75, got %d", vec.Length)
	}
	if vec.NumDots != 1 {
		t.Errorf("expected 1 dot, got %d", vec.NumDots)
	}
}

// TestExtractDeterministic verifies that extraction is repeatable.
func TestExtractDeterministic(t *testing.T) {
	t.Parallel()

	url := "http://login.secure.account.example.co.uk@evil.example"
	first, firstRaw := Extract(url)
	second, secondRaw := Extract(url)
	if first != second {
		t.Errorf("expected identical vectors, got %+v and %+v", first, second)
	}
	for k, v := range firstRaw {
		if secondRaw[k] != v {
			t.Errorf("raw feature %q differs: %d vs %d", k, v, secondRaw[k])
		}
	}
}
