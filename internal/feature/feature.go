// Package feature derives lexical features from URL strings.
//
// Extraction is a pure function of the input text. No normalization is
// applied: the scheme, case and trailing characters all count, because the
// classifier artifacts were fitted on raw strings.
package feature

import (
	"strings"
	"unicode/utf8"

	"github.com/nao1215/urlrisk/internal/model"
)

// Extract computes the feature vector of url and the same values keyed by
// feature name. Every string is valid input, including the empty string.
func Extract(url string) (model.FeatureVector, model.RawFeatures) {
	v := model.FeatureVector{
		Length:  utf8.RuneCountInString(url),
		NumDots: strings.Count(url, "."),
	}
	if strings.Contains(url, "@") {
		v.HasAt = 1
	}
	return v, v.Raw()
}
