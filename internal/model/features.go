package model

// Feature names in the order the scaler and classifier were fitted on.
const (
	FeatureLength  = "length"
	FeatureNumDots = "num_dots"
	FeatureHasAt   = "has_at"
)

// FeatureNames is the column order of every FeatureVector.
// Artifacts declare their own column list and are rejected at load time
// when it differs from this one.
var FeatureNames = []string{FeatureLength, FeatureNumDots, FeatureHasAt}

// FeatureVector holds the lexical features of a single URL.
type FeatureVector struct {
	// Length is the number of characters (Unicode code points) in the URL.
	Length int `json:"length"`

	// NumDots is the number of '.' characters in the URL.
	NumDots int `json:"num_dots"`

	// HasAt is 1 if the URL contains '@', otherwise 0.
	HasAt int `json:"has_at"`
}

// Values returns the vector as a row in FeatureNames order.
func (v FeatureVector) Values() []float64 {
	return []float64{float64(v.Length), float64(v.NumDots), float64(v.HasAt)}
}

// Raw returns the vector as a RawFeatures map.
func (v FeatureVector) Raw() RawFeatures {
	return RawFeatures{
		FeatureLength:  v.Length,
		FeatureNumDots: v.NumDots,
		FeatureHasAt:   v.HasAt,
	}
}

// RawFeatures maps feature names to their values.
// Explanation logic reads from this map so it never depends on column order.
type RawFeatures map[string]int
