// Package scorer turns feature vectors into risk assessments.
//
// A Scorer composes a pre-fitted Scaler and Classifier that are loaded once
// at startup and injected here. Scoring is a pure function of the inputs and
// those read-only capabilities, so one Scorer may serve concurrent callers.
package scorer

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"reflect"

	"github.com/nao1215/urlrisk/internal/classifier"
	"github.com/nao1215/urlrisk/internal/feature"
	"github.com/nao1215/urlrisk/internal/model"
)

// Tier thresholds. Comparisons are strict, so a probability equal to a
// threshold falls into the lower tier.
const (
	HighRiskThreshold   = 0.75
	SuspiciousThreshold = 0.45
)

// Explanation thresholds for lexical red flags.
const (
	LongURLThreshold  = 60
	ManyDotsThreshold = 4
)

// Explanation messages.
const (
	ExplainHasAt    = "Contains '@' symbol → often used to hide domain"
	ExplainLongURL  = "URL is long (%d chars)"
	ExplainManyDots = "Too many dots (%d) → confusing address"
	ExplainFallback = "Suspicion is based on combined subtle features."
)

var (
	// ErrMissingCapability is returned by New when the scaler or classifier is nil.
	ErrMissingCapability = errors.New("scaler and classifier are required")

	// ErrSchemaMismatch is returned when a feature row does not have one
	// column per feature name.
	ErrSchemaMismatch = errors.New("feature vector does not match schema")

	// ErrMalformedOutput is returned when a capability returns an output of
	// unexpected shape.
	ErrMalformedOutput = errors.New("malformed capability output")

	// ErrInvalidProbability is returned when the phishing probability is not
	// a finite number in [0,1].
	ErrInvalidProbability = errors.New("phishing probability out of range")
)

// Scorer scores feature vectors with injected capabilities.
type Scorer struct {
	scaler     classifier.Scaler
	classifier classifier.Classifier
	logger     *slog.Logger
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scorer) {
		s.logger = logger
	}
}

// New creates a Scorer. Both capabilities are required.
func New(scaler classifier.Scaler, clf classifier.Classifier, opts ...Option) (*Scorer, error) {
	if isNil(scaler) || isNil(clf) {
		return nil, ErrMissingCapability
	}

	s := &Scorer{
		scaler:     scaler,
		classifier: clf,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s, nil
}

// NewFromBundle creates a Scorer from loaded artifacts.
func NewFromBundle(b *classifier.Bundle, opts ...Option) (*Scorer, error) {
	if b == nil {
		return nil, ErrMissingCapability
	}
	return New(b.Scaler, b.Classifier, opts...)
}

// Assess extracts features from url and scores them.
func (s *Scorer) Assess(url string) (model.Assessment, error) {
	vec, raw := feature.Extract(url)
	a, err := s.Score(vec, raw)
	if err != nil {
		return model.Assessment{}, err
	}
	a.URL = url
	return a, nil
}

// Score runs scale, inference, tiering and explanation for one vector.
// The returned Assessment has an empty URL; Assess fills it in.
func (s *Scorer) Score(vec model.FeatureVector, raw model.RawFeatures) (model.Assessment, error) {
	row := vec.Values()
	if len(row) != len(model.FeatureNames) {
		return model.Assessment{}, fmt.Errorf("%w: %d columns, expected %d",
			ErrSchemaMismatch, len(row), len(model.FeatureNames))
	}

	p, err := s.probability(row)
	if err != nil {
		return model.Assessment{}, err
	}

	tier := TierFor(p)
	a := model.Assessment{
		Features:     vec,
		Probability:  p,
		Tier:         tier,
		Advice:       tier.Advice(),
		Explanations: Explain(raw, p),
	}

	s.logger.Debug("scored features",
		"length", vec.Length,
		"num_dots", vec.NumDots,
		"has_at", vec.HasAt,
		"probability", p,
		"tier", tier.String(),
	)

	return a, nil
}

// probability scales row and returns the phishing-class probability.
func (s *Scorer) probability(row []float64) (float64, error) {
	scaled, err := s.scaler.Transform([][]float64{row})
	if err != nil {
		return 0, fmt.Errorf("scaler transform failed: %w", err)
	}
	if len(scaled) != 1 || len(scaled[0]) != len(row) {
		return 0, fmt.Errorf("%w: scaler returned %d rows", ErrMalformedOutput, len(scaled))
	}

	dists, err := s.classifier.PredictProba(scaled)
	if err != nil {
		return 0, fmt.Errorf("classifier prediction failed: %w", err)
	}
	if len(dists) != 1 || len(dists[0]) != 2 {
		return 0, fmt.Errorf("%w: classifier must return one two-class distribution", ErrMalformedOutput)
	}

	p := dists[0][classifier.ClassPhishing]
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidProbability, p)
	}
	return p, nil
}

// TierFor maps a phishing probability to its risk tier.
func TierFor(p float64) model.RiskTier {
	switch {
	case p > HighRiskThreshold:
		return model.TierHighRisk
	case p > SuspiciousThreshold:
		return model.TierSuspicious
	default:
		return model.TierSafe
	}
}

// Explain returns the explanations for raw features and probability p.
// Lexical checks run in a fixed order and may all fire. If none fires and
// p is above the SAFE range, a single fallback explanation is returned, so
// only SAFE results can have no explanation.
func Explain(raw model.RawFeatures, p float64) []string {
	reasons := make([]string, 0, 3)

	if raw[model.FeatureHasAt] == 1 {
		reasons = append(reasons, ExplainHasAt)
	}
	if n := raw[model.FeatureLength]; n > LongURLThreshold {
		reasons = append(reasons, fmt.Sprintf(ExplainLongURL, n))
	}
	if n := raw[model.FeatureNumDots]; n > ManyDotsThreshold {
		reasons = append(reasons, fmt.Sprintf(ExplainManyDots, n))
	}

	if len(reasons) == 0 && p > SuspiciousThreshold {
		reasons = append(reasons, ExplainFallback)
	}
	return reasons
}

// isNil reports whether v is nil or holds a nil pointer, func, map, slice,
// channel or interface value.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
