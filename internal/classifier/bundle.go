package classifier

// LoadOptions locates the scaler and classifier artifacts.
type LoadOptions struct {
	ScalerPath         string
	ScalerChecksum     string
	ClassifierPath     string
	ClassifierChecksum string
}

// Bundle holds the loaded capabilities and their provenance.
// It is built once at startup and shared read-only afterwards.
type Bundle struct {
	Scaler         *StandardScaler
	Classifier     *LogisticRegression
	ScalerInfo     ArtifactInfo
	ClassifierInfo ArtifactInfo
}

// Load reads both artifacts. Any failure is meant to abort startup.
func Load(opts LoadOptions) (*Bundle, error) {
	scaler, scalerInfo, err := LoadScaler(opts.ScalerPath, opts.ScalerChecksum)
	if err != nil {
		return nil, err
	}

	clf, clfInfo, err := LoadClassifier(opts.ClassifierPath, opts.ClassifierChecksum)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		Scaler:         scaler,
		Classifier:     clf,
		ScalerInfo:     scalerInfo,
		ClassifierInfo: clfInfo,
	}, nil
}
