// Package classifier provides the trained risk classifier consumed by the
// advisory service. The model is externally trained and shipped as a JSON
// bundle; at runtime it is an opaque, stateless collaborator behind a narrow
// interface.
package classifier

import "errors"

// Classifier errors.
var (
	ErrFeatureDimension = errors.New("feature vector dimension mismatch")
	ErrNoClasses        = errors.New("classifier has no classes")
)

// Classifier predicts a risk label over a fixed-order numeric feature vector.
type Classifier interface {
	// Predict returns the most likely class label.
	Predict(features []float64) (string, error)

	// PredictProbabilities returns the per-class probability distribution.
	// Values sum to 1 across the classifier's known classes.
	PredictProbabilities(features []float64) (map[string]float64, error)
}
