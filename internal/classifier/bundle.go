package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/airadvisor/airadvisor/internal/reading"
)

// Bundle is a loaded model artifact: the trained classifier plus the feature
// order it was trained against and its held-out accuracy.
//
// The service cannot start without a usable bundle; every load failure here
// is fatal to the caller.
type Bundle struct {
	features []string
	accuracy *float64
	model    Classifier
}

// bundleDocument is the on-disk JSON layout of a model bundle.
type bundleDocument struct {
	Features []string      `json:"features"`
	Classes  []string      `json:"classes"`
	Accuracy *float64      `json:"accuracy"`
	Model    modelDocument `json:"model"`
}

type modelDocument struct {
	Type        string      `json:"type"`
	ClassPriors []float64   `json:"class_priors"`
	Means       [][]float64 `json:"means"`
	Variances   [][]float64 `json:"variances"`
}

// NewBundle assembles a bundle from already-constructed parts. Intended for
// tests and for callers that obtain a model some other way.
func NewBundle(features []string, model Classifier) *Bundle {
	return &Bundle{features: features, model: model}
}

// LoadBundle reads and validates a model bundle from disk.
func LoadBundle(path string) (*Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model bundle: %w", err)
	}

	var doc bundleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode model bundle %s: %w", path, err)
	}

	model, err := newGaussianNB(doc)
	if err != nil {
		return nil, fmt.Errorf("validate model bundle %s: %w", path, err)
	}

	return &Bundle{
		features: doc.Features,
		accuracy: doc.Accuracy,
		model:    model,
	}, nil
}

func newGaussianNB(doc bundleDocument) (*GaussianNB, error) {
	if doc.Model.Type != "gaussian_nb" {
		return nil, fmt.Errorf("unsupported model type %q", doc.Model.Type)
	}
	if len(doc.Features) == 0 {
		return nil, fmt.Errorf("bundle has no features")
	}
	if len(doc.Classes) == 0 {
		return nil, ErrNoClasses
	}
	if len(doc.Model.ClassPriors) != len(doc.Classes) {
		return nil, fmt.Errorf("have %d class priors for %d classes", len(doc.Model.ClassPriors), len(doc.Classes))
	}
	if len(doc.Model.Means) != len(doc.Classes) || len(doc.Model.Variances) != len(doc.Classes) {
		return nil, fmt.Errorf("means/variances rows do not match %d classes", len(doc.Classes))
	}
	for c := range doc.Classes {
		if len(doc.Model.Means[c]) != len(doc.Features) || len(doc.Model.Variances[c]) != len(doc.Features) {
			return nil, fmt.Errorf("class %q parameter row does not match %d features", doc.Classes[c], len(doc.Features))
		}
		for f, v := range doc.Model.Variances[c] {
			if v <= 0 {
				return nil, fmt.Errorf("class %q feature %q has non-positive variance", doc.Classes[c], doc.Features[f])
			}
		}
		if doc.Model.ClassPriors[c] <= 0 {
			return nil, fmt.Errorf("class %q has non-positive prior", doc.Classes[c])
		}
	}

	return &GaussianNB{
		classes:   doc.Classes,
		priors:    doc.Model.ClassPriors,
		means:     doc.Model.Means,
		variances: doc.Model.Variances,
	}, nil
}

// Classifier returns the loaded model.
func (b *Bundle) Classifier() Classifier {
	return b.model
}

// Features returns the fixed feature order the model was trained against.
func (b *Bundle) Features() []string {
	out := make([]string, len(b.features))
	copy(out, b.features)
	return out
}

// Accuracy returns the bundle's held-out accuracy, when recorded.
func (b *Bundle) Accuracy() (float64, bool) {
	if b.accuracy == nil {
		return 0, false
	}
	return *b.accuracy, true
}

// FeatureVector builds the model's input vector from a resolved reading set.
// Features missing from the set are substituted with 0.0. This substitution
// is specific to the classifier path; the AQI path must never see it.
func (b *Bundle) FeatureVector(set reading.Set) []float64 {
	vec := make([]float64, len(b.features))
	for i, name := range b.features {
		if v, ok := set.Get(reading.Field(name)); ok {
			vec[i] = v
		}
	}
	return vec
}
