package classifier_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airadvisor/airadvisor/internal/classifier"
	"github.com/airadvisor/airadvisor/internal/reading"
)

const testBundle = `{
	"features": ["pm25", "pm10", "no2", "so2", "co", "o3", "temperature", "humidity"],
	"classes": ["High", "Low", "Moderate"],
	"accuracy": 0.91,
	"model": {
		"type": "gaussian_nb",
		"class_priors": [0.25, 0.45, 0.30],
		"means": [
			[85, 140, 90, 60, 4.0, 70, 31, 78],
			[10, 22, 18, 8, 0.5, 25, 29, 70],
			[38, 75, 45, 25, 1.8, 48, 30, 74]
		],
		"variances": [
			[400, 900, 600, 300, 2.0, 350, 4, 30],
			[25, 80, 60, 15, 0.1, 90, 4, 30],
			[120, 350, 250, 90, 0.6, 200, 4, 30]
		]
	}
}`

func writeBundle(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model_bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func TestLoadBundle(t *testing.T) {
	bundle, err := classifier.LoadBundle(writeBundle(t, testBundle))
	require.NoError(t, err)

	assert.Equal(t, []string{"pm25", "pm10", "no2", "so2", "co", "o3", "temperature", "humidity"}, bundle.Features())

	accuracy, ok := bundle.Accuracy()
	require.True(t, ok)
	assert.Equal(t, 0.91, accuracy)
}

func TestLoadBundle_MissingFile(t *testing.T) {
	_, err := classifier.LoadBundle(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadBundle_Corrupt(t *testing.T) {
	_, err := classifier.LoadBundle(writeBundle(t, "pickle!"))
	assert.Error(t, err)
}

func TestLoadBundle_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unsupported model type", `{"features":["pm25"],"classes":["Low"],"model":{"type":"xgboost","class_priors":[1],"means":[[1]],"variances":[[1]]}}`},
		{"no classes", `{"features":["pm25"],"classes":[],"model":{"type":"gaussian_nb","class_priors":[],"means":[],"variances":[]}}`},
		{"no features", `{"features":[],"classes":["Low"],"model":{"type":"gaussian_nb","class_priors":[1],"means":[[]],"variances":[[]]}}`},
		{"prior count mismatch", `{"features":["pm25"],"classes":["Low","High"],"model":{"type":"gaussian_nb","class_priors":[1],"means":[[1],[1]],"variances":[[1],[1]]}}`},
		{"parameter row mismatch", `{"features":["pm25","pm10"],"classes":["Low"],"model":{"type":"gaussian_nb","class_priors":[1],"means":[[1]],"variances":[[1]]}}`},
		{"zero variance", `{"features":["pm25"],"classes":["Low"],"model":{"type":"gaussian_nb","class_priors":[1],"means":[[1]],"variances":[[0]]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := classifier.LoadBundle(writeBundle(t, tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestBundle_FeatureVector(t *testing.T) {
	bundle, err := classifier.LoadBundle(writeBundle(t, testBundle))
	require.NoError(t, err)

	vec := bundle.FeatureVector(reading.Set{
		reading.FieldPM25:     35.4,
		reading.FieldHumidity: 80,
	})

	// Missing features substitute 0.0 in trained order.
	assert.Equal(t, []float64{35.4, 0, 0, 0, 0, 0, 0, 80}, vec)
}

func TestGaussianNB_Predict(t *testing.T) {
	bundle, err := classifier.LoadBundle(writeBundle(t, testBundle))
	require.NoError(t, err)
	model := bundle.Classifier()

	// A reading set near the "High" class means.
	label, err := model.Predict([]float64{90, 150, 95, 55, 4.2, 68, 31, 79})
	require.NoError(t, err)
	assert.Equal(t, "High", label)

	label, err = model.Predict([]float64{9, 20, 17, 7, 0.4, 24, 29, 71})
	require.NoError(t, err)
	assert.Equal(t, "Low", label)
}

func TestGaussianNB_PredictProbabilities(t *testing.T) {
	bundle, err := classifier.LoadBundle(writeBundle(t, testBundle))
	require.NoError(t, err)
	model := bundle.Classifier()

	probs, err := model.PredictProbabilities([]float64{40, 80, 48, 22, 1.9, 50, 30, 74})
	require.NoError(t, err)

	require.Len(t, probs, 3)
	var total float64
	for class, p := range probs {
		assert.GreaterOrEqual(t, p, 0.0, "class %s", class)
		assert.LessOrEqual(t, p, 1.0, "class %s", class)
		total += p
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.Greater(t, probs["Moderate"], probs["High"])
	assert.Greater(t, probs["Moderate"], probs["Low"])
}

func TestGaussianNB_DimensionMismatch(t *testing.T) {
	bundle, err := classifier.LoadBundle(writeBundle(t, testBundle))
	require.NoError(t, err)

	_, err = bundle.Classifier().Predict([]float64{1, 2, 3})
	assert.ErrorIs(t, err, classifier.ErrFeatureDimension)

	_, err = bundle.Classifier().PredictProbabilities(nil)
	assert.ErrorIs(t, err, classifier.ErrFeatureDimension)
}
