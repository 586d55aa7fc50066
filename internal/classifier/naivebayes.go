package classifier

import "math"

// GaussianNB is a Gaussian naive Bayes classifier with externally trained
// parameters. It is stateless after construction and safe for concurrent use.
type GaussianNB struct {
	classes   []string
	priors    []float64   // per class
	means     [][]float64 // [class][feature]
	variances [][]float64 // [class][feature], strictly positive
}

// Predict returns the class with the highest posterior.
func (m *GaussianNB) Predict(features []float64) (string, error) {
	joint, err := m.logJoint(features)
	if err != nil {
		return "", err
	}

	best := 0
	for i := 1; i < len(joint); i++ {
		if joint[i] > joint[best] {
			best = i
		}
	}
	return m.classes[best], nil
}

// PredictProbabilities returns the normalized posterior per class.
func (m *GaussianNB) PredictProbabilities(features []float64) (map[string]float64, error) {
	joint, err := m.logJoint(features)
	if err != nil {
		return nil, err
	}

	// Softmax over log joints, shifted by the max for numeric stability.
	maxLog := joint[0]
	for _, v := range joint[1:] {
		if v > maxLog {
			maxLog = v
		}
	}

	var total float64
	probs := make([]float64, len(joint))
	for i, v := range joint {
		probs[i] = math.Exp(v - maxLog)
		total += probs[i]
	}

	out := make(map[string]float64, len(m.classes))
	for i, class := range m.classes {
		out[class] = probs[i] / total
	}
	return out, nil
}

// logJoint computes log P(class) + sum_f log N(x_f | mean, variance).
func (m *GaussianNB) logJoint(features []float64) ([]float64, error) {
	if len(m.classes) == 0 {
		return nil, ErrNoClasses
	}
	if len(features) != len(m.means[0]) {
		return nil, ErrFeatureDimension
	}

	joint := make([]float64, len(m.classes))
	for c := range m.classes {
		lp := math.Log(m.priors[c])
		for f, x := range features {
			mean := m.means[c][f]
			variance := m.variances[c][f]
			lp += -0.5*math.Log(2*math.Pi*variance) - (x-mean)*(x-mean)/(2*variance)
		}
		joint[c] = lp
	}
	return joint, nil
}

var _ Classifier = (*GaussianNB)(nil)
