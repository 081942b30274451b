package ml

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// modelArtifact is the on-disk shape of an exported multinomial model.
// Weights hold one row per class; each row has one coefficient per feature
// followed by the intercept. FeatureMeans and FeatureScales carry the
// training-time standardization so serving reproduces it exactly.
type modelArtifact struct {
	Classes       []string    `json:"classes"`
	NumFeatures   int         `json:"n_features"`
	Weights       [][]float64 `json:"weights"`
	FeatureMeans  []float64   `json:"feature_means"`
	FeatureScales []float64   `json:"feature_scales"`
}

// SoftmaxModel is a multinomial logistic classifier evaluated in-process.
// It is effectively immutable after load and safe for concurrent readers.
type SoftmaxModel struct {
	classes []string
	weights [][]float64
	means   []float64
	scales  []float64
}

// LoadModel reads a persisted model artifact from disk
func LoadModel(path string) (*SoftmaxModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer f.Close()
	return ReadModel(f)
}

// ReadModel decodes a model artifact from a reader
func ReadModel(r io.Reader) (*SoftmaxModel, error) {
	var art modelArtifact
	if err := json.NewDecoder(r).Decode(&art); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelArtifact, err)
	}
	if len(art.Classes) < 2 {
		return nil, fmt.Errorf("%w: need at least two classes, got %d", ErrModelArtifact, len(art.Classes))
	}
	if len(art.Weights) != len(art.Classes) {
		return nil, fmt.Errorf("%w: %d weight rows for %d classes", ErrModelArtifact, len(art.Weights), len(art.Classes))
	}
	for i, row := range art.Weights {
		if len(row) != art.NumFeatures+1 {
			return nil, fmt.Errorf("%w: weight row %d has %d entries, want %d", ErrModelArtifact, i, len(row), art.NumFeatures+1)
		}
	}
	if len(art.FeatureMeans) != art.NumFeatures || len(art.FeatureScales) != art.NumFeatures {
		return nil, fmt.Errorf("%w: standardization vectors do not match n_features", ErrModelArtifact)
	}
	for i, s := range art.FeatureScales {
		if s == 0 {
			return nil, fmt.Errorf("%w: zero scale for feature %d", ErrModelArtifact, i)
		}
	}
	return &SoftmaxModel{
		classes: art.Classes,
		weights: art.Weights,
		means:   art.FeatureMeans,
		scales:  art.FeatureScales,
	}, nil
}

// Classes returns the outcome labels in the model's declared order
func (m *SoftmaxModel) Classes() []string {
	out := make([]string, len(m.classes))
	copy(out, m.classes)
	return out
}

// NumFeatures returns the expected feature vector length
func (m *SoftmaxModel) NumFeatures() int {
	return len(m.means)
}

// PredictProbability evaluates the model on one feature vector and returns a
// probability per class, aligned with Classes
func (m *SoftmaxModel) PredictProbability(features []float64) ([]float64, error) {
	if len(features) != len(m.means) {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrFeatureDimension, len(features), len(m.means))
	}

	std := m.standardize(features)

	logits := make([]float64, len(m.classes))
	maxLogit := math.Inf(-1)
	for c, row := range m.weights {
		z := row[len(std)] // intercept
		for j, x := range std {
			z += row[j] * x
		}
		logits[c] = z
		if z > maxLogit {
			maxLogit = z
		}
	}

	// Softmax with max subtraction for numeric stability
	var sum float64
	probs := make([]float64, len(logits))
	for c, z := range logits {
		probs[c] = math.Exp(z - maxLogit)
		sum += probs[c]
	}
	for c := range probs {
		probs[c] /= sum
	}
	return probs, nil
}

func (m *SoftmaxModel) standardize(features []float64) []float64 {
	std := make([]float64, len(features))
	for j, x := range features {
		std[j] = (x - m.means[j]) / m.scales[j]
	}
	return std
}
