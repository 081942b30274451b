package ml

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const testArtifact = `{
	"classes": ["A", "D", "H"],
	"n_features": 5,
	"weights": [
		[0.1, -0.2, 0.3, 0.0, -0.1, 0.05],
		[-0.1, 0.1, 0.0, 0.2, 0.0, -0.02],
		[0.2, 0.1, -0.3, -0.2, 0.1, 0.1]
	],
	"feature_means": [10, 10, 2.5, 3.4, 4.0],
	"feature_scales": [5.5, 5.5, 1.1, 0.6, 2.2]
}`

func loadTestModel(t *testing.T) *SoftmaxModel {
	t.Helper()
	m, err := ReadModel(strings.NewReader(testArtifact))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return m
}

func TestPredictProbabilitySumsToOne(t *testing.T) {
	m := loadTestModel(t)

	probs, err := m.PredictProbability([]float64{3, 7, 2.1, 3.3, 3.5})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(probs) != 3 {
		t.Fatalf("expected 3 probabilities, got %d", len(probs))
	}

	var sum float64
	for _, p := range probs {
		if p < 0 || p > 1 {
			t.Errorf("probability %v outside [0,1]", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
}

func TestPredictProbabilityDimensionMismatch(t *testing.T) {
	m := loadTestModel(t)

	_, err := m.PredictProbability([]float64{1, 2, 3})
	if !errors.Is(err, ErrFeatureDimension) {
		t.Fatalf("expected ErrFeatureDimension, got %v", err)
	}
}

func TestClassesDeclaredOrder(t *testing.T) {
	m := loadTestModel(t)

	classes := m.Classes()
	want := []string{"A", "D", "H"}
	for i, c := range want {
		if classes[i] != c {
			t.Errorf("class %d: got %q, want %q", i, classes[i], c)
		}
	}

	// Mutating the returned slice must not affect the model
	classes[0] = "X"
	if m.Classes()[0] != "A" {
		t.Error("Classes returned internal slice")
	}
}

func TestReadModelRejectsBadArtifacts(t *testing.T) {
	cases := map[string]string{
		"one class":       `{"classes":["H"],"n_features":1,"weights":[[0.1,0.2]],"feature_means":[0],"feature_scales":[1]}`,
		"row mismatch":    `{"classes":["H","A"],"n_features":2,"weights":[[0.1,0.2,0.3]],"feature_means":[0,0],"feature_scales":[1,1]}`,
		"short row":       `{"classes":["H","A"],"n_features":2,"weights":[[0.1,0.2],[0.1,0.2]],"feature_means":[0,0],"feature_scales":[1,1]}`,
		"zero scale":      `{"classes":["H","A"],"n_features":1,"weights":[[0.1,0.2],[0.1,0.2]],"feature_means":[0],"feature_scales":[0]}`,
		"not json":        `not json`,
	}
	for name, artifact := range cases {
		if _, err := ReadModel(strings.NewReader(artifact)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestLinearExplainerAttributions(t *testing.T) {
	m := loadTestModel(t)
	e := NewLinearExplainer(m)

	features := []float64{3, 7, 2.1, 3.3, 3.5}
	rows, err := e.Attributions(features)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected one row per class, got %d", len(rows))
	}
	for c, row := range rows {
		if len(row) != 5 {
			t.Fatalf("class %d: expected 5 contributions, got %d", c, len(row))
		}
	}

	// Contribution of feature 0 to class 0 is coefficient * standardized value
	std0 := (features[0] - 10) / 5.5
	want := 0.1 * std0
	if math.Abs(rows[0][0]-want) > 1e-12 {
		t.Errorf("contribution [0][0] = %v, want %v", rows[0][0], want)
	}
}

func TestLinearExplainerDimensionMismatch(t *testing.T) {
	e := NewLinearExplainer(loadTestModel(t))
	if _, err := e.Attributions([]float64{1}); !errors.Is(err, ErrFeatureDimension) {
		t.Fatalf("expected ErrFeatureDimension, got %v", err)
	}
}
