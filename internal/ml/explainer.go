package ml

import "fmt"

// LinearExplainer attributes a linear model's logit to its inputs: the
// contribution of feature j to class c is the coefficient times the
// standardized feature value. The intercept is excluded so the vector aligns
// positionally with the input features.
type LinearExplainer struct {
	model *SoftmaxModel
}

// NewLinearExplainer creates an explainer over a loaded model
func NewLinearExplainer(model *SoftmaxModel) *LinearExplainer {
	return &LinearExplainer{model: model}
}

// Attributions returns one contribution row per class, one column per feature
func (e *LinearExplainer) Attributions(features []float64) ([][]float64, error) {
	m := e.model
	if len(features) != len(m.means) {
		return nil, fmt.Errorf("%w: got %d features, want %d", ErrFeatureDimension, len(features), len(m.means))
	}

	std := m.standardize(features)
	out := make([][]float64, len(m.classes))
	for c, row := range m.weights {
		contrib := make([]float64, len(std))
		for j, x := range std {
			contrib[j] = row[j] * x
		}
		out[c] = contrib
	}
	return out, nil
}
