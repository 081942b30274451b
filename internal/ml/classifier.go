package ml

// Classifier is a trained outcome classifier. The label set and its order are
// whatever the model declares; consumers must resolve outcomes through
// Classes rather than assume an ordering.
type Classifier interface {
	// Classes returns the outcome labels in the model's declared order
	Classes() []string

	// PredictProbability returns one probability per class, aligned with
	// Classes, summing to 1
	PredictProbability(features []float64) ([]float64, error)
}

// Explainer computes per-class, per-feature contributions for a feature
// vector. It is an optional artifact: absence or failure degrades the
// prediction output, never fails it.
type Explainer interface {
	// Attributions returns a matrix of contributions, one row per class in
	// the classifier's order, one column per input feature
	Attributions(features []float64) ([][]float64, error)
}
