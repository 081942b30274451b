package models

import (
	"time"

	"github.com/google/uuid"
)

// MatchPrediction is the result of one outcome prediction.
//
// Probabilities is keyed by the label set the trained model declares; callers
// must resolve outcomes through the keys rather than assume H/D/A ordering.
// Attributions is present only when an explainer was available and succeeded,
// aligned positionally with FeatureNames.
type MatchPrediction struct {
	ID            uuid.UUID          `json:"id"`
	HomeTeam      string             `json:"home_team"`
	AwayTeam      string             `json:"away_team"`
	Probabilities map[string]float64 `json:"probabilities"`
	Attributions  []float64          `json:"shap_values,omitempty"`
	FeatureNames  []string           `json:"feature_names"`
	PredictedAt   time.Time          `json:"predicted_at"`
}

// TopOutcome returns the label with the highest probability
func (p *MatchPrediction) TopOutcome() string {
	var best string
	bestProb := -1.0
	for label, prob := range p.Probabilities {
		if prob > bestProb || (prob == bestProb && label < best) {
			best = label
			bestProb = prob
		}
	}
	return best
}
