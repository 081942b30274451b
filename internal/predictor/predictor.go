// Package predictor implements the match outcome prediction pipeline: encode
// both team names, assemble the fixed feature vector, invoke the classifier,
// and optionally attach per-feature attributions for the top outcome.
package predictor

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/encoding"
	"github.com/Ajinkyaa2004/Copascore/internal/metrics"
	"github.com/Ajinkyaa2004/Copascore/internal/ml"
	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

// FeatureNames is the fixed feature order of the training contract. The
// classifier and explainer both expect vectors in exactly this order.
var FeatureNames = []string{"HomeTeam_Code", "AwayTeam_Code", "B365H", "B365D", "B365A"}

// Predictor runs the encoding and classification pipeline. Read-only against
// loaded artifacts, safe for concurrent use.
type Predictor struct {
	encoder   *encoding.TeamEncoder
	model     ml.Classifier
	explainer ml.Explainer
	cache     *cache.Cache
	logger    *logrus.Logger
}

// New creates a predictor. explainer may be nil, in which case predictions
// simply omit attributions.
func New(encoder *encoding.TeamEncoder, model ml.Classifier, explainer ml.Explainer, cacheTTL time.Duration, logger *logrus.Logger) *Predictor {
	return &Predictor{
		encoder:   encoder,
		model:     model,
		explainer: explainer,
		cache:     cache.New(cacheTTL, 2*cacheTTL),
		logger:    logger,
	}
}

// Encoder returns the fitted team encoder backing this predictor
func (p *Predictor) Encoder() *encoding.TeamEncoder {
	return p.encoder
}

// Predict returns the outcome distribution for one fixture. Unknown team
// names surface models.ErrUnknownTeam; negative odds are rejected with
// models.ErrMalformedInput before reaching the classifier.
func (p *Predictor) Predict(homeTeam, awayTeam string, odds models.OddsTriple) (*models.MatchPrediction, error) {
	start := time.Now()
	defer func() {
		metrics.PredictionLatency.Observe(time.Since(start).Seconds())
	}()

	if odds.Home < 0 || odds.Draw < 0 || odds.Away < 0 {
		metrics.PredictionErrorsTotal.WithLabelValues("malformed_input").Inc()
		return nil, fmt.Errorf("%w: odds must be non-negative", models.ErrMalformedInput)
	}

	key := cacheKey(homeTeam, awayTeam, odds)
	if cached, found := p.cache.Get(key); found {
		if pred, ok := cached.(*models.MatchPrediction); ok {
			metrics.PredictionCacheHitsTotal.Inc()
			return pred, nil
		}
	}
	metrics.PredictionCacheMissesTotal.Inc()

	homeCode, err := p.encoder.Encode(homeTeam)
	if err != nil {
		metrics.PredictionErrorsTotal.WithLabelValues("unknown_team").Inc()
		return nil, err
	}
	awayCode, err := p.encoder.Encode(awayTeam)
	if err != nil {
		metrics.PredictionErrorsTotal.WithLabelValues("unknown_team").Inc()
		return nil, err
	}

	features := []float64{float64(homeCode), float64(awayCode), odds.Home, odds.Draw, odds.Away}

	probs, err := p.model.PredictProbability(features)
	if err != nil {
		metrics.PredictionErrorsTotal.WithLabelValues("model").Inc()
		return nil, fmt.Errorf("classifier failed: %w", err)
	}

	classes := p.model.Classes()
	distribution := make(map[string]float64, len(classes))
	topIdx := 0
	for i, class := range classes {
		distribution[class] = probs[i]
		if probs[i] > probs[topIdx] {
			topIdx = i
		}
	}

	pred := &models.MatchPrediction{
		ID:            uuid.New(),
		HomeTeam:      homeTeam,
		AwayTeam:      awayTeam,
		Probabilities: distribution,
		Attributions:  p.attributions(features, topIdx),
		FeatureNames:  FeatureNames,
		PredictedAt:   time.Now(),
	}

	p.cache.Set(key, pred, cache.DefaultExpiration)
	return pred, nil
}

// attributions computes the contribution vector for the most likely outcome
// only. Any explainer failure degrades to "no attributions" rather than
// failing the prediction.
func (p *Predictor) attributions(features []float64, classIdx int) []float64 {
	if p.explainer == nil {
		return nil
	}
	rows, err := p.explainer.Attributions(features)
	if err != nil {
		metrics.ExplainerFailuresTotal.Inc()
		p.logger.WithError(err).Warn("Explainer failed, omitting attributions")
		return nil
	}
	if classIdx >= len(rows) {
		metrics.ExplainerFailuresTotal.Inc()
		p.logger.WithField("class_index", classIdx).Warn("Explainer returned too few rows, omitting attributions")
		return nil
	}
	return rows[classIdx]
}

func cacheKey(homeTeam, awayTeam string, odds models.OddsTriple) string {
	return fmt.Sprintf("%s|%s|%.4f|%.4f|%.4f", homeTeam, awayTeam, odds.Home, odds.Draw, odds.Away)
}
