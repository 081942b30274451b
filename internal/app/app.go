// Package app wires the serving artifacts and engines into one application
// context. The context is constructed once at startup and passed by handle
// into every request-scoped operation; there are no package-level mutable
// globals.
package app

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Ajinkyaa2004/Copascore/internal/bot"
	"github.com/Ajinkyaa2004/Copascore/internal/config"
	"github.com/Ajinkyaa2004/Copascore/internal/encoding"
	"github.com/Ajinkyaa2004/Copascore/internal/liveform"
	"github.com/Ajinkyaa2004/Copascore/internal/ml"
	"github.com/Ajinkyaa2004/Copascore/internal/players"
	"github.com/Ajinkyaa2004/Copascore/internal/predictor"
	"github.com/Ajinkyaa2004/Copascore/internal/simulator"
	"github.com/Ajinkyaa2004/Copascore/internal/stats"
)

// App holds every loaded artifact and engine. All fields are effectively
// immutable after New returns (the live form engine guards its own swaps),
// so the context is safe to share across concurrent requests.
type App struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Encoder   *encoding.TeamEncoder
	Predictor *predictor.Predictor
	Stats     *stats.Aggregator
	LiveForm  *liveform.Engine
	Roster    *players.RosterEngine
	Ratings   *players.RatingsEngine
	Simulator *simulator.LeagueSimulator
	Bot       *bot.Resolver
}

// New loads all artifacts and builds the application context. The vocabulary,
// model, and historical corpus are required; the roster, ratings, and live
// team payloads are optional sources whose absence degrades the matching
// features instead of failing startup.
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	encoder, err := encoding.LoadVocabulary(cfg.Artifacts.VocabularyPath)
	if err != nil {
		return nil, fmt.Errorf("loading vocabulary: %w", err)
	}
	log.WithField("teams", encoder.Len()).Info("Team vocabulary loaded")

	model, err := ml.LoadModel(cfg.Artifacts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("loading model: %w", err)
	}
	log.WithField("classes", model.Classes()).Info("Classifier loaded")

	var explainer ml.Explainer
	if cfg.Predictor.ExplainerEnabled {
		explainer = ml.NewLinearExplainer(model)
		log.Info("Attribution explainer enabled")
	} else {
		log.Info("Attribution explainer disabled; predictions will omit attributions")
	}

	records, err := stats.LoadMatchData(cfg.Artifacts.MatchDataPath)
	if err != nil {
		return nil, fmt.Errorf("loading match data: %w", err)
	}
	log.WithField("matches", len(records)).Info("Historical match corpus loaded")

	pred := predictor.New(encoder, model, explainer, cfg.Predictor.CacheTTL(), log)
	aggregator := stats.NewAggregator(records)
	sim := simulator.New(records, time.Now().UnixNano())

	liveEngine := liveform.NewEngine(log)
	for _, path := range cfg.Artifacts.TeamDataPaths {
		if err := liveEngine.LoadTeamFile(path); err != nil {
			log.WithError(err).WithField("path", path).Warn("Could not load live team payload")
		}
	}

	roster := players.NewRosterEngine()
	if cfg.Artifacts.RosterPath != "" {
		if err := roster.LoadFile(cfg.Artifacts.RosterPath); err != nil {
			log.WithError(err).Warn("Could not load curated roster")
		} else {
			log.WithField("players", roster.Count()).Info("Curated roster loaded")
		}
	}

	ratings := players.NewRatingsEngine()
	if cfg.Artifacts.RatingsPath != "" {
		if err := ratings.LoadFile(cfg.Artifacts.RatingsPath); err != nil {
			log.WithError(err).Warn("Could not load ratings table")
		} else {
			log.WithField("players", ratings.Count()).Info("Ratings table loaded")
		}
	}

	resolver := bot.NewResolver(encoder.Names(), pred, aggregator, sim, log)

	return &App{
		Config:    cfg,
		Logger:    log,
		Encoder:   encoder,
		Predictor: pred,
		Stats:     aggregator,
		LiveForm:  liveEngine,
		Roster:    roster,
		Ratings:   ratings,
		Simulator: sim,
		Bot:       resolver,
	}, nil
}
