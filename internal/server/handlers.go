package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ajinkyaa2004/Copascore/internal/metrics"
	"github.com/Ajinkyaa2004/Copascore/internal/models"
	"github.com/Ajinkyaa2004/Copascore/internal/players"
)

// PredictRequest is the direct prediction request body. Odds are caller
// supplied here, unlike the conversational path which sources them from the
// average-odds table.
type PredictRequest struct {
	HomeTeam string  `json:"home_team" validate:"required"`
	AwayTeam string  `json:"away_team" validate:"required"`
	OddsHome float64 `json:"b365h" validate:"gte=0"`
	OddsDraw float64 `json:"b365d" validate:"gte=0"`
	OddsAway float64 `json:"b365a" validate:"gte=0"`
}

// StatsRequest is the historical comparison request body
type StatsRequest struct {
	HomeTeam string `json:"home_team" validate:"required"`
	AwayTeam string `json:"away_team" validate:"required"`
}

// ChatRequest is the conversational query body
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// PlayerCardRequest identifies a curated roster player
type PlayerCardRequest struct {
	Team   string `json:"team"`
	Player string `json:"player" validate:"required"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (s *Server) handleTeams(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"teams": s.app.Encoder.Names()})
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	var req PredictRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	pred, err := s.app.Predictor.Predict(req.HomeTeam, req.AwayTeam, models.OddsTriple{
		Home: req.OddsHome,
		Draw: req.OddsDraw,
		Away: req.OddsAway,
	})
	if err != nil {
		s.respondCoreError(w, err)
		return
	}

	metrics.PredictionsTotal.WithLabelValues("api").Inc()
	s.respondJSON(w, http.StatusOK, map[string]any{
		"probabilities": pred.Probabilities,
		"shap_values":   pred.Attributions,
		"feature_names": pred.FeatureNames,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var req StatsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	comparison, err := s.app.Stats.Comparison(req.HomeTeam, req.AwayTeam)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, comparison)
}

func (s *Server) handleSimulate(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{"table": s.app.Simulator.SimulateSeason()})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"response": s.app.Bot.Ask(req.Message)})
}

func (s *Server) handleTeamPlayers(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	s.respondJSON(w, http.StatusOK, map[string]any{"players": s.app.Roster.TeamPlayers(team)})
}

func (s *Server) handlePlayerCard(w http.ResponseWriter, r *http.Request) {
	var req PlayerCardRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}
	card, ok := s.app.Roster.Card(req.Player)
	if !ok {
		s.respondError(w, http.StatusNotFound, "Player not found")
		return
	}
	s.respondJSON(w, http.StatusOK, card)
}

func (s *Server) handleTeamForm(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	n := queryInt(r, "matches", 5)

	form, err := s.app.LiveForm.RecentForm(team, n)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, form)
}

func (s *Server) handleTeamAverageStats(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")
	n := queryInt(r, "matches", 5)

	averages, err := s.app.LiveForm.AverageStats(team, n)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, averages)
}

func (s *Server) handleTeamInfo(w http.ResponseWriter, r *http.Request) {
	team := chi.URLParam(r, "team")

	info, err := s.app.LiveForm.TeamInfo(team)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, info)
}

func (s *Server) handleTeamCompare(w http.ResponseWriter, r *http.Request) {
	team1 := r.URL.Query().Get("team1")
	team2 := r.URL.Query().Get("team2")
	if team1 == "" || team2 == "" {
		s.respondError(w, http.StatusBadRequest, "team1 and team2 query parameters are required")
		return
	}

	comparison, err := s.app.LiveForm.TeamComparison(team1, team2)
	if err != nil {
		s.respondCoreError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, comparison)
}

func (s *Server) handleRatingsSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := players.SearchOptions{
		Query:       q.Get("query"),
		Team:        q.Get("team"),
		Position:    q.Get("position"),
		Nationality: q.Get("nationality"),
		MinRating:   queryInt(r, "min_rating", 0),
		Limit:       queryInt(r, "max_results", 50),
	}

	metrics.PlayerSearchesTotal.Inc()
	results := s.app.Ratings.Search(opts)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"players": results,
		"count":   len(results),
	})
}

func (s *Server) handleRatingsCard(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	card, ok := s.app.Ratings.Card(name)
	if !ok {
		s.respondError(w, http.StatusNotFound, "Player not found")
		return
	}
	s.respondJSON(w, http.StatusOK, card)
}

func (s *Server) handleTopPlayers(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 100)
	results := s.app.Ratings.TopPlayers(limit)
	s.respondJSON(w, http.StatusOK, map[string]any{
		"players": results,
		"count":   len(results),
	})
}

func (s *Server) handleRatingsStats(w http.ResponseWriter, _ *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]any{
		"total_players": s.app.Ratings.Count(),
		"database":      "FIFA Players Database",
		"version":       "2019",
	})
}

// decodeAndValidate parses a JSON body and runs struct validation, writing
// the error response itself when either fails
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
