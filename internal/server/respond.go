package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Ajinkyaa2004/Copascore/internal/models"
)

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"detail": message})
}

// respondCoreError maps the core's sentinel errors onto status codes
func (s *Server) respondCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrUnknownTeam), errors.Is(err, models.ErrUnknownCode), errors.Is(err, models.ErrMalformedInput):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	default:
		s.logger.WithError(err).Error("Request failed")
		s.respondError(w, http.StatusInternalServerError, "internal error")
	}
}
