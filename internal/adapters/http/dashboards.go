package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func monthsParam(r *http.Request) int {
	months, _ := strconv.Atoi(r.URL.Query().Get("months"))
	return months
}

func (s *Server) handleIncidentSeries(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.monitoring.IncidentSeries(r.Context(), orgID(r), monthsParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buckets)
}

func (s *Server) handleIncidentDistribution(w http.ResponseWriter, r *http.Request) {
	dist, err := s.monitoring.IncidentDistribution(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dist)
}

func (s *Server) handleMetricSeries(w http.ResponseWriter, r *http.Request) {
	buckets, err := s.monitoring.MetricSeries(r.Context(), orgID(r), chi.URLParam(r, "systemID"), monthsParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, buckets)
}
