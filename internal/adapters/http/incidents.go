package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	incidentsvc "aigov/internal/services/incidents"
)

type incidentRequest struct {
	SystemRef  *string    `json:"systemRef"`
	Category   string     `json:"category" validate:"required"`
	Severity   string     `json:"severity" validate:"required"`
	Status     string     `json:"status"`
	Summary    string     `json:"summary"`
	OccurredAt *time.Time `json:"occurredAt"`
}

func (req incidentRequest) input() incidentsvc.IncidentInput {
	in := incidentsvc.IncidentInput{
		SystemRef: req.SystemRef,
		Category:  req.Category,
		Severity:  req.Severity,
		Status:    req.Status,
		Summary:   req.Summary,
	}
	if req.OccurredAt != nil {
		in.OccurredAt = *req.OccurredAt
	}
	return in
}

func (s *Server) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var req incidentRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	inc, err := s.incidents.Create(r.Context(), orgID(r), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, inc)
}

func (s *Server) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	list, err := s.incidents.List(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetIncident(w http.ResponseWriter, r *http.Request) {
	inc, err := s.incidents.Get(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inc)
}

func (s *Server) handleUpdateIncident(w http.ResponseWriter, r *http.Request) {
	var req incidentRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	inc, err := s.incidents.Update(r.Context(), orgID(r), chi.URLParam(r, "id"), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inc)
}

func (s *Server) handleDeleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := s.incidents.Delete(r.Context(), orgID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type metricRequest struct {
	Name       string     `json:"name" validate:"required"`
	Value      float64    `json:"value"`
	RecordedAt *time.Time `json:"recordedAt"`
}

func (s *Server) handleRecordMetric(w http.ResponseWriter, r *http.Request) {
	var req metricRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	var recordedAt time.Time
	if req.RecordedAt != nil {
		recordedAt = *req.RecordedAt
	}
	m, err := s.monitoring.RecordMetric(r.Context(), orgID(r), chi.URLParam(r, "id"), req.Name, req.Value, recordedAt)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, m)
}

func (s *Server) handleListMetrics(w http.ResponseWriter, r *http.Request) {
	list, err := s.monitoring.ListMetrics(r.Context(), orgID(r), chi.URLParam(r, "id"), monthsParam(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
