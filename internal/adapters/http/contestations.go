package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aigov/internal/domain"
)

type contestationRequest struct {
	Subject     string  `json:"subject" validate:"required"`
	Description string  `json:"description"`
	SystemRef   *string `json:"systemRef"`
}

func (s *Server) handleCreateContestation(w http.ResponseWriter, r *http.Request) {
	var req contestationRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	c, err := s.contestations.Create(r.Context(), orgID(r), req.Subject, req.Description, req.SystemRef)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListContestations(w http.ResponseWriter, r *http.Request) {
	list, err := s.contestations.List(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetContestation(w http.ResponseWriter, r *http.Request) {
	c, err := s.contestations.Get(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

type contestationTransitionRequest struct {
	Action   string `json:"action" validate:"required,oneof=assign start_review decide notify close"`
	Assignee string `json:"assignee"`
	Revised  bool   `json:"revised"`
	Decision string `json:"decision"`
}

// handleContestationTransition advances the case one lifecycle step. The
// action decides which service call runs; decide carries revised + decision.
func (s *Server) handleContestationTransition(w http.ResponseWriter, r *http.Request) {
	var req contestationTransitionRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	org, id := orgID(r), chi.URLParam(r, "id")

	var (
		c   domain.Contestation
		err error
	)
	switch req.Action {
	case "assign":
		c, err = s.contestations.Assign(r.Context(), org, id, req.Assignee)
	case "start_review":
		c, err = s.contestations.StartReview(r.Context(), org, id)
	case "decide":
		c, err = s.contestations.Decide(r.Context(), org, id, req.Revised, req.Decision)
	case "notify":
		c, err = s.contestations.Notify(r.Context(), org, id)
	case "close":
		c, err = s.contestations.Close(r.Context(), org, id)
	}
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}
