package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aigov/internal/domain"
)

type policyRequest struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

func (s *Server) handleCreatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	p, err := s.policies.Create(r.Context(), orgID(r), req.Title, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListPolicies(w http.ResponseWriter, r *http.Request) {
	list, err := s.policies.List(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPolicy(w http.ResponseWriter, r *http.Request) {
	p, err := s.policies.Get(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleUpdatePolicy(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	p, err := s.policies.UpdateBody(r.Context(), orgID(r), chi.URLParam(r, "id"), req.Title, req.Body)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

type policyTransitionRequest struct {
	Target string `json:"target" validate:"required"`
}

func (s *Server) handlePolicyTransition(w http.ResponseWriter, r *http.Request) {
	var req policyTransitionRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	p, err := s.policies.Transition(r.Context(), orgID(r), chi.URLParam(r, "id"), domain.PolicyStatus(req.Target))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handlePolicyNewVersion(w http.ResponseWriter, r *http.Request) {
	p, err := s.policies.NewVersion(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, p)
}
