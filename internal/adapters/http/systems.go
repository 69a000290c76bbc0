package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"aigov/internal/domain"
	"aigov/internal/scoring"
	registrysvc "aigov/internal/services/registry"
)

type systemRequest struct {
	Name               string   `json:"name" validate:"required"`
	Description        string   `json:"description"`
	Status             string   `json:"status"`
	AutonomyLevel      string   `json:"autonomyLevel"`
	DataTypes          []string `json:"dataTypes"`
	AffectedPopulation []string `json:"affectedPopulation"`
	SensitiveDomains   []string `json:"sensitiveDomains"`
	VendorRef          *string  `json:"vendorRef"`
	OverrideLevel      *string  `json:"overrideLevel"`
}

func (req systemRequest) input() registrysvc.SystemInput {
	in := registrysvc.SystemInput{
		Name:               req.Name,
		Description:        req.Description,
		Status:             req.Status,
		AutonomyLevel:      req.AutonomyLevel,
		DataTypes:          req.DataTypes,
		AffectedPopulation: req.AffectedPopulation,
		SensitiveDomains:   req.SensitiveDomains,
		VendorRef:          req.VendorRef,
	}
	if req.OverrideLevel != nil {
		lvl := domain.RiskLevel(*req.OverrideLevel)
		in.OverrideLevel = &lvl
	}
	return in
}

func (s *Server) handlePreviewScore(w http.ResponseWriter, r *http.Request) {
	var in scoring.RiskInputs
	if err := s.decode(r, &in); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, s.registry.PreviewScore(in))
}

func (s *Server) handleCreateSystem(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	sys, err := s.registry.Create(r.Context(), orgID(r), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, sys)
}

func (s *Server) handleListSystems(w http.ResponseWriter, r *http.Request) {
	systems, err := s.registry.List(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, systems)
}

func (s *Server) handleGetSystem(w http.ResponseWriter, r *http.Request) {
	sys, err := s.registry.Get(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sys)
}

func (s *Server) handleUpdateSystem(w http.ResponseWriter, r *http.Request) {
	var req systemRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	sys, err := s.registry.Update(r.Context(), orgID(r), chi.URLParam(r, "id"), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sys)
}

func (s *Server) handleDeleteSystem(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Delete(r.Context(), orgID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type publishRequest struct {
	PublicName        string `json:"publicName"`
	PublicDescription string `json:"publicDescription"`
}

func (s *Server) handlePublishSystem(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	entry, err := s.registry.Publish(r.Context(), orgID(r), chi.URLParam(r, "id"), req.PublicName, req.PublicDescription)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleUnpublishSystem(w http.ResponseWriter, r *http.Request) {
	if err := s.registry.Unpublish(r.Context(), orgID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleListTransparency(w http.ResponseWriter, r *http.Request) {
	entries, err := s.registry.ListTransparency(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}
