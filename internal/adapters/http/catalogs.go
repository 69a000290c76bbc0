package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	datasetsvc "aigov/internal/services/datasets"
	vendorsvc "aigov/internal/services/vendors"
)

type vendorRequest struct {
	Name         string  `json:"name" validate:"required"`
	Website      *string `json:"website"`
	Jurisdiction string  `json:"jurisdiction"`
}

func (req vendorRequest) input() vendorsvc.VendorInput {
	return vendorsvc.VendorInput{
		Name:         req.Name,
		Website:      req.Website,
		Jurisdiction: req.Jurisdiction,
	}
}

func (s *Server) handleCreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	v, err := s.vendors.Create(r.Context(), orgID(r), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, v)
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	list, err := s.vendors.List(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	v, err := s.vendors.Get(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) handleUpdateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendorRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	v, err := s.vendors.Update(r.Context(), orgID(r), chi.URLParam(r, "id"), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, v)
}

func (s *Server) handleDeleteVendor(w http.ResponseWriter, r *http.Request) {
	if err := s.vendors.Delete(r.Context(), orgID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type datasetRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	DataTypes   []string `json:"dataTypes"`
	Sensitivity string   `json:"sensitivity"`
	SystemRef   *string  `json:"systemRef"`
}

func (req datasetRequest) input() datasetsvc.DatasetInput {
	return datasetsvc.DatasetInput{
		Name:        req.Name,
		Description: req.Description,
		DataTypes:   req.DataTypes,
		Sensitivity: req.Sensitivity,
		SystemRef:   req.SystemRef,
	}
}

func (s *Server) handleCreateDataset(w http.ResponseWriter, r *http.Request) {
	var req datasetRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	d, err := s.datasets.Create(r.Context(), orgID(r), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, d)
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	list, err := s.datasets.List(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	d, err := s.datasets.Get(r.Context(), orgID(r), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (s *Server) handleUpdateDataset(w http.ResponseWriter, r *http.Request) {
	var req datasetRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	d, err := s.datasets.Update(r.Context(), orgID(r), chi.URLParam(r, "id"), req.input())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, d)
}

func (s *Server) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	if err := s.datasets.Delete(r.Context(), orgID(r), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
