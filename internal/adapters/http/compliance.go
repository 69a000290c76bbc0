package httpadapter

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"aigov/internal/domain"
	"aigov/internal/workers/seedrunner"
)

func (s *Server) handleListRequirements(w http.ResponseWriter, r *http.Request) {
	cat := s.compliance.Catalog()
	if fw := r.URL.Query().Get("framework"); fw != "" {
		if !domain.ValidFramework(domain.Framework(fw)) {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown framework: " + fw})
			return
		}
		respondJSON(w, http.StatusOK, cat.Requirements(domain.Framework(fw)))
		return
	}
	respondJSON(w, http.StatusOK, cat.All())
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if fw := r.URL.Query().Get("framework"); fw != "" {
		as, err := s.compliance.ListAssessmentsByFramework(r.Context(), orgID(r), domain.Framework(fw))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, as)
		return
	}
	as, err := s.compliance.ListAssessments(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, as)
}

type assessmentRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

func (s *Server) handleSetAssessment(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := s.decode(r, &req); err != nil {
		respondError(w, err)
		return
	}
	a, err := s.compliance.SetStatus(r.Context(), orgID(r),
		domain.Framework(chi.URLParam(r, "framework")),
		chi.URLParam(r, "code"),
		domain.ComplianceStatus(req.Status),
		req.Notes,
	)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (s *Server) handleComplianceSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.compliance.Summary(r.Context(), orgID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

type seedAccepted struct {
	JobID string `json:"jobId"`
}

type seedResult struct {
	JobID    string `json:"jobId"`
	Status   string `json:"status"`
	Inserted int    `json:"inserted"`
}

// handleSeed queues a catalog-seeding job. With ?wait=true the job is
// processed inline before responding, the path tests and small tenants use.
func (s *Server) handleSeed(w http.ResponseWriter, r *http.Request) {
	org := orgID(r)
	jobID, err := s.compliance.EnqueueSeed(r.Context(), org)
	if err != nil {
		respondError(w, err)
		return
	}
	if r.URL.Query().Get("wait") != "true" {
		respondJSON(w, http.StatusAccepted, seedAccepted{JobID: jobID})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	inserted, err := seedrunner.ProcessInline(ctx, s.jobs, s.seeder, org)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seedResult{JobID: jobID, Status: "completed", Inserted: inserted})
}

type seedStatusResponse struct {
	JobID    string  `json:"jobId"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

func (s *Server) handleSeedStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	status, progress, err := s.compliance.SeedStatus(r.Context(), orgID(r), jobID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, seedStatusResponse{JobID: jobID, Status: status, Progress: progress})
}
