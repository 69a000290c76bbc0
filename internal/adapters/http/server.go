// Package httpadapter exposes the portal services as a REST JSON API under
// /v1. Tenancy is resolved per request by middleware; handlers never see an
// unscoped repository.
package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"aigov/internal/ports"
	compliancesvc "aigov/internal/services/compliance"
	contestsvc "aigov/internal/services/contestations"
	datasetsvc "aigov/internal/services/datasets"
	incidentsvc "aigov/internal/services/incidents"
	monitoringsvc "aigov/internal/services/monitoring"
	policysvc "aigov/internal/services/policies"
	registrysvc "aigov/internal/services/registry"
	vendorsvc "aigov/internal/services/vendors"
	"aigov/internal/workers/seedrunner"
)

type Server struct {
	registry      *registrysvc.Service
	compliance    *compliancesvc.Service
	monitoring    *monitoringsvc.Service
	policies      *policysvc.Service
	contestations *contestsvc.Service
	vendors       *vendorsvc.Service
	datasets      *datasetsvc.Service
	incidents     *incidentsvc.Service

	jobs   ports.SeedJobRepository
	seeder seedrunner.SeedProcessor

	validate   *validator.Validate
	jwtSecret  []byte
	production bool
}

type Services struct {
	Registry      *registrysvc.Service
	Compliance    *compliancesvc.Service
	Monitoring    *monitoringsvc.Service
	Policies      *policysvc.Service
	Contestations *contestsvc.Service
	Vendors       *vendorsvc.Service
	Datasets      *datasetsvc.Service
	Incidents     *incidentsvc.Service
}

func New(svcs Services, jobs ports.SeedJobRepository, seeder seedrunner.SeedProcessor, jwtSecret []byte, production bool) *Server {
	return &Server{
		registry:      svcs.Registry,
		compliance:    svcs.Compliance,
		monitoring:    svcs.Monitoring,
		policies:      svcs.Policies,
		contestations: svcs.Contestations,
		vendors:       svcs.Vendors,
		datasets:      svcs.Datasets,
		incidents:     svcs.Incidents,
		jobs:          jobs,
		seeder:        seeder,
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		jwtSecret:     jwtSecret,
		production:    production,
	}
}

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealthz)

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.tenancy)

		r.Route("/systems", func(r chi.Router) {
			r.Post("/preview-score", s.handlePreviewScore)
			r.Post("/", s.handleCreateSystem)
			r.Get("/", s.handleListSystems)
			r.Get("/{id}", s.handleGetSystem)
			r.Put("/{id}", s.handleUpdateSystem)
			r.Delete("/{id}", s.handleDeleteSystem)
			r.Post("/{id}/publish", s.handlePublishSystem)
			r.Delete("/{id}/publish", s.handleUnpublishSystem)
			r.Get("/{id}/metrics", s.handleListMetrics)
			r.Post("/{id}/metrics", s.handleRecordMetric)
		})

		r.Get("/transparency", s.handleListTransparency)

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/requirements", s.handleListRequirements)
		})

		r.Route("/compliance", func(r chi.Router) {
			r.Get("/assessments", s.handleListAssessments)
			r.Put("/assessments/{framework}/{code}", s.handleSetAssessment)
			r.Get("/summary", s.handleComplianceSummary)
			r.Post("/seed", s.handleSeed)
			r.Get("/seed/{jobID}", s.handleSeedStatus)
		})

		r.Route("/dashboards", func(r chi.Router) {
			r.Get("/incidents", s.handleIncidentSeries)
			r.Get("/incidents/distribution", s.handleIncidentDistribution)
			r.Get("/compliance", s.handleComplianceSummary)
			r.Get("/metrics/{systemID}", s.handleMetricSeries)
		})

		r.Route("/incidents", func(r chi.Router) {
			r.Post("/", s.handleCreateIncident)
			r.Get("/", s.handleListIncidents)
			r.Get("/{id}", s.handleGetIncident)
			r.Put("/{id}", s.handleUpdateIncident)
			r.Delete("/{id}", s.handleDeleteIncident)
		})

		r.Route("/vendors", func(r chi.Router) {
			r.Post("/", s.handleCreateVendor)
			r.Get("/", s.handleListVendors)
			r.Get("/{id}", s.handleGetVendor)
			r.Put("/{id}", s.handleUpdateVendor)
			r.Delete("/{id}", s.handleDeleteVendor)
		})

		r.Route("/datasets", func(r chi.Router) {
			r.Post("/", s.handleCreateDataset)
			r.Get("/", s.handleListDatasets)
			r.Get("/{id}", s.handleGetDataset)
			r.Put("/{id}", s.handleUpdateDataset)
			r.Delete("/{id}", s.handleDeleteDataset)
		})

		r.Route("/policies", func(r chi.Router) {
			r.Post("/", s.handleCreatePolicy)
			r.Get("/", s.handleListPolicies)
			r.Get("/{id}", s.handleGetPolicy)
			r.Put("/{id}", s.handleUpdatePolicy)
			r.Post("/{id}/transition", s.handlePolicyTransition)
			r.Post("/{id}/versions", s.handlePolicyNewVersion)
		})

		r.Route("/contestations", func(r chi.Router) {
			r.Post("/", s.handleCreateContestation)
			r.Get("/", s.handleListContestations)
			r.Get("/{id}", s.handleGetContestation)
			r.Post("/{id}/transition", s.handleContestationTransition)
		})
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
