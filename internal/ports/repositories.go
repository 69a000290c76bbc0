package ports

import (
	"context"
	"errors"
	"time"

	"aigov/internal/domain"
)

// ErrNotFound is returned by all repositories for missing rows scoped to the
// requesting org. Cross-tenant reads are indistinguishable from absent rows.
var ErrNotFound = errors.New("not found")

// SystemRepository stores AI systems of the registry.
type SystemRepository interface {
	CreateSystem(ctx context.Context, s domain.AISystem) error
	GetSystem(ctx context.Context, orgID, id string) (domain.AISystem, error)
	ListSystems(ctx context.Context, orgID string) ([]domain.AISystem, error)
	UpdateSystem(ctx context.Context, s domain.AISystem) error
	DeleteSystem(ctx context.Context, orgID, id string) error
}

// AssessmentRepository stores compliance assessments. Upsert is keyed by
// (org, framework, requirement); SeedDefaults bulk-inserts one default row
// per given requirement not already assessed, idempotently.
type AssessmentRepository interface {
	ListAssessments(ctx context.Context, orgID string) ([]domain.Assessment, error)
	ListAssessmentsByFramework(ctx context.Context, orgID string, fw domain.Framework) ([]domain.Assessment, error)
	UpsertAssessment(ctx context.Context, a domain.Assessment) (domain.Assessment, error)
	SeedDefaults(ctx context.Context, orgID string, reqs []domain.Requirement, status domain.ComplianceStatus) (inserted int, err error)
}

// IncidentRepository stores bias and malfunction findings.
type IncidentRepository interface {
	CreateIncident(ctx context.Context, in domain.Incident) error
	GetIncident(ctx context.Context, orgID, id string) (domain.Incident, error)
	ListIncidents(ctx context.Context, orgID string) ([]domain.Incident, error)
	ListIncidentsSince(ctx context.Context, orgID string, since time.Time) ([]domain.Incident, error)
	UpdateIncident(ctx context.Context, in domain.Incident) error
	DeleteIncident(ctx context.Context, orgID, id string) error
}

// VendorRepository stores the vendor catalog.
type VendorRepository interface {
	CreateVendor(ctx context.Context, v domain.Vendor) error
	GetVendor(ctx context.Context, orgID, id string) (domain.Vendor, error)
	ListVendors(ctx context.Context, orgID string) ([]domain.Vendor, error)
	UpdateVendor(ctx context.Context, v domain.Vendor) error
	DeleteVendor(ctx context.Context, orgID, id string) error
}

// DatasetRepository stores the data catalog.
type DatasetRepository interface {
	CreateDataset(ctx context.Context, d domain.Dataset) error
	GetDataset(ctx context.Context, orgID, id string) (domain.Dataset, error)
	ListDatasets(ctx context.Context, orgID string) ([]domain.Dataset, error)
	UpdateDataset(ctx context.Context, d domain.Dataset) error
	DeleteDataset(ctx context.Context, orgID, id string) error
}

// PolicyRepository stores governance policy versions.
type PolicyRepository interface {
	CreatePolicy(ctx context.Context, p domain.Policy) error
	GetPolicy(ctx context.Context, orgID, id string) (domain.Policy, error)
	ListPolicies(ctx context.Context, orgID string) ([]domain.Policy, error)
	UpdatePolicy(ctx context.Context, p domain.Policy) error
}

// ContestationRepository stores automated-decision contestations.
type ContestationRepository interface {
	CreateContestation(ctx context.Context, c domain.Contestation) error
	GetContestation(ctx context.Context, orgID, id string) (domain.Contestation, error)
	ListContestations(ctx context.Context, orgID string) ([]domain.Contestation, error)
	UpdateContestation(ctx context.Context, c domain.Contestation) error
}

// MetricRepository stores monitoring data points.
type MetricRepository interface {
	RecordMetric(ctx context.Context, m domain.Metric) error
	ListMetricsBySystem(ctx context.Context, orgID, systemID string, since time.Time) ([]domain.Metric, error)
}

// TransparencyRepository stores published registry snapshots.
type TransparencyRepository interface {
	PublishEntry(ctx context.Context, e domain.TransparencyEntry) error
	UnpublishSystem(ctx context.Context, orgID, systemID string) error
	ListEntries(ctx context.Context, orgID string) ([]domain.TransparencyEntry, error)
}
