// Package memory is a map-backed implementation of every repository port.
// It backs local development without Postgres and the service tests; it is
// not meant for production use.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

type seedJob struct {
	ports.SeedJob
	Status   string
	Progress float64
	Inserted int
	Reason   string
	QueuedAt time.Time
}

// Store holds all aggregates in memory, guarded by one RWMutex. Keys are
// record IDs; every read filters by org.
type Store struct {
	mu            sync.RWMutex
	systems       map[string]domain.AISystem
	assessments   map[string]domain.Assessment
	incidents     map[string]domain.Incident
	vendors       map[string]domain.Vendor
	datasets      map[string]domain.Dataset
	policies      map[string]domain.Policy
	contestations map[string]domain.Contestation
	metrics       []domain.Metric
	transparency  map[string]domain.TransparencyEntry
	seedJobs      map[string]*seedJob
}

func New() *Store {
	return &Store{
		systems:       make(map[string]domain.AISystem),
		assessments:   make(map[string]domain.Assessment),
		incidents:     make(map[string]domain.Incident),
		vendors:       make(map[string]domain.Vendor),
		datasets:      make(map[string]domain.Dataset),
		policies:      make(map[string]domain.Policy),
		contestations: make(map[string]domain.Contestation),
		transparency:  make(map[string]domain.TransparencyEntry),
		seedJobs:      make(map[string]*seedJob),
	}
}

// SystemRepository

func (s *Store) CreateSystem(_ context.Context, sys domain.AISystem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systems[sys.ID] = sys
	return nil
}

func (s *Store) GetSystem(_ context.Context, orgID, id string) (domain.AISystem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sys, ok := s.systems[id]
	if !ok || sys.OrgID != orgID {
		return domain.AISystem{}, ports.ErrNotFound
	}
	return sys, nil
}

func (s *Store) ListSystems(_ context.Context, orgID string) ([]domain.AISystem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.AISystem
	for _, sys := range s.systems {
		if sys.OrgID == orgID {
			out = append(out, sys)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) UpdateSystem(_ context.Context, sys domain.AISystem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.systems[sys.ID]
	if !ok || prev.OrgID != sys.OrgID {
		return ports.ErrNotFound
	}
	s.systems[sys.ID] = sys
	return nil
}

func (s *Store) DeleteSystem(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sys, ok := s.systems[id]
	if !ok || sys.OrgID != orgID {
		return ports.ErrNotFound
	}
	delete(s.systems, id)
	return nil
}

// AssessmentRepository

func assessmentKey(orgID string, fw domain.Framework, code string) string {
	return orgID + "|" + string(fw) + "|" + code
}

func (s *Store) ListAssessments(_ context.Context, orgID string) ([]domain.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Assessment
	for _, a := range s.assessments {
		if a.OrgID == orgID {
			out = append(out, a)
		}
	}
	sortAssessments(out)
	return out, nil
}

func (s *Store) ListAssessmentsByFramework(_ context.Context, orgID string, fw domain.Framework) ([]domain.Assessment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Assessment
	for _, a := range s.assessments {
		if a.OrgID == orgID && a.Framework == fw {
			out = append(out, a)
		}
	}
	sortAssessments(out)
	return out, nil
}

func sortAssessments(as []domain.Assessment) {
	sort.Slice(as, func(i, j int) bool {
		if as[i].Framework != as[j].Framework {
			return as[i].Framework < as[j].Framework
		}
		return as[i].RequirementCode < as[j].RequirementCode
	})
}

func (s *Store) UpsertAssessment(_ context.Context, a domain.Assessment) (domain.Assessment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := assessmentKey(a.OrgID, a.Framework, a.RequirementCode)
	if prev, ok := s.assessments[key]; ok {
		a.ID = prev.ID
	} else if a.ID == "" {
		a.ID = uuid.NewString()
	}
	s.assessments[key] = a
	return a, nil
}

func (s *Store) SeedDefaults(_ context.Context, orgID string, reqs []domain.Requirement, status domain.ComplianceStatus) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inserted := 0
	now := time.Now()
	for _, r := range reqs {
		key := assessmentKey(orgID, r.Framework, r.Code)
		if _, ok := s.assessments[key]; ok {
			continue
		}
		s.assessments[key] = domain.Assessment{
			ID:              uuid.NewString(),
			OrgID:           orgID,
			Framework:       r.Framework,
			RequirementCode: r.Code,
			Status:          status,
			UpdatedAt:       now,
		}
		inserted++
	}
	return inserted, nil
}

// IncidentRepository

func (s *Store) CreateIncident(_ context.Context, in domain.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incidents[in.ID] = in
	return nil
}

func (s *Store) GetIncident(_ context.Context, orgID, id string) (domain.Incident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	in, ok := s.incidents[id]
	if !ok || in.OrgID != orgID {
		return domain.Incident{}, ports.ErrNotFound
	}
	return in, nil
}

func (s *Store) ListIncidents(_ context.Context, orgID string) ([]domain.Incident, error) {
	return s.listIncidents(orgID, time.Time{}), nil
}

func (s *Store) ListIncidentsSince(_ context.Context, orgID string, since time.Time) ([]domain.Incident, error) {
	return s.listIncidents(orgID, since), nil
}

func (s *Store) listIncidents(orgID string, since time.Time) []domain.Incident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Incident
	for _, in := range s.incidents {
		if in.OrgID != orgID {
			continue
		}
		if !since.IsZero() && in.OccurredAt.Before(since) {
			continue
		}
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.Before(out[j].OccurredAt) })
	return out
}

func (s *Store) UpdateIncident(_ context.Context, in domain.Incident) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.incidents[in.ID]
	if !ok || prev.OrgID != in.OrgID {
		return ports.ErrNotFound
	}
	s.incidents[in.ID] = in
	return nil
}

func (s *Store) DeleteIncident(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	in, ok := s.incidents[id]
	if !ok || in.OrgID != orgID {
		return ports.ErrNotFound
	}
	delete(s.incidents, id)
	return nil
}

// VendorRepository

func (s *Store) CreateVendor(_ context.Context, v domain.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vendors[v.ID] = v
	return nil
}

func (s *Store) GetVendor(_ context.Context, orgID, id string) (domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vendors[id]
	if !ok || v.OrgID != orgID {
		return domain.Vendor{}, ports.ErrNotFound
	}
	return v, nil
}

func (s *Store) ListVendors(_ context.Context, orgID string) ([]domain.Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Vendor
	for _, v := range s.vendors {
		if v.OrgID == orgID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpdateVendor(_ context.Context, v domain.Vendor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.vendors[v.ID]
	if !ok || prev.OrgID != v.OrgID {
		return ports.ErrNotFound
	}
	s.vendors[v.ID] = v
	return nil
}

func (s *Store) DeleteVendor(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[id]
	if !ok || v.OrgID != orgID {
		return ports.ErrNotFound
	}
	delete(s.vendors, id)
	return nil
}

// DatasetRepository

func (s *Store) CreateDataset(_ context.Context, d domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[d.ID] = d
	return nil
}

func (s *Store) GetDataset(_ context.Context, orgID, id string) (domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.datasets[id]
	if !ok || d.OrgID != orgID {
		return domain.Dataset{}, ports.ErrNotFound
	}
	return d, nil
}

func (s *Store) ListDatasets(_ context.Context, orgID string) ([]domain.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Dataset
	for _, d := range s.datasets {
		if d.OrgID == orgID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) UpdateDataset(_ context.Context, d domain.Dataset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.datasets[d.ID]
	if !ok || prev.OrgID != d.OrgID {
		return ports.ErrNotFound
	}
	s.datasets[d.ID] = d
	return nil
}

func (s *Store) DeleteDataset(_ context.Context, orgID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.datasets[id]
	if !ok || d.OrgID != orgID {
		return ports.ErrNotFound
	}
	delete(s.datasets, id)
	return nil
}

// PolicyRepository

func (s *Store) CreatePolicy(_ context.Context, p domain.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[p.ID] = p
	return nil
}

func (s *Store) GetPolicy(_ context.Context, orgID, id string) (domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.policies[id]
	if !ok || p.OrgID != orgID {
		return domain.Policy{}, ports.ErrNotFound
	}
	return p, nil
}

func (s *Store) ListPolicies(_ context.Context, orgID string) ([]domain.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Policy
	for _, p := range s.policies {
		if p.OrgID == orgID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Title != out[j].Title {
			return out[i].Title < out[j].Title
		}
		return out[i].Version < out[j].Version
	})
	return out, nil
}

func (s *Store) UpdatePolicy(_ context.Context, p domain.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.policies[p.ID]
	if !ok || prev.OrgID != p.OrgID {
		return ports.ErrNotFound
	}
	s.policies[p.ID] = p
	return nil
}

// ContestationRepository

func (s *Store) CreateContestation(_ context.Context, c domain.Contestation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contestations[c.ID] = c
	return nil
}

func (s *Store) GetContestation(_ context.Context, orgID, id string) (domain.Contestation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contestations[id]
	if !ok || c.OrgID != orgID {
		return domain.Contestation{}, ports.ErrNotFound
	}
	return c, nil
}

func (s *Store) ListContestations(_ context.Context, orgID string) ([]domain.Contestation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Contestation
	for _, c := range s.contestations {
		if c.OrgID == orgID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReceivedAt.Before(out[j].ReceivedAt) })
	return out, nil
}

func (s *Store) UpdateContestation(_ context.Context, c domain.Contestation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, ok := s.contestations[c.ID]
	if !ok || prev.OrgID != c.OrgID {
		return ports.ErrNotFound
	}
	s.contestations[c.ID] = c
	return nil
}

// MetricRepository

func (s *Store) RecordMetric(_ context.Context, m domain.Metric) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics = append(s.metrics, m)
	return nil
}

func (s *Store) ListMetricsBySystem(_ context.Context, orgID, systemID string, since time.Time) ([]domain.Metric, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Metric
	for _, m := range s.metrics {
		if m.OrgID != orgID || m.SystemRef != systemID {
			continue
		}
		if !since.IsZero() && m.RecordedAt.Before(since) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RecordedAt.Before(out[j].RecordedAt) })
	return out, nil
}

// TransparencyRepository

func (s *Store) PublishEntry(_ context.Context, e domain.TransparencyEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// One live entry per system: publishing supersedes the previous one.
	for id, prev := range s.transparency {
		if prev.OrgID == e.OrgID && prev.SystemRef == e.SystemRef {
			delete(s.transparency, id)
		}
	}
	s.transparency[e.ID] = e
	return nil
}

func (s *Store) UnpublishSystem(_ context.Context, orgID, systemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.transparency {
		if e.OrgID == orgID && e.SystemRef == systemID {
			delete(s.transparency, id)
			return nil
		}
	}
	return ports.ErrNotFound
}

func (s *Store) ListEntries(_ context.Context, orgID string) ([]domain.TransparencyEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.TransparencyEntry
	for _, e := range s.transparency {
		if e.OrgID == orgID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PublishedAt.Before(out[j].PublishedAt) })
	return out, nil
}
