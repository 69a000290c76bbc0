// Package compliance manages per-requirement assessments and the aggregated
// compliance posture of an org against the requirement catalog.
package compliance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aigov/internal/catalog"
	"aigov/internal/domain"
	"aigov/internal/ports"
	"aigov/internal/scoring"
)

var (
	ErrUnknownFramework   = errors.New("unknown framework")
	ErrUnknownRequirement = errors.New("unknown requirement")
	ErrInvalidStatus      = errors.New("invalid compliance status")
)

type Service struct {
	assessments ports.AssessmentRepository
	jobs        ports.SeedJobRepository
	cat         *catalog.Catalog
	now         func() time.Time
}

func New(assessments ports.AssessmentRepository, jobs ports.SeedJobRepository, cat *catalog.Catalog) *Service {
	return &Service{assessments: assessments, jobs: jobs, cat: cat, now: time.Now}
}

// Catalog returns the requirement catalog the service assesses against.
func (s *Service) Catalog() *catalog.Catalog { return s.cat }

func (s *Service) ListAssessments(ctx context.Context, orgID string) ([]domain.Assessment, error) {
	return s.assessments.ListAssessments(ctx, orgID)
}

func (s *Service) ListAssessmentsByFramework(ctx context.Context, orgID string, fw domain.Framework) ([]domain.Assessment, error) {
	if !domain.ValidFramework(fw) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFramework, fw)
	}
	return s.assessments.ListAssessmentsByFramework(ctx, orgID, fw)
}

// SetStatus records the current compliance status of one requirement.
// Assessments are created on first evaluation and mutated in place after
// that; they are never deleted.
func (s *Service) SetStatus(ctx context.Context, orgID string, fw domain.Framework, code string, status domain.ComplianceStatus, notes string) (domain.Assessment, error) {
	if !status.Valid() {
		return domain.Assessment{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if _, found := find(s.cat.Requirements(fw), code); !found {
		return domain.Assessment{}, fmt.Errorf("%w: %s/%s", ErrUnknownRequirement, fw, code)
	}
	now := s.now()
	a := domain.Assessment{
		OrgID:           orgID,
		Framework:       fw,
		RequirementCode: code,
		Status:          status,
		Notes:           notes,
		LastVerifiedAt:  &now,
		UpdatedAt:       now,
	}
	out, err := s.assessments.UpsertAssessment(ctx, a)
	if err != nil {
		return domain.Assessment{}, fmt.Errorf("upsert assessment: %w", err)
	}
	return out, nil
}

// Summary recomputes the full compliance posture from the current assessment
// set. No incremental state is kept.
func (s *Service) Summary(ctx context.Context, orgID string) (scoring.ComplianceSummary, error) {
	as, err := s.assessments.ListAssessments(ctx, orgID)
	if err != nil {
		return scoring.ComplianceSummary{}, fmt.Errorf("list assessments: %w", err)
	}
	return scoring.Aggregate(as, s.cat.ByFramework()), nil
}

// EnqueueSeed queues a catalog-seeding job for the org. Seeding inserts one
// default assessment per catalog pair not yet assessed; re-running it is a
// no-op for already-covered pairs.
func (s *Service) EnqueueSeed(ctx context.Context, orgID string) (string, error) {
	return s.jobs.EnqueueSeed(ctx, orgID)
}

func (s *Service) SeedStatus(ctx context.Context, orgID, jobID string) (string, float64, error) {
	return s.jobs.SeedStatus(ctx, orgID, jobID)
}

func find(reqs []domain.Requirement, code string) (domain.Requirement, bool) {
	for _, r := range reqs {
		if r.Code == code {
			return r, true
		}
	}
	return domain.Requirement{}, false
}
