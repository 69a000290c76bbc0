// Package policies manages governance policy documents and their lifecycle:
// draft → in_review → published → archived, with published policies forking
// into a new draft version.
package policies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aigov/internal/domain"
	"aigov/internal/ports"
)

var (
	ErrNotDraft     = errors.New("only draft policies are editable")
	ErrNotPublished = errors.New("only published policies fork new versions")
)

// TransitionError reports a lifecycle move the state machine forbids.
type TransitionError struct {
	From, To domain.PolicyStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("policy transition %s → %s not allowed", e.From, e.To)
}

// allowed lists the valid lifecycle moves. in_review may fall back to draft
// when a review is rejected.
var allowed = map[domain.PolicyStatus][]domain.PolicyStatus{
	domain.PolicyDraft:     {domain.PolicyInReview},
	domain.PolicyInReview:  {domain.PolicyDraft, domain.PolicyPublished},
	domain.PolicyPublished: {domain.PolicyArchived},
	domain.PolicyArchived:  {},
}

type Service struct {
	policies ports.PolicyRepository
	now      func() time.Time
}

func New(policies ports.PolicyRepository) *Service {
	return &Service{policies: policies, now: time.Now}
}

func (s *Service) Create(ctx context.Context, orgID, title, body string) (domain.Policy, error) {
	now := s.now()
	p := domain.Policy{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		Title:     title,
		Body:      body,
		Version:   1,
		Status:    domain.PolicyDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.policies.CreatePolicy(ctx, p); err != nil {
		return domain.Policy{}, fmt.Errorf("create policy: %w", err)
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.Policy, error) {
	return s.policies.GetPolicy(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.Policy, error) {
	return s.policies.ListPolicies(ctx, orgID)
}

// UpdateBody edits the document of a draft. Published and archived versions
// are immutable; a new version must be forked instead.
func (s *Service) UpdateBody(ctx context.Context, orgID, id, title, body string) (domain.Policy, error) {
	p, err := s.policies.GetPolicy(ctx, orgID, id)
	if err != nil {
		return domain.Policy{}, err
	}
	if p.Status != domain.PolicyDraft {
		return domain.Policy{}, fmt.Errorf("policy %s is %s: %w", id, p.Status, ErrNotDraft)
	}
	p.Title = title
	p.Body = body
	p.UpdatedAt = s.now()
	if err := s.policies.UpdatePolicy(ctx, p); err != nil {
		return domain.Policy{}, fmt.Errorf("update policy: %w", err)
	}
	return p, nil
}

// Transition moves a policy to the target lifecycle state.
func (s *Service) Transition(ctx context.Context, orgID, id string, target domain.PolicyStatus) (domain.Policy, error) {
	p, err := s.policies.GetPolicy(ctx, orgID, id)
	if err != nil {
		return domain.Policy{}, err
	}
	if !transitionAllowed(p.Status, target) {
		return domain.Policy{}, &TransitionError{From: p.Status, To: target}
	}
	now := s.now()
	p.Status = target
	p.UpdatedAt = now
	if target == domain.PolicyPublished {
		p.PublishedAt = &now
	}
	if err := s.policies.UpdatePolicy(ctx, p); err != nil {
		return domain.Policy{}, fmt.Errorf("transition policy: %w", err)
	}
	return p, nil
}

// NewVersion forks a published policy into a fresh draft with the next
// version number. The published version stays untouched until archived.
func (s *Service) NewVersion(ctx context.Context, orgID, id string) (domain.Policy, error) {
	p, err := s.policies.GetPolicy(ctx, orgID, id)
	if err != nil {
		return domain.Policy{}, err
	}
	if p.Status != domain.PolicyPublished {
		return domain.Policy{}, fmt.Errorf("policy %s is %s: %w", id, p.Status, ErrNotPublished)
	}
	now := s.now()
	next := domain.Policy{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		Title:     p.Title,
		Body:      p.Body,
		Version:   p.Version + 1,
		Status:    domain.PolicyDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.policies.CreatePolicy(ctx, next); err != nil {
		return domain.Policy{}, fmt.Errorf("fork policy version: %w", err)
	}
	return next, nil
}

func transitionAllowed(from, to domain.PolicyStatus) bool {
	for _, t := range allowed[from] {
		if t == to {
			return true
		}
	}
	return false
}
