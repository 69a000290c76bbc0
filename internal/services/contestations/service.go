// Package contestations tracks requests to review automated decisions, a
// right granted by GDPR Art. 22 and Loi 25 art. 12.1. The lifecycle is
// received → assigned → under_review → {decision_revised |
// decision_maintained} → notified → closed.
package contestations

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
	ErrDecisionRequired = errors.New("a decision summary is required")
	ErrAssigneeRequired = errors.New("an assignee is required")
)

// TransitionError reports a lifecycle move the state machine forbids.
type TransitionError struct {
	From, To domain.ContestationStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("contestation transition %s → %s not allowed", e.From, e.To)
}

var allowed = map[domain.ContestationStatus][]domain.ContestationStatus{
	domain.ContestationReceived:           {domain.ContestationAssigned},
	domain.ContestationAssigned:           {domain.ContestationUnderReview},
	domain.ContestationUnderReview:        {domain.ContestationDecisionRevised, domain.ContestationDecisionMaintained},
	domain.ContestationDecisionRevised:    {domain.ContestationNotified},
	domain.ContestationDecisionMaintained: {domain.ContestationNotified},
	domain.ContestationNotified:           {domain.ContestationClosed},
	domain.ContestationClosed:             {},
}

type Service struct {
	contestations ports.ContestationRepository
	now           func() time.Time
}

func New(contestations ports.ContestationRepository) *Service {
	return &Service{contestations: contestations, now: time.Now}
}

func (s *Service) Create(ctx context.Context, orgID, subject, description string, systemRef *string) (domain.Contestation, error) {
	c := domain.Contestation{
		ID:          uuid.NewString(),
		OrgID:       orgID,
		SystemRef:   systemRef,
		Subject:     subject,
		Description: description,
		Status:      domain.ContestationReceived,
		ReceivedAt:  s.now(),
	}
	if err := s.contestations.CreateContestation(ctx, c); err != nil {
		return domain.Contestation{}, fmt.Errorf("create contestation: %w", err)
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.Contestation, error) {
	return s.contestations.GetContestation(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.Contestation, error) {
	return s.contestations.ListContestations(ctx, orgID)
}

// Assign hands the case to a reviewer.
func (s *Service) Assign(ctx context.Context, orgID, id, assignee string) (domain.Contestation, error) {
	return s.transition(ctx, orgID, id, domain.ContestationAssigned, func(c *domain.Contestation) error {
		if assignee == "" {
			return ErrAssigneeRequired
		}
		c.AssignedTo = &assignee
		return nil
	})
}

func (s *Service) StartReview(ctx context.Context, orgID, id string) (domain.Contestation, error) {
	return s.transition(ctx, orgID, id, domain.ContestationUnderReview, nil)
}

// Decide records the review outcome. revised=true means the automated
// decision is overturned.
func (s *Service) Decide(ctx context.Context, orgID, id string, revised bool, decision string) (domain.Contestation, error) {
	target := domain.ContestationDecisionMaintained
	if revised {
		target = domain.ContestationDecisionRevised
	}
	return s.transition(ctx, orgID, id, target, func(c *domain.Contestation) error {
		if decision == "" {
			return ErrDecisionRequired
		}
		c.Decision = &decision
		return nil
	})
}

func (s *Service) Notify(ctx context.Context, orgID, id string) (domain.Contestation, error) {
	return s.transition(ctx, orgID, id, domain.ContestationNotified, nil)
}

func (s *Service) Close(ctx context.Context, orgID, id string) (domain.Contestation, error) {
	return s.transition(ctx, orgID, id, domain.ContestationClosed, func(c *domain.Contestation) error {
		now := s.now()
		c.ClosedAt = &now
		return nil
	})
}

func (s *Service) transition(ctx context.Context, orgID, id string, target domain.ContestationStatus, mutate func(*domain.Contestation) error) (domain.Contestation, error) {
	c, err := s.contestations.GetContestation(ctx, orgID, id)
	if err != nil {
		return domain.Contestation{}, err
	}
	if !transitionAllowed(c.Status, target) {
		return domain.Contestation{}, &TransitionError{From: c.Status, To: target}
	}
	if mutate != nil {
		if err := mutate(&c); err != nil {
			return domain.Contestation{}, err
		}
	}
	c.Status = target
	if err := s.contestations.UpdateContestation(ctx, c); err != nil {
		return domain.Contestation{}, fmt.Errorf("transition contestation: %w", err)
	}
	return c, nil
}

func transitionAllowed(from, to domain.ContestationStatus) bool {
	for _, t := range allowed[from] {
		if t == to {
			return true
		}
	}
	return false
}
