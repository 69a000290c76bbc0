// Package incidents manages bias and malfunction findings raised against
// registered AI systems.
package incidents

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
	ErrInvalidSeverity = errors.New("invalid incident severity")
	ErrInvalidStatus   = errors.New("invalid incident status")
)

var (
	validSeverities = map[string]bool{"low": true, "medium": true, "high": true, "critical": true}
	validStatuses   = map[string]bool{"open": true, "investigating": true, "resolved": true, "closed": true}
)

type Service struct {
	incidents ports.IncidentRepository
	now       func() time.Time
}

func New(incidents ports.IncidentRepository) *Service {
	return &Service{incidents: incidents, now: time.Now}
}

type IncidentInput struct {
	SystemRef  *string
	Category   string
	Severity   string
	Status     string
	Summary    string
	OccurredAt time.Time
}

func (s *Service) Create(ctx context.Context, orgID string, in IncidentInput) (domain.Incident, error) {
	if err := validate(in); err != nil {
		return domain.Incident{}, err
	}
	now := s.now()
	occurred := in.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}
	inc := domain.Incident{
		ID:         uuid.NewString(),
		OrgID:      orgID,
		SystemRef:  in.SystemRef,
		Category:   in.Category,
		Severity:   in.Severity,
		Status:     statusOrDefault(in.Status),
		Summary:    in.Summary,
		OccurredAt: occurred,
		CreatedAt:  now,
	}
	if err := s.incidents.CreateIncident(ctx, inc); err != nil {
		return domain.Incident{}, fmt.Errorf("create incident: %w", err)
	}
	return inc, nil
}

func (s *Service) Update(ctx context.Context, orgID, id string, in IncidentInput) (domain.Incident, error) {
	if err := validate(in); err != nil {
		return domain.Incident{}, err
	}
	inc, err := s.incidents.GetIncident(ctx, orgID, id)
	if err != nil {
		return domain.Incident{}, err
	}
	inc.SystemRef = in.SystemRef
	inc.Category = in.Category
	inc.Severity = in.Severity
	inc.Status = statusOrDefault(in.Status)
	inc.Summary = in.Summary
	if !in.OccurredAt.IsZero() {
		inc.OccurredAt = in.OccurredAt
	}
	if err := s.incidents.UpdateIncident(ctx, inc); err != nil {
		return domain.Incident{}, fmt.Errorf("update incident: %w", err)
	}
	return inc, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.Incident, error) {
	return s.incidents.GetIncident(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.Incident, error) {
	return s.incidents.ListIncidents(ctx, orgID)
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.incidents.DeleteIncident(ctx, orgID, id)
}

func validate(in IncidentInput) error {
	if !validSeverities[in.Severity] {
		return fmt.Errorf("%w: %q", ErrInvalidSeverity, in.Severity)
	}
	if in.Status != "" && !validStatuses[in.Status] {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}
	return nil
}

func statusOrDefault(s string) string {
	if s == "" {
		return "open"
	}
	return s
}
