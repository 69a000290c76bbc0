// Package registry manages the AI system registry: CRUD over registered
// systems, derived risk scoring on every save, and publication of public
// transparency snapshots.
package registry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aigov/internal/domain"
	"aigov/internal/ports"
	"aigov/internal/scoring"
)

var (
	ErrInvalidStatus   = errors.New("invalid system status")
	ErrInvalidOverride = errors.New("invalid risk level override")
)

var validStatuses = map[string]bool{"draft": true, "active": true, "retired": true}

type Service struct {
	systems      ports.SystemRepository
	transparency ports.TransparencyRepository
	now          func() time.Time
}

func New(systems ports.SystemRepository, transparency ports.TransparencyRepository) *Service {
	return &Service{systems: systems, transparency: transparency, now: time.Now}
}

// SystemInput is the mutable part of an AI system record.
type SystemInput struct {
	Name               string
	Description        string
	Status             string
	AutonomyLevel      string
	DataTypes          []string
	AffectedPopulation []string
	SensitiveDomains   []string
	VendorRef          *string
	OverrideLevel      *domain.RiskLevel
}

// PreviewScore computes the risk score for unsaved form input. Pure; safe to
// call on every keystroke.
func (s *Service) PreviewScore(in scoring.RiskInputs) scoring.RiskScore {
	return scoring.ComputeRiskScore(in)
}

func (s *Service) Create(ctx context.Context, orgID string, in SystemInput) (domain.AISystem, error) {
	if err := validate(in); err != nil {
		return domain.AISystem{}, err
	}
	now := s.now()
	sys := domain.AISystem{
		ID:        uuid.NewString(),
		OrgID:     orgID,
		CreatedAt: now,
	}
	apply(&sys, in, now)
	if err := s.systems.CreateSystem(ctx, sys); err != nil {
		return domain.AISystem{}, fmt.Errorf("create system: %w", err)
	}
	return sys, nil
}

func (s *Service) Update(ctx context.Context, orgID, id string, in SystemInput) (domain.AISystem, error) {
	if err := validate(in); err != nil {
		return domain.AISystem{}, err
	}
	sys, err := s.systems.GetSystem(ctx, orgID, id)
	if err != nil {
		return domain.AISystem{}, err
	}
	apply(&sys, in, s.now())
	if err := s.systems.UpdateSystem(ctx, sys); err != nil {
		return domain.AISystem{}, fmt.Errorf("update system: %w", err)
	}
	return sys, nil
}

func (s *Service) Get(ctx context.Context, orgID, id string) (domain.AISystem, error) {
	return s.systems.GetSystem(ctx, orgID, id)
}

func (s *Service) List(ctx context.Context, orgID string) ([]domain.AISystem, error) {
	return s.systems.ListSystems(ctx, orgID)
}

func (s *Service) Delete(ctx context.Context, orgID, id string) error {
	return s.systems.DeleteSystem(ctx, orgID, id)
}

// Publish writes a public snapshot of the system to the transparency
// registry, superseding any previous entry for it. The published risk level
// is the effective one, so a manual prohibited override is what the public
// sees.
func (s *Service) Publish(ctx context.Context, orgID, id, publicName, publicDescription string) (domain.TransparencyEntry, error) {
	sys, err := s.systems.GetSystem(ctx, orgID, id)
	if err != nil {
		return domain.TransparencyEntry{}, err
	}
	if publicName == "" {
		publicName = sys.Name
	}
	entry := domain.TransparencyEntry{
		ID:                uuid.NewString(),
		OrgID:             orgID,
		SystemRef:         sys.ID,
		PublicName:        publicName,
		PublicDescription: publicDescription,
		RiskLevel:         sys.EffectiveRiskLevel(),
		PublishedAt:       s.now(),
	}
	if err := s.transparency.PublishEntry(ctx, entry); err != nil {
		return domain.TransparencyEntry{}, fmt.Errorf("publish entry: %w", err)
	}
	return entry, nil
}

func (s *Service) Unpublish(ctx context.Context, orgID, systemID string) error {
	return s.transparency.UnpublishSystem(ctx, orgID, systemID)
}

func (s *Service) ListTransparency(ctx context.Context, orgID string) ([]domain.TransparencyEntry, error) {
	return s.transparency.ListEntries(ctx, orgID)
}

func validate(in SystemInput) error {
	if in.Status != "" && !validStatuses[in.Status] {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}
	if in.OverrideLevel != nil {
		switch *in.OverrideLevel {
		case domain.RiskMinimal, domain.RiskLimited, domain.RiskHigh, domain.RiskCritical, domain.RiskProhibited:
		default:
			return fmt.Errorf("%w: %q", ErrInvalidOverride, *in.OverrideLevel)
		}
	}
	return nil
}

// apply copies in onto sys and recomputes the derived risk score. The score
// is a view over the inputs, so every save rederives it.
func apply(sys *domain.AISystem, in SystemInput, now time.Time) {
	sys.Name = in.Name
	sys.Description = in.Description
	sys.Status = in.Status
	if sys.Status == "" {
		sys.Status = "draft"
	}
	sys.AutonomyLevel = in.AutonomyLevel
	sys.DataTypes = in.DataTypes
	sys.AffectedPopulation = in.AffectedPopulation
	sys.SensitiveDomains = in.SensitiveDomains
	sys.VendorRef = in.VendorRef
	sys.OverrideLevel = in.OverrideLevel
	sys.UpdatedAt = now

	score := scoring.ComputeRiskScore(scoring.RiskInputs{
		AutonomyLevel:      sys.AutonomyLevel,
		DataTypes:          sys.DataTypes,
		AffectedPopulation: sys.AffectedPopulation,
		SensitiveDomains:   sys.SensitiveDomains,
	})
	sys.RiskScore = score.Score
	sys.RiskLevel = score.Level
}
