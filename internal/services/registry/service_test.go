package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/adapters/memory"
	"aigov/internal/domain"
	"aigov/internal/ports"
)

func newService() (*Service, *memory.Store) {
	store := memory.New()
	return New(store, store), store
}

func TestCreateDerivesRiskScore(t *testing.T) {
	svc, _ := newService()
	sys, err := svc.Create(context.Background(), "org-1", SystemInput{
		Name:               "Tri automatique des CV",
		AutonomyLevel:      domain.AutonomyFullAuto,
		DataTypes:          []string{"personal_data"},
		AffectedPopulation: []string{"minors"},
		SensitiveDomains:   []string{"employment"},
	})
	require.NoError(t, err)
	assert.Equal(t, 60, sys.RiskScore)
	assert.Equal(t, domain.RiskHigh, sys.RiskLevel)
	assert.Equal(t, "draft", sys.Status)
	assert.NotEmpty(t, sys.ID)
}

func TestUpdateRecomputesScore(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	sys, err := svc.Create(ctx, "org-1", SystemInput{Name: "Chatbot"})
	require.NoError(t, err)
	assert.Equal(t, 0, sys.RiskScore)

	updated, err := svc.Update(ctx, "org-1", sys.ID, SystemInput{
		Name:          "Chatbot",
		Status:        "active",
		AutonomyLevel: domain.AutonomyHumanOnTheLoop,
		DataTypes:     []string{"personal_data", "sensitive_data"},
	})
	require.NoError(t, err)
	assert.Equal(t, 40, updated.RiskScore)
	assert.Equal(t, domain.RiskHigh, updated.RiskLevel)
}

func TestOverrideLevelWinsWhenSet(t *testing.T) {
	svc, _ := newService()
	override := domain.RiskProhibited
	sys, err := svc.Create(context.Background(), "org-1", SystemInput{
		Name:          "Notation sociale",
		OverrideLevel: &override,
	})
	require.NoError(t, err)
	// Derived level stays minimal; the override carries the classification.
	assert.Equal(t, domain.RiskMinimal, sys.RiskLevel)
	assert.Equal(t, domain.RiskProhibited, sys.EffectiveRiskLevel())
}

func TestCreateRejectsBadInput(t *testing.T) {
	svc, _ := newService()
	_, err := svc.Create(context.Background(), "org-1", SystemInput{Name: "x", Status: "launched"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	bad := domain.RiskLevel("severe")
	_, err = svc.Create(context.Background(), "org-1", SystemInput{Name: "x", OverrideLevel: &bad})
	assert.ErrorIs(t, err, ErrInvalidOverride)
}

func TestTenantIsolation(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	sys, err := svc.Create(ctx, "org-1", SystemInput{Name: "x"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "org-2", sys.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	other, err := svc.List(ctx, "org-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPublishSupersedesPreviousEntry(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	override := domain.RiskProhibited
	sys, err := svc.Create(ctx, "org-1", SystemInput{Name: "Scoring crédit", OverrideLevel: &override})
	require.NoError(t, err)

	first, err := svc.Publish(ctx, "org-1", sys.ID, "", "Première publication")
	require.NoError(t, err)
	assert.Equal(t, "Scoring crédit", first.PublicName)
	assert.Equal(t, domain.RiskProhibited, first.RiskLevel)

	_, err = svc.Publish(ctx, "org-1", sys.ID, "Scoring crédit v2", "Mise à jour")
	require.NoError(t, err)

	entries, err := svc.ListTransparency(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Scoring crédit v2", entries[0].PublicName)
}

func TestUnpublishMissingEntry(t *testing.T) {
	svc, _ := newService()
	err := svc.Unpublish(context.Background(), "org-1", "no-such-system")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
