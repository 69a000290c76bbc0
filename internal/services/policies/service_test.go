package policies

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/adapters/memory"
	"aigov/internal/domain"
)

func TestLifecycleHappyPath(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	p, err := svc.Create(ctx, "org-1", "Politique d'utilisation de l'IA", "v1")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyDraft, p.Status)
	assert.Equal(t, 1, p.Version)

	p, err = svc.Transition(ctx, "org-1", p.ID, domain.PolicyInReview)
	require.NoError(t, err)
	p, err = svc.Transition(ctx, "org-1", p.ID, domain.PolicyPublished)
	require.NoError(t, err)
	require.NotNil(t, p.PublishedAt)

	p, err = svc.Transition(ctx, "org-1", p.ID, domain.PolicyArchived)
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyArchived, p.Status)
}

func TestReviewRejectionFallsBackToDraft(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "org-1", "t", "b")
	p, err := svc.Transition(ctx, "org-1", p.ID, domain.PolicyInReview)
	require.NoError(t, err)
	p, err = svc.Transition(ctx, "org-1", p.ID, domain.PolicyDraft)
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyDraft, p.Status)
}

func TestInvalidTransitionsRejected(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "org-1", "t", "b")

	_, err := svc.Transition(ctx, "org-1", p.ID, domain.PolicyPublished)
	var te *TransitionError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, domain.PolicyDraft, te.From)
	assert.Equal(t, domain.PolicyPublished, te.To)

	_, err = svc.Transition(ctx, "org-1", p.ID, domain.PolicyArchived)
	assert.ErrorAs(t, err, &te)
}

func TestPublishedIsImmutable(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "org-1", "t", "b")
	p, _ = svc.Transition(ctx, "org-1", p.ID, domain.PolicyInReview)
	p, _ = svc.Transition(ctx, "org-1", p.ID, domain.PolicyPublished)

	_, err := svc.UpdateBody(ctx, "org-1", p.ID, "t2", "b2")
	assert.Error(t, err)
}

func TestNewVersionForksPublished(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	p, _ := svc.Create(ctx, "org-1", "t", "corps v1")
	p, _ = svc.Transition(ctx, "org-1", p.ID, domain.PolicyInReview)
	p, _ = svc.Transition(ctx, "org-1", p.ID, domain.PolicyPublished)

	next, err := svc.NewVersion(ctx, "org-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, next.Version)
	assert.Equal(t, domain.PolicyDraft, next.Status)
	assert.NotEqual(t, p.ID, next.ID)

	// The published version is untouched.
	orig, err := svc.Get(ctx, "org-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyPublished, orig.Status)

	// Drafts cannot fork.
	_, err = svc.NewVersion(ctx, "org-1", next.ID)
	assert.Error(t, err)
}
