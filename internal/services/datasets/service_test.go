package datasets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/adapters/memory"
	"aigov/internal/ports"
)

func TestCreateDefaultsSensitivity(t *testing.T) {
	svc := New(memory.New())

	d, err := svc.Create(context.Background(), "org-a", DatasetInput{Name: "Historique crédits"})
	require.NoError(t, err)
	assert.Equal(t, "internal", d.Sensitivity)
	assert.NotEmpty(t, d.ID)
}

func TestCreateRejectsUnknownSensitivity(t *testing.T) {
	svc := New(memory.New())

	_, err := svc.Create(context.Background(), "org-a", DatasetInput{
		Name:        "Historique crédits",
		Sensitivity: "top-secret",
	})
	require.ErrorIs(t, err, ErrInvalidSensitivity)
}

func TestUpdateReplacesFields(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	d, err := svc.Create(ctx, "org-a", DatasetInput{
		Name:      "Historique crédits",
		DataTypes: []string{"financial_data"},
	})
	require.NoError(t, err)

	got, err := svc.Update(ctx, "org-a", d.ID, DatasetInput{
		Name:        "Historique crédits 2024",
		DataTypes:   []string{"financial_data", "personal_data"},
		Sensitivity: "confidential",
	})
	require.NoError(t, err)
	assert.Equal(t, "Historique crédits 2024", got.Name)
	assert.Equal(t, "confidential", got.Sensitivity)
	assert.Len(t, got.DataTypes, 2)
	assert.Equal(t, d.CreatedAt, got.CreatedAt)
}

func TestTenantIsolation(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	d, err := svc.Create(ctx, "org-a", DatasetInput{Name: "Historique crédits"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "org-b", d.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	err = svc.Delete(ctx, "org-b", d.ID)
	assert.ErrorIs(t, err, ports.ErrNotFound)

	list, err := svc.List(ctx, "org-a")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
