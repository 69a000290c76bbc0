package vendors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/adapters/memory"
)

func strp(s string) *string { return &s }

func TestCreateNormalizesWebsite(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	tests := []struct {
		website string
		want    string
	}{
		{"https://www.Exemple.Fr/produits?x=1", "exemple.fr"},
		{"modeles.fournisseur.co.uk", "fournisseur.co.uk"},
		{"http://api.acme.ai", "acme.ai"},
	}
	for _, tt := range tests {
		v, err := svc.Create(ctx, "org-1", VendorInput{Name: "f", Website: strp(tt.website)})
		require.NoError(t, err)
		require.NotNil(t, v.RegistrableDomain, tt.website)
		assert.Equal(t, tt.want, *v.RegistrableDomain)
	}
}

func TestCreateWithoutWebsite(t *testing.T) {
	svc := New(memory.New())
	v, err := svc.Create(context.Background(), "org-1", VendorInput{Name: "Fournisseur interne", Jurisdiction: "FR"})
	require.NoError(t, err)
	assert.Nil(t, v.RegistrableDomain)
	assert.Equal(t, "FR", v.Jurisdiction)
}

func TestUpdateRenormalizes(t *testing.T) {
	svc := New(memory.New())
	ctx := context.Background()

	v, err := svc.Create(ctx, "org-1", VendorInput{Name: "f", Website: strp("https://old.example.com")})
	require.NoError(t, err)

	v, err = svc.Update(ctx, "org-1", v.ID, VendorInput{Name: "f", Website: strp("https://portal.nouveau.fr")})
	require.NoError(t, err)
	require.NotNil(t, v.RegistrableDomain)
	assert.Equal(t, "nouveau.fr", *v.RegistrableDomain)

	v, err = svc.Update(ctx, "org-1", v.ID, VendorInput{Name: "f"})
	require.NoError(t, err)
	assert.Nil(t, v.RegistrableDomain)
}
