package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/domain"
)

func TestBuiltinCoversAllFrameworks(t *testing.T) {
	c := Builtin()
	for _, fw := range domain.Frameworks() {
		assert.NotEmpty(t, c.Requirements(fw), "framework %s has no requirements", fw)
	}
	assert.Equal(t, len(c.All()), c.Len())
}

func TestBuiltinIdentityUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Builtin().All() {
		key := string(r.Framework) + "/" + r.Code
		assert.False(t, seen[key], "duplicate requirement %s", key)
		seen[key] = true
		assert.NotEmpty(t, r.TitleFr, "%s missing title", key)
		assert.NotEmpty(t, r.ModuleSource, "%s missing module source", key)
	}
}

func TestRequirementsReturnsCopy(t *testing.T) {
	c := Builtin()
	first := c.Requirements(domain.FrameworkGDPR)
	first[0].Code = "mutated"
	assert.NotEqual(t, "mutated", c.Requirements(domain.FrameworkGDPR)[0].Code)
}

func TestLoadWithoutOverlay(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Builtin().Len(), c.Len())
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overlay.yaml")
	overlay := `requirements:
  - framework: ai_act
    code: ORG-01
    title_fr: "Revue interne annuelle des systèmes à haut risque"
    module: compliance
  - framework: ai_act
    code: AIA-09
    title_fr: "Doublon ignoré"
    module: registry
`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Builtin().Len()+1, c.Len())

	added, ok := c.lookup(domain.FrameworkAIAct, "ORG-01")
	require.True(t, ok)
	assert.Equal(t, "compliance", added.ModuleSource)

	// Builtin entry wins over the duplicate.
	dup, _ := c.lookup(domain.FrameworkAIAct, "AIA-09")
	assert.Equal(t, "Système de gestion des risques", dup.TitleFr)
}

func TestLoadOverlayRejectsIncomplete(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("requirements:\n  - framework: gdpr\n    code: X-1\n"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	assert.Error(t, err)
}
