// Package catalog holds the static table of compliance requirements per
// regulatory framework. The table is loaded once at process start and never
// mutated; new requirements ship with a redeploy, optionally supplemented by
// a YAML overlay file for org-specific clauses.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"aigov/internal/domain"
)

// Catalog is an immutable requirement table keyed by framework.
type Catalog struct {
	byFramework map[domain.Framework][]domain.Requirement
}

// Builtin returns the catalog compiled into the binary.
func Builtin() *Catalog {
	c := &Catalog{byFramework: make(map[domain.Framework][]domain.Requirement)}
	for _, r := range builtinRequirements {
		c.byFramework[r.Framework] = append(c.byFramework[r.Framework], r)
	}
	return c
}

// Load returns the builtin catalog merged with the overlay file at path.
// An empty path returns the builtin catalog unchanged. Overlay entries whose
// (framework, code) already exists are ignored; the builtin table wins.
func Load(path string) (*Catalog, error) {
	c := Builtin()
	if path == "" {
		return c, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}
	var overlay struct {
		Requirements []struct {
			Framework  string  `yaml:"framework"`
			Code       string  `yaml:"code"`
			TitleFr    string  `yaml:"title_fr"`
			ArticleRef *string `yaml:"article_ref"`
			Module     string  `yaml:"module"`
		} `yaml:"requirements"`
	}
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, fmt.Errorf("parse catalog overlay: %w", err)
	}

	for _, e := range overlay.Requirements {
		fw := domain.Framework(e.Framework)
		if e.Code == "" || e.TitleFr == "" {
			return nil, fmt.Errorf("catalog overlay: requirement %q/%q missing code or title", e.Framework, e.Code)
		}
		if _, exists := c.lookup(fw, e.Code); exists {
			continue
		}
		c.byFramework[fw] = append(c.byFramework[fw], domain.Requirement{
			Framework:    fw,
			Code:         e.Code,
			TitleFr:      e.TitleFr,
			ArticleRef:   e.ArticleRef,
			ModuleSource: e.Module,
		})
	}
	return c, nil
}

func (c *Catalog) lookup(fw domain.Framework, code string) (domain.Requirement, bool) {
	for _, r := range c.byFramework[fw] {
		if r.Code == code {
			return r, true
		}
	}
	return domain.Requirement{}, false
}

// Requirements returns the requirements of one framework in catalog order.
func (c *Catalog) Requirements(fw domain.Framework) []domain.Requirement {
	reqs := c.byFramework[fw]
	out := make([]domain.Requirement, len(reqs))
	copy(out, reqs)
	return out
}

// All returns every requirement, grouped by framework in display order.
func (c *Catalog) All() []domain.Requirement {
	var out []domain.Requirement
	for _, fw := range c.frameworks() {
		out = append(out, c.byFramework[fw]...)
	}
	return out
}

// ByFramework returns a fresh framework→requirements map, the shape the
// compliance aggregator consumes.
func (c *Catalog) ByFramework() map[domain.Framework][]domain.Requirement {
	out := make(map[domain.Framework][]domain.Requirement, len(c.byFramework))
	for fw := range c.byFramework {
		out[fw] = c.Requirements(fw)
	}
	return out
}

// Len returns the total requirement count.
func (c *Catalog) Len() int {
	n := 0
	for _, reqs := range c.byFramework {
		n += len(reqs)
	}
	return n
}

func (c *Catalog) frameworks() []domain.Framework {
	known := domain.Frameworks()
	out := make([]domain.Framework, 0, len(c.byFramework))
	for _, fw := range known {
		if _, ok := c.byFramework[fw]; ok {
			out = append(out, fw)
		}
	}
	var extras []domain.Framework
	for fw := range c.byFramework {
		if !domain.ValidFramework(fw) {
			extras = append(extras, fw)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	return append(out, extras...)
}
