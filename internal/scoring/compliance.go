package scoring

import (
	"math"
	"sort"

	"aigov/internal/domain"
)

// FrameworkScoreSummary is the per-framework partition of assessment
// statuses at a point in time. The four counts always sum to the number of
// assessments seen for the framework; an all-zero summary means "not yet
// started", which is distinct from a 0% score with non-zero counts.
type FrameworkScoreSummary struct {
	Framework     domain.Framework `json:"framework"`
	Compliant     int              `json:"compliant"`
	Partial       int              `json:"partial"`
	NonCompliant  int              `json:"nonCompliant"`
	NotApplicable int              `json:"notApplicable"`
	Score         int              `json:"score"`
}

// Initialized reports whether any assessment exists for the framework.
// Callers must use this, not Score, to tell "not started" from "0% compliant".
func (s FrameworkScoreSummary) Initialized() bool {
	return s.Compliant+s.Partial+s.NonCompliant+s.NotApplicable > 0
}

// ComplianceSummary is the aggregated compliance posture of one org.
type ComplianceSummary struct {
	Global     int                     `json:"global"`
	Frameworks []FrameworkScoreSummary `json:"frameworks"`
}

// Aggregate partitions assessments by framework and status and computes
// per-framework and global percentage scores. not_applicable rows are
// excluded from the denominator; frameworks with no assessments at all are
// excluded from the global mean. A full recompute on every mutation is fine
// at the expected volumes (low thousands of rows per org).
//
// requirementsByFramework fixes the set of frameworks reported: every key
// yields a summary even when no assessment exists yet, so dashboards keep a
// uniform shape.
func Aggregate(assessments []domain.Assessment, requirementsByFramework map[domain.Framework][]domain.Requirement) ComplianceSummary {
	byFramework := make(map[domain.Framework]*FrameworkScoreSummary)
	for _, fw := range domain.Frameworks() {
		if _, known := requirementsByFramework[fw]; known {
			byFramework[fw] = &FrameworkScoreSummary{Framework: fw}
		}
	}

	for _, a := range assessments {
		sum, ok := byFramework[a.Framework]
		if !ok {
			// Assessment against a framework absent from the catalog:
			// still counted so the partition invariant holds.
			sum = &FrameworkScoreSummary{Framework: a.Framework}
			byFramework[a.Framework] = sum
		}
		switch a.Status {
		case domain.StatusCompliant:
			sum.Compliant++
		case domain.StatusPartiallyCompliant:
			sum.Partial++
		case domain.StatusNonCompliant:
			sum.NonCompliant++
		case domain.StatusNotApplicable:
			sum.NotApplicable++
		}
	}

	order := make([]domain.Framework, 0, len(byFramework))
	for _, fw := range domain.Frameworks() {
		if _, ok := byFramework[fw]; ok {
			order = append(order, fw)
		}
	}
	// Frameworks outside the closed set (possible only with a catalog
	// overlay) go last, sorted for determinism.
	extras := make([]domain.Framework, 0)
	for fw := range byFramework {
		if !domain.ValidFramework(fw) {
			extras = append(extras, fw)
		}
	}
	sort.Slice(extras, func(i, j int) bool { return extras[i] < extras[j] })
	order = append(order, extras...)

	var out ComplianceSummary
	total, initialized := 0, 0
	for _, fw := range order {
		sum := byFramework[fw]
		denom := sum.Compliant + sum.Partial + sum.NonCompliant
		if denom > 0 {
			sum.Score = int(math.Round(100 * float64(sum.Compliant) / float64(denom)))
		}
		if sum.Initialized() {
			total += sum.Score
			initialized++
		}
		out.Frameworks = append(out.Frameworks, *sum)
	}
	if initialized > 0 {
		out.Global = int(math.Round(float64(total) / float64(initialized)))
	}
	return out
}
