// Package scoring holds the pure computation core of the portal: risk
// scoring, compliance aggregation and calendar bucketing. Everything here is
// deterministic, side-effect free and total over its inputs, so callers may
// run it on every form edit or request without coordination.
package scoring

import "aigov/internal/domain"

// RiskInputs is the read-only projection of an AI system consumed by the
// risk calculator. Empty fields are legitimate "no data yet" states.
type RiskInputs struct {
	AutonomyLevel      string   `json:"autonomyLevel"`
	DataTypes          []string `json:"dataTypes"`
	AffectedPopulation []string `json:"affectedPopulation"`
	SensitiveDomains   []string `json:"sensitiveDomains"`
}

// RiskScore is a derived view, recomputed on every input change and never
// stored independently of its source inputs.
type RiskScore struct {
	Score int              `json:"score"`
	Level domain.RiskLevel `json:"level"`
}

// Weighted additive scoring: each contributing factor adds a fixed point
// value, final score clamped to [0,100].
const (
	sensitiveDomainPoints = 8
	sensitiveDomainCap    = 30
	sensitiveDataPoints   = 10
	vulnerablePopPoints   = 7
)

var autonomyWeights = map[string]int{
	domain.AutonomyHumanInCommand: 0,
	domain.AutonomyHumanInTheLoop: 10,
	domain.AutonomyHumanOnTheLoop: 20,
	domain.AutonomyFullAuto:       35,
}

var sensitiveDataTypes = map[string]bool{
	"personal_data":  true,
	"financial_data": true,
	"sensitive_data": true,
}

var vulnerablePopulations = map[string]bool{
	"minors":     true,
	"vulnerable": true,
	"public":     true,
}

// ComputeRiskScore maps risk inputs to a score and level. Unknown or missing
// autonomy levels contribute 0; unknown data types and populations are
// ignored. The prohibited level is never produced here, only by manual
// override on the stored system.
func ComputeRiskScore(in RiskInputs) RiskScore {
	score := autonomyWeights[in.AutonomyLevel]

	domainPoints := 0
	for range in.SensitiveDomains {
		domainPoints += sensitiveDomainPoints
	}
	if domainPoints > sensitiveDomainCap {
		domainPoints = sensitiveDomainCap
	}
	score += domainPoints

	for _, dt := range in.DataTypes {
		if sensitiveDataTypes[dt] {
			score += sensitiveDataPoints
		}
	}
	for _, pop := range in.AffectedPopulation {
		if vulnerablePopulations[pop] {
			score += vulnerablePopPoints
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return RiskScore{Score: score, Level: levelFor(score)}
}

func levelFor(score int) domain.RiskLevel {
	switch {
	case score < 20:
		return domain.RiskMinimal
	case score < 40:
		return domain.RiskLimited
	case score < 70:
		return domain.RiskHigh
	default:
		return domain.RiskCritical
	}
}
