package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aigov/internal/domain"
)

func TestComputeRiskScoreEmptyInputs(t *testing.T) {
	got := ComputeRiskScore(RiskInputs{})
	assert.Equal(t, 0, got.Score)
	assert.Equal(t, domain.RiskMinimal, got.Level)
}

func TestComputeRiskScoreScenario(t *testing.T) {
	// 35 (autonomy) + 10 (data) + 7 (population) + 8 (domain) = 60
	got := ComputeRiskScore(RiskInputs{
		AutonomyLevel:      domain.AutonomyFullAuto,
		DataTypes:          []string{"personal_data"},
		AffectedPopulation: []string{"minors"},
		SensitiveDomains:   []string{"health"},
	})
	assert.Equal(t, 60, got.Score)
	assert.Equal(t, domain.RiskHigh, got.Level)
}

func TestComputeRiskScoreAutonomyWeights(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{domain.AutonomyHumanInCommand, 0},
		{domain.AutonomyHumanInTheLoop, 10},
		{domain.AutonomyHumanOnTheLoop, 20},
		{domain.AutonomyFullAuto, 35},
		{"", 0},
		{"something_else", 0},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got := ComputeRiskScore(RiskInputs{AutonomyLevel: tt.level})
			assert.Equal(t, tt.want, got.Score)
		})
	}
}

func TestComputeRiskScoreAutonomyMonotonic(t *testing.T) {
	fixed := RiskInputs{
		DataTypes:          []string{"personal_data", "usage_data"},
		AffectedPopulation: []string{"public"},
		SensitiveDomains:   []string{"employment"},
	}
	levels := []string{
		domain.AutonomyHumanInCommand,
		domain.AutonomyHumanInTheLoop,
		domain.AutonomyHumanOnTheLoop,
		domain.AutonomyFullAuto,
	}
	prev := -1
	for _, lv := range levels {
		in := fixed
		in.AutonomyLevel = lv
		got := ComputeRiskScore(in)
		assert.GreaterOrEqual(t, got.Score, prev, "autonomy %s decreased the score", lv)
		prev = got.Score
	}
}

func TestComputeRiskScoreSensitiveDomainCap(t *testing.T) {
	// 4 domains reach the 30-point sub-budget; more must not add points.
	four := ComputeRiskScore(RiskInputs{
		SensitiveDomains: []string{"health", "justice", "employment", "education"},
	})
	assert.Equal(t, 30, four.Score)

	seven := ComputeRiskScore(RiskInputs{
		SensitiveDomains: []string{"health", "justice", "employment", "education", "housing", "credit", "policing"},
	})
	assert.Equal(t, 30, seven.Score)
}

func TestComputeRiskScoreNonSensitiveInputsIgnored(t *testing.T) {
	got := ComputeRiskScore(RiskInputs{
		DataTypes:          []string{"telemetry", "aggregated_stats"},
		AffectedPopulation: []string{"employees"},
	})
	assert.Equal(t, 0, got.Score)
}

func TestComputeRiskScoreBounded(t *testing.T) {
	// Stacked worst case stays clamped at 100.
	got := ComputeRiskScore(RiskInputs{
		AutonomyLevel:      domain.AutonomyFullAuto,
		DataTypes:          []string{"personal_data", "financial_data", "sensitive_data", "personal_data"},
		AffectedPopulation: []string{"minors", "vulnerable", "public", "minors"},
		SensitiveDomains:   []string{"health", "justice", "employment", "education", "housing"},
	})
	assert.Equal(t, 100, got.Score)
	assert.Equal(t, domain.RiskCritical, got.Level)
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		score int
		want  domain.RiskLevel
	}{
		{0, domain.RiskMinimal},
		{19, domain.RiskMinimal},
		{20, domain.RiskLimited},
		{39, domain.RiskLimited},
		{40, domain.RiskHigh},
		{69, domain.RiskHigh},
		{70, domain.RiskCritical},
		{100, domain.RiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, levelFor(tt.score), "score %d", tt.score)
	}
}
