package domain

import "time"

// Core domain models used internally. API request/response shapes live in the
// HTTP adapter; keep these decoupled where helpful.

// Framework identifies a regulatory framework tracked by the portal. The set
// is closed: requirements, assessments and summaries are keyed by it.
type Framework string

const (
	FrameworkAIAct     Framework = "ai_act"
	FrameworkGDPR      Framework = "gdpr"
	FrameworkLoi25     Framework = "loi_25"
	FrameworkISO42001  Framework = "iso_42001"
	FrameworkNISTAIRMF Framework = "nist_ai_rmf"
)

// Frameworks returns all known frameworks in stable display order.
func Frameworks() []Framework {
	return []Framework{
		FrameworkAIAct,
		FrameworkGDPR,
		FrameworkLoi25,
		FrameworkISO42001,
		FrameworkNISTAIRMF,
	}
}

// ValidFramework reports whether fw is one of the known frameworks.
func ValidFramework(fw Framework) bool {
	for _, f := range Frameworks() {
		if f == fw {
			return true
		}
	}
	return false
}

// ComplianceStatus is the assessed state of one requirement for one org.
type ComplianceStatus string

const (
	StatusCompliant          ComplianceStatus = "compliant"
	StatusPartiallyCompliant ComplianceStatus = "partially_compliant"
	StatusNonCompliant       ComplianceStatus = "non_compliant"
	StatusNotApplicable      ComplianceStatus = "not_applicable"
)

func (s ComplianceStatus) Valid() bool {
	switch s {
	case StatusCompliant, StatusPartiallyCompliant, StatusNonCompliant, StatusNotApplicable:
		return true
	}
	return false
}

// RiskLevel is the coarse bucket derived from a risk score. Prohibited is
// never derived from the score; it is only set by manual override.
type RiskLevel string

const (
	RiskMinimal    RiskLevel = "minimal"
	RiskLimited    RiskLevel = "limited"
	RiskHigh       RiskLevel = "high"
	RiskCritical   RiskLevel = "critical"
	RiskProhibited RiskLevel = "prohibited"
)

// Autonomy levels, ordered by increasing machine autonomy.
const (
	AutonomyHumanInCommand = "human_in_command"
	AutonomyHumanInTheLoop = "human_in_the_loop"
	AutonomyHumanOnTheLoop = "human_on_the_loop"
	AutonomyFullAuto       = "full_auto"
)

// Requirement is one checkable clause within a framework. Requirements are
// loaded once from the static catalog; identity is (Framework, Code).
type Requirement struct {
	Framework    Framework `json:"framework"`
	Code         string    `json:"code"`
	TitleFr      string    `json:"titleFr"`
	ArticleRef   *string   `json:"articleRef,omitempty"`
	ModuleSource string    `json:"moduleSource"`
}

// AISystem is one registered AI system of an organization. RiskScore and
// RiskLevel are derived from the risk inputs on every save; OverrideLevel
// carries a manual classification (e.g. prohibited) that wins over the
// derived level when set.
type AISystem struct {
	ID                 string     `json:"id"`
	OrgID              string     `json:"-"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Status             string     `json:"status"` // draft|active|retired
	AutonomyLevel      string     `json:"autonomyLevel"`
	DataTypes          []string   `json:"dataTypes"`
	AffectedPopulation []string   `json:"affectedPopulation"`
	SensitiveDomains   []string   `json:"sensitiveDomains"`
	VendorRef          *string    `json:"vendorRef,omitempty"`
	RiskScore          int        `json:"riskScore"`
	RiskLevel          RiskLevel  `json:"riskLevel"`
	OverrideLevel      *RiskLevel `json:"overrideLevel,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// EffectiveRiskLevel returns the override when present, the derived level
// otherwise.
func (s AISystem) EffectiveRiskLevel() RiskLevel {
	if s.OverrideLevel != nil {
		return *s.OverrideLevel
	}
	return s.RiskLevel
}

// Assessment is the current compliance status of one org against one
// requirement. Created on first evaluation (or catalog seeding), mutated on
// status change, never deleted.
type Assessment struct {
	ID              string           `json:"id"`
	OrgID           string           `json:"-"`
	Framework       Framework        `json:"framework"`
	RequirementCode string           `json:"requirementCode"`
	Status          ComplianceStatus `json:"status"`
	Notes           string           `json:"notes"`
	LastVerifiedAt  *time.Time       `json:"lastVerifiedAt,omitempty"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}

// Incident is a bias or malfunction finding raised against an AI system.
type Incident struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"-"`
	SystemRef  *string   `json:"systemRef,omitempty"`
	Category   string    `json:"category"`
	Severity   string    `json:"severity"` // low|medium|high|critical
	Status     string    `json:"status"`   // open|investigating|resolved|closed
	Summary    string    `json:"summary"`
	OccurredAt time.Time `json:"occurredAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Vendor is an external supplier of AI systems or data. RegistrableDomain is
// the eTLD+1 of the website, normalized on save.
type Vendor struct {
	ID                string    `json:"id"`
	OrgID             string    `json:"-"`
	Name              string    `json:"name"`
	Website           *string   `json:"website,omitempty"`
	RegistrableDomain *string   `json:"registrableDomain,omitempty"`
	Jurisdiction      string    `json:"jurisdiction"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Dataset is a catalogued data source feeding one or more AI systems.
type Dataset struct {
	ID          string    `json:"id"`
	OrgID       string    `json:"-"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DataTypes   []string  `json:"dataTypes"`
	Sensitivity string    `json:"sensitivity"` // public|internal|confidential|restricted
	SystemRef   *string   `json:"systemRef,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PolicyStatus is the lifecycle state of a governance policy version.
type PolicyStatus string

const (
	PolicyDraft     PolicyStatus = "draft"
	PolicyInReview  PolicyStatus = "in_review"
	PolicyPublished PolicyStatus = "published"
	PolicyArchived  PolicyStatus = "archived"
)

// Policy is one version of a governance policy document.
type Policy struct {
	ID          string       `json:"id"`
	OrgID       string       `json:"-"`
	Title       string       `json:"title"`
	Body        string       `json:"body"`
	Version     int          `json:"version"`
	Status      PolicyStatus `json:"status"`
	PublishedAt *time.Time   `json:"publishedAt,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// ContestationStatus is the lifecycle state of an automated-decision
// contestation filed by an affected person.
type ContestationStatus string

const (
	ContestationReceived           ContestationStatus = "received"
	ContestationAssigned           ContestationStatus = "assigned"
	ContestationUnderReview        ContestationStatus = "under_review"
	ContestationDecisionRevised    ContestationStatus = "decision_revised"
	ContestationDecisionMaintained ContestationStatus = "decision_maintained"
	ContestationNotified           ContestationStatus = "notified"
	ContestationClosed             ContestationStatus = "closed"
)

// Contestation tracks one request to review an automated decision.
type Contestation struct {
	ID          string             `json:"id"`
	OrgID       string             `json:"-"`
	SystemRef   *string            `json:"systemRef,omitempty"`
	Subject     string             `json:"subject"`
	Description string             `json:"description"`
	Status      ContestationStatus `json:"status"`
	AssignedTo  *string            `json:"assignedTo,omitempty"`
	Decision    *string            `json:"decision,omitempty"`
	ReceivedAt  time.Time          `json:"receivedAt"`
	ClosedAt    *time.Time         `json:"closedAt,omitempty"`
}

// Metric is one monitoring data point for a deployed AI system.
type Metric struct {
	ID         string    `json:"id"`
	OrgID      string    `json:"-"`
	SystemRef  string    `json:"systemRef"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	RecordedAt time.Time `json:"recordedAt"`
}

// TransparencyEntry is a published public snapshot of an AI system. Rows are
// immutable; republishing a system supersedes the previous entry.
type TransparencyEntry struct {
	ID                string    `json:"id"`
	OrgID             string    `json:"-"`
	SystemRef         string    `json:"systemRef"`
	PublicName        string    `json:"publicName"`
	PublicDescription string    `json:"publicDescription"`
	RiskLevel         RiskLevel `json:"riskLevel"`
	PublishedAt       time.Time `json:"publishedAt"`
}
