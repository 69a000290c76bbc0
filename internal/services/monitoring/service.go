// Package monitoring records metric points for deployed systems and serves
// the chart aggregations of the portal dashboards: monthly incident series,
// severity/status distributions and per-system metric series.
package monitoring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aigov/internal/domain"
	"aigov/internal/ports"
	"aigov/internal/scoring"
)

// IncidentSeverities are the stacked-chart categories, every bucket carries
// all of them.
var IncidentSeverities = []string{"low", "medium", "high", "critical"}

const (
	defaultMonths = 6
	maxMonths     = 24
)

// Cache is an optional read-through cache for chart payloads. A nil Cache
// disables caching; errors are logged by the implementation and treated as
// misses.
type Cache interface {
	Get(ctx context.Context, key string, out any) bool
	Set(ctx context.Context, key string, v any)
}

type Service struct {
	incidents ports.IncidentRepository
	metrics   ports.MetricRepository
	cache     Cache
	now       func() time.Time
}

func New(incidents ports.IncidentRepository, metrics ports.MetricRepository, cache Cache) *Service {
	return &Service{incidents: incidents, metrics: metrics, cache: cache, now: time.Now}
}

// WithClock overrides the clock for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) RecordMetric(ctx context.Context, orgID, systemID, name string, value float64, recordedAt time.Time) (domain.Metric, error) {
	if recordedAt.IsZero() {
		recordedAt = s.now()
	}
	m := domain.Metric{
		ID:         uuid.NewString(),
		OrgID:      orgID,
		SystemRef:  systemID,
		Name:       name,
		Value:      value,
		RecordedAt: recordedAt,
	}
	if err := s.metrics.RecordMetric(ctx, m); err != nil {
		return domain.Metric{}, fmt.Errorf("record metric: %w", err)
	}
	return m, nil
}

func (s *Service) ListMetrics(ctx context.Context, orgID, systemID string, months int) ([]domain.Metric, error) {
	months = clampMonths(months)
	since := monthWindowStart(s.now(), months)
	return s.metrics.ListMetricsBySystem(ctx, orgID, systemID, since)
}

// IncidentSeries buckets the org's incidents into trailing calendar months
// by severity, the shape the stacked chart renders directly.
func (s *Service) IncidentSeries(ctx context.Context, orgID string, months int) ([]scoring.MonthBucket, error) {
	months = clampMonths(months)
	key := fmt.Sprintf("dash:incidents:%s:%d:%s", orgID, months, s.now().Format("2006-01"))
	var cached []scoring.MonthBucket
	if s.cache != nil && s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	now := s.now()
	incidents, err := s.incidents.ListIncidentsSince(ctx, orgID, monthWindowStart(now, months))
	if err != nil {
		return nil, fmt.Errorf("list incidents: %w", err)
	}
	records := make([]scoring.DatedRecord, 0, len(incidents))
	for _, in := range incidents {
		records = append(records, scoring.DatedRecord{Category: in.Severity, Date: in.OccurredAt})
	}
	buckets := scoring.BucketByMonth(records, months, IncidentSeverities, now)
	if s.cache != nil {
		s.cache.Set(ctx, key, buckets)
	}
	return buckets, nil
}

// Distribution is the severity and status breakdown of all incidents of an
// org, for the dashboard donut charts.
type Distribution struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"bySeverity"`
	ByStatus   map[string]int `json:"byStatus"`
}

func (s *Service) IncidentDistribution(ctx context.Context, orgID string) (Distribution, error) {
	incidents, err := s.incidents.ListIncidents(ctx, orgID)
	if err != nil {
		return Distribution{}, fmt.Errorf("list incidents: %w", err)
	}
	dist := Distribution{
		BySeverity: make(map[string]int, len(IncidentSeverities)),
		ByStatus:   make(map[string]int),
	}
	for _, sev := range IncidentSeverities {
		dist.BySeverity[sev] = 0
	}
	for _, in := range incidents {
		dist.Total++
		dist.BySeverity[in.Severity]++
		dist.ByStatus[in.Status]++
	}
	return dist, nil
}

// MetricSeries buckets metric points by metric name into trailing calendar
// months.
func (s *Service) MetricSeries(ctx context.Context, orgID, systemID string, months int) ([]scoring.MonthBucket, error) {
	months = clampMonths(months)
	now := s.now()
	points, err := s.metrics.ListMetricsBySystem(ctx, orgID, systemID, monthWindowStart(now, months))
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	names := make([]string, 0)
	seen := make(map[string]bool)
	records := make([]scoring.DatedRecord, 0, len(points))
	for _, m := range points {
		if !seen[m.Name] {
			seen[m.Name] = true
			names = append(names, m.Name)
		}
		records = append(records, scoring.DatedRecord{Category: m.Name, Date: m.RecordedAt})
	}
	return scoring.BucketByMonth(records, months, names, now), nil
}

func clampMonths(months int) int {
	if months < 1 {
		return defaultMonths
	}
	if months > maxMonths {
		return maxMonths
	}
	return months
}

// monthWindowStart is the first instant of the oldest bucketed month.
func monthWindowStart(now time.Time, months int) time.Time {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start.AddDate(0, 1-months, 0)
}
