package monitoring

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/adapters/memory"
	"aigov/internal/domain"
)

var testNow = time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC)

func newService(store *memory.Store) *Service {
	return New(store, store, nil).WithClock(func() time.Time { return testNow })
}

func addIncident(t *testing.T, store *memory.Store, severity, status string, occurred time.Time) {
	t.Helper()
	require.NoError(t, store.CreateIncident(context.Background(), domain.Incident{
		ID:         uuid.NewString(),
		OrgID:      "org-1",
		Category:   "bias",
		Severity:   severity,
		Status:     status,
		OccurredAt: occurred,
	}))
}

func TestIncidentSeriesShape(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	addIncident(t, store, "high", "open", time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC))
	addIncident(t, store, "high", "open", time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC))
	addIncident(t, store, "low", "resolved", time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
	// Outside the window: must not appear.
	addIncident(t, store, "critical", "open", time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC))

	buckets, err := svc.IncidentSeries(context.Background(), "org-1", 6)
	require.NoError(t, err)
	require.Len(t, buckets, 6)

	for _, b := range buckets {
		for _, sev := range IncidentSeverities {
			_, ok := b.Counts[sev]
			assert.True(t, ok, "bucket %s missing severity %s", b.Month, sev)
		}
	}
	assert.Equal(t, 1, buckets[5].Counts["high"]) // August
	assert.Equal(t, 1, buckets[4].Counts["high"]) // July
	assert.Equal(t, 1, buckets[4].Counts["low"])
	total := 0
	for _, b := range buckets {
		for _, n := range b.Counts {
			total += n
		}
	}
	assert.Equal(t, 3, total)
}

func TestIncidentSeriesClampsMonths(t *testing.T) {
	svc := newService(memory.New())

	buckets, err := svc.IncidentSeries(context.Background(), "org-1", 0)
	require.NoError(t, err)
	assert.Len(t, buckets, 6)

	buckets, err = svc.IncidentSeries(context.Background(), "org-1", 500)
	require.NoError(t, err)
	assert.Len(t, buckets, 24)
}

func TestIncidentDistribution(t *testing.T) {
	store := memory.New()
	svc := newService(store)

	addIncident(t, store, "high", "open", testNow)
	addIncident(t, store, "high", "resolved", testNow)
	addIncident(t, store, "low", "open", testNow)

	dist, err := svc.IncidentDistribution(context.Background(), "org-1")
	require.NoError(t, err)
	assert.Equal(t, 3, dist.Total)
	assert.Equal(t, 2, dist.BySeverity["high"])
	assert.Equal(t, 1, dist.BySeverity["low"])
	assert.Equal(t, 0, dist.BySeverity["critical"])
	assert.Equal(t, 2, dist.ByStatus["open"])
}

func TestRecordAndListMetrics(t *testing.T) {
	store := memory.New()
	svc := newService(store)
	ctx := context.Background()

	m, err := svc.RecordMetric(ctx, "org-1", "sys-1", "drift_alerts", 2, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, testNow, m.RecordedAt)

	_, err = svc.RecordMetric(ctx, "org-1", "sys-1", "drift_alerts", 1, time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	points, err := svc.ListMetrics(ctx, "org-1", "sys-1", 6)
	require.NoError(t, err)
	assert.Len(t, points, 2)

	series, err := svc.MetricSeries(ctx, "org-1", "sys-1", 6)
	require.NoError(t, err)
	require.Len(t, series, 6)
	assert.Equal(t, 1, series[3].Counts["drift_alerts"]) // June
	assert.Equal(t, 1, series[5].Counts["drift_alerts"]) // August
}

type fakeCache struct {
	data map[string][]byte
	hits int
}

func (f *fakeCache) Get(_ context.Context, key string, out any) bool {
	_, ok := f.data[key]
	if ok {
		f.hits++
	}
	return false // always miss on decode to keep the fake simple
}

func (f *fakeCache) Set(_ context.Context, key string, _ any) {
	if f.data == nil {
		f.data = map[string][]byte{}
	}
	f.data[key] = []byte("set")
}

func TestIncidentSeriesWritesCache(t *testing.T) {
	store := memory.New()
	cache := &fakeCache{}
	svc := New(store, store, cache).WithClock(func() time.Time { return testNow })

	_, err := svc.IncidentSeries(context.Background(), "org-1", 6)
	require.NoError(t, err)
	assert.Len(t, cache.data, 1)
}
