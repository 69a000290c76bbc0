package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aigov/internal/adapters/memory"
	"aigov/internal/catalog"
	compliancesvc "aigov/internal/services/compliance"
	contestsvc "aigov/internal/services/contestations"
	datasetsvc "aigov/internal/services/datasets"
	incidentsvc "aigov/internal/services/incidents"
	monitoringsvc "aigov/internal/services/monitoring"
	policysvc "aigov/internal/services/policies"
	registrysvc "aigov/internal/services/registry"
	vendorsvc "aigov/internal/services/vendors"
	"aigov/internal/workers/seedrunner"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T, production bool) *httptest.Server {
	t.Helper()
	store := memory.New()
	cat := catalog.Builtin()
	seeder := seedrunner.CatalogSeeder{Assessments: store, Jobs: store, Catalog: cat}
	srv := New(Services{
		Registry:      registrysvc.New(store, store),
		Compliance:    compliancesvc.New(store, store, cat),
		Monitoring:    monitoringsvc.New(store, store, nil),
		Policies:      policysvc.New(store),
		Contestations: contestsvc.New(store),
		Vendors:       vendorsvc.New(store),
		Datasets:      datasetsvc.New(store),
		Incidents:     incidentsvc.New(store),
	}, store, seeder, []byte(testSecret), production)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, ts *httptest.Server, method, path string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Org-ID", "org-a")
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t, false)
	resp, err := ts.Client().Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestTenancyRequired(t *testing.T) {
	ts := newTestServer(t, false)
	resp, err := ts.Client().Get(ts.URL + "/v1/systems/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTenancyViaJWT(t *testing.T) {
	ts := newTestServer(t, true)

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"org": "org-jwt",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/systems/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// In production the header fallback must be rejected.
	req2, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/systems/", nil)
	require.NoError(t, err)
	req2.Header.Set("X-Org-ID", "org-header")
	resp2, err := ts.Client().Do(req2)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestSystemLifecycleAndScore(t *testing.T) {
	ts := newTestServer(t, false)

	var sys struct {
		ID        string `json:"id"`
		RiskScore int    `json:"riskScore"`
		RiskLevel string `json:"riskLevel"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/systems/", map[string]any{
		"name":               "Credit scorer",
		"autonomyLevel":      "human_on_the_loop",
		"dataTypes":          []string{"personal_data", "financial_data"},
		"affectedPopulation": []string{"public"},
		"sensitiveDomains":   []string{"credit", "insurance"},
	}, &sys)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 63, sys.RiskScore)
	assert.Equal(t, "high", sys.RiskLevel)

	// Publish, then the transparency list carries the snapshot.
	resp = doJSON(t, ts, http.MethodPost, "/v1/systems/"+sys.ID+"/publish", map[string]any{
		"publicDescription": "Assists credit decisions",
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var entries []struct {
		PublicName string `json:"publicName"`
		RiskLevel  string `json:"riskLevel"`
	}
	resp = doJSON(t, ts, http.MethodGet, "/v1/transparency", nil, &entries)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, entries, 1)
	assert.Equal(t, "Credit scorer", entries[0].PublicName)
	assert.Equal(t, "high", entries[0].RiskLevel)
}

func TestPreviewScore(t *testing.T) {
	ts := newTestServer(t, false)

	var out struct {
		Score int    `json:"score"`
		Level string `json:"level"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/systems/preview-score", map[string]any{
		"autonomyLevel": "full_auto",
		"dataTypes":     []string{"personal_data"},
	}, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 45, out.Score)
	assert.Equal(t, "high", out.Level)
}

func TestSystemValidation(t *testing.T) {
	ts := newTestServer(t, false)

	resp := doJSON(t, ts, http.MethodPost, "/v1/systems/", map[string]any{
		"description": "no name",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodGet, "/v1/systems/00000000-0000-0000-0000-000000000000", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestComplianceSeedAndSummary(t *testing.T) {
	ts := newTestServer(t, false)

	var seeded struct {
		Status   string `json:"status"`
		Inserted int    `json:"inserted"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/compliance/seed?wait=true", nil, &seeded)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", seeded.Status)
	assert.Equal(t, catalog.Builtin().Len(), seeded.Inserted)

	resp = doJSON(t, ts, http.MethodPut, "/v1/compliance/assessments/gdpr/RGPD-05", map[string]any{
		"status": "compliant",
		"notes":  "registre tenu à jour",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary struct {
		Global     int `json:"global"`
		Frameworks []struct {
			Framework     string `json:"framework"`
			NotApplicable int    `json:"notApplicable"`
			Compliant     int    `json:"compliant"`
		} `json:"frameworks"`
	}
	resp = doJSON(t, ts, http.MethodGet, "/v1/compliance/summary", nil, &summary)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, summary.Frameworks, 5)

	resp = doJSON(t, ts, http.MethodPut, "/v1/compliance/assessments/gdpr/NO-SUCH", map[string]any{
		"status": "compliant",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSeedStatusEndpoint(t *testing.T) {
	ts := newTestServer(t, false)

	var accepted struct {
		JobID string `json:"jobId"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/compliance/seed", nil, &accepted)
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.NotEmpty(t, accepted.JobID)

	var status struct {
		Status string `json:"status"`
	}
	resp = doJSON(t, ts, http.MethodGet, "/v1/compliance/seed/"+accepted.JobID, nil, &status)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "queued", status.Status)
}

func TestPolicyTransitions(t *testing.T) {
	ts := newTestServer(t, false)

	var pol struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Version int    `json:"version"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/policies/", map[string]any{
		"title": "Politique d'usage de l'IA",
		"body":  "v1",
	}, &pol)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "draft", pol.Status)

	// draft → published skips review and must be rejected.
	resp = doJSON(t, ts, http.MethodPost, "/v1/policies/"+pol.ID+"/transition", map[string]any{
		"target": "published",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	for _, target := range []string{"in_review", "published"} {
		resp = doJSON(t, ts, http.MethodPost, "/v1/policies/"+pol.ID+"/transition", map[string]any{
			"target": target,
		}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Published policies are immutable; edits go through a forked version.
	resp = doJSON(t, ts, http.MethodPut, "/v1/policies/"+pol.ID, map[string]any{
		"title": "Politique d'usage de l'IA",
		"body":  "v2",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var fork struct {
		Version int    `json:"version"`
		Status  string `json:"status"`
	}
	resp = doJSON(t, ts, http.MethodPost, "/v1/policies/"+pol.ID+"/versions", nil, &fork)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 2, fork.Version)
	assert.Equal(t, "draft", fork.Status)
}

func TestContestationFlow(t *testing.T) {
	ts := newTestServer(t, false)

	var c struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/contestations/", map[string]any{
		"subject": "Refus de crédit automatisé",
	}, &c)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "received", c.Status)

	steps := []map[string]any{
		{"action": "assign", "assignee": "analyst@example.org"},
		{"action": "start_review"},
		{"action": "decide", "revised": true, "decision": "décision annulée"},
		{"action": "notify"},
		{"action": "close"},
	}
	var last struct {
		Status string `json:"status"`
	}
	for _, step := range steps {
		resp = doJSON(t, ts, http.MethodPost, "/v1/contestations/"+c.ID+"/transition", step, &last)
		require.Equal(t, http.StatusOK, resp.StatusCode, "step %v", step["action"])
	}
	assert.Equal(t, "closed", last.Status)

	// Closed is terminal.
	resp = doJSON(t, ts, http.MethodPost, "/v1/contestations/"+c.ID+"/transition", map[string]any{
		"action": "notify",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestVendorNormalization(t *testing.T) {
	ts := newTestServer(t, false)

	var v struct {
		RegistrableDomain *string `json:"registrableDomain"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/vendors/", map[string]any{
		"name":    "Exemple SAS",
		"website": "https://www.Exemple.FR/produits",
	}, &v)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, v.RegistrableDomain)
	assert.Equal(t, "exemple.fr", *v.RegistrableDomain)
}

func TestIncidentDashboards(t *testing.T) {
	ts := newTestServer(t, false)

	for _, sev := range []string{"high", "high", "low"} {
		resp := doJSON(t, ts, http.MethodPost, "/v1/incidents/", map[string]any{
			"category": "bias",
			"severity": sev,
			"summary":  "écart de taux d'approbation",
		}, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	var buckets []struct {
		Month  string         `json:"month"`
		Counts map[string]int `json:"counts"`
	}
	resp := doJSON(t, ts, http.MethodGet, "/v1/dashboards/incidents?months=3", nil, &buckets)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, buckets, 3)
	assert.Equal(t, 2, buckets[2].Counts["high"])
	assert.Equal(t, 1, buckets[2].Counts["low"])

	var dist struct {
		Total      int            `json:"total"`
		BySeverity map[string]int `json:"bySeverity"`
	}
	resp = doJSON(t, ts, http.MethodGet, "/v1/dashboards/incidents/distribution", nil, &dist)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, dist.Total)
	assert.Equal(t, 2, dist.BySeverity["high"])
}

func TestMetricsRoundTrip(t *testing.T) {
	ts := newTestServer(t, false)

	var sys struct {
		ID string `json:"id"`
	}
	resp := doJSON(t, ts, http.MethodPost, "/v1/systems/", map[string]any{"name": "Chatbot"}, &sys)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, ts, http.MethodPost, "/v1/systems/"+sys.ID+"/metrics", map[string]any{
		"name":  "accuracy",
		"value": 0.93,
	}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var metrics []struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	resp = doJSON(t, ts, http.MethodGet, "/v1/systems/"+sys.ID+"/metrics", nil, &metrics)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, metrics, 1)
	assert.Equal(t, "accuracy", metrics[0].Name)
	assert.InDelta(t, 0.93, metrics[0].Value, 1e-9)
}

func TestCatalogRequirements(t *testing.T) {
	ts := newTestServer(t, false)

	var reqs []struct {
		Framework string `json:"framework"`
		Code      string `json:"code"`
		TitleFr   string `json:"titleFr"`
	}
	resp := doJSON(t, ts, http.MethodGet, "/v1/catalog/requirements?framework=ai_act", nil, &reqs)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, reqs)
	for _, r := range reqs {
		assert.Equal(t, "ai_act", r.Framework)
		assert.NotEmpty(t, r.TitleFr)
	}

	resp = doJSON(t, ts, http.MethodGet, "/v1/catalog/requirements?framework=unknown", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
