package router_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sft-api/backend/config"
	"github.com/sft-api/backend/internal/infra/dependency"
	"github.com/sft-api/backend/internal/integration/adapters"
	"github.com/sft-api/backend/internal/integration/entrypoint/dto"
	"github.com/sft-api/backend/internal/integration/persistence/persistencetest"
)

const testSecret = "router-test-secret"

type testServer struct {
	engine *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		JWT:    config.JWTConfig{Secret: testSecret},
		RateLimit: config.RateLimitConfig{
			Enabled:     false,
			MaxRequests: 10,
			Window:      time.Minute,
		},
	}
	injector := dependency.NewInjector(cfg, persistencetest.NewDB(t), nil)

	token, err := adapters.NewTokenService(testSecret).GenerateAccessToken(uuid.New(), "user@example.com", time.Hour)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	return &testServer{
		engine: injector.Router.Setup(cfg.Server.Environment),
		token:  token,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode %q: %v", w.Body.String(), err)
	}
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil, false)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"database":"connected"`) {
		t.Errorf("GET /health body = %s, want database connected", w.Body.String())
	}
}

func TestRouter_RequiresAuthentication(t *testing.T) {
	s := newTestServer(t)

	paths := []string{
		"/api/v1/users/me",
		"/api/v1/incomes",
		"/api/v1/expenditures",
		"/api/v1/disposable-budget",
		"/api/v1/disposable-spending",
		"/api/v1/summaries/monthly",
		"/api/v1/summaries/weekly",
		"/api/v1/summaries/calendar",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := s.do(t, http.MethodGet, path, nil, false)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("GET %s status = %d, want 401", path, w.Code)
			}
		})
	}
}

func TestRouter_RecurringIncomeFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/incomes", map[string]interface{}{
		"title":    "Salary",
		"amount":   250000,
		"date":     "2025-01-31",
		"repeated": "MONTHLY",
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /incomes status = %d, body = %s", w.Code, w.Body.String())
	}
	var created dto.CreateEntryResponse
	decode(t, w, &created)
	if created.Generated == 0 {
		t.Error("Generated = 0, want a materialized series")
	}
	if created.RepeatGroupID == nil {
		t.Error("RepeatGroupID = nil, want series id")
	}

	w = s.do(t, http.MethodGet, "/api/v1/incomes?month=2025-02", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /incomes status = %d", w.Code)
	}
	var feb dto.EntryListResponse
	decode(t, w, &feb)
	if len(feb.Entries) != 1 {
		t.Fatalf("February entries = %d, want 1", len(feb.Entries))
	}
	if !strings.HasPrefix(feb.Entries[0].Date, "2025-02-28") {
		t.Errorf("February date = %s, want clamped to 2025-02-28", feb.Entries[0].Date)
	}

	newAmount := int64(300000)
	w = s.do(t, http.MethodPatch, "/api/v1/incomes/"+feb.Entries[0].ID, map[string]interface{}{
		"amount": newAmount,
	}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("PATCH /incomes status = %d, body = %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/v1/summaries/monthly?month=2025-03", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /summaries/monthly status = %d", w.Code)
	}
	var summary dto.MonthlySummaryResponse
	decode(t, w, &summary)
	if summary.Income != newAmount {
		t.Errorf("March income = %d, want propagated %d", summary.Income, newAmount)
	}

	w = s.do(t, http.MethodDelete, "/api/v1/incomes/"+feb.Entries[0].ID, nil, true)
	if w.Code != http.StatusNoContent {
		t.Fatalf("DELETE /incomes status = %d", w.Code)
	}
	w = s.do(t, http.MethodGet, "/api/v1/incomes?month=2025-02", nil, true)
	decode(t, w, &feb)
	if len(feb.Entries) != 0 {
		t.Errorf("February entries after delete = %d, want 0", len(feb.Entries))
	}
}

func TestRouter_EntryErrors(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"missing amount", http.MethodPost, "/api/v1/expenditures", map[string]interface{}{"title": "Rent", "date": "2025-01-01"}, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/api/v1/expenditures", map[string]interface{}{"title": "Rent", "amount": 1, "date": "01/01/2025"}, http.StatusBadRequest},
		{"unknown type", http.MethodPost, "/api/v1/expenditures", map[string]interface{}{"title": "Rent", "amount": 1, "date": "2025-01-01", "type": "GIFT"}, http.StatusBadRequest},
		{"bad id", http.MethodPatch, "/api/v1/incomes/not-a-uuid", map[string]interface{}{"amount": 1}, http.StatusBadRequest},
		{"unknown id", http.MethodDelete, "/api/v1/incomes/" + uuid.NewString(), nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body, true)
			if w.Code != tt.want {
				t.Errorf("%s %s status = %d, want %d, body = %s", tt.method, tt.path, w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestRouter_DisposableAndUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/disposable-budget?month=2025-05", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /disposable-budget status = %d, body = %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodPost, "/api/v1/disposable-spending", map[string]interface{}{
		"title":  "Coffee",
		"amount": 450,
		"date":   "2025-05-02",
	}, true)
	if w.Code != http.StatusCreated {
		t.Fatalf("POST /disposable-spending status = %d, body = %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/v1/summaries/calendar?month=2025-05", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /summaries/calendar status = %d", w.Code)
	}
	var days []dto.DaySummaryResponse
	decode(t, w, &days)
	if len(days) != 31 {
		t.Errorf("calendar days = %d, want 31", len(days))
	}

	w = s.do(t, http.MethodGet, "/api/v1/users/me", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /users/me status = %d, body = %s", w.Code, w.Body.String())
	}
	var me dto.UserResponse
	decode(t, w, &me)
	if me.LastRepeatCheck == nil {
		t.Error("LastRepeatCheck = nil, want maintenance marker")
	}
}

func TestRouter_Currency(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/currency", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /currency status = %d, body = %s", w.Code, w.Body.String())
	}
	var pref dto.CurrencyResponse
	decode(t, w, &pref)
	if pref.Currency != "GBP" {
		t.Errorf("default currency = %q, want GBP", pref.Currency)
	}

	w = s.do(t, http.MethodPatch, "/api/v1/currency/"+pref.ID, map[string]interface{}{"currency": "EUR"}, true)
	if w.Code != http.StatusOK {
		t.Fatalf("PATCH /currency status = %d, body = %s", w.Code, w.Body.String())
	}

	w = s.do(t, http.MethodGet, "/api/v1/summaries/monthly?month=2025-05", nil, true)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /summaries/monthly status = %d", w.Code)
	}
	var monthly dto.MonthlySummaryResponse
	decode(t, w, &monthly)
	if monthly.Currency != "EUR" {
		t.Errorf("monthly summary currency = %q, want EUR", monthly.Currency)
	}

	w = s.do(t, http.MethodGet, "/api/v1/summaries/weekly?month=2025-05", nil, true)
	var weekly dto.WeeklySummaryListResponse
	decode(t, w, &weekly)
	if weekly.Currency != "EUR" {
		t.Errorf("weekly summary currency = %q, want EUR", weekly.Currency)
	}

	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
	}{
		{"retrieve own", http.MethodGet, "/api/v1/currency/" + pref.ID, nil, http.StatusOK},
		{"unsupported code", http.MethodPatch, "/api/v1/currency/" + pref.ID, map[string]interface{}{"currency": "BTC"}, http.StatusBadRequest},
		{"unknown id", http.MethodPatch, "/api/v1/currency/" + uuid.NewString(), map[string]interface{}{"currency": "USD"}, http.StatusForbidden},
		{"retrieve unknown id", http.MethodGet, "/api/v1/currency/" + uuid.NewString(), nil, http.StatusForbidden},
		{"bad id", http.MethodPatch, "/api/v1/currency/not-a-uuid", map[string]interface{}{"currency": "USD"}, http.StatusBadRequest},
		{"create is not allowed", http.MethodPost, "/api/v1/currency", map[string]interface{}{"currency": "USD"}, http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := s.do(t, tt.method, tt.path, tt.body, true)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}
