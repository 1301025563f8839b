// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	_ "github.com/tomtom215/wayfarer/docs"
	"github.com/tomtom215/wayfarer/internal/analytics"
	"github.com/tomtom215/wayfarer/internal/config"
	"github.com/tomtom215/wayfarer/internal/dataset"
	"github.com/tomtom215/wayfarer/internal/events"
	"github.com/tomtom215/wayfarer/internal/itinerary"
	"github.com/tomtom215/wayfarer/internal/models"
	"github.com/tomtom215/wayfarer/internal/recommend"
	"github.com/tomtom215/wayfarer/internal/session"
	"github.com/tomtom215/wayfarer/internal/supervisor/services"
)

const fixturePath = "../dataset/testdata/experiences.csv"

// recordingPublisher captures published events.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
	events []any
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.events = append(p.events, payload)
	return nil
}

func (p *recordingPublisher) State() string { return "closed" }

func (p *recordingPublisher) last() (string, any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.topics) == 0 {
		return "", nil
	}
	return p.topics[len(p.topics)-1], p.events[len(p.events)-1]
}

type testServer struct {
	handler  http.Handler
	holder   *dataset.Holder
	sessions *session.MemoryStore
	events   *recordingPublisher
}

type serverOptions struct {
	store          *dataset.Store
	reloadInterval time.Duration
}

func newTestServer(t *testing.T, opts serverOptions) *testServer {
	t.Helper()

	holder := dataset.NewHolder(opts.store)
	engine, err := recommend.NewEngine(nil, holder, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	planner, err := itinerary.NewPlanner(nil, engine, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewPlanner: %v", err)
	}
	summaries, err := analytics.NewService(analytics.Config{TopN: 5}, holder, nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	reloader := services.NewDatasetService(holder, services.DatasetServiceConfig{
		Path:        fixturePath,
		MinInterval: opts.reloadInterval,
		Burst:       1,
	}, nil, zerolog.Nop())

	cfg := config.Default()
	cfg.Security.RateLimitDisabled = true
	cfg.Server.Timeout = 5 * time.Second

	sessions := session.NewMemoryStore()
	pub := &recordingPublisher{}
	h, err := NewHandler(Deps{
		Recommender: engine,
		Planner:     planner,
		Analytics:   summaries,
		Dataset:     reloader,
		Sessions:    sessions,
		Events:      pub,
		Config:      cfg,
		Version:     "test",
	})
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	mw := NewChiMiddleware(ChiMiddlewareConfigFrom(&cfg.Security))
	return &testServer{
		handler:  NewRouter(h, mw).SetupChi(),
		holder:   holder,
		sessions: sessions,
		events:   pub,
	}
}

func loadFixture(t *testing.T) *dataset.Store {
	t.Helper()
	store, err := dataset.Load(fixturePath)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	return store
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

// envelope decodes a response whose data has a known type.
type envelope[T any] struct {
	Success bool      `json:"success"`
	Data    T         `json:"data"`
	Error   *APIError `json:"error"`
	Meta    *APIMeta  `json:"meta"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var e envelope[T]
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return e
}

func artHistoryBody(days int) map[string]interface{} {
	return map[string]interface{}{
		"age":                34,
		"interests":          []string{"Art", "History"},
		"preferred_duration": days,
		"budget_preference":  "Mid-range",
		"start_date":         "2026-03-01",
	}
}

func TestNewHandler_RequiresDependencies(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Deps{}); err == nil {
		t.Error("expected error for missing dependencies")
	}
}

func TestItinerary_Success(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})
	w := srv.do(t, http.MethodPost, "/api/v1/itinerary", artHistoryBody(7))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decode[models.ItineraryResult](t, w)
	if !resp.Success || resp.Data.Status != models.StatusSuccess {
		t.Fatalf("response = %+v", resp)
	}
	it := resp.Data.Itinerary
	if it == nil || it.TotalDays != 7 || len(it.DailySchedule) != 7 {
		t.Fatalf("itinerary = %+v", it)
	}
	if it.StartDate != "2026-03-01" || it.DailySchedule[0].Date != "2026-03-01" {
		t.Errorf("start date = %s / %s", it.StartDate, it.DailySchedule[0].Date)
	}

	var sum models.Cents
	for _, day := range it.DailySchedule {
		sum += day.EstimatedCostUSD
	}
	if sum != it.TotalCostUSD {
		t.Errorf("total %v != sum of days %v", it.TotalCostUSD, sum)
	}

	topic, payload := srv.events.last()
	if topic != events.TopicItineraryGenerated {
		t.Fatalf("published topic = %q", topic)
	}
	ev, ok := payload.(events.ItineraryGenerated)
	if !ok || ev.Status != models.StatusSuccess || ev.Days != 7 {
		t.Errorf("event = %#v", payload)
	}
}

func TestItinerary_NoMatchIsNotAnHTTPError(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})
	body := artHistoryBody(5)
	body["budget_preference"] = "Luxury"
	body["season_preference"] = "Spring"

	w := srv.do(t, http.MethodPost, "/api/v1/itinerary", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decode[models.ItineraryResult](t, w)
	if !resp.Success {
		t.Error("envelope success should be true for a no-match result")
	}
	if resp.Data.Status != models.StatusError || !strings.Contains(resp.Data.Message, "no destinations match") {
		t.Errorf("data = %+v", resp.Data)
	}
	if resp.Data.Itinerary != nil {
		t.Error("no-match result carries an itinerary")
	}
}

func TestItinerary_BadInput(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	noInterests := artHistoryBody(7)
	noInterests["interests"] = []string{}
	badDate := artHistoryBody(7)
	badDate["start_date"] = "03/01/2026"
	badSession := artHistoryBody(7)
	badSession["session_id"] = "not-a-uuid"
	tooYoung := artHistoryBody(7)
	tooYoung["age"] = 12

	tests := []struct {
		name      string
		body      interface{}
		wantCode  string
		wantField string
	}{
		{"empty interests", noInterests, ErrCodeValidationFailed, "interests"},
		{"bad start date", badDate, ErrCodeValidationFailed, "start_date"},
		{"bad session id", badSession, ErrCodeValidationFailed, "session_id"},
		{"age out of range", tooYoung, ErrCodeValidationFailed, "age"},
		{"malformed json", `{"age": 34,`, ErrCodeBadRequest, ""},
		{"empty body", "", ErrCodeBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := srv.do(t, http.MethodPost, "/api/v1/itinerary", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
			}
			resp := decode[json.RawMessage](t, w)
			if resp.Success || resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v", resp.Error)
			}
			if tt.wantField != "" && !strings.Contains(w.Body.String(), `"`+tt.wantField) {
				t.Errorf("details do not name %s: %s", tt.wantField, w.Body.String())
			}
		})
	}
}

func TestItinerary_UnknownSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})
	body := artHistoryBody(3)
	body["session_id"] = "5b1f0c8e-6a43-4d5e-9a0b-2f3c4d5e6f70"

	w := srv.do(t, http.MethodPost, "/api/v1/itinerary", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	t.Run("default count", func(t *testing.T) {
		body := artHistoryBody(7)
		delete(body, "start_date")
		w := srv.do(t, http.MethodPost, "/api/v1/recommendations", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		resp := decode[models.RecommendationResult](t, w)
		if resp.Data.Count != 5 || len(resp.Data.Recommendations) != 5 {
			t.Fatalf("data = %+v", resp.Data)
		}
		if resp.Data.Recommendations[0].Name != "Colosseum" {
			t.Errorf("top = %q, want Colosseum", resp.Data.Recommendations[0].Name)
		}

		topic, payload := srv.events.last()
		served, ok := payload.(events.RecommendationsServed)
		if topic != events.TopicRecommendationsServed || !ok {
			t.Fatalf("event = %s %#v", topic, payload)
		}
		if served.Mode != models.ModeAll || served.Requested != 5 || served.TopName != "Colosseum" {
			t.Errorf("served = %+v", served)
		}
	})

	t.Run("cities only", func(t *testing.T) {
		body := artHistoryBody(7)
		body["count"] = 2
		body["mode"] = "cities"
		w := srv.do(t, http.MethodPost, "/api/v1/recommendations", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		resp := decode[models.RecommendationResult](t, w)
		if resp.Data.Count != 2 {
			t.Fatalf("count = %d", resp.Data.Count)
		}
		for _, rec := range resp.Data.Recommendations {
			if rec.Type != models.KindCity {
				t.Errorf("%s has type %s", rec.Name, rec.Type)
			}
		}
	})

	t.Run("invalid", func(t *testing.T) {
		zero := artHistoryBody(7)
		zero["count"] = 0
		badMode := artHistoryBody(7)
		badMode["mode"] = "museums"
		for _, body := range []map[string]interface{}{zero, badMode} {
			w := srv.do(t, http.MethodPost, "/api/v1/recommendations", body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("body %v: status = %d", body, w.Code)
			}
		}
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	w := srv.do(t, http.MethodPost, "/api/v1/sessions", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body = %s", w.Code, w.Body.String())
	}
	id := decode[session.Session](t, w).Data.ID
	if id == "" {
		t.Fatal("session has no id")
	}
	base := "/api/v1/sessions/" + id

	w = srv.do(t, http.MethodGet, base+"/itinerary", nil)
	if w.Code != http.StatusNotFound || decode[json.RawMessage](t, w).Error.Code != ErrCodeNoItinerary {
		t.Fatalf("empty session itinerary: %d %s", w.Code, w.Body.String())
	}

	body := artHistoryBody(4)
	body["session_id"] = id
	if w = srv.do(t, http.MethodPost, "/api/v1/itinerary", body); w.Code != http.StatusOK {
		t.Fatalf("plan: status = %d, body = %s", w.Code, w.Body.String())
	}

	w = srv.do(t, http.MethodGet, base+"/itinerary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("itinerary: status = %d", w.Code)
	}
	if got := decode[models.ItineraryResult](t, w).Data; got.Itinerary == nil || got.Itinerary.TotalDays != 4 {
		t.Errorf("stored itinerary = %+v", got)
	}

	w = srv.do(t, http.MethodGet, base+"/itinerary/report", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report: status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("report Content-Type = %q", ct)
	}
	if !strings.Contains(w.Body.String(), "Your Personalized Travel Itinerary") {
		t.Errorf("report = %q", w.Body.String())
	}

	w = srv.do(t, http.MethodGet, base, nil)
	got := decode[session.Session](t, w).Data
	if len(got.History) != 1 || got.History[0].TotalDays != 4 {
		t.Errorf("history = %+v", got.History)
	}

	if w = srv.do(t, http.MethodDelete, base, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete: status = %d", w.Code)
	}
	if w = srv.do(t, http.MethodGet, base, nil); w.Code != http.StatusNotFound {
		t.Errorf("get after delete: status = %d", w.Code)
	}
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})
	s := session.New(-time.Minute)
	if err := srv.sessions.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	w := srv.do(t, http.MethodGet, "/api/v1/sessions/"+s.ID, nil)
	if w.Code != http.StatusGone {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if code := decode[json.RawMessage](t, w).Error.Code; code != ErrCodeSessionExpired {
		t.Errorf("code = %s", code)
	}
}

func TestItinerary_ConcurrentSessionPlans(t *testing.T) {
	t.Parallel()

	const requests = 6
	srv := newTestServer(t, serverOptions{store: loadFixture(t)})
	s := session.New(time.Hour)
	if err := srv.sessions.Create(context.Background(), s); err != nil {
		t.Fatalf("Create: %v", err)
	}

	body := artHistoryBody(3)
	body["session_id"] = s.ID
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}

	codes := make([]int, requests)
	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/itinerary", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			srv.handler.ServeHTTP(w, req)
			codes[i] = w.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		if code != http.StatusOK {
			t.Fatalf("request %d: status = %d", i, code)
		}
	}
	got, err := srv.sessions.Get(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.History) != requests {
		t.Errorf("history has %d entries, want %d", len(got.History), requests)
	}
}

func TestAnalytics(t *testing.T) {
	t.Parallel()

	store := loadFixture(t)
	srv := newTestServer(t, serverOptions{store: store})

	w := srv.do(t, http.MethodGet, "/api/v1/analytics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	resp := decode[models.AnalyticsSummary](t, w)
	if resp.Data.DatasetStats.TotalRecords != store.Len() {
		t.Errorf("total_records = %d, want %d", resp.Data.DatasetStats.TotalRecords, store.Len())
	}
}

func TestNoDataset(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{})

	tests := []struct {
		method string
		path   string
		body   interface{}
		want   int
	}{
		{http.MethodGet, "/api/v1/analytics", nil, http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/dataset", nil, http.StatusServiceUnavailable},
		{http.MethodPost, "/api/v1/itinerary", artHistoryBody(3), http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/health/ready", nil, http.StatusServiceUnavailable},
		{http.MethodGet, "/api/v1/health/live", nil, http.StatusOK},
	}
	for _, tt := range tests {
		w := srv.do(t, tt.method, tt.path, tt.body)
		if w.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, w.Code, tt.want)
		}
	}

	w := srv.do(t, http.MethodGet, "/api/v1/health", nil)
	if got := decode[HealthStatus](t, w).Data; got.Status != "degraded" || got.DatasetLoaded {
		t.Errorf("health = %+v", got)
	}
}

func TestDatasetInfoAndReload(t *testing.T) {
	t.Parallel()

	store := loadFixture(t)
	srv := newTestServer(t, serverOptions{store: store, reloadInterval: time.Hour})

	w := srv.do(t, http.MethodGet, "/api/v1/dataset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("info: status = %d", w.Code)
	}
	if info := decode[dataset.Info](t, w).Data; info.Records != store.Len() || info.Version != store.Version() {
		t.Errorf("info = %+v", info)
	}

	w = srv.do(t, http.MethodPost, "/api/v1/dataset/reload", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("reload: status = %d, body = %s", w.Code, w.Body.String())
	}
	if info := decode[dataset.Info](t, w).Data; info.Records != store.Len() {
		t.Errorf("reloaded info = %+v", info)
	}
	if srv.holder.Current() == store {
		t.Error("reload did not swap the store")
	}

	w = srv.do(t, http.MethodPost, "/api/v1/dataset/reload", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("second reload: status = %d, want 429", w.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	w := srv.do(t, http.MethodGet, "/api/v1/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	health := decode[HealthStatus](t, w).Data
	if health.Status != "healthy" || !health.DatasetLoaded || health.Dataset == nil {
		t.Errorf("health = %+v", health)
	}
	if health.Version != "test" || health.Events != "closed" {
		t.Errorf("version/events = %q/%q", health.Version, health.Events)
	}

	if w = srv.do(t, http.MethodGet, "/api/v1/health/ready", nil); w.Code != http.StatusOK {
		t.Errorf("ready: status = %d", w.Code)
	}
}

func TestRouting(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"unknown route", http.MethodGet, "/api/v1/nope", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/api/v1/itinerary", http.StatusMethodNotAllowed},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := srv.do(t, tt.method, tt.path, nil)
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestRequestIDPropagation(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "upstream-id-42")
	w := httptest.NewRecorder()
	srv.handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "upstream-id-42" {
		t.Errorf("X-Request-ID header = %q", got)
	}
	if meta := decode[json.RawMessage](t, w).Meta; meta == nil || meta.RequestID != "upstream-id-42" {
		t.Errorf("meta = %+v", meta)
	}
}

func TestSwaggerDocumentsEveryRoute(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, serverOptions{store: loadFixture(t)})

	w := srv.do(t, http.MethodGet, "/swagger/index.html", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("index: status = %d", w.Code)
	}

	w = srv.do(t, http.MethodGet, "/swagger/doc.json", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("doc.json: status = %d, body = %s", w.Code, w.Body.String())
	}
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	if doc.BasePath != "/api/v1" {
		t.Errorf("basePath = %q", doc.BasePath)
	}

	routes, ok := srv.handler.(chi.Routes)
	if !ok {
		t.Fatalf("handler %T does not expose routes", srv.handler)
	}
	walk := func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if !strings.HasPrefix(route, doc.BasePath+"/") {
			return nil
		}
		path := strings.TrimSuffix(strings.TrimPrefix(route, doc.BasePath), "/")
		if _, ok := doc.Paths[path][strings.ToLower(method)]; !ok {
			t.Errorf("%s %s is not documented", method, path)
		}
		return nil
	}
	if err := chi.Walk(routes, walk); err != nil {
		t.Fatalf("Walk: %v", err)
	}
}
