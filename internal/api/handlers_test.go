// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/campusgraph/campusgraph/internal/logging"
	"github.com/campusgraph/campusgraph/internal/recommend"
	"github.com/campusgraph/campusgraph/internal/store"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	st := store.NewMemory()
	st.PutProfile(recommend.Profile{ID: "ada", Name: "Ada", University: "Tech University",
		Department: "Computer Science", Skills: []string{"go", "sql"}, Interests: []string{"ai"}})
	st.PutProfile(recommend.Profile{ID: "ben", Name: "Ben", University: "Tech University",
		Skills: []string{"react"}})
	st.PutProfile(recommend.Profile{ID: "cam", Name: "Cam", University: "Tech University",
		Department: "Computer Science", Skills: []string{"go", "sql"}, Interests: []string{"ai"}})
	st.SetFriendship("ada", "ben", recommend.StatusFriends)
	st.SetFriendship("ben", "cam", recommend.StatusFriends)
	st.PutProject(recommend.Project{ID: "p1", Title: "Campus App", University: "Tech University",
		Status: recommend.ProjectStatusRecruiting, RequiredSkills: []string{"go"}, CreatorID: "ben"})

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), st, recommend.NopCache{},
		logging.NewTestLogger(io.Discard))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	handler := NewHandler(engine, logging.NewTestLogger(io.Discard))
	return NewRouter(handler, MiddlewareConfig{
		CORSOrigins:     []string{"*"},
		RateLimitReqs:   0,
		RateLimitWindow: time.Minute,
	})
}

func doRequest(t *testing.T, srv http.Handler, method, path, body string) (*httptest.ResponseRecorder, *APIResponse) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var resp APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return rec, &resp
}

func TestFriendRecommendationsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/recommendations/friends", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Status != "ok" {
		t.Fatalf("envelope status = %q, want ok", resp.Status)
	}

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data has unexpected shape: %T", resp.Data)
	}
	recs, ok := data["recommendations"].([]interface{})
	if !ok || len(recs) != 1 {
		t.Fatalf("recommendations = %v, want one entry (cam)", data["recommendations"])
	}
	first := recs[0].(map[string]interface{})
	profile := first["profile"].(map[string]interface{})
	if profile["id"] != "cam" {
		t.Errorf("recommended profile = %v, want cam", profile["id"])
	}
}

func TestFriendRecommendationsEndpoint_UnknownUser(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/users/ghost/recommendations/friends", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for unknown seed", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	recs, ok := data["recommendations"].([]interface{})
	if !ok || len(recs) != 0 {
		t.Errorf("recommendations = %v, want empty list", data["recommendations"])
	}
}

func TestCollaboratorsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/projects/p1/collaborators?limit=5", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	matches, ok := data["matches"].([]interface{})
	if !ok || len(matches) == 0 {
		t.Fatalf("matches = %v, want non-empty (ada and cam)", data["matches"])
	}
	for _, m := range matches {
		profile := m.(map[string]interface{})["profile"].(map[string]interface{})
		if profile["id"] == "ben" {
			t.Error("project creator must not be matched")
		}
	}
}

func TestProjectMatchesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/recommendations/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	matches, ok := data["matches"].([]interface{})
	if !ok || len(matches) != 1 {
		t.Fatalf("matches = %v, want one entry (p1)", data["matches"])
	}
}

func TestTeammatesEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/recommendations/teammates", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	matches, ok := data["matches"].([]interface{})
	if !ok {
		t.Fatalf("matches missing: %v", data)
	}
	// cam only: ada excluded as self, ben excluded as friend.
	if len(matches) != 1 {
		t.Errorf("matches = %d entries, want 1", len(matches))
	}
}

func TestComposeTeamEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"creator_id": "ada", "required_skills": ["go", "react"], "team_size": 2}`
	rec, resp := doRequest(t, srv, http.MethodPost, "/api/v1/teams/compose", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}
	data := resp.Data.(map[string]interface{})
	composition, ok := data["composition"].(map[string]interface{})
	if !ok {
		t.Fatalf("composition missing: %v", data)
	}
	members, ok := composition["members"].([]interface{})
	if !ok || len(members) == 0 {
		t.Errorf("members = %v, want non-empty", composition["members"])
	}
}

func TestComposeTeamEndpoint_Validation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"creator_id":`},
		{"missing creator", `{"required_skills": ["go"]}`},
		{"empty skills", `{"creator_id": "ada", "required_skills": []}`},
		{"oversized team", `{"creator_id": "ada", "required_skills": ["go"], "team_size": 50}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, resp := doRequest(t, srv, http.MethodPost, "/api/v1/teams/compose", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if resp.Error == nil || resp.Error.Code != codeInvalidRequest {
				t.Errorf("error = %+v, want %s", resp.Error, codeInvalidRequest)
			}
		})
	}
}

func TestSimilarityEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/similarity/cam", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["score"] == nil {
		t.Error("similarity score missing")
	}

	rec, resp = doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/similarity/ghost", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404 for unknown user", rec.Code)
	}
	if resp.Error == nil || resp.Error.Code != codeNotFound {
		t.Errorf("error = %+v, want %s", resp.Error, codeNotFound)
	}
}

func TestMutualFriendsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/mutual-friends/cam", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	mutual, ok := data["mutual_friends"].([]interface{})
	if !ok || len(mutual) != 1 || mutual[0] != "ben" {
		t.Errorf("mutual friends = %v, want [ben]", data["mutual_friends"])
	}
}

func TestInvalidateEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec, resp := doRequest(t, srv, http.MethodDelete, "/api/v1/users/ada/recommendations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resp.Status != "ok" {
		t.Errorf("envelope status = %q, want ok", resp.Status)
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		rec, resp := doRequest(t, srv, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d, want 200", path, rec.Code)
		}
		if resp.Status != "ok" {
			t.Errorf("%s envelope status = %q, want ok", path, resp.Status)
		}
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated X-Request-ID header")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "fixed-id" {
		t.Errorf("X-Request-ID = %q, want caller-provided fixed-id", got)
	}
}

func TestStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doRequest(t, srv, http.MethodGet, "/api/v1/users/ada/recommendations/friends", "")

	rec, resp := doRequest(t, srv, http.MethodGet, "/api/v1/stats", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	data := resp.Data.(map[string]interface{})
	if data["requests"].(float64) < 1 {
		t.Errorf("requests = %v, want >= 1", data["requests"])
	}
}
