package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/logging"
	"github.com/CARE-UiT/Reflectometer/internal/server/authz"
	"github.com/CARE-UiT/Reflectometer/internal/server/config"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/inmemory"
	"github.com/CARE-UiT/Reflectometer/internal/server/services"
)

func newTestServer() *Server {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = "test-secret"

	rm := inmemory.NewRepositoryManager()
	gate := authz.NewGate(nil, rm)
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return NewServer("", logger,
		services.NewUserService(nil, rm, cfg),
		services.NewCourseService(nil, rm, gate),
		services.NewSessionService(nil, rm, gate),
		services.NewParticipantService(nil, rm, gate),
		services.NewCurveService(nil, rm, gate, services.NewBlobService(cfg), cfg.MaxInlinePayloadBytes),
		services.NewKeyMomentService(nil, rm, gate),
	)
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func registerAndLogin(t *testing.T, mux http.Handler, name string) (id int64, token string) {
	t.Helper()
	rec := doJSON(t, mux, http.MethodPost, "/auth/new", "", map[string]string{
		"user_name": name, "email": name + "@x.com", "password": "pw-" + name,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: status %d, body %s", name, rec.Code, rec.Body)
	}
	u := decodeBody[userView](t, rec)

	rec = doJSON(t, mux, http.MethodPost, "/token", "", map[string]string{
		"user_name": name, "password": "pw-" + name,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("token %s: status %d, body %s", name, rec.Code, rec.Body)
	}
	pair := decodeBody[tokenPairView](t, rec)
	return u.ID, pair.AccessToken
}

func TestAuthRoutes(t *testing.T) {
	t.Parallel()
	mux := newTestServer().Routes()

	aliceID, token := registerAndLogin(t, mux, "alice")

	// duplicate user name
	rec := doJSON(t, mux, http.MethodPost, "/auth/new", "", map[string]string{
		"user_name": "alice", "email": "other@x.com", "password": "pw",
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register: status %d", rec.Code)
	}

	// wrong password and unknown user both 401
	for _, body := range []map[string]string{
		{"user_name": "alice", "password": "wrong"},
		{"user_name": "nobody", "password": "pw-alice"},
	} {
		rec = doJSON(t, mux, http.MethodPost, "/token", "", body)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("bad login %v: status %d", body, rec.Code)
		}
	}

	// identity round-trip
	rec = doJSON(t, mux, http.MethodGet, "/auth/current", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("current: status %d", rec.Code)
	}
	if u := decodeBody[userView](t, rec); u.ID != aliceID {
		t.Fatalf("current identity %d, want %d", u.ID, aliceID)
	}

	rec = doJSON(t, mux, http.MethodGet, "/auth/current", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("current without token: status %d", rec.Code)
	}
	rec = doJSON(t, mux, http.MethodGet, "/auth/current", "bogus", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("current with bogus token: status %d", rec.Code)
	}
}

func TestRefreshRoute(t *testing.T) {
	t.Parallel()
	mux := newTestServer().Routes()

	registerAndLogin(t, mux, "alice")
	rec := doJSON(t, mux, http.MethodPost, "/token", "", map[string]string{
		"user_name": "alice", "password": "pw-alice",
	})
	pair := decodeBody[tokenPairView](t, rec)

	rec = doJSON(t, mux, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refresh_token": pair.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("refresh: status %d, body %s", rec.Code, rec.Body)
	}
	next := decodeBody[tokenPairView](t, rec)
	if next.RefreshToken == pair.RefreshToken {
		t.Fatalf("refresh token not rotated")
	}

	rec = doJSON(t, mux, http.MethodPost, "/auth/refresh", "", map[string]string{
		"refresh_token": pair.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("reused refresh token: status %d", rec.Code)
	}
}

func TestCourseRoutes_OwnershipBoundary(t *testing.T) {
	t.Parallel()
	mux := newTestServer().Routes()

	_, aliceToken := registerAndLogin(t, mux, "alice")
	_, bobToken := registerAndLogin(t, mux, "bob")

	rec := doJSON(t, mux, http.MethodPost, "/courses", aliceToken, map[string]string{"name": "Algebra"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create course: status %d, body %s", rec.Code, rec.Body)
	}
	course := decodeBody[courseView](t, rec)
	coursePath := fmt.Sprintf("/courses/%d", course.ID)

	// owner sees it, the other instructor gets 404, never 403
	if rec := doJSON(t, mux, http.MethodGet, coursePath, aliceToken, nil); rec.Code != http.StatusOK {
		t.Fatalf("owner get: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, coursePath, bobToken, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("other instructor get: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodPatch, coursePath, bobToken, map[string]string{"name": "Stolen"}); rec.Code != http.StatusNotFound {
		t.Fatalf("other instructor patch: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodDelete, coursePath, bobToken, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("other instructor delete: status %d", rec.Code)
	}

	// list is scoped to the caller
	if list := decodeBody[[]courseView](t, doJSON(t, mux, http.MethodGet, "/courses", bobToken, nil)); len(list) != 0 {
		t.Fatalf("bob course list: got %d items", len(list))
	}
	if list := decodeBody[[]courseView](t, doJSON(t, mux, http.MethodGet, "/courses", aliceToken, nil)); len(list) != 1 {
		t.Fatalf("alice course list: got %d items", len(list))
	}
}

func TestParticipantSubmissionRoutes(t *testing.T) {
	t.Parallel()
	mux := newTestServer().Routes()

	_, aliceToken := registerAndLogin(t, mux, "alice")
	_, bobToken := registerAndLogin(t, mux, "bob")

	course := decodeBody[courseView](t, doJSON(t, mux, http.MethodPost, "/courses", aliceToken, map[string]string{"name": "Algebra"}))
	rec := doJSON(t, mux, http.MethodPost, fmt.Sprintf("/courses/%d/sessions", course.ID), aliceToken, map[string]string{"name": "Week 1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create session: status %d, body %s", rec.Code, rec.Body)
	}
	session := decodeBody[sessionView](t, rec)

	// anonymous curve submission against a live session
	rec = doJSON(t, mux, http.MethodPost, "/curves", "", map[string]any{
		"session": session.ID, "payload": []byte(`[1,2,3]`),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit curve: status %d, body %s", rec.Code, rec.Body)
	}
	curve := decodeBody[curveView](t, rec)

	// unknown session fails closed
	rec = doJSON(t, mux, http.MethodPost, "/curves", "", map[string]any{"session": "no-such"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("submit to unknown session: status %d", rec.Code)
	}

	// anonymous key moment against the new curve
	rec = doJSON(t, mux, http.MethodPost, "/keymoments", "", map[string]any{
		"curve": curve.ID, "xvalue": 2.0, "yvalue": 0.7, "what": "exercise",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("submit key moment: status %d, body %s", rec.Code, rec.Body)
	}
	km := decodeBody[keyMomentView](t, rec)
	if km.Session != session.ID {
		t.Fatalf("key moment session %q, want %q", km.Session, session.ID)
	}

	// reads stay owner-gated
	curvePath := fmt.Sprintf("/curves/%d", curve.ID)
	if rec := doJSON(t, mux, http.MethodGet, curvePath, aliceToken, nil); rec.Code != http.StatusOK {
		t.Fatalf("owner curve get: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, curvePath, bobToken, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("other instructor curve get: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, curvePath, "", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous curve get: status %d", rec.Code)
	}
	kmPath := fmt.Sprintf("/keymoments/%d", km.ID)
	if rec := doJSON(t, mux, http.MethodGet, kmPath, bobToken, nil); rec.Code != http.StatusNotFound {
		t.Fatalf("other instructor key moment get: status %d", rec.Code)
	}

	list := decodeBody[[]curveView](t, doJSON(t, mux, http.MethodGet, fmt.Sprintf("/sessions/%s/curves", session.ID), aliceToken, nil))
	if len(list) != 1 {
		t.Fatalf("session curve list: got %d items", len(list))
	}
}

func TestBadRequests(t *testing.T) {
	t.Parallel()
	mux := newTestServer().Routes()
	_, token := registerAndLogin(t, mux, "alice")

	if rec := doJSON(t, mux, http.MethodPost, "/auth/new", "", map[string]string{"email": "x@x.com"}); rec.Code != http.StatusBadRequest {
		t.Fatalf("register without name: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodPost, "/courses", token, map[string]string{}); rec.Code != http.StatusBadRequest {
		t.Fatalf("course without name: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodGet, "/courses/not-a-number", token, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric course id: status %d", rec.Code)
	}
	if rec := doJSON(t, mux, http.MethodPost, "/curves", "", map[string]string{}); rec.Code != http.StatusBadRequest {
		t.Fatalf("curve without session: status %d", rec.Code)
	}
}
