package router

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/polkiloo/foodrush/internal/server/http/dto"
	"github.com/polkiloo/foodrush/internal/server/http/handlers"
	testhelpers "github.com/polkiloo/foodrush/internal/test"
)

var _ handlers.DashboardFacade = testhelpers.DashboardFacadeStub{}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestSetupPublicRoutes(t *testing.T) {
	engine := Setup(testhelpers.DashboardFacadeStub{}, newTestLogger())

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/token", bytes.NewBufferString("username=alice&password=password"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestSetupProtectedRoutesRequireToken(t *testing.T) {
	engine := Setup(testhelpers.DashboardFacadeStub{}, newTestLogger())

	paths := []string{
		"/api/orders",
		"/api/drivers",
		"/api/restaurants",
		"/api/customers",
		"/api/settings",
		"/api/analytics/dashboard",
		"/api/auth/users/me",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status 401 without token, got %d", path, w.Code)
		}
	}
}

func TestSetupProtectedRoutesWithToken(t *testing.T) {
	engine := Setup(testhelpers.DashboardFacadeStub{}, newTestLogger())

	paths := []string{
		"/api/orders",
		"/api/orders/1",
		"/api/drivers",
		"/api/restaurants",
		"/api/customers",
		"/api/settings",
		"/api/analytics/dashboard",
		"/api/auth/users/me",
		"/api/auth/users",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
	}
}

func TestSetupUnknownRoute(t *testing.T) {
	engine := Setup(testhelpers.DashboardFacadeStub{}, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
}
