package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/server/http/dto"
	"github.com/polkiloo/foodrush/internal/server/http/middleware"
	testhelpers "github.com/polkiloo/foodrush/internal/test"
	"github.com/polkiloo/foodrush/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asAdmin(c *gin.Context) {
	c.Set(middleware.UserContextKey, &model.User{ID: 1, Username: "root", Role: model.RoleAdmin, IsActive: true})
}

func asOperator(c *gin.Context) {
	c.Set(middleware.UserContextKey, &model.User{ID: 2, Username: "operator", Role: model.RoleUser, IsActive: true})
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %v", got)
	}

	c.Set(middleware.UserContextKey, &model.User{ID: 42})
	if got := CurrentUser(c); got == nil || got.ID != 42 {
		t.Fatalf("expected user 42, got %v", got)
	}
}

func TestRespondErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", domainErrors.ErrValidation, http.StatusBadRequest},
		{"credentials", domainErrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"permission", domainErrors.ErrPermissionDenied, http.StatusForbidden},
		{"not found", domainErrors.ErrNotFound, http.StatusNotFound},
		{"duplicate", domainErrors.ErrAlreadyExists, http.StatusConflict},
		{"transition", domainErrors.ErrInvalidTransition, http.StatusConflict},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			respondError(c, tc.err)
			if recorder.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, recorder.Code)
			}
			var payload dto.ErrorResponse
			if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
				t.Fatalf("expected error payload: %v", err)
			}
			if payload.Detail == "" {
				t.Fatal("expected detail message")
			}
		})
	}
}

func TestAuthHandlerToken(t *testing.T) {
	form := url.Values{"username": {"alice"}, "password": {"password"}}
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(_ context.Context, username, password string) (*model.User, string, error) {
		if username != "alice" || password != "password" {
			t.Fatalf("unexpected credentials passed to facade: %q %q", username, password)
		}
		return &model.User{ID: 7, Username: "alice", Role: model.RoleAdmin}, "session-token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/token", "/token", handler.Token, nil, []byte(form.Encode()), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.AccessToken != "session-token" || payload.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %+v", payload)
	}
	if payload.UserID != 7 || payload.Role != model.RoleAdmin {
		t.Fatalf("unexpected user payload: %+v", payload)
	}
}

func TestAuthHandlerTokenInvalidCredentials(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (*model.User, string, error) {
		return nil, "", domainErrors.ErrInvalidCredentials
	}})
	form := url.Values{"username": {"alice"}, "password": {"wrong"}}
	resp := performRequest(t, http.MethodPost, "/token", "/token", handler.Token, nil, []byte(form.Encode()), map[string]string{"Content-Type": "application/x-www-form-urlencoded"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	username := testhelpers.RandomASCIIString(7, 14)
	body, _ := json.Marshal(dto.RegisterRequest{Username: username, Email: username + "@example.com", Password: "password"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(_ context.Context, gotUsername, gotEmail, gotPassword, gotRole string) (*model.User, error) {
		if gotUsername != username || gotPassword != "password" {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotUsername, gotPassword)
		}
		return &model.User{ID: 1, Username: gotUsername, Email: gotEmail, Role: model.RoleUser, IsActive: true}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var payload dto.UserResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Username != username {
		t.Fatalf("unexpected username %q", payload.Username)
	}
}

func TestAuthHandlerRegisterErrors(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, []byte("{"), map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed body, got %d", resp.Code)
	}

	handler = NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string, string) (*model.User, error) {
		return nil, domainErrors.ErrAlreadyExists
	}})
	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password"})
	resp = performRequest(t, http.MethodPost, "/register", "/register", handler.Register, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409 for duplicate, got %d", resp.Code)
	}
}

func TestAuthHandlerMe(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/me", "/me", handler.Me, asOperator, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/me", "/me", handler.Me, nil, nil, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without user, got %d", resp.Code)
	}
}

func TestAuthHandlerListUsers(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{ListFn: func(_ context.Context, actor *model.User) ([]model.User, error) {
		if actor == nil || !actor.IsAdmin() {
			return nil, domainErrors.ErrPermissionDenied
		}
		return []model.User{{ID: 1, Username: "root"}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/users", "/users", handler.ListUsers, asOperator, nil, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/users", "/users", handler.ListUsers, asAdmin, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestOrderHandlerCreate(t *testing.T) {
	body, _ := json.Marshal(dto.CreateOrderRequest{
		CustomerID:   1,
		RestaurantID: 2,
		Items:        []dto.OrderItemPayload{{Name: "pizza", Price: 10, Quantity: 2}},
		TotalAmount:  20,
	})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(_ context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
		if input.CustomerID != 1 || input.RestaurantID != 2 || len(input.Items) != 1 {
			t.Fatalf("unexpected input: %+v", input)
		}
		return &model.Order{ID: 5, Status: model.OrderStatusNew, TotalAmount: 20}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.ID != 5 || payload.Status != "new" {
		t.Fatalf("unexpected order payload: %+v", payload)
	}
}

func TestOrderHandlerCreateValidation(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{CreateFn: func(context.Context, usecase.CreateOrderInput) (*model.Order, error) {
		return nil, domainErrors.ErrValidation
	}})
	body, _ := json.Marshal(dto.CreateOrderRequest{CustomerID: 1})
	resp := performRequest(t, http.MethodPost, "/orders", "/orders", handler.Create, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestOrderHandlerGet(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders/:id", "/orders/7", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/abc", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for malformed id, got %d", resp.Code)
	}

	handler = NewOrderHandler(testhelpers.OrderFacadeStub{OrderFn: func(context.Context, int64) (*model.Order, error) {
		return nil, domainErrors.ErrNotFound
	}})
	resp = performRequest(t, http.MethodGet, "/orders/:id", "/orders/7", handler.Get, nil, nil, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for missing order, got %d", resp.Code)
	}
}

func TestOrderHandlerListFilters(t *testing.T) {
	var captured repository.OrderFilter
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(_ context.Context, filter repository.OrderFilter) ([]model.Order, error) {
		captured = filter
		return nil, nil
	}})

	resp := performRequest(t, http.MethodGet, "/orders", "/orders?status=delivered&q=pizza&sort=asc&limit=10&offset=5", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if captured.Status != model.OrderStatusDelivered || captured.Query != "pizza" || !captured.Ascending {
		t.Fatalf("unexpected filter: %+v", captured)
	}
	if captured.Limit != 10 || captured.Offset != 5 {
		t.Fatalf("unexpected pagination: %+v", captured)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders?period=week", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for period filter, got %d", resp.Code)
	}
	if captured.From == nil || captured.To == nil {
		t.Fatalf("expected period window in filter, got %+v", captured)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders?limit=bad", handler.List, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed limit, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders?from=not-a-date", handler.List, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed from, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/orders", "/orders?period=decade", handler.List, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown period, got %d", resp.Code)
	}
}

func TestOrderHandlerUpdateStatus(t *testing.T) {
	body, _ := json.Marshal(dto.StatusUpdateRequest{Status: "preparing"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/7/status", handler.UpdateStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Status != "preparing" {
		t.Fatalf("unexpected status %q", payload.Status)
	}
}

func TestOrderHandlerUpdateStatusInvalidTransition(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{UpdateStatusFn: func(context.Context, int64, model.OrderStatus) (*model.Order, error) {
		return nil, domainErrors.ErrInvalidTransition
	}})
	body, _ := json.Marshal(dto.StatusUpdateRequest{Status: "new"})
	resp := performRequest(t, http.MethodPut, "/orders/:id/status", "/orders/7/status", handler.UpdateStatus, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "detail") {
		t.Fatalf("expected detail payload, got %s", resp.Body.String())
	}
}

func TestOrderHandlerAssignDriver(t *testing.T) {
	body, _ := json.Marshal(dto.AssignDriverRequest{DriverID: 3, DriverName: "ignored"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{AssignDriverFn: func(_ context.Context, orderID, driverID int64) (*model.Order, error) {
		if orderID != 7 || driverID != 3 {
			t.Fatalf("unexpected assignment arguments: %d %d", orderID, driverID)
		}
		name := "Mike"
		return &model.Order{ID: orderID, DriverID: &driverID, DriverName: &name, Status: model.OrderStatusAssigned}, nil
	}})
	resp := performRequest(t, http.MethodPut, "/orders/:id/assign-driver", "/orders/7/assign-driver", handler.AssignDriver, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var payload dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.DriverName == nil || *payload.DriverName != "Mike" {
		t.Fatalf("expected driver name from roster, got %v", payload.DriverName)
	}
}

func TestDriverHandlerCRUD(t *testing.T) {
	handler := NewDriverHandler(testhelpers.DriverFacadeStub{})

	body, _ := json.Marshal(dto.CreateDriverRequest{Name: "Mike"})
	resp := performRequest(t, http.MethodPost, "/drivers", "/drivers", handler.Create, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/drivers", "/drivers", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	status := "busy"
	body, _ = json.Marshal(dto.UpdateDriverRequest{Status: &status})
	resp = performRequest(t, http.MethodPut, "/drivers/:id", "/drivers/1", handler.Update, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.DriverResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.Status != "busy" {
		t.Fatalf("unexpected status %q", payload.Status)
	}
}

func TestDriverHandlerDeleteRequiresAdmin(t *testing.T) {
	handler := NewDriverHandler(testhelpers.DriverFacadeStub{})

	resp := performRequest(t, http.MethodDelete, "/drivers/:id", "/drivers/1", handler.Delete, asOperator, nil, nil)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodDelete, "/drivers/:id", "/drivers/1", handler.Delete, asAdmin, nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestRestaurantHandlerCreateDuplicate(t *testing.T) {
	handler := NewRestaurantHandler(testhelpers.RestaurantFacadeStub{CreateFn: func(context.Context, *model.Restaurant) (*model.Restaurant, error) {
		return nil, domainErrors.ErrAlreadyExists
	}})
	body, _ := json.Marshal(dto.CreateRestaurantRequest{Name: "Pizza Palace", Address: "Main st 1"})
	resp := performRequest(t, http.MethodPost, "/restaurants", "/restaurants", handler.Create, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestCustomerHandlerCreate(t *testing.T) {
	handler := NewCustomerHandler(testhelpers.CustomerFacadeStub{})
	body, _ := json.Marshal(dto.CreateCustomerRequest{
		Name:      "John Doe",
		Addresses: []dto.CustomerAddressPayload{{Address: "Oak ave 5", IsDefault: true}},
	})
	resp := performRequest(t, http.MethodPost, "/customers", "/customers", handler.Create, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}

	var payload dto.CustomerResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.Addresses) != 1 || !payload.Addresses[0].IsDefault {
		t.Fatalf("unexpected addresses: %+v", payload.Addresses)
	}
}

func TestSettingsHandlerUpdate(t *testing.T) {
	handler := NewSettingsHandler(testhelpers.SettingsFacadeStub{})

	name := "FoodRush Ops"
	body, _ := json.Marshal(dto.UpdateSettingsRequest{PlatformName: &name})
	resp := performRequest(t, http.MethodPost, "/settings", "/settings", handler.Update, asOperator, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-admin, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/settings", "/settings", handler.Update, asAdmin, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.SettingsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.PlatformName != "FoodRush Ops" {
		t.Fatalf("unexpected platform name %q", payload.PlatformName)
	}
}

func TestAnalyticsHandlerDashboard(t *testing.T) {
	var capturedPeriod usecase.Period
	handler := NewAnalyticsHandler(testhelpers.AnalyticsFacadeStub{DashboardFn: func(_ context.Context, period usecase.Period, _ time.Time) (*usecase.Summary, error) {
		capturedPeriod = period
		return &usecase.Summary{TotalOrders: 3, StatusShares: map[model.OrderStatus]float64{model.OrderStatusNew: 100}}, nil
	}})

	resp := performRequest(t, http.MethodGet, "/dashboard", "/dashboard", handler.Dashboard, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if capturedPeriod != usecase.PeriodWeek {
		t.Fatalf("expected default week period, got %q", capturedPeriod)
	}

	var payload dto.AnalyticsSummaryResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if payload.TotalOrders != 3 || payload.StatusPercentages["new"] != 100 {
		t.Fatalf("unexpected summary payload: %+v", payload)
	}
}

func TestAnalyticsHandlerSales(t *testing.T) {
	handler := NewAnalyticsHandler(testhelpers.AnalyticsFacadeStub{SalesFn: func(_ context.Context, period usecase.Period, start, end *time.Time, _ time.Time) (*usecase.Summary, []usecase.DailyPoint, error) {
		if period != usecase.PeriodCustom || start == nil || end == nil {
			return nil, nil, domainErrors.ErrValidation
		}
		return &usecase.Summary{TotalOrders: 1, StatusShares: map[model.OrderStatus]float64{}}, []usecase.DailyPoint{{Date: "2025-03-10", Orders: 1, Sales: 10}}, nil
	}})

	body, _ := json.Marshal(dto.SalesAnalyticsRequest{Period: "custom", StartDate: "2025-03-01", EndDate: "2025-03-10"})
	resp := performRequest(t, http.MethodPost, "/sales", "/sales", handler.Sales, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var payload dto.SalesAnalyticsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &payload); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(payload.TimeSeries) != 1 || payload.TimeSeries[0].Date != "2025-03-10" {
		t.Fatalf("unexpected time series: %+v", payload.TimeSeries)
	}

	body, _ = json.Marshal(dto.SalesAnalyticsRequest{Period: "custom"})
	resp = performRequest(t, http.MethodPost, "/sales", "/sales", handler.Sales, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for missing bounds, got %d", resp.Code)
	}

	body, _ = json.Marshal(dto.SalesAnalyticsRequest{Period: "custom", StartDate: "not-a-date", EndDate: "2025-03-10"})
	resp = performRequest(t, http.MethodPost, "/sales", "/sales", handler.Sales, nil, body, map[string]string{"Content-Type": "application/json"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed date, got %d", resp.Code)
	}
}
