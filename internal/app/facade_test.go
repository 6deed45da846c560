package app

import (
	"context"
	"testing"
	"time"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	testhelpers "github.com/polkiloo/foodrush/internal/test"
	"github.com/polkiloo/foodrush/internal/usecase"
)

func newFacade() (*DashboardFacade, *testhelpers.UserRepositoryStub, *testhelpers.OrderRepositoryStub, *testhelpers.DriverRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	orders := &testhelpers.OrderRepositoryStub{}
	drivers := &testhelpers.DriverRepositoryStub{Drivers: []model.Driver{{ID: 3, Name: "Mike", Status: model.DriverStatusAvailable}}}
	restaurants := &testhelpers.RestaurantRepositoryStub{Restaurants: []model.Restaurant{{ID: 2, Name: "Pizza Palace", Address: "Main st 1"}}}
	customers := &testhelpers.CustomerRepositoryStub{Customers: []model.Customer{{ID: 1, Name: "John Doe"}}}
	settings := &testhelpers.SettingsRepositoryStub{}

	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{})
	orderUC := usecase.NewOrderUseCase(orders, customers, restaurants, drivers)
	driverUC := usecase.NewDriverUseCase(drivers)
	restaurantUC := usecase.NewRestaurantUseCase(restaurants)
	customerUC := usecase.NewCustomerUseCase(customers)
	settingsUC := usecase.NewSettingsUseCase(settings)
	analyticsUC := usecase.NewAnalyticsUseCase(orders)

	facade := NewDashboardFacade(authUC, orderUC, driverUC, restaurantUC, customerUC, settingsUC, analyticsUC)
	return facade, users, orders, drivers
}

func TestDashboardFacadeAuth(t *testing.T) {
	facade, _, _, _ := newFacade()

	ctx := context.Background()
	user, err := facade.Register(ctx, "alice", "alice@example.com", "password", "")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user id assigned")
	}

	authed, token, err := facade.Authenticate(ctx, "alice", "password")
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if authed.Username != "alice" || token == "" {
		t.Fatalf("unexpected auth result: %v %q", authed, token)
	}

	id, err := facade.ParseToken("token")
	if err != nil || id != 1 {
		t.Fatalf("unexpected parse result: %d %v", id, err)
	}

	loaded, err := facade.UserByID(ctx, user.ID)
	if err != nil || loaded.Username != "alice" {
		t.Fatalf("unexpected user lookup: %v %v", loaded, err)
	}

	if _, err := facade.ListUsers(ctx, &model.User{Role: model.RoleUser}); err != domainErrors.ErrPermissionDenied {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestDashboardFacadeOrders(t *testing.T) {
	facade, _, orders, _ := newFacade()

	ctx := context.Background()
	order, err := facade.CreateOrder(ctx, usecase.CreateOrderInput{
		CustomerID:   1,
		RestaurantID: 2,
		Items:        []model.OrderItem{{Name: "pizza", Price: 10, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("create order returned error: %v", err)
	}
	if order.Status != model.OrderStatusNew {
		t.Fatalf("unexpected status: %s", order.Status)
	}

	orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusNew}}
	listed, err := facade.Orders(ctx, repository.OrderFilter{})
	if err != nil || len(listed) != 1 {
		t.Fatalf("unexpected list result: %v %v", listed, err)
	}

	got, err := facade.Order(ctx, 1)
	if err != nil || got.ID != 1 {
		t.Fatalf("unexpected get result: %v %v", got, err)
	}

	updated, err := facade.UpdateOrderStatus(ctx, 1, model.OrderStatusPreparing)
	if err != nil || updated.Status != model.OrderStatusPreparing {
		t.Fatalf("unexpected transition result: %v %v", updated, err)
	}

	orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusNew}}
	assigned, err := facade.AssignDriver(ctx, 1, 3)
	if err != nil || assigned.Status != model.OrderStatusAssigned {
		t.Fatalf("unexpected assignment result: %v %v", assigned, err)
	}
}

func TestDashboardFacadeRoster(t *testing.T) {
	facade, _, _, _ := newFacade()
	ctx := context.Background()
	admin := &model.User{Role: model.RoleAdmin}

	driver, err := facade.CreateDriver(ctx, "Anna", "")
	if err != nil || driver.Status != model.DriverStatusAvailable {
		t.Fatalf("unexpected driver create: %v %v", driver, err)
	}
	drivers, err := facade.Drivers(ctx, "")
	if err != nil || len(drivers) == 0 {
		t.Fatalf("unexpected driver list: %v %v", drivers, err)
	}
	if err := facade.DeleteDriver(ctx, admin, 3); err != nil {
		t.Fatalf("delete driver returned error: %v", err)
	}

	restaurant, err := facade.CreateRestaurant(ctx, &model.Restaurant{Name: "Sushi Bar", Address: "Oak ave 5"})
	if err != nil || restaurant.ID == 0 {
		t.Fatalf("unexpected restaurant create: %v %v", restaurant, err)
	}
	if _, err := facade.Restaurant(ctx, 2); err != nil {
		t.Fatalf("restaurant lookup returned error: %v", err)
	}

	customer, err := facade.CreateCustomer(ctx, "Jane Doe", nil)
	if err != nil || customer.ID == 0 {
		t.Fatalf("unexpected customer create: %v %v", customer, err)
	}
	if _, err := facade.Customers(ctx); err != nil {
		t.Fatalf("customer list returned error: %v", err)
	}
}

func TestDashboardFacadeSettingsAndAnalytics(t *testing.T) {
	facade, _, orders, _ := newFacade()
	ctx := context.Background()

	settings, err := facade.Settings(ctx)
	if err != nil || settings.PlatformName == "" {
		t.Fatalf("unexpected settings: %v %v", settings, err)
	}

	name := "FoodRush Ops"
	updated, err := facade.UpdateSettings(ctx, &model.User{Role: model.RoleAdmin}, repository.SettingsUpdate{PlatformName: &name})
	if err != nil || updated.PlatformName != "FoodRush Ops" {
		t.Fatalf("unexpected settings update: %v %v", updated, err)
	}

	orders.Orders = []model.Order{{Status: model.OrderStatusNew, TotalAmount: 10}}
	summary, err := facade.DashboardAnalytics(ctx, usecase.PeriodAll, time.Now())
	if err != nil || summary.TotalOrders != 1 {
		t.Fatalf("unexpected dashboard summary: %v %v", summary, err)
	}

	summary, series, err := facade.SalesAnalytics(ctx, usecase.PeriodAll, nil, nil, time.Now())
	if err != nil || summary.TotalOrders != 1 || len(series) != 1 {
		t.Fatalf("unexpected sales summary: %v %v %v", summary, series, err)
	}
}
