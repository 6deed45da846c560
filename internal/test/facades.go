package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	CreateFn       func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	OrderFn        func(context.Context, int64) (*model.Order, error)
	OrdersFn       func(context.Context, repository.OrderFilter) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	AssignDriverFn func(context.Context, int64, int64) (*model.Order, error)
}

// CreateOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, input)
	}
	return &model.Order{
		ID:           1,
		CustomerID:   input.CustomerID,
		RestaurantID: input.RestaurantID,
		Items:        input.Items,
		TotalAmount:  model.ItemsTotal(input.Items),
		Status:       model.OrderStatusNew,
		CreatedAt:    time.Unix(0, 0),
	}, nil
}

// Order returns a predefined order for the given identifier.
func (s OrderFacadeStub) Order(ctx context.Context, id int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusNew, CreatedAt: time.Unix(0, 0)}, nil
}

// Orders returns predefined orders for the given filter.
func (s OrderFacadeStub) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: 1, Status: model.OrderStatusNew, CreatedAt: time.Unix(0, 0)}}, nil
}

// UpdateOrderStatus executes configured transition handler.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, target)
	}
	return &model.Order{ID: orderID, Status: target, CreatedAt: time.Unix(0, 0)}, nil
}

// AssignDriver executes configured assignment handler.
func (s OrderFacadeStub) AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error) {
	if s.AssignDriverFn != nil {
		return s.AssignDriverFn(ctx, orderID, driverID)
	}
	name := "driver"
	return &model.Order{ID: orderID, DriverID: &driverID, DriverName: &name, Status: model.OrderStatusAssigned, CreatedAt: time.Unix(0, 0)}, nil
}

// DriverFacadeStub simulates driver roster operations.
type DriverFacadeStub struct {
	CreateFn func(context.Context, string, model.DriverStatus) (*model.Driver, error)
	GetFn    func(context.Context, int64) (*model.Driver, error)
	ListFn   func(context.Context, model.DriverStatus) ([]model.Driver, error)
	UpdateFn func(context.Context, int64, repository.DriverUpdate) (*model.Driver, error)
	DeleteFn func(context.Context, *model.User, int64) error
}

// CreateDriver returns configured response or a fresh record.
func (s DriverFacadeStub) CreateDriver(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, status)
	}
	return &model.Driver{ID: 1, Name: name, Status: status}, nil
}

// Driver returns configured driver record.
func (s DriverFacadeStub) Driver(ctx context.Context, id int64) (*model.Driver, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Driver{ID: id, Name: "driver", Status: model.DriverStatusAvailable}, nil
}

// Drivers returns configured roster.
func (s DriverFacadeStub) Drivers(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, status)
	}
	return []model.Driver{{ID: 1, Name: "driver", Status: model.DriverStatusAvailable}}, nil
}

// UpdateDriver executes configured update handler.
func (s DriverFacadeStub) UpdateDriver(ctx context.Context, id int64, update repository.DriverUpdate) (*model.Driver, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	driver := &model.Driver{ID: id, Name: "driver", Status: model.DriverStatusAvailable}
	if update.Name != nil {
		driver.Name = *update.Name
	}
	if update.Status != nil {
		driver.Status = *update.Status
	}
	return driver, nil
}

// DeleteDriver executes configured delete handler.
func (s DriverFacadeStub) DeleteDriver(ctx context.Context, actor *model.User, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return nil
}

// RestaurantFacadeStub simulates restaurant operations.
type RestaurantFacadeStub struct {
	CreateFn func(context.Context, *model.Restaurant) (*model.Restaurant, error)
	GetFn    func(context.Context, int64) (*model.Restaurant, error)
	ListFn   func(context.Context) ([]model.Restaurant, error)
	UpdateFn func(context.Context, int64, repository.RestaurantUpdate) (*model.Restaurant, error)
	DeleteFn func(context.Context, *model.User, int64) error
}

// CreateRestaurant returns configured response or echoes the record.
func (s RestaurantFacadeStub) CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, restaurant)
	}
	created := *restaurant
	created.ID = 1
	return &created, nil
}

// Restaurant returns configured restaurant record.
func (s RestaurantFacadeStub) Restaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Restaurant{ID: id, Name: "restaurant", Address: "address"}, nil
}

// Restaurants returns configured listing.
func (s RestaurantFacadeStub) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Restaurant{{ID: 1, Name: "restaurant", Address: "address"}}, nil
}

// UpdateRestaurant executes configured update handler.
func (s RestaurantFacadeStub) UpdateRestaurant(ctx context.Context, id int64, update repository.RestaurantUpdate) (*model.Restaurant, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	restaurant := &model.Restaurant{ID: id, Name: "restaurant", Address: "address"}
	if update.Name != nil {
		restaurant.Name = *update.Name
	}
	if update.Address != nil {
		restaurant.Address = *update.Address
	}
	return restaurant, nil
}

// DeleteRestaurant executes configured delete handler.
func (s RestaurantFacadeStub) DeleteRestaurant(ctx context.Context, actor *model.User, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return nil
}

// CustomerFacadeStub simulates customer operations.
type CustomerFacadeStub struct {
	CreateFn func(context.Context, string, []model.CustomerAddress) (*model.Customer, error)
	GetFn    func(context.Context, int64) (*model.Customer, error)
	ListFn   func(context.Context) ([]model.Customer, error)
	UpdateFn func(context.Context, int64, repository.CustomerUpdate) (*model.Customer, error)
	DeleteFn func(context.Context, *model.User, int64) error
}

// CreateCustomer returns configured response or a fresh record.
func (s CustomerFacadeStub) CreateCustomer(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, addresses)
	}
	return &model.Customer{ID: 1, Name: name, Addresses: addresses}, nil
}

// Customer returns configured customer record.
func (s CustomerFacadeStub) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, id)
	}
	return &model.Customer{ID: id, Name: "customer"}, nil
}

// Customers returns configured listing.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return []model.Customer{{ID: 1, Name: "customer"}}, nil
}

// UpdateCustomer executes configured update handler.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, update repository.CustomerUpdate) (*model.Customer, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	customer := &model.Customer{ID: id, Name: "customer"}
	if update.Name != nil {
		customer.Name = *update.Name
	}
	if update.Addresses != nil {
		customer.Addresses = update.Addresses
	}
	return customer, nil
}

// DeleteCustomer executes configured delete handler.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, actor *model.User, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, actor, id)
	}
	if actor == nil || !actor.IsAdmin() {
		return domainErrors.ErrPermissionDenied
	}
	return nil
}

// SettingsFacadeStub simulates platform settings access.
type SettingsFacadeStub struct {
	GetFn    func(context.Context) (*model.Settings, error)
	UpdateFn func(context.Context, *model.User, repository.SettingsUpdate) (*model.Settings, error)
}

// Settings returns configured settings record.
func (s SettingsFacadeStub) Settings(ctx context.Context) (*model.Settings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	return &model.Settings{ID: 1, PlatformName: "FoodRush"}, nil
}

// UpdateSettings executes configured update handler.
func (s SettingsFacadeStub) UpdateSettings(ctx context.Context, actor *model.User, update repository.SettingsUpdate) (*model.Settings, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, actor, update)
	}
	if actor == nil || !actor.IsAdmin() {
		return nil, domainErrors.ErrPermissionDenied
	}
	settings := &model.Settings{ID: 1, PlatformName: "FoodRush"}
	if update.PlatformName != nil {
		settings.PlatformName = *update.PlatformName
	}
	return settings, nil
}

// AnalyticsFacadeStub simulates reporting operations.
type AnalyticsFacadeStub struct {
	DashboardFn func(context.Context, usecase.Period, time.Time) (*usecase.Summary, error)
	SalesFn     func(context.Context, usecase.Period, *time.Time, *time.Time, time.Time) (*usecase.Summary, []usecase.DailyPoint, error)
}

// DashboardAnalytics returns configured summary.
func (s AnalyticsFacadeStub) DashboardAnalytics(ctx context.Context, period usecase.Period, now time.Time) (*usecase.Summary, error) {
	if s.DashboardFn != nil {
		return s.DashboardFn(ctx, period, now)
	}
	return &usecase.Summary{StatusShares: map[model.OrderStatus]float64{}}, nil
}

// SalesAnalytics returns configured summary and series.
func (s AnalyticsFacadeStub) SalesAnalytics(ctx context.Context, period usecase.Period, start, end *time.Time, now time.Time) (*usecase.Summary, []usecase.DailyPoint, error) {
	if s.SalesFn != nil {
		return s.SalesFn(ctx, period, start, end, now)
	}
	return &usecase.Summary{StatusShares: map[model.OrderStatus]float64{}}, nil, nil
}

// DashboardFacadeStub aggregates facade dependencies for HTTP layer tests.
type DashboardFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	DriverFacadeStub
	RestaurantFacadeStub
	CustomerFacadeStub
	SettingsFacadeStub
	AnalyticsFacadeStub
}
