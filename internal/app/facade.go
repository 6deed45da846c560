package app

import (
	"context"
	"time"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/usecase"
)

// DashboardFacade aggregates the full set of operations exposed over HTTP.
type DashboardFacade struct {
	auth        *usecase.AuthUseCase
	orders      *usecase.OrderUseCase
	drivers     *usecase.DriverUseCase
	restaurants *usecase.RestaurantUseCase
	customers   *usecase.CustomerUseCase
	settings    *usecase.SettingsUseCase
	analytics   *usecase.AnalyticsUseCase
}

func NewDashboardFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	drivers *usecase.DriverUseCase,
	restaurants *usecase.RestaurantUseCase,
	customers *usecase.CustomerUseCase,
	settings *usecase.SettingsUseCase,
	analytics *usecase.AnalyticsUseCase,
) *DashboardFacade {
	return &DashboardFacade{
		auth:        auth,
		orders:      orders,
		drivers:     drivers,
		restaurants: restaurants,
		customers:   customers,
		settings:    settings,
		analytics:   analytics,
	}
}

func (f *DashboardFacade) Register(ctx context.Context, username, email, password, role string) (*model.User, error) {
	return f.auth.Register(ctx, username, email, password, role)
}

func (f *DashboardFacade) Authenticate(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, username, password)
}

func (f *DashboardFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *DashboardFacade) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return f.auth.GetByID(ctx, id)
}

func (f *DashboardFacade) ListUsers(ctx context.Context, actor *model.User) ([]model.User, error) {
	return f.auth.ListUsers(ctx, actor)
}

func (f *DashboardFacade) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error) {
	return f.orders.Create(ctx, input)
}

func (f *DashboardFacade) Order(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *DashboardFacade) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	return f.orders.List(ctx, filter)
}

func (f *DashboardFacade) UpdateOrderStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	return f.orders.UpdateStatus(ctx, orderID, target)
}

func (f *DashboardFacade) AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error) {
	return f.orders.AssignDriver(ctx, orderID, driverID)
}

func (f *DashboardFacade) CreateDriver(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error) {
	return f.drivers.Create(ctx, name, status)
}

func (f *DashboardFacade) Driver(ctx context.Context, id int64) (*model.Driver, error) {
	return f.drivers.Get(ctx, id)
}

func (f *DashboardFacade) Drivers(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	return f.drivers.List(ctx, status)
}

func (f *DashboardFacade) UpdateDriver(ctx context.Context, id int64, update repository.DriverUpdate) (*model.Driver, error) {
	return f.drivers.Update(ctx, id, update)
}

func (f *DashboardFacade) DeleteDriver(ctx context.Context, actor *model.User, id int64) error {
	return f.drivers.Delete(ctx, actor, id)
}

func (f *DashboardFacade) CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	return f.restaurants.Create(ctx, restaurant)
}

func (f *DashboardFacade) Restaurant(ctx context.Context, id int64) (*model.Restaurant, error) {
	return f.restaurants.Get(ctx, id)
}

func (f *DashboardFacade) Restaurants(ctx context.Context) ([]model.Restaurant, error) {
	return f.restaurants.List(ctx)
}

func (f *DashboardFacade) UpdateRestaurant(ctx context.Context, id int64, update repository.RestaurantUpdate) (*model.Restaurant, error) {
	return f.restaurants.Update(ctx, id, update)
}

func (f *DashboardFacade) DeleteRestaurant(ctx context.Context, actor *model.User, id int64) error {
	return f.restaurants.Delete(ctx, actor, id)
}

func (f *DashboardFacade) CreateCustomer(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error) {
	return f.customers.Create(ctx, name, addresses)
}

func (f *DashboardFacade) Customer(ctx context.Context, id int64) (*model.Customer, error) {
	return f.customers.Get(ctx, id)
}

func (f *DashboardFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *DashboardFacade) UpdateCustomer(ctx context.Context, id int64, update repository.CustomerUpdate) (*model.Customer, error) {
	return f.customers.Update(ctx, id, update)
}

func (f *DashboardFacade) DeleteCustomer(ctx context.Context, actor *model.User, id int64) error {
	return f.customers.Delete(ctx, actor, id)
}

func (f *DashboardFacade) Settings(ctx context.Context) (*model.Settings, error) {
	return f.settings.Get(ctx)
}

func (f *DashboardFacade) UpdateSettings(ctx context.Context, actor *model.User, update repository.SettingsUpdate) (*model.Settings, error) {
	return f.settings.Update(ctx, actor, update)
}

func (f *DashboardFacade) DashboardAnalytics(ctx context.Context, period usecase.Period, now time.Time) (*usecase.Summary, error) {
	return f.analytics.Dashboard(ctx, period, now)
}

func (f *DashboardFacade) SalesAnalytics(ctx context.Context, period usecase.Period, start, end *time.Time, now time.Time) (*usecase.Summary, []usecase.DailyPoint, error) {
	return f.analytics.Sales(ctx, period, start, end, now)
}
