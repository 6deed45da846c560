package handlers

import (
	"context"
	"time"

	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
	"github.com/polkiloo/foodrush/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, email, password, role string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, string, error)
	ParseToken(token string) (int64, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context, actor *model.User) ([]model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*model.Order, error)
	Order(ctx context.Context, id int64) (*model.Order, error)
	Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error)
	AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error)
}

// DriverFacade encapsulates driver roster operations.
type DriverFacade interface {
	CreateDriver(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error)
	Driver(ctx context.Context, id int64) (*model.Driver, error)
	Drivers(ctx context.Context, status model.DriverStatus) ([]model.Driver, error)
	UpdateDriver(ctx context.Context, id int64, update repository.DriverUpdate) (*model.Driver, error)
	DeleteDriver(ctx context.Context, actor *model.User, id int64) error
}

// RestaurantFacade encapsulates restaurant operations.
type RestaurantFacade interface {
	CreateRestaurant(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error)
	Restaurant(ctx context.Context, id int64) (*model.Restaurant, error)
	Restaurants(ctx context.Context) ([]model.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id int64, update repository.RestaurantUpdate) (*model.Restaurant, error)
	DeleteRestaurant(ctx context.Context, actor *model.User, id int64) error
}

// CustomerFacade encapsulates customer operations.
type CustomerFacade interface {
	CreateCustomer(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error)
	Customer(ctx context.Context, id int64) (*model.Customer, error)
	Customers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, update repository.CustomerUpdate) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, actor *model.User, id int64) error
}

// SettingsFacade encapsulates platform settings operations.
type SettingsFacade interface {
	Settings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, actor *model.User, update repository.SettingsUpdate) (*model.Settings, error)
}

// AnalyticsFacade encapsulates reporting operations.
type AnalyticsFacade interface {
	DashboardAnalytics(ctx context.Context, period usecase.Period, now time.Time) (*usecase.Summary, error)
	SalesAnalytics(ctx context.Context, period usecase.Period, start, end *time.Time, now time.Time) (*usecase.Summary, []usecase.DailyPoint, error)
}

// DashboardFacade aggregates the full set of operations used across handlers.
type DashboardFacade interface {
	AuthFacade
	OrderFacade
	DriverFacade
	RestaurantFacade
	CustomerFacade
	SettingsFacade
	AnalyticsFacade
}
