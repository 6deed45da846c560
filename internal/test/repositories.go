package test

import (
	"context"
	"time"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// UserRepositoryStub stores operator accounts in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, email, passwordHash, role string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{
		ID:           s.Next,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Unix(0, 0),
	}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// List returns all known accounts.
func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	users := make([]model.User, 0, len(s.ByID))
	for id := int64(1); id < s.Next; id++ {
		if user, ok := s.ByID[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

// OrderRepositoryStub allows tests to customize behaviour.
type OrderRepositoryStub struct {
	CreateFn       func(context.Context, *model.Order) (*model.Order, error)
	GetByIDFn      func(context.Context, int64) (*model.Order, error)
	ListFn         func(context.Context, repository.OrderFilter) ([]model.Order, error)
	UpdateStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	AssignDriverFn func(context.Context, int64, int64) (*model.Order, error)

	Created     []*model.Order
	Orders      []model.Order
	StatusCalls []StatusUpdateCall
	AssignCalls []DriverAssignCall
}

// StatusUpdateCall stores information about UpdateStatus invocations.
type StatusUpdateCall struct {
	OrderID int64
	Target  model.OrderStatus
}

// DriverAssignCall stores information about AssignDriver invocations.
type DriverAssignCall struct {
	OrderID  int64
	DriverID int64
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	s.Created = append(s.Created, order)
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	created := *order
	created.ID = int64(len(s.Created))
	created.CreatedAt = time.Unix(0, 0)
	return &created, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns orders from configured slice.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return s.Orders, nil
}

// UpdateStatus records transition requests and applies them to stored orders.
func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	s.StatusCalls = append(s.StatusCalls, StatusUpdateCall{OrderID: orderID, Target: target})
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, target)
	}
	for i := range s.Orders {
		if s.Orders[i].ID != orderID {
			continue
		}
		if !model.CanTransition(s.Orders[i].Status, target) {
			return nil, domainErrors.ErrInvalidTransition
		}
		s.Orders[i].Status = target
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// AssignDriver records assignment requests and applies them to stored orders.
func (s *OrderRepositoryStub) AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error) {
	s.AssignCalls = append(s.AssignCalls, DriverAssignCall{OrderID: orderID, DriverID: driverID})
	if s.AssignDriverFn != nil {
		return s.AssignDriverFn(ctx, orderID, driverID)
	}
	for i := range s.Orders {
		if s.Orders[i].ID != orderID {
			continue
		}
		if !model.CanAssignDriver(s.Orders[i].Status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		id := driverID
		s.Orders[i].DriverID = &id
		s.Orders[i].Status = model.OrderStatusAssigned
		order := s.Orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// DriverRepositoryStub lets tests control driver roster data.
type DriverRepositoryStub struct {
	CreateFn  func(context.Context, string, model.DriverStatus) (*model.Driver, error)
	GetByIDFn func(context.Context, int64) (*model.Driver, error)
	ListFn    func(context.Context, model.DriverStatus) ([]model.Driver, error)
	UpdateFn  func(context.Context, int64, repository.DriverUpdate) (*model.Driver, error)
	DeleteFn  func(context.Context, int64) error
	Drivers   []model.Driver
}

// Create returns configured response or a fresh driver record.
func (s *DriverRepositoryStub) Create(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, status)
	}
	return &model.Driver{ID: int64(len(s.Drivers) + 1), Name: name, Status: status}, nil
}

// GetByID finds a driver in the configured slice.
func (s *DriverRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, d := range s.Drivers {
		if d.ID == id {
			driver := d
			return &driver, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns configured drivers, optionally filtered by status.
func (s *DriverRepositoryStub) List(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, status)
	}
	if status == "" {
		return s.Drivers, nil
	}
	var out []model.Driver
	for _, d := range s.Drivers {
		if d.Status == status {
			out = append(out, d)
		}
	}
	return out, nil
}

// Update applies override when provided.
func (s *DriverRepositoryStub) Update(ctx context.Context, id int64, update repository.DriverUpdate) (*model.Driver, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	for i := range s.Drivers {
		if s.Drivers[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.Drivers[i].Name = *update.Name
		}
		if update.Status != nil {
			s.Drivers[i].Status = *update.Status
		}
		driver := s.Drivers[i]
		return &driver, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a driver from the configured slice.
func (s *DriverRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Drivers {
		if s.Drivers[i].ID == id {
			s.Drivers = append(s.Drivers[:i], s.Drivers[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// RestaurantRepositoryStub lets tests control restaurant data.
type RestaurantRepositoryStub struct {
	CreateFn    func(context.Context, *model.Restaurant) (*model.Restaurant, error)
	GetByIDFn   func(context.Context, int64) (*model.Restaurant, error)
	ListFn      func(context.Context) ([]model.Restaurant, error)
	UpdateFn    func(context.Context, int64, repository.RestaurantUpdate) (*model.Restaurant, error)
	DeleteFn    func(context.Context, int64) error
	Restaurants []model.Restaurant
}

// Create returns configured response or echoes the record with an identifier.
func (s *RestaurantRepositoryStub) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, restaurant)
	}
	for _, r := range s.Restaurants {
		if r.Name == restaurant.Name && r.Address == restaurant.Address {
			return nil, domainErrors.ErrAlreadyExists
		}
	}
	created := *restaurant
	created.ID = int64(len(s.Restaurants) + 1)
	return &created, nil
}

// GetByID finds a restaurant in the configured slice.
func (s *RestaurantRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, r := range s.Restaurants {
		if r.ID == id {
			restaurant := r
			return &restaurant, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns configured restaurants.
func (s *RestaurantRepositoryStub) List(ctx context.Context) ([]model.Restaurant, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Restaurants, nil
}

// Update applies override when provided.
func (s *RestaurantRepositoryStub) Update(ctx context.Context, id int64, update repository.RestaurantUpdate) (*model.Restaurant, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.Restaurants[i].Name = *update.Name
		}
		if update.Address != nil {
			s.Restaurants[i].Address = *update.Address
		}
		if update.CuisineType != nil {
			s.Restaurants[i].CuisineType = update.CuisineType
		}
		if update.Coordinates != nil {
			s.Restaurants[i].Coordinates = update.Coordinates
		}
		restaurant := s.Restaurants[i]
		return &restaurant, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a restaurant from the configured slice.
func (s *RestaurantRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Restaurants {
		if s.Restaurants[i].ID == id {
			s.Restaurants = append(s.Restaurants[:i], s.Restaurants[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// CustomerRepositoryStub lets tests control customer data.
type CustomerRepositoryStub struct {
	CreateFn  func(context.Context, string, []model.CustomerAddress) (*model.Customer, error)
	GetByIDFn func(context.Context, int64) (*model.Customer, error)
	ListFn    func(context.Context) ([]model.Customer, error)
	UpdateFn  func(context.Context, int64, repository.CustomerUpdate) (*model.Customer, error)
	DeleteFn  func(context.Context, int64) error
	Customers []model.Customer
}

// Create returns configured response or a fresh customer record.
func (s *CustomerRepositoryStub) Create(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, addresses)
	}
	return &model.Customer{ID: int64(len(s.Customers) + 1), Name: name, Addresses: addresses}, nil
}

// GetByID finds a customer in the configured slice.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, c := range s.Customers {
		if c.ID == id {
			customer := c
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns configured customers.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Customers, nil
}

// Update applies override when provided.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, update repository.CustomerUpdate) (*model.Customer, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, update)
	}
	for i := range s.Customers {
		if s.Customers[i].ID != id {
			continue
		}
		if update.Name != nil {
			s.Customers[i].Name = *update.Name
		}
		if update.Addresses != nil {
			s.Customers[i].Addresses = update.Addresses
		}
		customer := s.Customers[i]
		return &customer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Delete removes a customer from the configured slice.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			s.Customers = append(s.Customers[:i], s.Customers[i+1:]...)
			return nil
		}
	}
	return domainErrors.ErrNotFound
}

// SettingsRepositoryStub stores platform settings for tests.
type SettingsRepositoryStub struct {
	GetFn    func(context.Context) (*model.Settings, error)
	UpsertFn func(context.Context, repository.SettingsUpdate) (*model.Settings, error)
	Current  *model.Settings
}

// Get returns stored settings, lazily creating the default record.
func (s *SettingsRepositoryStub) Get(ctx context.Context) (*model.Settings, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx)
	}
	if s.Current == nil {
		s.Current = &model.Settings{ID: 1, PlatformName: "FoodRush"}
	}
	return s.Current, nil
}

// Upsert applies provided fields to the stored record.
func (s *SettingsRepositoryStub) Upsert(ctx context.Context, update repository.SettingsUpdate) (*model.Settings, error) {
	if s.UpsertFn != nil {
		return s.UpsertFn(ctx, update)
	}
	if s.Current == nil {
		s.Current = &model.Settings{ID: 1, PlatformName: "FoodRush"}
	}
	if update.PlatformName != nil {
		s.Current.PlatformName = *update.PlatformName
	}
	if update.ContactEmail != nil {
		s.Current.ContactEmail = *update.ContactEmail
	}
	if update.SupportPhone != nil {
		s.Current.SupportPhone = *update.SupportPhone
	}
	return s.Current, nil
}
