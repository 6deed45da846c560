package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	Drivers() DriverRepository
	Restaurants() RestaurantRepository
	Customers() CustomerRepository
	Settings() SettingsRepository
}
