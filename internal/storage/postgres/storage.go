package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// pgxPool abstracts the subset of pgxpool.Pool used by the storage so tests
// can substitute a mock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type driverRepository struct {
	storage *Storage
}

type restaurantRepository struct {
	storage *Storage
}

type customerRepository struct {
	storage *Storage
}

type settingsRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Drivers() repository.DriverRepository {
	return &driverRepository{storage: s}
}

func (s *Storage) Restaurants() repository.RestaurantRepository {
	return &restaurantRepository{storage: s}
}

func (s *Storage) Customers() repository.CustomerRepository {
	return &customerRepository{storage: s}
}

func (s *Storage) Settings() repository.SettingsRepository {
	return &settingsRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            role TEXT NOT NULL DEFAULT 'user',
            is_active BOOLEAN NOT NULL DEFAULT TRUE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS drivers (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'available',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS restaurants (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            address TEXT NOT NULL,
            cuisine_type TEXT,
            coordinates JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (name, address)
        )`,
		`CREATE TABLE IF NOT EXISTS customers (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            addresses JSONB NOT NULL DEFAULT '[]',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            customer_id BIGINT NOT NULL REFERENCES customers(id),
            restaurant_id BIGINT NOT NULL REFERENCES restaurants(id),
            driver_id BIGINT REFERENCES drivers(id),
            items JSONB NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL DEFAULT 'new',
            customer_name TEXT NOT NULL DEFAULT '',
            restaurant_name TEXT NOT NULL DEFAULT '',
            driver_name TEXT,
            delivery_address TEXT NOT NULL DEFAULT '',
            delivery_coordinates JSONB,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            confirmed_at TIMESTAMPTZ,
            in_transit_at TIMESTAMPTZ,
            delivered_at TIMESTAMPTZ,
            cancelled_at TIMESTAMPTZ
        )`,
		`CREATE TABLE IF NOT EXISTS settings (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            platform_name TEXT NOT NULL DEFAULT 'FoodRush',
            contact_email TEXT NOT NULL DEFAULT '',
            support_phone TEXT NOT NULL DEFAULT '',
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created ON orders(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, username, email, passwordHash, role string) (*model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash, role)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, is_active, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username, email, passwordHash, role).Scan(&u.ID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Username = username
	u.Email = email
	u.PasswordHash = passwordHash
	u.Role = role
	return &u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at
                   FROM users WHERE username=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at
                   FROM users WHERE id=$1`
	return r.scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, username, email, password_hash, role, is_active, created_at
                   FROM users ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, customer_id, restaurant_id, driver_id, items, total_amount, status,
                      customer_name, restaurant_name, driver_name, delivery_address, delivery_coordinates,
                      created_at, confirmed_at, in_transit_at, delivered_at, cancelled_at`

// statusTimestampColumn names the column stamped when entering a status.
var statusTimestampColumn = map[model.OrderStatus]string{
	model.OrderStatusPreparing: "confirmed_at",
	model.OrderStatusInTransit: "in_transit_at",
	model.OrderStatusDelivered: "delivered_at",
	model.OrderStatusCancelled: "cancelled_at",
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o         model.Order
		itemsRaw  []byte
		coordsRaw []byte
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.RestaurantID, &o.DriverID, &itemsRaw, &o.TotalAmount, &o.Status,
		&o.CustomerName, &o.RestaurantName, &o.DriverName, &o.DeliveryAddress, &coordsRaw,
		&o.CreatedAt, &o.ConfirmedAt, &o.InTransitAt, &o.DeliveredAt, &o.CancelledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if len(itemsRaw) > 0 {
		if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	if len(coordsRaw) > 0 {
		if err := json.Unmarshal(coordsRaw, &o.DeliveryCoordinates); err != nil {
			return nil, fmt.Errorf("decode delivery coordinates: %w", err)
		}
	}
	return &o, nil
}

func encodeJSON(v any) ([]byte, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}

func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	itemsRaw, err := encodeJSON(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode order items: %w", err)
	}
	var coordsRaw []byte
	if len(order.DeliveryCoordinates) > 0 {
		if coordsRaw, err = encodeJSON(order.DeliveryCoordinates); err != nil {
			return nil, fmt.Errorf("encode delivery coordinates: %w", err)
		}
	}

	const query = `INSERT INTO orders (customer_id, restaurant_id, driver_id, items, total_amount, status,
                                       customer_name, restaurant_name, driver_name, delivery_address, delivery_coordinates)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
                   RETURNING id, created_at`
	created := *order
	err = r.storage.pool.QueryRow(ctx, query,
		order.CustomerID, order.RestaurantID, order.DriverID, itemsRaw, order.TotalAmount, order.Status,
		order.CustomerName, order.RestaurantName, order.DriverName, order.DeliveryAddress, coordsRaw,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	return scanOrder(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`

	var (
		conds []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conds = append(conds, fmt.Sprintf("created_at < $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(id::TEXT ILIKE $%d OR customer_name ILIKE $%d OR restaurant_name ILIKE $%d OR COALESCE(driver_name, '') ILIKE $%d OR delivery_address ILIKE $%d)",
			n, n, n, n, n))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	direction := "DESC"
	if filter.Ascending {
		direction = "ASC"
	}
	query += fmt.Sprintf(" ORDER BY created_at %s, id %s", direction, direction)

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, target model.OrderStatus) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockQuery = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, lockQuery, orderID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !model.CanTransition(current, target) {
			return domainErrors.ErrInvalidTransition
		}

		updateQuery := `UPDATE orders SET status=$1 WHERE id=$2`
		if column, ok := statusTimestampColumn[target]; ok {
			updateQuery = fmt.Sprintf(`UPDATE orders SET status=$1, %s=NOW() WHERE id=$2`, column)
		}
		if _, err := tx.Exec(ctx, updateQuery, target, orderID); err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, orderID))
		if err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) AssignDriver(ctx context.Context, orderID, driverID int64) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const lockOrder = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var current model.OrderStatus
		if err := tx.QueryRow(ctx, lockOrder, orderID).Scan(&current); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if !model.CanAssignDriver(current) {
			return domainErrors.ErrInvalidTransition
		}

		const lockDriver = `SELECT name FROM drivers WHERE id=$1 FOR UPDATE`
		var driverName string
		if err := tx.QueryRow(ctx, lockDriver, driverID).Scan(&driverName); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const updateOrder = `UPDATE orders SET driver_id=$1, driver_name=$2, status=$3 WHERE id=$4`
		if _, err := tx.Exec(ctx, updateOrder, driverID, driverName, model.OrderStatusAssigned, orderID); err != nil {
			return err
		}

		const updateDriver = `UPDATE drivers SET status=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, updateDriver, model.DriverStatusBusy, driverID); err != nil {
			return err
		}

		order, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, orderID))
		if err != nil {
			return err
		}
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// --- DriverRepository implementation ---

func (r *driverRepository) Create(ctx context.Context, name string, status model.DriverStatus) (*model.Driver, error) {
	const query = `INSERT INTO drivers (name, status) VALUES ($1, $2) RETURNING id, created_at`
	var d model.Driver
	if err := r.storage.pool.QueryRow(ctx, query, name, status).Scan(&d.ID, &d.CreatedAt); err != nil {
		return nil, err
	}
	d.Name = name
	d.Status = status
	return &d, nil
}

func (r *driverRepository) GetByID(ctx context.Context, id int64) (*model.Driver, error) {
	const query = `SELECT id, name, status, created_at FROM drivers WHERE id=$1`
	var d model.Driver
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *driverRepository) List(ctx context.Context, status model.DriverStatus) ([]model.Driver, error) {
	query := `SELECT id, name, status, created_at FROM drivers`
	var args []any
	if status != "" {
		args = append(args, status)
		query += ` WHERE status=$1`
	}
	query += ` ORDER BY id`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Driver
	for rows.Next() {
		var d model.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *driverRepository) Update(ctx context.Context, id int64, update repository.DriverUpdate) (*model.Driver, error) {
	const query = `UPDATE drivers SET name=COALESCE($1, name), status=COALESCE($2, status)
                   WHERE id=$3
                   RETURNING id, name, status, created_at`
	var d model.Driver
	err := r.storage.pool.QueryRow(ctx, query, update.Name, update.Status, id).Scan(&d.ID, &d.Name, &d.Status, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *driverRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM drivers WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- RestaurantRepository implementation ---

func scanRestaurant(row pgx.Row) (*model.Restaurant, error) {
	var (
		rest      model.Restaurant
		coordsRaw []byte
	)
	err := row.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.CuisineType, &coordsRaw, &rest.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if len(coordsRaw) > 0 {
		if err := json.Unmarshal(coordsRaw, &rest.Coordinates); err != nil {
			return nil, fmt.Errorf("decode restaurant coordinates: %w", err)
		}
	}
	return &rest, nil
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) (*model.Restaurant, error) {
	var coordsRaw []byte
	if len(restaurant.Coordinates) > 0 {
		var err error
		if coordsRaw, err = encodeJSON(restaurant.Coordinates); err != nil {
			return nil, fmt.Errorf("encode restaurant coordinates: %w", err)
		}
	}

	const query = `INSERT INTO restaurants (name, address, cuisine_type, coordinates)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id, created_at`
	created := *restaurant
	err := r.storage.pool.QueryRow(ctx, query, restaurant.Name, restaurant.Address, restaurant.CuisineType, coordsRaw).
		Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

func (r *restaurantRepository) GetByID(ctx context.Context, id int64) (*model.Restaurant, error) {
	const query = `SELECT id, name, address, cuisine_type, coordinates, created_at FROM restaurants WHERE id=$1`
	return scanRestaurant(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	const query = `SELECT id, name, address, cuisine_type, coordinates, created_at FROM restaurants ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *restaurantRepository) Update(ctx context.Context, id int64, update repository.RestaurantUpdate) (*model.Restaurant, error) {
	var coordsRaw []byte
	if len(update.Coordinates) > 0 {
		var err error
		if coordsRaw, err = encodeJSON(update.Coordinates); err != nil {
			return nil, fmt.Errorf("encode restaurant coordinates: %w", err)
		}
	}

	const query = `UPDATE restaurants SET name=COALESCE($1, name),
                                          address=COALESCE($2, address),
                                          cuisine_type=COALESCE($3, cuisine_type),
                                          coordinates=COALESCE($4, coordinates)
                   WHERE id=$5
                   RETURNING id, name, address, cuisine_type, coordinates, created_at`
	restaurant, err := scanRestaurant(r.storage.pool.QueryRow(ctx, query, update.Name, update.Address, update.CuisineType, coordsRaw, id))
	if err != nil {
		return nil, err
	}
	return restaurant, nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM restaurants WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CustomerRepository implementation ---

func scanCustomer(row pgx.Row) (*model.Customer, error) {
	var (
		c            model.Customer
		addressesRaw []byte
	)
	err := row.Scan(&c.ID, &c.Name, &addressesRaw, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if len(addressesRaw) > 0 {
		if err := json.Unmarshal(addressesRaw, &c.Addresses); err != nil {
			return nil, fmt.Errorf("decode customer addresses: %w", err)
		}
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, name string, addresses []model.CustomerAddress) (*model.Customer, error) {
	if addresses == nil {
		addresses = []model.CustomerAddress{}
	}
	addressesRaw, err := encodeJSON(addresses)
	if err != nil {
		return nil, fmt.Errorf("encode customer addresses: %w", err)
	}

	const query = `INSERT INTO customers (name, addresses) VALUES ($1, $2) RETURNING id, created_at`
	var c model.Customer
	if err := r.storage.pool.QueryRow(ctx, query, name, addressesRaw).Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Name = name
	c.Addresses = addresses
	return &c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, addresses, created_at FROM customers WHERE id=$1`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT id, name, addresses, created_at FROM customers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *customer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, update repository.CustomerUpdate) (*model.Customer, error) {
	var addressesRaw []byte
	if update.Addresses != nil {
		var err error
		if addressesRaw, err = encodeJSON(update.Addresses); err != nil {
			return nil, fmt.Errorf("encode customer addresses: %w", err)
		}
	}

	const query = `UPDATE customers SET name=COALESCE($1, name), addresses=COALESCE($2, addresses)
                   WHERE id=$3
                   RETURNING id, name, addresses, created_at`
	return scanCustomer(r.storage.pool.QueryRow(ctx, query, update.Name, addressesRaw, id))
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM customers WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SettingsRepository implementation ---

const settingsColumns = `id, platform_name, contact_email, support_phone, updated_at`

func (r *settingsRepository) Get(ctx context.Context) (*model.Settings, error) {
	query := `SELECT ` + settingsColumns + ` FROM settings WHERE id=1`
	var s model.Settings
	err := r.storage.pool.QueryRow(ctx, query).Scan(&s.ID, &s.PlatformName, &s.ContactEmail, &s.SupportPhone, &s.UpdatedAt)
	if err == nil {
		return &s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	insert := `INSERT INTO settings (id) VALUES (1)
               ON CONFLICT (id) DO NOTHING
               RETURNING ` + settingsColumns
	err = r.storage.pool.QueryRow(ctx, insert).Scan(&s.ID, &s.PlatformName, &s.ContactEmail, &s.SupportPhone, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost the insert race; the row exists now.
			return r.Get(ctx)
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, update repository.SettingsUpdate) (*model.Settings, error) {
	query := `INSERT INTO settings (id, platform_name, contact_email, support_phone, updated_at)
              VALUES (1, COALESCE($1, 'FoodRush'), COALESCE($2, ''), COALESCE($3, ''), NOW())
              ON CONFLICT (id) DO UPDATE
              SET platform_name = COALESCE($1, settings.platform_name),
                  contact_email = COALESCE($2, settings.contact_email),
                  support_phone = COALESCE($3, settings.support_phone),
                  updated_at = NOW()
              RETURNING ` + settingsColumns
	var s model.Settings
	err := r.storage.pool.QueryRow(ctx, query, update.PlatformName, update.ContactEmail, update.SupportPhone).
		Scan(&s.ID, &s.PlatformName, &s.ContactEmail, &s.SupportPhone, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
