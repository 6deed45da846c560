package usecase

import (
	"context"
	"math"
	"sort"
	"time"

	domainErrors "github.com/polkiloo/foodrush/internal/domain/errors"
	"github.com/polkiloo/foodrush/internal/domain/model"
	"github.com/polkiloo/foodrush/internal/domain/repository"
)

// Period names a reporting window anchored at the current moment.
type Period string

const (
	PeriodAll    Period = "all"
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

// topEntries caps top-driver and top-restaurant listings.
const topEntries = 5

// PeriodWindow resolves a period into a created_at half-open window [from, to).
// "today" means the current calendar date in local time, not a rolling 24h.
func PeriodWindow(period Period, now time.Time) (from, to *time.Time, err error) {
	switch period {
	case PeriodAll, "":
		return nil, nil, nil
	case PeriodToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 0, 1)
		return &start, &end, nil
	case PeriodWeek:
		start := now.AddDate(0, 0, -7)
		return &start, &now, nil
	case PeriodMonth:
		start := now.AddDate(0, -1, 0)
		return &start, &now, nil
	default:
		return nil, nil, domainErrors.ErrValidation
	}
}

// StatusCounts holds order counts per lifecycle status.
type StatusCounts struct {
	New       int
	Assigned  int
	Preparing int
	InTransit int
	Delivered int
	Cancelled int
}

// DriverPerformance ranks a driver by completed deliveries.
type DriverPerformance struct {
	ID                 int64
	Name               string
	Deliveries         int
	AvgDeliveryMinutes int
}

// RestaurantPerformance ranks a restaurant by sales volume.
type RestaurantPerformance struct {
	ID     int64
	Name   string
	Sales  float64
	Orders int
}

// DailyPoint is one calendar day of the sales time series.
type DailyPoint struct {
	Date   string
	Orders int
	Sales  float64
}

// Summary aggregates the dashboard metrics over one order collection.
type Summary struct {
	TotalOrders            int
	TotalSales             float64
	AverageOrderValue      float64
	AverageDeliveryMinutes int
	CompletionRate         float64
	StatusCounts           StatusCounts
	StatusShares           map[model.OrderStatus]float64
	TopDrivers             []DriverPerformance
	TopRestaurants         []RestaurantPerformance
}

// Summarize derives dashboard metrics from orders. It is pure: the same
// collection always yields the same summary, including rounding.
func Summarize(orders []model.Order) Summary {
	summary := Summary{
		TotalOrders:  len(orders),
		StatusShares: make(map[model.OrderStatus]float64),
	}

	for _, order := range orders {
		summary.TotalSales += order.TotalAmount
		switch order.Status {
		case model.OrderStatusNew:
			summary.StatusCounts.New++
		case model.OrderStatusAssigned:
			summary.StatusCounts.Assigned++
		case model.OrderStatusPreparing:
			summary.StatusCounts.Preparing++
		case model.OrderStatusInTransit:
			summary.StatusCounts.InTransit++
		case model.OrderStatusDelivered:
			summary.StatusCounts.Delivered++
		case model.OrderStatusCancelled:
			summary.StatusCounts.Cancelled++
		}
	}

	if summary.TotalOrders > 0 {
		summary.AverageOrderValue = roundTo(summary.TotalSales/float64(summary.TotalOrders), 2)
		counts := map[model.OrderStatus]int{
			model.OrderStatusNew:       summary.StatusCounts.New,
			model.OrderStatusAssigned:  summary.StatusCounts.Assigned,
			model.OrderStatusPreparing: summary.StatusCounts.Preparing,
			model.OrderStatusInTransit: summary.StatusCounts.InTransit,
			model.OrderStatusDelivered: summary.StatusCounts.Delivered,
			model.OrderStatusCancelled: summary.StatusCounts.Cancelled,
		}
		for status, count := range counts {
			summary.StatusShares[status] = roundTo(float64(count)/float64(summary.TotalOrders)*100, 1)
		}
	}

	summary.AverageDeliveryMinutes = averageDeliveryMinutes(orders)

	settled := summary.TotalOrders - summary.StatusCounts.New
	if settled > 0 {
		summary.CompletionRate = roundTo(float64(summary.StatusCounts.Delivered)/float64(settled)*100, 1)
	}

	summary.TopDrivers = TopDrivers(orders, topEntries)
	summary.TopRestaurants = TopRestaurants(orders, topEntries)
	return summary
}

func averageDeliveryMinutes(orders []model.Order) int {
	var (
		totalSeconds float64
		completed    int
	)
	for _, order := range orders {
		if order.Status != model.OrderStatusDelivered || order.ConfirmedAt == nil || order.DeliveredAt == nil {
			continue
		}
		totalSeconds += order.DeliveredAt.Sub(*order.ConfirmedAt).Seconds()
		completed++
	}
	if completed == 0 {
		return 0
	}
	return int(totalSeconds / float64(completed) / 60)
}

// TopDrivers ranks drivers by delivered-order count, ties kept in first-seen
// order.
func TopDrivers(orders []model.Order, n int) []DriverPerformance {
	type driverStats struct {
		name         string
		deliveries   int
		totalMinutes float64
	}
	stats := make(map[int64]*driverStats)
	var seen []int64

	for _, order := range orders {
		if order.DriverID == nil || order.Status != model.OrderStatusDelivered {
			continue
		}
		id := *order.DriverID
		entry, ok := stats[id]
		if !ok {
			name := "Unknown"
			if order.DriverName != nil {
				name = *order.DriverName
			}
			entry = &driverStats{name: name}
			stats[id] = entry
			seen = append(seen, id)
		}
		entry.deliveries++
		if order.ConfirmedAt != nil && order.DeliveredAt != nil {
			entry.totalMinutes += order.DeliveredAt.Sub(*order.ConfirmedAt).Minutes()
		}
	}

	result := make([]DriverPerformance, 0, len(seen))
	for _, id := range seen {
		entry := stats[id]
		avg := 0
		if entry.deliveries > 0 {
			avg = int(entry.totalMinutes / float64(entry.deliveries))
		}
		result = append(result, DriverPerformance{
			ID:                 id,
			Name:               entry.name,
			Deliveries:         entry.deliveries,
			AvgDeliveryMinutes: avg,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Deliveries > result[j].Deliveries
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

// TopRestaurants ranks restaurants by summed order value, ties kept in
// first-seen order.
func TopRestaurants(orders []model.Order, n int) []RestaurantPerformance {
	type restaurantStats struct {
		name   string
		sales  float64
		orders int
	}
	stats := make(map[int64]*restaurantStats)
	var seen []int64

	for _, order := range orders {
		entry, ok := stats[order.RestaurantID]
		if !ok {
			name := order.RestaurantName
			if name == "" {
				name = "Unknown"
			}
			entry = &restaurantStats{name: name}
			stats[order.RestaurantID] = entry
			seen = append(seen, order.RestaurantID)
		}
		entry.sales += order.TotalAmount
		entry.orders++
	}

	result := make([]RestaurantPerformance, 0, len(seen))
	for _, id := range seen {
		entry := stats[id]
		result = append(result, RestaurantPerformance{
			ID:     id,
			Name:   entry.name,
			Sales:  roundTo(entry.sales, 2),
			Orders: entry.orders,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Sales > result[j].Sales
	})
	if len(result) > n {
		result = result[:n]
	}
	return result
}

// DailySeries groups orders and sales by calendar day, ascending by date.
func DailySeries(orders []model.Order) []DailyPoint {
	points := make(map[string]*DailyPoint)
	for _, order := range orders {
		date := order.CreatedAt.Format("2006-01-02")
		point, ok := points[date]
		if !ok {
			point = &DailyPoint{Date: date}
			points[date] = point
		}
		point.Orders++
		point.Sales += order.TotalAmount
	}

	dates := make([]string, 0, len(points))
	for date := range points {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]DailyPoint, 0, len(dates))
	for _, date := range dates {
		point := points[date]
		point.Sales = roundTo(point.Sales, 2)
		result = append(result, *point)
	}
	return result
}

func roundTo(v float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(v*factor) / factor
}

// AnalyticsUseCase computes reporting summaries over the order collection.
type AnalyticsUseCase struct {
	orders repository.OrderRepository
}

// NewAnalyticsUseCase constructs AnalyticsUseCase.
func NewAnalyticsUseCase(orders repository.OrderRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{orders: orders}
}

// Dashboard returns the summary for a named period.
func (u *AnalyticsUseCase) Dashboard(ctx context.Context, period Period, now time.Time) (*Summary, error) {
	from, to, err := PeriodWindow(period, now)
	if err != nil {
		return nil, err
	}
	orders, err := u.orders.List(ctx, repository.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, err
	}
	summary := Summarize(orders)
	return &summary, nil
}

// Sales returns the summary plus a daily time series. A custom period uses
// the supplied start/end bounds.
func (u *AnalyticsUseCase) Sales(ctx context.Context, period Period, start, end *time.Time, now time.Time) (*Summary, []DailyPoint, error) {
	var from, to *time.Time
	if period == PeriodCustom {
		if start == nil || end == nil {
			return nil, nil, domainErrors.ErrValidation
		}
		from, to = start, end
	} else {
		var err error
		if from, to, err = PeriodWindow(period, now); err != nil {
			return nil, nil, err
		}
	}

	orders, err := u.orders.List(ctx, repository.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, nil, err
	}
	summary := Summarize(orders)
	return &summary, DailySeries(orders), nil
}
