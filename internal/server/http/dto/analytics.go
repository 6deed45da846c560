package dto

// StatusCountsResponse holds order counts per lifecycle status.
type StatusCountsResponse struct {
	New       int `json:"new"`
	Assigned  int `json:"assigned"`
	Preparing int `json:"preparing"`
	InTransit int `json:"in_transit"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
}

// DriverPerformanceResponse ranks a driver by completed deliveries.
type DriverPerformanceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Deliveries      int    `json:"deliveries"`
	AvgDeliveryTime int    `json:"avg_delivery_time"`
}

// RestaurantPerformanceResponse ranks a restaurant by sales volume.
type RestaurantPerformanceResponse struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Sales  float64 `json:"sales"`
	Orders int     `json:"orders"`
}

// TimeSeriesItemResponse is one calendar day of the sales series.
type TimeSeriesItemResponse struct {
	Date   string  `json:"date"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}

// AnalyticsSummaryResponse aggregates dashboard metrics.
type AnalyticsSummaryResponse struct {
	TotalOrders       int                             `json:"total_orders"`
	TotalSales        float64                         `json:"total_sales"`
	AvgOrderValue     float64                         `json:"avg_order_value"`
	AvgDeliveryTime   int                             `json:"avg_delivery_time"`
	CompletionRate    float64                         `json:"completion_rate"`
	OrderStatuses     StatusCountsResponse            `json:"order_statuses"`
	StatusPercentages map[string]float64              `json:"status_percentages"`
	TopDrivers        []DriverPerformanceResponse     `json:"top_drivers"`
	TopRestaurants    []RestaurantPerformanceResponse `json:"top_restaurants"`
}

// SalesAnalyticsRequest selects the reporting window.
type SalesAnalyticsRequest struct {
	Period    string `json:"period"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// SalesAnalyticsResponse carries a summary plus its daily series.
type SalesAnalyticsResponse struct {
	Summary    AnalyticsSummaryResponse `json:"summary"`
	TimeSeries []TimeSeriesItemResponse `json:"time_series"`
}
