package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/foodrush/internal/server/http/dto"
	"github.com/polkiloo/foodrush/internal/usecase"
)

// AnalyticsHandler serves reporting endpoints.
type AnalyticsHandler struct {
	facade AnalyticsFacade
}

// NewAnalyticsHandler constructs AnalyticsHandler.
func NewAnalyticsHandler(facade AnalyticsFacade) *AnalyticsHandler {
	return &AnalyticsHandler{facade: facade}
}

// Dashboard handles GET /api/analytics/dashboard.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	period := usecase.Period(c.DefaultQuery("period", string(usecase.PeriodWeek)))

	summary, err := h.facade.DashboardAnalytics(c.Request.Context(), period, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// Sales handles POST /api/analytics/sales.
func (h *AnalyticsHandler) Sales(c *gin.Context) {
	var req dto.SalesAnalyticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed request body"})
		return
	}

	var start, end *time.Time
	if req.StartDate != "" {
		t, ok := parseDate(req.StartDate)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed start_date"})
			return
		}
		start = &t
	}
	if req.EndDate != "" {
		t, ok := parseDate(req.EndDate)
		if !ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Detail: "malformed end_date"})
			return
		}
		end = &t
	}

	summary, series, err := h.facade.SalesAnalytics(c.Request.Context(), usecase.Period(req.Period), start, end, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.SalesAnalyticsResponse{
		Summary:    toSummaryResponse(summary),
		TimeSeries: make([]dto.TimeSeriesItemResponse, 0, len(series)),
	}
	for _, point := range series {
		response.TimeSeries = append(response.TimeSeries, dto.TimeSeriesItemResponse{
			Date:   point.Date,
			Orders: point.Orders,
			Sales:  point.Sales,
		})
	}
	c.JSON(http.StatusOK, response)
}

func parseDate(value string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func toSummaryResponse(summary *usecase.Summary) dto.AnalyticsSummaryResponse {
	response := dto.AnalyticsSummaryResponse{
		TotalOrders:     summary.TotalOrders,
		TotalSales:      summary.TotalSales,
		AvgOrderValue:   summary.AverageOrderValue,
		AvgDeliveryTime: summary.AverageDeliveryMinutes,
		CompletionRate:  summary.CompletionRate,
		OrderStatuses: dto.StatusCountsResponse{
			New:       summary.StatusCounts.New,
			Assigned:  summary.StatusCounts.Assigned,
			Preparing: summary.StatusCounts.Preparing,
			InTransit: summary.StatusCounts.InTransit,
			Delivered: summary.StatusCounts.Delivered,
			Cancelled: summary.StatusCounts.Cancelled,
		},
		StatusPercentages: make(map[string]float64, len(summary.StatusShares)),
		TopDrivers:        make([]dto.DriverPerformanceResponse, 0, len(summary.TopDrivers)),
		TopRestaurants:    make([]dto.RestaurantPerformanceResponse, 0, len(summary.TopRestaurants)),
	}

	for status, share := range summary.StatusShares {
		response.StatusPercentages[string(status)] = share
	}
	for _, driver := range summary.TopDrivers {
		response.TopDrivers = append(response.TopDrivers, dto.DriverPerformanceResponse{
			ID:              driver.ID,
			Name:            driver.Name,
			Deliveries:      driver.Deliveries,
			AvgDeliveryTime: driver.AvgDeliveryMinutes,
		})
	}
	for _, restaurant := range summary.TopRestaurants {
		response.TopRestaurants = append(response.TopRestaurants, dto.RestaurantPerformanceResponse{
			ID:     restaurant.ID,
			Name:   restaurant.Name,
			Sales:  restaurant.Sales,
			Orders: restaurant.Orders,
		})
	}
	return response
}
