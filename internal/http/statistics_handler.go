package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) getFleetStatistics(c *gin.Context) {
	stats, err := h.statistics.FleetStatistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) getVehicleStatistics(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.statistics.VehicleStatistics(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) getAllVehicleStatistics(c *gin.Context) {
	stats, err := h.statistics.AllVehicleStatistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) getMonthlyTrends(c *gin.Context) {
	months := parseIntQuery(c, "months", h.statistics.DefaultMonthlyMonths())
	trends, err := h.statistics.MonthlyTrends(c.Request.Context(), months)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(trends))
}

func (h *Handler) getTopByConsumption(c *gin.Context) {
	limit := parseIntQuery(c, "limit", h.statistics.DefaultTopVehicles())
	top, err := h.statistics.TopVehiclesByConsumption(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(top))
}

func (h *Handler) getTopByCost(c *gin.Context) {
	limit := parseIntQuery(c, "limit", h.statistics.DefaultTopVehicles())
	top, err := h.statistics.TopVehiclesByCost(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(top))
}

func (h *Handler) getConsumptionTrend(c *gin.Context) {
	days := parseIntQuery(c, "days", h.statistics.DefaultTrendDays())
	points, err := h.statistics.ConsumptionTrend(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(points))
}

func (h *Handler) getCostTrend(c *gin.Context) {
	days := parseIntQuery(c, "days", h.statistics.DefaultTrendDays())
	points, err := h.statistics.CostTrend(c.Request.Context(), days)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(points))
}

func (h *Handler) getRecentMovements(c *gin.Context) {
	limit := parseIntQuery(c, "limit", h.statistics.DefaultMovements())
	movements, err := h.statistics.RecentMovements(c.Request.Context(), limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(movements))
}

func (h *Handler) getVehicleTypeStatistics(c *gin.Context) {
	stats, err := h.statistics.VehicleTypeStatistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) getFuelTypeStatistics(c *gin.Context) {
	stats, err := h.statistics.FuelTypeStatistics(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(stats))
}

func (h *Handler) getAlerts(c *gin.Context) {
	alerts, err := h.statistics.DashboardAlerts(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(alerts))
}

func (h *Handler) getPredictions(c *gin.Context) {
	predictions, err := h.statistics.Predictions(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(predictions))
}

func (h *Handler) getDashboard(c *gin.Context) {
	dashboard, err := h.statistics.Dashboard(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(dashboard))
}
