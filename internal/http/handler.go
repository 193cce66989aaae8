package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleetops-service/internal/http/middleware"
	"fleetops-service/internal/service"
)

type Handler struct {
	auth        *service.AuthService
	vehicles    *service.VehicleService
	fuel        *service.FuelService
	maintenance *service.MaintenanceService
	statistics  *service.StatisticsService
	reports     *service.ReportService
	log         zerolog.Logger
}

func NewHandler(
	auth *service.AuthService,
	vehicles *service.VehicleService,
	fuel *service.FuelService,
	maintenance *service.MaintenanceService,
	statistics *service.StatisticsService,
	reports *service.ReportService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		auth:        auth,
		vehicles:    vehicles,
		fuel:        fuel,
		maintenance: maintenance,
		statistics:  statistics,
		reports:     reports,
		log:         log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	api := r.Group("/api/v1")

	api.POST("/auth/login", h.login)

	protected := api.Group("")
	protected.Use(authMiddleware)

	protected.POST("/auth/change-password", h.changePassword)

	protected.GET("/vehicles", h.listVehicles)
	protected.GET("/vehicles/:id", h.getVehicle)
	protected.POST("/vehicles", h.createVehicle)
	protected.PUT("/vehicles/:id", h.updateVehicle)
	protected.DELETE("/vehicles/:id", h.deleteVehicle)
	protected.GET("/vehicles/:id/fuel", h.listVehicleFuel)
	protected.GET("/vehicles/:id/maintenance", h.listVehicleMaintenance)
	protected.GET("/vehicles/:id/statistics", h.getVehicleStatistics)

	protected.GET("/fuel", h.listFuel)
	protected.GET("/fuel/:id", h.getFuel)
	protected.POST("/fuel", h.createFuel)
	protected.DELETE("/fuel/:id", h.deleteFuel)

	protected.GET("/maintenance", h.listMaintenance)
	protected.GET("/maintenance/:id", h.getMaintenance)
	protected.POST("/maintenance", h.createMaintenance)
	protected.PUT("/maintenance/:id", h.updateMaintenance)
	protected.DELETE("/maintenance/:id", h.deleteMaintenance)

	protected.GET("/statistics/fleet", h.getFleetStatistics)
	protected.GET("/statistics/vehicles", h.getAllVehicleStatistics)
	protected.GET("/statistics/vehicles/:id", h.getVehicleStatistics)
	protected.GET("/statistics/top-consumption", h.getTopByConsumption)
	protected.GET("/statistics/top-cost", h.getTopByCost)
	protected.GET("/statistics/monthly", h.getMonthlyTrends)
	protected.GET("/statistics/types", h.getVehicleTypeStatistics)
	protected.GET("/statistics/fuel-types", h.getFuelTypeStatistics)
	protected.GET("/statistics/alerts", h.getAlerts)
	protected.GET("/statistics/trends/consumption", h.getConsumptionTrend)
	protected.GET("/statistics/trends/cost", h.getCostTrend)
	protected.GET("/statistics/predictions", h.getPredictions)
	protected.GET("/statistics/movements", h.getRecentMovements)
	protected.GET("/statistics/dashboard", h.getDashboard)

	protected.GET("/reports/fleet.csv", h.exportCSV)
	protected.GET("/reports/fleet.xlsx", h.exportExcel)
	protected.GET("/reports/fleet.pdf", h.exportPDF)

	admin := protected.Group("/users")
	admin.Use(middleware.RequireAdmin())
	admin.GET("", h.listUsers)
	admin.GET("/:id", h.getUser)
	admin.POST("", h.createUser)
	admin.PUT("/:id", h.updateUser)
	admin.DELETE("/:id", h.deleteUser)
	admin.POST("/:id/reset-password", h.resetPassword)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied), errors.Is(err, service.ErrProtectedAccount):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrOldPasswordMismatch):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, service.ErrDuplicateRegistration),
		errors.Is(err, service.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{"data": data}
}

func errorResponse(message string) gin.H {
	return gin.H{"error": message}
}
