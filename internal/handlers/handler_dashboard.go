package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/dto"
	"github.com/trackspend/expense_tracker_app/internal/middleware"
)

type dashboardHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newDashboardHandler(rs portssvc.ReportingSvcFacade) *dashboardHandler {
	return &dashboardHandler{reportingService: rs}
}

func registerDashboardRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newDashboardHandler(rs)
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get dashboard statistics
// @Description Returns year-scoped totals, the most recent transactions, and a dense Jan-Dec monthly series
// @Tags dashboard
// @Produce json
// @Param limit query int false "Number of recent transactions (1-50)" default(5)
// @Param year query int false "Calendar year; defaults to the current UTC year"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind dashboard params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Err("Invalid query parameters"))
		return
	}

	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(err, "Invalid query parameters")))
		return
	}

	stats, err := h.reportingService.DashboardStats(c.Request.Context(), userID, params.Year, params.Limit)
	if err != nil {
		logger.Error("Failed to compute dashboard stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to retrieve dashboard statistics"))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Dashboard statistics retrieved successfully", dto.ToDashboardResponse(stats)))
}
