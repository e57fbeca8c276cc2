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

type summaryHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newSummaryHandler(rs portssvc.ReportingSvcFacade) *summaryHandler {
	return &summaryHandler{reportingService: rs}
}

func registerSummaryRoutes(rg *gin.RouterGroup, rs portssvc.ReportingSvcFacade) {
	h := newSummaryHandler(rs)
	rg.GET("/summary", h.getSummary)
}

// getSummary godoc
// @Summary Get a financial summary
// @Description Returns total income, total expense, and balance over an optional date range
// @Tags summary
// @Produce json
// @Param type query string false "Filter by type (income or expense)"
// @Param category query string false "Filter by category"
// @Param startDate query string false "Inclusive lower date bound"
// @Param endDate query string false "Inclusive upper date bound (whole day)"
// @Param month query int false "Calendar month (1-12); with year, overrides startDate/endDate"
// @Param year query int false "Calendar year for the month filter"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /summary [get]
func (h *summaryHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	var params dto.TransactionFilterParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind summary params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Err("Invalid query parameters"))
		return
	}

	filter, err := params.Filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(err, "Invalid query parameters")))
		return
	}

	summary, err := h.reportingService.FinancialSummary(c.Request.Context(), userID, filter)
	if err != nil {
		logger.Error("Failed to compute financial summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to retrieve summary"))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Summary retrieved successfully", dto.ToSummaryResponse(summary)))
}
