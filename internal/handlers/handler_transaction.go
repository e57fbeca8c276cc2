package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/dto"
	"github.com/trackspend/expense_tracker_app/internal/middleware"
)

// transactionHandler handles HTTP requests for the transaction ledger.
type transactionHandler struct {
	txnService       portssvc.TransactionSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) *transactionHandler {
	return &transactionHandler{
		txnService:       ts,
		reportingService: rs,
	}
}

// registerTransactionRoutes registers all transaction CRUD routes.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade, rs portssvc.ReportingSvcFacade) {
	h := newTransactionHandler(ts, rs)

	txns := rg.Group("/transactions")
	{
		txns.POST("", h.createTransaction)
		txns.GET("", h.listTransactions)
		txns.GET("/:id", h.getTransaction)
		txns.PUT("/:id", h.updateTransaction)
		txns.DELETE("/:id", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a new income or expense transaction and returns it with a refreshed monthly series for its year
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Err("Invalid request format"))
		return
	}

	txn, err := h.txnService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(err, "Invalid transaction")))
			return
		}
		logger.Error("Failed to create transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to create transaction"))
		return
	}

	// Refresh the monthly series for the year the record landed in, so the
	// client can redraw its chart without a second round trip.
	monthlyStats, err := h.reportingService.MonthlySeries(c.Request.Context(), userID, txn.OccurredAt.UTC().Year())
	if err != nil {
		logger.Error("Failed to compute monthly series after create", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to create transaction"))
		return
	}

	c.JSON(http.StatusCreated, dto.OKWithMessage("Transaction created successfully", dto.CreateTransactionResponse{
		Transaction:  dto.ToTransactionResponse(txn),
		MonthlyStats: dto.ToMonthlyStatResponses(monthlyStats),
	}))
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns a filtered, paginated page of the caller's transactions, newest first
// @Tags transactions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size (1-100)" default(50)
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
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind list transaction params", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Err("Invalid query parameters"))
		return
	}

	if err := params.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(err, "Invalid query parameters")))
		return
	}

	filter, err := params.Filter()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(err, "Invalid query parameters")))
		return
	}

	txns, total, err := h.txnService.ListTransactions(c.Request.Context(), userID, filter, params.Page, params.Limit)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to retrieve transactions"))
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		Pagination:   dto.NewPaginationResponse(params.Page, params.Limit, total),
	}))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Description Retrieves one of the caller's transactions; other owners' records are indistinguishable from missing ones
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Not found"
// @Security BearerAuth
// @Router /transactions/{id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	txn, err := h.txnService.GetTransactionByID(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("Transaction not found"))
			return
		}
		logger.Error("Failed to get transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to retrieve transaction"))
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Transaction retrieved successfully", dto.ToTransactionResponse(txn)))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Applies a partial update to one of the caller's transactions
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response "Invalid input"
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Not found"
// @Security BearerAuth
// @Router /transactions/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind update transaction request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.Err("Invalid request format"))
		return
	}

	txn, err := h.txnService.UpdateTransaction(c.Request.Context(), userID, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.Err(apperrors.MessageFor(err, "Invalid transaction")))
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.Err("Transaction not found"))
		default:
			logger.Error("Failed to update transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.Err("Failed to update transaction"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.OKWithMessage("Transaction updated successfully", dto.ToTransactionResponse(txn)))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes one of the caller's transactions by ID
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} dto.Response
// @Failure 401 {object} dto.Response "Unauthorized"
// @Failure 404 {object} dto.Response "Not found"
// @Security BearerAuth
// @Router /transactions/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Err("User not authenticated"))
		return
	}

	if err := h.txnService.DeleteTransaction(c.Request.Context(), userID, c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Err("Transaction not found"))
			return
		}
		logger.Error("Failed to delete transaction", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Err("Failed to delete transaction"))
		return
	}

	c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Transaction deleted successfully"})
}
