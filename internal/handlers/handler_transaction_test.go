package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/trackspend/expense_tracker_app/internal/apperrors"
	"github.com/trackspend/expense_tracker_app/internal/core/domain"
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/dto"
	"github.com/trackspend/expense_tracker_app/internal/handlers"
	"github.com/trackspend/expense_tracker_app/internal/platform/config"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, userID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) GetTransactionByID(ctx context.Context, userID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) ListTransactions(ctx context.Context, userID string, filter domain.TransactionFilter, page, limit int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, userID, filter, page, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}
func (m *MockTransactionService) UpdateTransaction(ctx context.Context, userID, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, userID, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionService) DeleteTransaction(ctx context.Context, userID, transactionID string) error {
	args := m.Called(ctx, userID, transactionID)
	return args.Error(0)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardStats(ctx context.Context, userID string, year, recentLimit int) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID, year, recentLimit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockReportingService) MonthlySeries(ctx context.Context, userID string, year int) ([]domain.MonthlyStat, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyStat), args.Error(1)
}
func (m *MockReportingService) FinancialSummary(ctx context.Context, userID string, filter domain.TransactionFilter) (*domain.FinancialSummary, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialSummary), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req dto.SignUpRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type TransactionHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockTxnService       *MockTransactionService
	mockReportingService *MockReportingService
	mockUserService      *MockUserService
	jwtSecret            string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *TransactionHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "eta-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTxnService = new(MockTransactionService)
	suite.mockReportingService = new(MockReportingService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:           suite.jwtSecret,
		JWTExpiryDuration:   time.Hour,
		JWTIssuer:           "eta-test",
		IsProduction:        true,
		CORSAllowedOrigins:  []string{"http://localhost:5173"},
		AuthRateLimitCount:  100,
		AuthRateLimitPeriod: time.Minute,
	}

	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Transaction: suite.mockTxnService,
		Reporting:   suite.mockReportingService,
		User:        suite.mockUserService,
	})
}

func (suite *TransactionHandlerTestSuite) doRequest(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// envelope mirrors dto.Response with a raw data payload for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (suite *TransactionHandlerTestSuite) decodeEnvelope(w *httptest.ResponseRecorder) envelope {
	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

// --- Test Cases ---

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	userID := uuid.NewString()
	created := &domain.Transaction{
		TransactionID: uuid.NewString(),
		UserID:        userID,
		Type:          domain.Expense,
		Category:      "Groceries",
		Title:         "Weekly shop",
		Amount:        decimal.NewFromFloat(42.50),
		OccurredAt:    time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
	}
	series := []domain.MonthlyStat{{Name: "Jan", Income: decimal.Zero, Expense: decimal.Zero}}

	suite.mockTxnService.On("CreateTransaction", mock.Anything, userID,
		mock.MatchedBy(func(req dto.CreateTransactionRequest) bool {
			return req.Type == "expense" && req.Title == "Weekly shop"
		})).Return(created, nil).Once()
	suite.mockReportingService.On("MonthlySeries", mock.Anything, userID, 2025).Return(series, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, map[string]any{
		"type":     "expense",
		"category": "Groceries",
		"title":    "Weekly shop",
		"amount":   42.50,
		"date":     "2025-03-10",
	})

	suite.Equal(http.StatusCreated, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.Success)
	suite.Equal("Transaction created successfully", env.Message)

	var payload dto.CreateTransactionResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &payload))
	suite.Equal(created.TransactionID, payload.Transaction.ID)
	suite.Len(payload.MonthlyStats, 1)

	suite.mockTxnService.AssertExpectations(suite.T())
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_ValidationError() {
	userID := uuid.NewString()

	suite.mockTxnService.On("CreateTransaction", mock.Anything, userID, mock.AnythingOfType("dto.CreateTransactionRequest")).
		Return(nil, apperrors.NewValidationError("Amount must be greater than zero")).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/transactions", userID, map[string]any{
		"type":     "expense",
		"category": "Misc",
		"title":    "Free lunch",
		"amount":   0,
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.Success)
	suite.Equal("Amount must be greater than zero", env.Message)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/transactions", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.Success)
	suite.mockTxnService.AssertNotCalled(suite.T(), "CreateTransaction")
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_Success() {
	userID := uuid.NewString()
	txns := []domain.Transaction{
		{
			TransactionID: uuid.NewString(),
			UserID:        userID,
			Type:          domain.Income,
			Category:      "Salary",
			Title:         "Payroll",
			Amount:        decimal.NewFromInt(3000),
			OccurredAt:    time.Date(2025, time.August, 29, 12, 0, 0, 0, time.UTC),
		},
	}

	suite.mockTxnService.On("ListTransactions", mock.Anything, userID,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.Type != nil && *f.Type == domain.Income
		}), 2, 10).Return(txns, int64(11), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?type=income&page=2&limit=10", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.Success)

	var payload dto.ListTransactionsResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &payload))
	suite.Len(payload.Transactions, 1)
	suite.Equal(2, payload.Pagination.Page)
	suite.Equal(10, payload.Pagination.Limit)
	suite.Equal(int64(11), payload.Pagination.Total)
	suite.Equal(2, payload.Pagination.TotalPages)

	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_BadLimit() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions?limit=101", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decodeEnvelope(w)
	suite.Equal("Limit must be between 1 and 100", env.Message)
	suite.mockTxnService.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *TransactionHandlerTestSuite) TestGetTransaction_NotFound() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockTxnService.On("GetTransactionByID", mock.Anything, userID, txnID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	env := suite.decodeEnvelope(w)
	suite.False(env.Success)
	suite.Equal("Transaction not found", env.Message)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestUpdateTransaction_Success() {
	userID := uuid.NewString()
	txnID := uuid.NewString()
	updated := &domain.Transaction{
		TransactionID: txnID,
		UserID:        userID,
		Type:          domain.Expense,
		Category:      "Bills",
		Title:         "Corrected title",
		Amount:        decimal.NewFromInt(80),
		OccurredAt:    time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockTxnService.On("UpdateTransaction", mock.Anything, userID, txnID,
		mock.MatchedBy(func(req dto.UpdateTransactionRequest) bool {
			return req.Title != nil && *req.Title == "Corrected title"
		})).Return(updated, nil).Once()

	w := suite.doRequest(http.MethodPut, "/api/v1/transactions/"+txnID, userID, map[string]any{
		"title": "Corrected title",
	})

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.Equal("Transaction updated successfully", env.Message)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_Success() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockTxnService.On("DeleteTransaction", mock.Anything, userID, txnID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.Success)
	suite.Equal("Transaction deleted successfully", env.Message)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestDeleteTransaction_NotFound() {
	userID := uuid.NewString()
	txnID := uuid.NewString()

	suite.mockTxnService.On("DeleteTransaction", mock.Anything, userID, txnID).
		Return(apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/transactions/"+txnID, userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockTxnService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetSummary_Success() {
	userID := uuid.NewString()
	summary := &domain.FinancialSummary{
		TotalIncome:  decimal.NewFromInt(2000),
		TotalExpense: decimal.NewFromInt(600),
		Balance:      decimal.NewFromInt(1400),
	}

	suite.mockReportingService.On("FinancialSummary", mock.Anything, userID,
		mock.MatchedBy(func(f domain.TransactionFilter) bool {
			return f.StartDate != nil && f.EndDate != nil &&
				f.StartDate.Equal(time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
		})).Return(summary, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/summary?month=2&year=2025", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.Success)

	var payload dto.SummaryResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &payload))
	suite.True(payload.TotalIncome.Equal(decimal.NewFromInt(2000)))
	suite.True(payload.Balance.Equal(decimal.NewFromInt(1400)))
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetDashboard_Success() {
	userID := uuid.NewString()
	stats := &domain.DashboardStats{
		TotalBalance: decimal.NewFromInt(100),
		TotalIncome:  decimal.NewFromInt(150),
		TotalExpense: decimal.NewFromInt(50),
		MonthlyStats: make([]domain.MonthlyStat, 12),
		Year:         2025,
	}
	for i := range stats.MonthlyStats {
		stats.MonthlyStats[i] = domain.MonthlyStat{
			Name:    domain.MonthName(i + 1),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	suite.mockReportingService.On("DashboardStats", mock.Anything, userID, 2025, 5).
		Return(stats, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/dashboard?year=2025", userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decodeEnvelope(w)
	suite.True(env.Success)

	var payload dto.DashboardResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &payload))
	suite.Equal(2025, payload.Year)
	suite.Len(payload.MonthlyStats, 12)
	suite.mockReportingService.AssertExpectations(suite.T())
}

func (suite *TransactionHandlerTestSuite) TestGetDashboard_BadLimit() {
	userID := uuid.NewString()

	w := suite.doRequest(http.MethodGet, "/api/v1/dashboard?limit=51", userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	env := suite.decodeEnvelope(w)
	suite.Equal("Limit must be between 1 and 50", env.Message)
	suite.mockReportingService.AssertNotCalled(suite.T(), "DashboardStats")
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
