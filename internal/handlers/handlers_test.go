package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/invoicely/internal/apperrors"
	"github.com/SscSPs/invoicely/internal/core/domain"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/core/services"
	"github.com/SscSPs/invoicely/internal/dto"
	"github.com/SscSPs/invoicely/internal/handlers"
	"github.com/SscSPs/invoicely/internal/middleware"
	"github.com/SscSPs/invoicely/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type HandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	invoices  *MockInvoiceService
	clients   *MockClientService
	methods   *MockPaymentMethodService
	reporting *MockReportingService
	profile   *MockProfileService
	issueDate time.Time
	createdAt time.Time
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (suite *HandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))

	suite.invoices = new(MockInvoiceService)
	suite.clients = new(MockClientService)
	suite.methods = new(MockPaymentMethodService)
	suite.reporting = new(MockReportingService)
	suite.profile = new(MockProfileService)
	suite.issueDate = time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	suite.createdAt = time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)

	container := &portssvc.ServiceContainer{
		Client:        suite.clients,
		Invoice:       suite.invoices,
		PaymentMethod: suite.methods,
		Reporting:     suite.reporting,
		Profile:       suite.profile,
		Currency:      services.NewCurrencyService(),
		Template:      services.NewTemplateService(),
	}
	err := handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, container)
	suite.Require().NoError(err)
}

func (suite *HandlerTestSuite) TearDownTest() {
	suite.invoices.AssertExpectations(suite.T())
	suite.clients.AssertExpectations(suite.T())
	suite.methods.AssertExpectations(suite.T())
	suite.reporting.AssertExpectations(suite.T())
	suite.profile.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) sampleInvoice() *domain.Invoice {
	inv := &domain.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "INV-2024-0001",
		ClientSnapshot: domain.ClientSnapshot{ClientName: "Acme", ClientCurrency: "USD"},
		IssueDate:      suite.issueDate,
		DueDate:        suite.issueDate.AddDate(0, 0, 30),
		TemplateID:     "template-1",
		Items: []domain.LineItem{
			domain.NewLineItem("Design", decimal.NewFromInt(2), decimal.NewFromInt(50)),
			domain.NewLineItem("Hosting", decimal.NewFromInt(1), decimal.NewFromInt(25)),
		},
		Status:     domain.StatusDraft,
		Timestamps: domain.Timestamps{CreatedAt: suite.createdAt, UpdatedAt: suite.createdAt},
	}
	inv.RecalculateTotal()
	return inv
}

func (suite *HandlerTestSuite) decodeInvoice(w *httptest.ResponseRecorder) dto.InvoiceResponse {
	var res dto.InvoiceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

// --- Invoices ---

func (suite *HandlerTestSuite) TestCreateInvoice_Success() {
	suite.invoices.On("CreateInvoice", mock.Anything, mock.MatchedBy(func(req dto.CreateInvoiceRequest) bool {
		return len(req.Items) == 2 &&
			req.Items[0].Quantity.Equal(decimal.NewFromInt(2)) &&
			req.Items[1].Rate.Equal(decimal.NewFromInt(25)) &&
			req.ClientName == "Acme"
	})).Return(suite.sampleInvoice(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", gin.H{
		"clientName": "Acme",
		"items": []gin.H{
			{"description": "Design", "quantity": 2, "rate": 50},
			{"description": "Hosting", "quantity": "1", "rate": "25"},
		},
	})

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	res := suite.decodeInvoice(w)
	suite.Equal("INV-2024-0001", res.InvoiceNumber)
	suite.Equal("2024-02-10", res.IssueDate)
	suite.Equal("2024-03-11", res.DueDate)
	suite.True(decimal.NewFromInt(125).Equal(res.Total))
	suite.Equal("$125.00", res.FormattedTotal)
	suite.Equal("draft", res.Status)
}

func (suite *HandlerTestSuite) TestCreateInvoice_RejectsInvalidInput() {
	tests := []struct {
		name string
		body gin.H
	}{
		{name: "negative rate", body: gin.H{"items": []gin.H{{"description": "x", "quantity": 1, "rate": -5}}}},
		{name: "negative quantity", body: gin.H{"items": []gin.H{{"description": "x", "quantity": "-1", "rate": 5}}}},
		{name: "unsupported currency", body: gin.H{"clientCurrency": "XYZ"}},
		{name: "bad issue date", body: gin.H{"issueDate": "10/02/2024"}},
		{name: "bad client email", body: gin.H{"clientEmail": "not-an-email"}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/invoices", tt.body)
			suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
	suite.invoices.AssertNotCalled(suite.T(), "CreateInvoice", mock.Anything, mock.Anything)
}

func (suite *HandlerTestSuite) TestCreateInvoice_ServiceFailure() {
	suite.invoices.On("CreateInvoice", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("failed to create invoice: %w", assert.AnError)).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices", gin.H{"clientName": "Acme"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.JSONEq(`{"error":"Failed to create invoice"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestGetInvoice() {
	suite.invoices.On("GetInvoice", mock.Anything, "inv-1").Return(suite.sampleInvoice(), nil).Once()
	suite.invoices.On("GetInvoice", mock.Anything, "missing").Return(nil, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/inv-1", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("inv-1", suite.decodeInvoice(w).ID)

	w = suite.do(http.MethodGet, "/api/v1/invoices/missing", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoice() {
	updated := suite.sampleInvoice()
	updated.Notes = "thanks"
	suite.invoices.On("UpdateInvoice", mock.Anything, "inv-1", mock.MatchedBy(func(req dto.UpdateInvoiceRequest) bool {
		return req.Notes != nil && *req.Notes == "thanks" && req.Status == nil && req.Items == nil
	})).Return(updated, nil).Once()
	suite.invoices.On("UpdateInvoice", mock.Anything, "missing", mock.Anything).Return(nil, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/invoices/inv-1", gin.H{"notes": "thanks"})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Equal("thanks", suite.decodeInvoice(w).Notes)

	w = suite.do(http.MethodPut, "/api/v1/invoices/missing", gin.H{"notes": "thanks"})
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateInvoice_StatusChecks() {
	w := suite.do(http.MethodPut, "/api/v1/invoices/inv-1", gin.H{"status": "cancelled"})
	suite.Equal(http.StatusBadRequest, w.Code)

	terr := &apperrors.TransitionError{InvoiceID: "inv-1", From: "paid", To: "draft"}
	suite.invoices.On("UpdateInvoice", mock.Anything, "inv-1", mock.MatchedBy(func(req dto.UpdateInvoiceRequest) bool {
		return req.Status != nil && *req.Status == domain.StatusDraft
	})).Return(nil, fmt.Errorf("failed to update invoice: %w", terr)).Once()

	w = suite.do(http.MethodPut, "/api/v1/invoices/inv-1", gin.H{"status": "draft"})
	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "invalid status transition")
}

func (suite *HandlerTestSuite) TestDeleteInvoice() {
	suite.invoices.On("DeleteInvoice", mock.Anything, "whatever").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/invoices/whatever", nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) TestMarkAsSent() {
	sent := suite.sampleInvoice()
	sent.Status = domain.StatusSent
	sentAt := suite.createdAt.Add(time.Hour)
	sent.SentAt = &sentAt
	suite.invoices.On("MarkAsSent", mock.Anything, "inv-1").Return(sent, nil).Once()
	suite.invoices.On("MarkAsSent", mock.Anything, "missing").Return(nil, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/inv-1/send", nil)
	suite.Equal(http.StatusOK, w.Code)
	res := suite.decodeInvoice(w)
	suite.Equal("sent", res.Status)
	suite.Require().NotNil(res.SentAt)
	suite.True(sentAt.Equal(*res.SentAt))

	w = suite.do(http.MethodPost, "/api/v1/invoices/missing/send", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestMarkAsPaid_WithDate() {
	paidDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	paid := suite.sampleInvoice()
	paid.Status = domain.StatusPaid
	paid.PaidAt = &paidDate
	suite.invoices.On("MarkAsPaid", mock.Anything, "inv-1", mock.MatchedBy(func(d *time.Time) bool {
		return d != nil && d.Equal(paidDate)
	})).Return(paid, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/inv-1/pay", gin.H{"paidDate": "2024-03-01"})
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	res := suite.decodeInvoice(w)
	suite.Require().NotNil(res.PaidAt)
	suite.Equal("2024-03-01", *res.PaidAt)
}

func (suite *HandlerTestSuite) TestMarkAsPaid_WithoutBody() {
	suite.invoices.On("MarkAsPaid", mock.Anything, "inv-1", mock.MatchedBy(func(d *time.Time) bool {
		return d == nil
	})).Return(suite.sampleInvoice(), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/inv-1/pay", nil)
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/v1/invoices/inv-1/pay", gin.H{"paidDate": "March 1st"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestMarkAsPaid_ChunkedBody() {
	paidDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	suite.invoices.On("MarkAsPaid", mock.Anything, "inv-1", mock.MatchedBy(func(d *time.Time) bool {
		return d != nil && d.Equal(paidDate)
	})).Return(suite.sampleInvoice(), nil).Once()
	suite.invoices.On("MarkAsPaid", mock.Anything, "inv-1", mock.MatchedBy(func(d *time.Time) bool {
		return d == nil
	})).Return(suite.sampleInvoice(), nil).Once()

	send := func(body string) *httptest.ResponseRecorder {
		req, err := http.NewRequest(http.MethodPost, "/api/v1/invoices/inv-1/pay", io.NopCloser(strings.NewReader(body)))
		suite.Require().NoError(err)
		req.ContentLength = -1
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		suite.router.ServeHTTP(w, req)
		return w
	}

	w := send(`{"paidDate":"2024-03-01"}`)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	// an empty stream means no paid date
	w = send("")
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	suite.invoices.AssertExpectations(suite.T())
}

func (suite *HandlerTestSuite) TestMarkAsPaid_TerminalStatus() {
	suite.invoices.On("MarkAsPaid", mock.Anything, "inv-1", mock.Anything).
		Return(nil, &apperrors.TransitionError{InvoiceID: "inv-1", From: "paid", To: "paid"}).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/inv-1/pay", nil)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestListInvoices() {
	token := "next"
	page := &dto.ListInvoicesResponse{
		Invoices:  dto.ToListInvoiceResponse([]domain.Invoice{*suite.sampleInvoice()}),
		NextToken: &token,
	}
	suite.invoices.On("ListInvoices", mock.Anything, dto.ListInvoicesParams{
		Search: "acme", Status: "sent", Sort: "asc", Limit: 10,
	}).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices?search=acme&status=sent&sort=asc&limit=10", nil)
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListInvoicesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res.Invoices, 1)
	suite.Require().NotNil(res.NextToken)
	suite.Equal("next", *res.NextToken)
}

func (suite *HandlerTestSuite) TestListInvoices_BadParameters() {
	for _, q := range []string{"status=void", "sort=sideways", "limit=-1", "limit=101"} {
		w := suite.do(http.MethodGet, "/api/v1/invoices?"+q, nil)
		suite.Equal(http.StatusBadRequest, w.Code, q)
	}

	suite.invoices.On("ListInvoices", mock.Anything, dto.ListInvoicesParams{NextToken: "garbage"}).
		Return(nil, fmt.Errorf("%w: invalid next token", apperrors.ErrValidation)).Once()
	w := suite.do(http.MethodGet, "/api/v1/invoices?nextToken=garbage", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRecentInvoices() {
	suite.invoices.On("RecentInvoices", mock.Anything, 5).Return([]domain.Invoice{*suite.sampleInvoice()}, nil).Once()
	suite.invoices.On("RecentInvoices", mock.Anything, 2).Return([]domain.Invoice{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/recent", nil)
	suite.Equal(http.StatusOK, w.Code)
	w = suite.do(http.MethodGet, "/api/v1/invoices/recent?limit=2", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())

	w = suite.do(http.MethodGet, "/api/v1/invoices/recent?limit=abc", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestNextInvoiceNumber() {
	suite.invoices.On("GenerateInvoiceNumber", mock.Anything).Return("INV-2024-0003", nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/invoices/next-number", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"invoiceNumber":"INV-2024-0003"}`, w.Body.String())
}

func (suite *HandlerTestSuite) TestSweepOverdue() {
	asOf := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	overdue := suite.sampleInvoice()
	overdue.Status = domain.StatusOverdue
	suite.invoices.On("SweepOverdue", mock.Anything, asOf).Return([]domain.Invoice{*overdue}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/invoices/sweep-overdue?asOf=2024-04-01", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.SweepResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("2024-04-01", res.AsOf)
	suite.Require().Len(res.Invoices, 1)
	suite.Equal("overdue", res.Invoices[0].Status)

	w = suite.do(http.MethodPost, "/api/v1/invoices/sweep-overdue?asOf=yesterday", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

// --- Clients ---

func (suite *HandlerTestSuite) TestCreateClient() {
	suite.clients.On("CreateClient", mock.Anything, dto.CreateClientRequest{Name: "Acme", Email: "a@x.com"}).
		Return(&domain.Client{ID: "c-1", Name: "Acme", Email: "a@x.com", Currency: "USD"}, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/clients", gin.H{"name": "Acme", "email": "a@x.com"})
	suite.Equal(http.StatusCreated, w.Code)
	var res dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("USD", res.Currency)

	w = suite.do(http.MethodPost, "/api/v1/clients", gin.H{"email": "a@x.com"})
	suite.Equal(http.StatusBadRequest, w.Code)
	w = suite.do(http.MethodPost, "/api/v1/clients", gin.H{"name": "Acme", "currency": "usd"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestClientLookups() {
	suite.clients.On("GetClient", mock.Anything, "missing").Return(nil, nil).Once()
	suite.clients.On("UpdateClient", mock.Anything, "missing", mock.Anything).Return(nil, nil).Once()
	suite.clients.On("DeleteClient", mock.Anything, "missing").Return(nil).Once()
	suite.clients.On("ListClients", mock.Anything).Return([]domain.Client{{ID: "c-1", Name: "Acme"}}, nil).Once()

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/clients/missing", nil).Code)
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPut, "/api/v1/clients/missing", gin.H{"phone": "1"}).Code)
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/clients/missing", nil).Code)

	w := suite.do(http.MethodGet, "/api/v1/clients", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res []dto.ClientResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Len(res, 1)
}

// --- Payment methods ---

func (suite *HandlerTestSuite) TestPaymentMethods() {
	suite.methods.On("GetDefaultPaymentMethod", mock.Anything).Return(nil, nil).Once()
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/payment-methods/default", nil).Code)

	method := &domain.PaymentMethod{ID: "pm-1", Name: "Bank Transfer", IsDefault: true}
	suite.methods.On("CreatePaymentMethod", mock.Anything, dto.CreatePaymentMethodRequest{Name: "Bank Transfer", IsDefault: true}).
		Return(method, nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/payment-methods", gin.H{"name": "Bank Transfer", "isDefault": true})
	suite.Equal(http.StatusCreated, w.Code)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/payment-methods", gin.H{"details": "x"}).Code)

	suite.methods.On("UpdatePaymentMethod", mock.Anything, "missing", mock.Anything).Return(nil, nil).Once()
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPut, "/api/v1/payment-methods/missing", gin.H{"isDefault": true}).Code)

	suite.methods.On("DeletePaymentMethod", mock.Anything, "pm-1").Return(nil).Once()
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/payment-methods/pm-1", nil).Code)
}

// --- Stats & profile ---

func (suite *HandlerTestSuite) TestInvoiceStats() {
	suite.reporting.On("GetInvoiceStats", mock.Anything).Return(&domain.InvoiceStats{
		Total:         3,
		Draft:         1,
		Sent:          1,
		Paid:          1,
		TotalAmount:   decimal.RequireFromString("1175.5"),
		PaidAmount:    decimal.RequireFromString("25.5"),
		PendingAmount: decimal.RequireFromString("1150"),
	}, nil).Once()
	suite.profile.On("Preferences", mock.Anything).Return(domain.Preferences{DefaultCurrency: "EUR", DefaultDueDays: 30}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/stats/invoices", nil)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.InvoiceStatsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(3, res.Total)
	suite.Equal("€1,175.50", res.Formatted.TotalAmount)
	suite.Equal("€25.50", res.Formatted.PaidAmount)
	suite.Equal("€1,150.00", res.Formatted.PendingAmount)
}

func (suite *HandlerTestSuite) TestProfile() {
	suite.profile.On("GetProfile", mock.Anything).Return(nil, nil).Once()
	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/profile", nil).Code)

	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/profile", gin.H{"name": "Jo"}).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/v1/profile", gin.H{"email": "me@x.com", "defaultDueDays": 400}).Code)

	suite.profile.On("SaveProfile", mock.Anything, dto.SaveProfileRequest{Email: "me@x.com", Name: "Jo"}).
		Return(&domain.UserProfile{ID: "p-1", Email: "me@x.com", Name: "Jo", DefaultCurrency: "USD", DefaultDueDays: 30}, nil).Once()
	w := suite.do(http.MethodPost, "/api/v1/profile", gin.H{"email": "me@x.com", "name": "Jo"})
	suite.Equal(http.StatusCreated, w.Code)
	var res dto.ProfileResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(30, res.DefaultDueDays)

	suite.profile.On("UpdateProfile", mock.Anything, mock.Anything).Return(nil, nil).Once()
	suite.Equal(http.StatusNotFound, suite.do(http.MethodPut, "/api/v1/profile", gin.H{"company": "X"}).Code)

	suite.profile.On("ClearProfile", mock.Anything).Return(nil).Once()
	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/profile", nil).Code)
}

// --- Static tables ---

func (suite *HandlerTestSuite) TestCurrenciesAndTemplates() {
	w := suite.do(http.MethodGet, "/api/v1/currencies", nil)
	suite.Equal(http.StatusOK, w.Code)
	var currencies []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &currencies))
	suite.Len(currencies, 8)

	w = suite.do(http.MethodGet, "/api/v1/currencies/eur", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"symbol":"€"`)

	suite.Equal(http.StatusNotFound, suite.do(http.MethodGet, "/api/v1/currencies/XYZ", nil).Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodGet, "/api/v1/currencies/EURO", nil).Code)

	w = suite.do(http.MethodGet, "/api/v1/templates", nil)
	suite.Equal(http.StatusOK, w.Code)
	var templates []dto.TemplateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &templates))
	suite.Len(templates, 3)
	suite.Equal("Professional", templates[0].Name)
}

func (suite *HandlerTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
	suite.NotEmpty(w.Header().Get("X-Request-ID"))
}
