package loans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
	"github.com/GlebRadaev/ndvmoney/internal/dto"
	"github.com/GlebRadaev/ndvmoney/pkg/auth"
	"github.com/GlebRadaev/ndvmoney/pkg/utils"
)

const userID = "1234"

func NewMock(t *testing.T) (*LoanHandler, *MockService, *MockAdvisor) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	advisor := NewMockAdvisor(ctrl)
	handler := New(service, advisor)
	defer ctrl.Finish()
	return handler, service, advisor
}

func userRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	ctx := context.WithValue(req.Context(), auth.UserIDKey, userID)
	if len(params) > 0 {
		rctx := chi.NewRouteContext()
		for k, v := range params {
			rctx.URLParams.Add(k, v)
		}
		ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	}
	return req.WithContext(ctx)
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	var resp utils.Response
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	return resp.Message
}

var sampleLoan = domain.LoanRecord{
	ID:        "NDV-1234-001",
	UserID:    userID,
	Amount:    1_000_000,
	Status:    domain.LoanPendingApproval,
	Date:      time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
	CreatedAt: time.Date(2026, time.October, 5, 10, 0, 0, 0, time.UTC),
}

func TestGetProfileHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile found",
			prepareMock: func() {
				service.EXPECT().Profile(gomock.Any(), userID).Return(domain.User{ID: userID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User deleted",
			prepareMock: func() {
				service.EXPECT().Profile(gomock.Any(), userID).Return(domain.User{}, domain.ErrUserNotFound)
			},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetProfile(rr, userRequest("GET", "/api/user/profile", "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestGetLoansHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []domain.LoanRecord
	}{
		{
			name: "Loans found",
			prepareMock: func() {
				service.EXPECT().Loans(gomock.Any(), userID).Return([]domain.LoanRecord{sampleLoan}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []domain.LoanRecord{sampleLoan},
		},
		{
			name: "No loans",
			prepareMock: func() {
				service.EXPECT().Loans(gomock.Any(), userID).Return([]domain.LoanRecord{}, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Unexpected error",
			prepareMock: func() {
				service.EXPECT().Loans(gomock.Any(), userID).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.GetLoans(rr, userRequest("GET", "/api/user/loans", "", nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != nil {
				var got []domain.LoanRecord
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, tt.expectedBody, got)
			}
		})
	}
}

func TestApplyLoanHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Loan created",
			body: `{"amount":1000000,"signature":"data:image/png;base64,AAAA"}`,
			prepareMock: func() {
				service.EXPECT().ApplyLoan(gomock.Any(), userID, int64(1_000_000), "data:image/png;base64,AAAA").Return(sampleLoan, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "Non positive amount",
			body: `{"amount":0}`,
			prepareMock: func() {
				service.EXPECT().ApplyLoan(gomock.Any(), userID, int64(0), "").Return(domain.LoanRecord{}, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidAmount.Error(),
		},
		{
			name: "Over the balance",
			body: `{"amount":2000001}`,
			prepareMock: func() {
				service.EXPECT().ApplyLoan(gomock.Any(), userID, int64(2_000_001), "").Return(domain.LoanRecord{}, domain.ErrInvalidAmount)
			},
			expectedCode:  http.StatusUnprocessableEntity,
			expectedError: domain.ErrInvalidAmount.Error(),
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":"lots"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.ApplyLoan(rr, userRequest("POST", "/api/user/loans", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorMessage(t, rr))
			}
		})
	}
}

func TestSubmitSettlementHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	awaiting := sampleLoan
	awaiting.Status = domain.LoanAwaitingSettlement
	awaiting.BillImage = "bill"

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Proof accepted",
			body: `{"billImage":"bill"}`,
			prepareMock: func() {
				service.EXPECT().SubmitSettlement(gomock.Any(), userID, sampleLoan.ID, "bill").Return(awaiting, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Someone else's loan",
			body: `{"billImage":"bill"}`,
			prepareMock: func() {
				service.EXPECT().SubmitSettlement(gomock.Any(), userID, sampleLoan.ID, "bill").Return(domain.LoanRecord{}, domain.ErrLoanNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Not outstanding",
			body: `{"billImage":"bill"}`,
			prepareMock: func() {
				service.EXPECT().SubmitSettlement(gomock.Any(), userID, sampleLoan.ID, "bill").Return(domain.LoanRecord{}, domain.ErrNotApplied)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:         "Invalid request body",
			body:         `{`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()
			req := userRequest("POST", "/api/user/loans/"+sampleLoan.ID+"/settlement", tt.body, map[string]string{"id": sampleLoan.ID})

			handler.SubmitSettlement(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestUpgradeRankHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Upgrade requested",
			body: `{"rank":"gold","billImage":"receipt"}`,
			prepareMock: func() {
				service.EXPECT().RequestRankUpgrade(gomock.Any(), userID, domain.RankGold, "receipt").
					Return(domain.User{ID: userID, PendingUpgradeRank: domain.RankGold}, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Unknown rank",
			body:         `{"rank":"platinum"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Standard is not an upgrade",
			body: `{"rank":"standard"}`,
			prepareMock: func() {
				service.EXPECT().RequestRankUpgrade(gomock.Any(), userID, domain.RankStandard, "").
					Return(domain.User{}, domain.ErrUnknownRank)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.UpgradeRank(rr, userRequest("POST", "/api/user/rank/upgrade", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAdviceHandler(t *testing.T) {
	handler, _, advisor := NewMock(t)

	income := int64(15_000_000)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedAdvice string
	}{
		{
			name: "With income",
			body: `{"amount":5000000,"term":6,"income":15000000}`,
			prepareMock: func() {
				advisor.EXPECT().Advise(gomock.Any(), int64(5_000_000), 6, &income).Return("Vay được.")
			},
			expectedCode:   http.StatusOK,
			expectedAdvice: "Vay được.",
		},
		{
			name: "Without income",
			body: `{"amount":5000000,"term":6}`,
			prepareMock: func() {
				advisor.EXPECT().Advise(gomock.Any(), int64(5_000_000), 6, gomock.Nil()).Return("Cẩn thận.")
			},
			expectedCode:   http.StatusOK,
			expectedAdvice: "Cẩn thận.",
		},
		{
			name:         "Missing term",
			body:         `{"amount":5000000}`,
			prepareMock:  func() {},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			rr := httptest.NewRecorder()

			handler.Advice(rr, userRequest("POST", "/api/user/advice", tt.body, nil))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedAdvice != "" {
				var resp dto.AdviceResponseDTO
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedAdvice, resp.Advice)
			}
		})
	}
}

func TestHandlersWithoutUserID(t *testing.T) {
	handler, _, _ := NewMock(t)

	tests := []struct {
		name   string
		handle http.HandlerFunc
		method string
		body   string
	}{
		{name: "Profile", handle: handler.GetProfile, method: "GET"},
		{name: "Loans", handle: handler.GetLoans, method: "GET"},
		{name: "Apply", handle: handler.ApplyLoan, method: "POST", body: `{"amount":1000}`},
		{name: "Settlement", handle: handler.SubmitSettlement, method: "POST", body: `{"billImage":"bill"}`},
		{name: "Rank upgrade", handle: handler.UpgradeRank, method: "POST", body: `{"rank":"gold","billImage":"bill"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, "/api/user", bytes.NewReader([]byte(tt.body)))

			tt.handle(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized", errorMessage(t, rr))
		})
	}
}
