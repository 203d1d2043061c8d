package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/delivery/http/controllers"
	"provilink-service/internal/app/delivery/http/middlewares"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPaymentUsecase struct {
	mock.Mock
}

func (m *MockPaymentUsecase) InitiatePayment(ctx context.Context, request *requests.InitiatePayment) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentUsecase) HandleSuccessCallback(ctx context.Context, request *requests.PaymentCallback) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *MockPaymentUsecase) HandleFailureCallback(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func (m *MockPaymentUsecase) HandleCancelCallback(ctx context.Context) string {
	args := m.Called(ctx)
	return args.String(0)
}

func TestPaymentRouter_Initiate(t *testing.T) {
	logger := zap.NewNop()

	testSecret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        testSecret,
			ExpTimeInHour: 1,
		},
	}

	mockPaymentUsecase := new(MockPaymentUsecase)
	paymentController := controllers.NewPaymentController(logger, mockPaymentUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	attachPaymentRoutes(router, middlewareInstance, paymentController)

	t.Run("Initiate with Valid Token", func(t *testing.T) {
		mockPaymentUsecase.On("InitiatePayment", mock.Anything, mock.AnythingOfType("*requests.InitiatePayment")).Return("https://gateway.test/checkout", nil)

		requestBody := requests.InitiatePayment{
			Amount:               1500,
			CustomerEmail:        "customer@example.com",
			SelectedAppointments: []string{"64f000000000000000000001"},
		}
		jsonBody, _ := json.Marshal(requestBody)

		token, err := utils.GenerateJWT("customer@example.com", testSecret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for a valid token")
		assert.Equal(t, "https://gateway.test/checkout", strings.TrimSpace(rr.Body.String()), "body should be the bare gateway URL")
		mockPaymentUsecase.AssertExpectations(t)
	})

	t.Run("Initiate without Token", func(t *testing.T) {
		requestBody := requests.InitiatePayment{
			Amount:               1500,
			CustomerEmail:        "customer@example.com",
			SelectedAppointments: []string{"64f000000000000000000001"},
		}
		jsonBody, _ := json.Marshal(requestBody)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without a token")
	})

	t.Run("Initiate with Invalid Body", func(t *testing.T) {
		token, err := utils.GenerateJWT("customer@example.com", testSecret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for invalid JSON")
	})

	t.Run("Initiate with Empty Appointment List", func(t *testing.T) {
		requestBody := requests.InitiatePayment{
			Amount:        1500,
			CustomerEmail: "customer@example.com",
		}
		jsonBody, _ := json.Marshal(requestBody)

		token, err := utils.GenerateJWT("customer@example.com", testSecret, time.Hour)
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code, "should return 400 Bad Request for an empty appointment list")
	})
}

func TestPaymentRouter_Callbacks(t *testing.T) {
	logger := zap.NewNop()

	mockPaymentUsecase := new(MockPaymentUsecase)
	paymentController := controllers.NewPaymentController(logger, mockPaymentUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: &config.InternalConfig{},
	}

	router := chi.NewRouter()
	attachPaymentRoutes(router, middlewareInstance, paymentController)

	t.Run("Success Callback Redirects without Auth", func(t *testing.T) {
		mockPaymentUsecase.On("HandleSuccessCallback", mock.Anything, mock.MatchedBy(func(request *requests.PaymentCallback) bool {
			return request.Status == "VALID" && request.TransactionID == "tran-123"
		})).Return("https://frontend.test/success", nil)

		form := url.Values{}
		form.Set("status", "VALID")
		form.Set("tran_id", "tran-123")
		form.Set("amount", "1500.00")
		form.Set("currency", "BDT")

		req := httptest.NewRequest("POST", "/success", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code, "should return 303 See Other")
		assert.Equal(t, "https://frontend.test/success", rr.Header().Get("Location"))
		mockPaymentUsecase.AssertExpectations(t)
	})

	t.Run("Fail Callback Redirects", func(t *testing.T) {
		mockPaymentUsecase.On("HandleFailureCallback", mock.Anything).Return("https://frontend.test/fail")

		req := httptest.NewRequest("POST", "/fail", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "https://frontend.test/fail", rr.Header().Get("Location"))
	})

	t.Run("Cancel Callback Redirects", func(t *testing.T) {
		mockPaymentUsecase.On("HandleCancelCallback", mock.Anything).Return("https://frontend.test/fail")

		req := httptest.NewRequest("POST", "/cancel", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusSeeOther, rr.Code)
		assert.Equal(t, "https://frontend.test/fail", rr.Header().Get("Location"))
	})
}
