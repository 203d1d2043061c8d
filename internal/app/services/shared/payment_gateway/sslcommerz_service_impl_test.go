package payment_gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newTestSSLCommerzService(baseURL string) *sslCommerzService {
	return &sslCommerzService{
		BaseUrl:       baseURL,
		StoreID:       "teststore",
		StorePassword: "testpass",
		SuccessURL:    "https://backend.test/v1/payments/success",
		FailURL:       "https://backend.test/v1/payments/fail",
		CancelURL:     "https://backend.test/v1/payments/cancel",
		HttpClient:    &http.Client{Timeout: 5 * time.Second},
		Limiter:       rate.NewLimiter(rate.Inf, 1),
	}
}

func TestSSLCommerzService_InitiateTransaction(t *testing.T) {
	request := &requests.InitiatePayment{
		Amount:               1500,
		CustomerEmail:        "customer@example.com",
		SelectedAppointments: []string{"64f000000000000000000001"},
	}

	t.Run("posts the expected form and returns the checkout URL", func(t *testing.T) {
		var receivedForm url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/gwprocess/v4/api.php", r.URL.Path)
			assert.NoError(t, r.ParseForm())
			receivedForm = r.PostForm
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://sandbox.sslcommerz.com/checkout/abc"}`))
		}))
		defer server.Close()

		service := newTestSSLCommerzService(server.URL)

		gatewayURL, err := service.InitiateTransaction(context.Background(), request, "tran-123")

		assert.NoError(t, err)
		assert.Equal(t, "https://sandbox.sslcommerz.com/checkout/abc", gatewayURL)

		assert.Equal(t, "teststore", receivedForm.Get("store_id"))
		assert.Equal(t, "testpass", receivedForm.Get("store_passwd"))
		assert.Equal(t, "1500.00", receivedForm.Get("total_amount"))
		assert.Equal(t, "BDT", receivedForm.Get("currency"))
		assert.Equal(t, "tran-123", receivedForm.Get("tran_id"))
		assert.Equal(t, "https://backend.test/v1/payments/success", receivedForm.Get("success_url"))
		assert.Equal(t, "customer@example.com", receivedForm.Get("cus_email"))
		assert.Equal(t, "Customer Name", receivedForm.Get("cus_name"))
		assert.Equal(t, "Dhaka", receivedForm.Get("cus_city"))
		assert.Equal(t, "1000", receivedForm.Get("cus_postcode"))
		assert.Equal(t, "Bangladesh", receivedForm.Get("cus_country"))
		assert.Equal(t, "01711111111", receivedForm.Get("cus_phone"))
		assert.Equal(t, "NO", receivedForm.Get("shipping_method"))
		assert.Equal(t, "Appointment", receivedForm.Get("product_name"))
		assert.Equal(t, "non-physical-goods", receivedForm.Get("product_profile"))
		assert.Equal(t, "mastercard,visacard,amexcard", receivedForm.Get("multi_card_name"))
	})

	t.Run("provided customer details override the defaults", func(t *testing.T) {
		var receivedForm url.Values
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			receivedForm = r.PostForm
			w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://sandbox.sslcommerz.com/checkout/abc"}`))
		}))
		defer server.Close()

		service := newTestSSLCommerzService(server.URL)

		detailed := &requests.InitiatePayment{
			Amount:        2000,
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
			CustomerCity:  "Chittagong",
			CustomerPhone: "01800000000",
		}

		_, err := service.InitiateTransaction(context.Background(), detailed, "tran-456")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", receivedForm.Get("cus_name"))
		assert.Equal(t, "Chittagong", receivedForm.Get("cus_city"))
		assert.Equal(t, "01800000000", receivedForm.Get("cus_phone"))
	})

	t.Run("rejected initiation surfaces the gateway reason", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"FAILED","failedreason":"store credential error"}`))
		}))
		defer server.Close()

		service := newTestSSLCommerzService(server.URL)

		_, err := service.InitiateTransaction(context.Background(), request, "tran-123")

		assert.Error(t, err)
	})

	t.Run("success status without a checkout URL is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"SUCCESS"}`))
		}))
		defer server.Close()

		service := newTestSSLCommerzService(server.URL)

		_, err := service.InitiateTransaction(context.Background(), request, "tran-123")

		assert.Error(t, err)
	})

	t.Run("unreachable gateway returns an error", func(t *testing.T) {
		service := newTestSSLCommerzService("http://127.0.0.1:1")

		_, err := service.InitiateTransaction(context.Background(), request, "tran-123")

		assert.Error(t, err)
	})
}

func TestNewSSLCommerzService_CallbackURLs(t *testing.T) {
	internalConfig := &config.InternalConfig{
		App: config.App{
			BackendURL:     "https://backend.test/",
			EndpointPrefix: "/v1",
		},
		PaymentGateway: config.PaymentGateway{
			BaseUrl:                 "https://sandbox.sslcommerz.com/",
			StoreID:                 "teststore",
			StorePassword:           "testpass",
			RequestTimeoutInSeconds: 30,
			MaxRequestsPerSecond:    10,
		},
	}

	service, err := NewSSLCommerzService(internalConfig)
	assert.NoError(t, err)

	impl, ok := service.(*sslCommerzService)
	assert.True(t, ok)
	assert.Equal(t, "https://sandbox.sslcommerz.com", impl.BaseUrl)
	assert.Equal(t, "https://backend.test/v1/payments/success", impl.SuccessURL)
	assert.Equal(t, "https://backend.test/v1/payments/fail", impl.FailURL)
	assert.Equal(t, "https://backend.test/v1/payments/cancel", impl.CancelURL)
}
