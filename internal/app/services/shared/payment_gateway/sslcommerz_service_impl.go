package payment_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"provilink-service/internal/app/config"
	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

type sslCommerzService struct {
	BaseUrl       string
	StoreID       string
	StorePassword string
	SuccessURL    string
	FailURL       string
	CancelURL     string
	HttpClient    *http.Client
	Limiter       *rate.Limiter
}

// initiateResponse is the subset of the gateway's initiation reply this
// service cares about.
type initiateResponse struct {
	Status         string `json:"status"`
	FailedReason   string `json:"failedreason"`
	GatewayPageURL string `json:"GatewayPageURL"`
}

func NewSSLCommerzService(internalConfig *config.InternalConfig) (contracts.PaymentGatewayService, error) {
	gatewayConfig := internalConfig.PaymentGateway
	backendURL := strings.TrimSuffix(internalConfig.App.BackendURL, "/")
	prefix := internalConfig.App.EndpointPrefix

	return &sslCommerzService{
		BaseUrl:       strings.TrimSuffix(gatewayConfig.BaseUrl, "/"),
		StoreID:       gatewayConfig.StoreID,
		StorePassword: gatewayConfig.StorePassword,
		SuccessURL:    fmt.Sprintf("%s%s/payments/success", backendURL, prefix),
		FailURL:       fmt.Sprintf("%s%s/payments/fail", backendURL, prefix),
		CancelURL:     fmt.Sprintf("%s%s/payments/cancel", backendURL, prefix),
		HttpClient: &http.Client{
			Timeout: time.Duration(gatewayConfig.RequestTimeoutInSeconds) * time.Second,
		},
		Limiter: rate.NewLimiter(rate.Limit(gatewayConfig.MaxRequestsPerSecond), 1),
	}, nil
}

func (s *sslCommerzService) InitiateTransaction(ctx context.Context, request *requests.InitiatePayment, transactionID string) (string, error) {
	err := s.Limiter.Wait(ctx)
	if err != nil {
		return "", exceptions.ErrGatewayUnavailable(err)
	}

	form := s.buildInitiateForm(request, transactionID)

	httpRequest, err := http.NewRequestWithContext(
		ctx,
		constvars.MethodPost,
		s.BaseUrl+constvars.SSLCommerzInitiatePath,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", exceptions.ErrGatewayBuildRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationForm)

	httpResponse, err := s.HttpClient.Do(httpRequest)
	if err != nil {
		return "", exceptions.ErrGatewayUnavailable(err)
	}
	defer httpResponse.Body.Close()

	var initiation initiateResponse
	err = json.NewDecoder(httpResponse.Body).Decode(&initiation)
	if err != nil {
		return "", exceptions.ErrGatewayDecodeResponse(err)
	}

	if initiation.Status != constvars.SSLCommerzInitiateStatusSuccess || initiation.GatewayPageURL == "" {
		return "", exceptions.ErrGatewayInitiateRejected(nil, initiation.FailedReason)
	}

	return initiation.GatewayPageURL, nil
}

func (s *sslCommerzService) buildInitiateForm(request *requests.InitiatePayment, transactionID string) url.Values {
	form := url.Values{}
	form.Set("store_id", s.StoreID)
	form.Set("store_passwd", s.StorePassword)
	form.Set("total_amount", fmt.Sprintf("%.2f", request.Amount))
	form.Set("currency", constvars.SSLCommerzDefaultCurrency)
	form.Set("tran_id", transactionID)
	form.Set("success_url", s.SuccessURL)
	form.Set("fail_url", s.FailURL)
	form.Set("cancel_url", s.CancelURL)
	form.Set("cus_name", defaultIfEmpty(request.CustomerName, "Customer Name"))
	form.Set("cus_email", request.CustomerEmail)
	form.Set("cus_add1", defaultIfEmpty(request.CustomerAddress, constvars.SSLCommerzDefaultCustomerCity))
	form.Set("cus_city", defaultIfEmpty(request.CustomerCity, constvars.SSLCommerzDefaultCustomerCity))
	form.Set("cus_state", defaultIfEmpty(request.CustomerState, constvars.SSLCommerzDefaultCustomerCity))
	form.Set("cus_postcode", defaultIfEmpty(request.CustomerPostcode, "1000"))
	form.Set("cus_country", defaultIfEmpty(request.CustomerCountry, "Bangladesh"))
	form.Set("cus_phone", defaultIfEmpty(request.CustomerPhone, "01711111111"))
	form.Set("shipping_method", constvars.SSLCommerzShippingMethodNone)
	form.Set("product_name", constvars.SSLCommerzProductName)
	form.Set("product_category", constvars.SSLCommerzProductCategory)
	form.Set("product_profile", constvars.SSLCommerzProductProfile)
	form.Set("multi_card_name", constvars.SSLCommerzMultiCardNames)
	return form
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
