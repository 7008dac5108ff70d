package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	sandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	productionBaseURL = "https://api.cashfree.com/pg"
	apiVersion        = "2023-08-01"
)

// ErrNotConfigured is returned when CashFree credentials are missing.
var ErrNotConfigured = errors.New("missing CashFree credentials")

// GatewayError carries the provider's HTTP status and raw body so a failed
// call can be diagnosed without replaying it.
type GatewayError struct {
	StatusCode int
	Body       string
}

func (e *GatewayError) Error() string {
	if e.StatusCode == 0 {
		return "cashfree: " + e.Body
	}
	return fmt.Sprintf("cashfree: HTTP %d: %s", e.StatusCode, e.Body)
}

// Client wraps the CashFree payment-gateway REST API. Construct it once at
// startup and pass it into the handlers that need it; there is no package
// global.
type Client struct {
	http      *resty.Client
	appID     string
	secretKey string
}

// New builds a Client for the given environment ("sandbox" or "production").
func New(appID, secretKey, environment string) *Client {
	baseURL := sandboxBaseURL
	if environment == "production" {
		baseURL = productionBaseURL
	}
	return NewWithBaseURL(appID, secretKey, baseURL)
}

// NewWithBaseURL builds a Client against an explicit API base URL. Tests use
// this to point the client at a stub server.
func NewWithBaseURL(appID, secretKey, baseURL string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-version", apiVersion).
		SetHeader("x-client-id", appID).
		SetHeader("x-client-secret", secretKey)

	return &Client{
		http:      httpClient,
		appID:     appID,
		secretKey: secretKey,
	}
}

// Configured reports whether credentials were provided.
func (c *Client) Configured() bool {
	return c != nil && c.appID != "" && c.secretKey != ""
}

type CustomerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type OrderMeta struct {
	ReturnURL string `json:"return_url,omitempty"`
	NotifyURL string `json:"notify_url,omitempty"`
}

type CreateOrderRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"` // rupees
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	OrderMeta       OrderMeta       `json:"order_meta"`
	OrderNote       string          `json:"order_note,omitempty"`
}

type CreateOrderResponse struct {
	OrderID          string `json:"order_id"`
	PaymentSessionID string `json:"payment_session_id"`
	OrderStatus      string `json:"order_status"`
}

type PaymentDetails struct {
	CFPaymentID   json.Number `json:"cf_payment_id"`
	PaymentMethod string      `json:"payment_method"`
	PaymentStatus string      `json:"payment_status"`
	PaymentTime   string      `json:"payment_time"`
}

// Order is the gateway-side transaction object returned by FetchOrder.
type Order struct {
	OrderID         string          `json:"order_id"`
	OrderStatus     string          `json:"order_status"`
	PaymentStatus   string          `json:"payment_status"`
	OrderAmount     json.Number     `json:"order_amount"` // decimal rupees
	OrderCurrency   string          `json:"order_currency"`
	OrderNote       string          `json:"order_note"`
	CustomerDetails CustomerDetails `json:"customer_details"`
	PaymentDetails  *PaymentDetails `json:"payment_details"`

	Raw json.RawMessage `json:"-"`
}

// IsPaid reports whether the order reached a paid state. Both literals occur
// in the wild depending on the gateway API version.
func (o *Order) IsPaid() bool {
	return o.OrderStatus == "PAID" || o.OrderStatus == "SUCCESS"
}

// AmountPaise converts the gateway's decimal rupee amount to integer paise.
func (o *Order) AmountPaise() uint {
	f, err := o.OrderAmount.Float64()
	if err != nil {
		return 0
	}
	return uint(math.Round(f * 100))
}

// CFPaymentID returns the gateway payment id, falling back to the order id
// when payment details are absent.
func (o *Order) CFPaymentID() string {
	if o.PaymentDetails != nil && o.PaymentDetails.CFPaymentID.String() != "" {
		return o.PaymentDetails.CFPaymentID.String()
	}
	return o.OrderID
}

// PaymentMethod returns the payment method, defaulting to "cashfree".
func (o *Order) PaymentMethod() string {
	if o.PaymentDetails != nil && o.PaymentDetails.PaymentMethod != "" {
		return o.PaymentDetails.PaymentMethod
	}
	return "cashfree"
}

// CreateOrder registers a hosted-checkout session with the gateway. A single
// failed call surfaces directly to the caller; retrying is the caller's call.
func (c *Client) CreateOrder(req CreateOrderRequest) (*CreateOrderResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	resp, err := c.http.R().
		SetBody(req).
		Post("/orders")
	if err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}
	if resp.IsError() {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var out CreateOrderResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	if out.PaymentSessionID == "" {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	return &out, nil
}

// FetchOrder fetches the current state of a gateway order by id.
func (c *Client) FetchOrder(orderID string) (*Order, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	resp, err := c.http.R().Get("/orders/" + orderID)
	if err != nil {
		return nil, &GatewayError{Body: err.Error()}
	}
	if resp.IsError() {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var order Order
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	order.Raw = json.RawMessage(append([]byte(nil), resp.Body()...))

	return &order, nil
}
