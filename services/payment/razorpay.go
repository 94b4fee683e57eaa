package payment

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// MinOrderAmount is the smallest rupee amount accepted for a gateway order.
const MinOrderAmount = 100

// ErrAmountTooSmall signals an order below the gateway minimum.
var ErrAmountTooSmall = fmt.Errorf("minimum amount is ₹%d", MinOrderAmount)

// Order is the subset of the gateway's order object the client needs.
type Order struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

// Service talks to the Razorpay order API and verifies payment callbacks.
// Only the documented call contract is implemented: order creation and the
// HMAC-SHA256 signature check over "orderId|paymentId".
type Service struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Client    *http.Client
	Logger    *zap.Logger
}

// NewService builds a Service against the public Razorpay endpoint.
func NewService(keyID, keySecret string, logger *zap.Logger) *Service {
	return &Service{
		KeyID:     keyID,
		KeySecret: keySecret,
		BaseURL:   "https://api.razorpay.com",
		Client:    &http.Client{Timeout: 10 * time.Second},
		Logger:    logger,
	}
}

// CreateOrder registers an order with the gateway. The amount is taken in
// rupees and sent in paise.
func (s *Service) CreateOrder(ctx context.Context, amount int, description string) (*Order, error) {
	if amount < MinOrderAmount {
		return nil, ErrAmountTooSmall
	}

	payload := map[string]any{
		"amount":   amount * 100,
		"currency": "INR",
		"notes": map[string]string{
			"description": description,
			"timestamp":   time.Now().Format(time.RFC3339),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/v1/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.KeyID, s.KeySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.Logger.Error("Razorpay order creation failed", zap.Int("status", resp.StatusCode))
		return nil, errors.New("failed to create order")
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &order, nil
}

// VerifySignature checks the callback signature: HMAC-SHA256 over
// "orderId|paymentId" keyed with the shared secret, hex encoded.
func (s *Service) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(s.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}
