// Package payment is the thin checkout collaborator. The core only
// consumes two things from it: a redirect URL to start checkout and the
// asynchronous paid signal that flips a profile to premium.
package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tbruins/stroomadvies/internal/common"
	"github.com/tbruins/stroomadvies/internal/oracle"
)

// Config for the Mollie-backed payment client.
type Config struct {
	APIKey      string
	BaseURL     string // default https://api.mollie.com/v2
	RedirectURL string // where the user lands after checkout
	WebhookURL  string // where Mollie posts status changes
	PremiumEUR  float64
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.mollie.com/v2"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: logger,
	}
}

// Checkout is the hand-off the caller redirects the user to.
type Checkout struct {
	PaymentID   string
	CheckoutURL string
}

// PaymentStatus is what the webhook needs: which profile paid, and
// whether the payment actually completed.
type PaymentStatus struct {
	PaymentID string
	ProfileID uuid.UUID
	Paid      bool
	Status    string
}

type molliePayment struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Metadata struct {
		ProfileID string `json:"profile_id"`
	} `json:"metadata"`
	Links struct {
		Checkout struct {
			Href string `json:"href"`
		} `json:"checkout"`
	} `json:"_links"`
}

// CreateCheckout creates a payment for the premium upgrade and returns
// the redirect target. The profile id rides along as metadata so the
// webhook can attribute the paid signal.
func (c *Client) CreateCheckout(ctx context.Context, profileID uuid.UUID) (*Checkout, error) {
	body := map[string]any{
		"amount": map[string]string{
			"currency": "EUR",
			"value":    fmt.Sprintf("%.2f", c.cfg.PremiumEUR),
		},
		"description": "Stroomadvies Premium",
		"redirectUrl": c.cfg.RedirectURL,
		"webhookUrl":  c.cfg.WebhookURL,
		"metadata":    map[string]string{"profile_id": profileID.String()},
	}

	raw, _, err := oracle.SendJSON(ctx, c.http, c.cfg.BaseURL+"/payments", body,
		map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}, c.logger)
	if err != nil {
		c.logger.Error("payment.create_failed", "profile_id", profileID, "error", err)
		return nil, fmt.Errorf("create payment: %w", err)
	}

	var p molliePayment
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	if p.ID == "" || p.Links.Checkout.Href == "" {
		return nil, common.NewAppError("PAYMENT_CREATE", "payment response missing id or checkout link", common.ErrInternal)
	}

	c.logger.Info("payment.checkout_created", "profile_id", profileID, "payment_id", p.ID)
	return &Checkout{PaymentID: p.ID, CheckoutURL: p.Links.Checkout.Href}, nil
}

// FetchStatus loads a payment by id. Webhook deliveries carry only the
// id; the status itself must always be fetched fresh from the API.
func (c *Client) FetchStatus(ctx context.Context, paymentID string) (*PaymentStatus, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, common.NewAppError("PAYMENT_STATUS", "payment id is required", common.ErrInvalidInput)
	}

	endpoint := c.cfg.BaseURL + "/payments/" + url.PathEscape(paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("payment.fetch_failed", "payment_id", paymentID, "error", err)
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("fetch payment %s: status %d", paymentID, resp.StatusCode)
	}

	var p molliePayment
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode payment: %w", err)
	}

	status := &PaymentStatus{PaymentID: p.ID, Paid: p.Status == "paid", Status: p.Status}
	if p.Metadata.ProfileID != "" {
		id, perr := uuid.Parse(p.Metadata.ProfileID)
		if perr != nil {
			return nil, fmt.Errorf("payment %s carries malformed profile id: %w", paymentID, perr)
		}
		status.ProfileID = id
	}
	return status, nil
}
