package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeActivator struct {
	activated []uuid.UUID
	err       error
}

func (f *fakeActivator) ActivatePremium(_ context.Context, profileID uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	f.activated = append(f.activated, profileID)
	return nil
}

// mollieServer serves GET /payments/{id} with the given status and
// profile id metadata.
func mollieServer(t *testing.T, status string, profileID string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.True(t, strings.HasPrefix(r.URL.Path, "/payments/"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		resp := map[string]any{
			"id":       strings.TrimPrefix(r.URL.Path, "/payments/"),
			"status":   status,
			"metadata": map[string]string{"profile_id": profileID},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postWebhook(h http.Handler, paymentID string) *httptest.ResponseRecorder {
	form := url.Values{"id": {paymentID}}
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWebhookActivatesOnPaid(t *testing.T) {
	profileID := uuid.New()
	srv := mollieServer(t, "paid", profileID.String())
	activator := &fakeActivator{}
	h := NewWebhookHandler(NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil), activator, nil)

	rec := postWebhook(h, "tr_abc123")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, activator.activated, 1)
	assert.Equal(t, profileID, activator.activated[0])
}

func TestWebhookIgnoresUnpaidStatuses(t *testing.T) {
	for _, status := range []string{"open", "canceled", "expired", "failed"} {
		t.Run(status, func(t *testing.T) {
			srv := mollieServer(t, status, uuid.NewString())
			activator := &fakeActivator{}
			h := NewWebhookHandler(NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil), activator, nil)

			rec := postWebhook(h, "tr_abc123")
			// acknowledged so the PSP stops retrying
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Empty(t, activator.activated)
		})
	}
}

func TestWebhookTransientFailureAnswers500(t *testing.T) {
	t.Run("status fetch fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}))
		t.Cleanup(srv.Close)
		activator := &fakeActivator{}
		h := NewWebhookHandler(NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil), activator, nil)

		rec := postWebhook(h, "tr_abc123")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Empty(t, activator.activated)
	})

	t.Run("activation fails", func(t *testing.T) {
		srv := mollieServer(t, "paid", uuid.NewString())
		activator := &fakeActivator{err: errors.New("db down")}
		h := NewWebhookHandler(NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, nil), activator, nil)

		rec := postWebhook(h, "tr_abc123")
		// the PSP retries non-2xx, so the paid signal is not lost
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestWebhookRejectsBadDeliveries(t *testing.T) {
	h := NewWebhookHandler(NewClient(Config{APIKey: "test-key"}, nil), &fakeActivator{}, nil)

	t.Run("missing id", func(t *testing.T) {
		rec := postWebhook(h, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/webhooks/payment", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})
}

func TestCreateCheckout(t *testing.T) {
	profileID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		amount := body["amount"].(map[string]any)
		assert.Equal(t, "EUR", amount["currency"])
		assert.Equal(t, "4.99", amount["value"])
		metadata := body["metadata"].(map[string]any)
		assert.Equal(t, profileID.String(), metadata["profile_id"])

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "tr_abc123",
			"status": "open",
			"_links": {"checkout": {"href": "https://pay.example/checkout/tr_abc123"}}
		}`)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(Config{APIKey: "test-key", BaseURL: srv.URL, PremiumEUR: 4.99}, nil)
	checkout, err := c.CreateCheckout(context.Background(), profileID)
	require.NoError(t, err)

	assert.Equal(t, "tr_abc123", checkout.PaymentID)
	assert.Equal(t, "https://pay.example/checkout/tr_abc123", checkout.CheckoutURL)
}

func TestFetchStatusRequiresID(t *testing.T) {
	c := NewClient(Config{APIKey: "test-key"}, nil)
	_, err := c.FetchStatus(context.Background(), "  ")
	require.Error(t, err)
}
