package payment

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
)

// PremiumActivator is the slice of the profile service the webhook needs.
type PremiumActivator interface {
	ActivatePremium(ctx context.Context, profileID uuid.UUID) error
}

// WebhookHandler consumes Mollie status callbacks. Deliveries are
// id-only; the handler fetches the payment and flips the tier when (and
// only when) the status is paid. Mollie retries on non-2xx, so transient
// failures answer 500 and rely on the retry.
type WebhookHandler struct {
	client    *Client
	activator PremiumActivator
	logger    *slog.Logger
}

func NewWebhookHandler(client *Client, activator PremiumActivator, logger *slog.Logger) *WebhookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookHandler{client: client, activator: activator, logger: logger}
}

func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	paymentID := r.PostFormValue("id")
	if paymentID == "" {
		http.Error(w, "missing id", http.StatusBadRequest)
		return
	}

	status, err := h.client.FetchStatus(r.Context(), paymentID)
	if err != nil {
		h.logger.Error("payment.webhook.fetch_failed", "payment_id", paymentID, "error", err)
		http.Error(w, "fetch failed", http.StatusInternalServerError)
		return
	}

	if !status.Paid {
		// expired, canceled, or still open: acknowledge and move on
		h.logger.Info("payment.webhook.not_paid", "payment_id", paymentID, "status", status.Status)
		w.WriteHeader(http.StatusOK)
		return
	}
	if status.ProfileID == uuid.Nil {
		h.logger.Error("payment.webhook.no_profile", "payment_id", paymentID)
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.activator.ActivatePremium(r.Context(), status.ProfileID); err != nil {
		h.logger.Error("payment.webhook.activate_failed", "payment_id", paymentID, "profile_id", status.ProfileID, "error", err)
		http.Error(w, "activate failed", http.StatusInternalServerError)
		return
	}

	h.logger.Info("payment.webhook.premium_activated", "payment_id", paymentID, "profile_id", status.ProfileID)
	w.WriteHeader(http.StatusOK)
}
