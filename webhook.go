package frisbii

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// WebhookEventType enumerates the webhook events a merchant commonly
// subscribes to. Unknown types are passed through to the consumer.
type WebhookEventType string

const (
	WebhookEventInvoiceAuthorized WebhookEventType = "invoice_authorized"
	WebhookEventInvoiceSettled    WebhookEventType = "invoice_settled"
	WebhookEventInvoiceFailed     WebhookEventType = "invoice_failed"
	WebhookEventInvoiceCancelled  WebhookEventType = "invoice_cancelled"
	WebhookEventInvoiceRefund     WebhookEventType = "invoice_refund"
	WebhookEventCustomerCreated   WebhookEventType = "customer_created"
)

// WebhookEvent is the payload Frisbii posts to the webhook URL.
type WebhookEvent struct {
	ID           string           `json:"id" validate:"required"`
	EventID      string           `json:"event_id" validate:"required"`
	EventType    WebhookEventType `json:"event_type" validate:"required"`
	Timestamp    string           `json:"timestamp" validate:"required"`
	Signature    string           `json:"signature,omitempty"`
	Customer     string           `json:"customer,omitempty"`
	Invoice      string           `json:"invoice,omitempty"`
	Transaction  string           `json:"transaction,omitempty"`
	Subscription string           `json:"subscription,omitempty"`
}

// WebhookConsumer is implemented by code that reacts to payment events.
// Returning an error makes Frisbii redeliver the event later.
type WebhookConsumer interface {
	HandleEvent(ctx context.Context, event WebhookEvent) error
}

// WebhookConsumerFunc lifts bare functions into [WebhookConsumer].
type WebhookConsumerFunc func(ctx context.Context, event WebhookEvent) error

// HandleEvent delegates to the wrapped function.
func (f WebhookConsumerFunc) HandleEvent(ctx context.Context, event WebhookEvent) error {
	return f(ctx, event)
}

// WebhookHandler receives Frisbii webhooks over net/http.
type WebhookHandler struct {
	consumer WebhookConsumer
	mux      *http.ServeMux
	cfg      config
}

// NewWebhookHandler wires POST /webhooks to the provided [WebhookConsumer].
func NewWebhookHandler(consumer WebhookConsumer, opts ...Option) *WebhookHandler {
	if consumer == nil {
		panic("frisbii: webhook consumer is required")
	}
	cfg := defaultConfig()
	cfg.apply(opts)
	h := &WebhookHandler{
		consumer: consumer,
		mux:      http.NewServeMux(),
		cfg:      cfg,
	}
	h.mux.HandleFunc("POST /webhooks", applyMiddleware(h.handleEvent, cfg.middleware...))
	return h
}

// ServeHTTP satisfies http.Handler.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := withDelivery(r.Context(), deliveryFromRequest(r, h.cfg.clock()))
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

func (h *WebhookHandler) handleEvent(w http.ResponseWriter, r *http.Request) {
	var event WebhookEvent
	if err := decodeJSON(r.Body, &event); err != nil {
		writeJSONError(w, NewInvalidRequestError(err.Error()))
		return
	}
	if err := event.Validate(); err != nil {
		writeJSONError(w, NewInvalidRequestError(err.Error()))
		return
	}
	log := h.cfg.logger.With(
		zap.String("event_id", event.EventID),
		zap.String("event_type", string(event.EventType)),
	)
	if d := DeliveryFromContext(r.Context()); d != nil {
		log = log.With(zap.String("request_id", d.RequestID))
	}
	if errPayload := h.verifyEventSignature(r.Context(), event); errPayload != nil {
		log.Warn("webhook rejected", zap.String("code", string(errPayload.Code)))
		writeJSONError(w, errPayload)
		return
	}
	if err := h.consumer.HandleEvent(r.Context(), event); err != nil {
		log.Error("webhook consumer failed", zap.Error(err))
		writeServiceError(w, err)
		return
	}
	log.Info("webhook handled", zap.String("invoice", event.Invoice))
	writeJSON(w, http.StatusOK, nil)
}
