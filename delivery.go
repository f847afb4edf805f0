package frisbii

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Delivery describes how a webhook reached the receiver. Consumers read it
// with [DeliveryFromContext].
type Delivery struct {
	// Taken from the Request-Id header, or generated when the sender did
	// not set one.
	//
	// Example: req_8f2c
	RequestID string
	// Example: Reepay-Webhook/1.0
	UserAgent string
	// Network address of the sender as seen by the server.
	RemoteAddr string
	// Set from the receiver clock before any decoding happens.
	ReceivedAt time.Time
}

func deliveryFromRequest(r *http.Request, receivedAt time.Time) *Delivery {
	requestID := strings.TrimSpace(r.Header.Get("Request-Id"))
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return &Delivery{
		RequestID:  requestID,
		UserAgent:  strings.TrimSpace(r.Header.Get("User-Agent")),
		RemoteAddr: r.RemoteAddr,
		ReceivedAt: receivedAt,
	}
}

type deliveryKey struct{}

func withDelivery(ctx context.Context, d *Delivery) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if d == nil {
		return ctx
	}
	return context.WithValue(ctx, deliveryKey{}, d)
}

// DeliveryFromContext returns the delivery attached by [WebhookHandler], or
// nil outside a webhook call.
func DeliveryFromContext(ctx context.Context) *Delivery {
	if ctx == nil {
		return nil
	}
	d, _ := ctx.Value(deliveryKey{}).(*Delivery)
	return d
}
