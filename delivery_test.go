package frisbii

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDeliveryFromRequest(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	req := httptest.NewRequest(http.MethodPost, "/webhooks", nil)
	req.Header.Set("User-Agent", " Reepay-Webhook/1.0 ")
	req.Header.Set("Request-Id", "req_8f2c")
	req.RemoteAddr = "203.0.113.7:51234"

	got := deliveryFromRequest(req, at)
	want := Delivery{
		RequestID:  "req_8f2c",
		UserAgent:  "Reepay-Webhook/1.0",
		RemoteAddr: "203.0.113.7:51234",
		ReceivedAt: at,
	}
	if *got != want {
		t.Fatalf("unexpected delivery %+v", *got)
	}
}

func TestDeliveryGeneratesRequestID(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/webhooks", nil)
	first := deliveryFromRequest(req, time.Time{})
	second := deliveryFromRequest(req, time.Time{})

	if _, err := uuid.Parse(first.RequestID); err != nil {
		t.Fatalf("expected generated uuid, got %q: %v", first.RequestID, err)
	}
	if first.RequestID == second.RequestID {
		t.Fatalf("generated request ids must differ")
	}
}

func TestDeliveryContext(t *testing.T) {
	t.Parallel()

	if DeliveryFromContext(context.Background()) != nil {
		t.Fatalf("expected no delivery on a bare context")
	}
	ctx := withDelivery(context.Background(), nil)
	if DeliveryFromContext(ctx) != nil {
		t.Fatalf("nil delivery must not be stored")
	}
	d := &Delivery{RequestID: "req_1"}
	if got := DeliveryFromContext(withDelivery(context.Background(), d)); got != d {
		t.Fatalf("expected stored delivery, got %+v", got)
	}
}
