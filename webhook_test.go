package frisbii

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/applyagency/frisbii/signature"
)

var webhookSecret = []byte("webhook-secret")

func signedEvent(ts time.Time) WebhookEvent {
	raw := ts.UTC().Format(time.RFC3339Nano)
	return WebhookEvent{
		ID:        "wh_123",
		EventID:   "ev_123",
		EventType: WebhookEventInvoiceSettled,
		Timestamp: raw,
		Signature: signature.Sign(webhookSecret, raw, "wh_123"),
		Customer:  "c-test",
		Invoice:   "order-1700000000000",
	}
}

func postEvent(t *testing.T, h http.Handler, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	switch v := payload.(type) {
	case string:
		body = []byte(v)
	default:
		var err error
		body, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("marshal event: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, "/webhooks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Request-Id", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorCode(body []byte) string {
	var resp Error
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	return string(resp.Code)
}

func TestWebhookHandlerDeliversVerifiedEvent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 640_000_000, time.UTC)
	var got WebhookEvent
	var requestID string
	handler := NewWebhookHandler(WebhookConsumerFunc(func(ctx context.Context, event WebhookEvent) error {
		got = event
		if d := DeliveryFromContext(ctx); d != nil {
			requestID = d.RequestID
		}
		return nil
	}), WithSignatureVerifier(signature.HMACVerifier{Key: webhookSecret}), withClock(func() time.Time {
		return now
	}))

	rec := postEvent(t, handler, signedEvent(now))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", rec.Code, rec.Body.String())
	}
	if got.EventID != "ev_123" || got.EventType != WebhookEventInvoiceSettled {
		t.Fatalf("unexpected event %+v", got)
	}
	if requestID != "req-42" {
		t.Fatalf("request context not propagated, got %q", requestID)
	}
}

func TestWebhookHandlerRejections(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := map[string]struct {
		payload    func() any
		opts       []Option
		wantStatus int
		wantCode   string
	}{
		"invalid JSON": {
			payload:    func() any { return "{" },
			wantStatus: http.StatusBadRequest,
			wantCode:   string(InvalidRequest),
		},
		"missing event id": {
			payload: func() any {
				ev := signedEvent(now)
				ev.EventID = ""
				return ev
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(InvalidRequest),
		},
		"tampered signature": {
			payload: func() any {
				ev := signedEvent(now)
				ev.ID = "wh_other"
				return ev
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(InvalidSignature),
		},
		"stale timestamp": {
			payload:    func() any { return signedEvent(now.Add(-10 * time.Minute)) },
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(StaleTimestamp),
		},
		"narrow skew window": {
			payload:    func() any { return signedEvent(now.Add(-2 * time.Minute)) },
			opts:       []Option{WithMaxClockSkew(time.Minute)},
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(StaleTimestamp),
		},
		"unsigned with verifier": {
			payload: func() any {
				ev := signedEvent(now)
				ev.Signature = ""
				return ev
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(SignatureRequired),
		},
		"blank signature with verifier": {
			payload: func() any {
				ev := signedEvent(now)
				ev.Signature = "   "
				return ev
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   string(SignatureRequired),
		},
		"unparseable timestamp": {
			payload: func() any {
				ev := signedEvent(now)
				ev.Timestamp = "yesterday"
				return ev
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   string(InvalidSignature),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			called := false
			opts := append([]Option{
				WithSignatureVerifier(signature.HMACVerifier{Key: webhookSecret}),
				withClock(func() time.Time { return now }),
			}, tt.opts...)
			handler := NewWebhookHandler(WebhookConsumerFunc(func(context.Context, WebhookEvent) error {
				called = true
				return nil
			}), opts...)

			rec := postEvent(t, handler, tt.payload())

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d got %d body=%s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if got := errorCode(rec.Body.Bytes()); got != tt.wantCode {
				t.Fatalf("expected code %s got %s", tt.wantCode, got)
			}
			if called {
				t.Fatalf("consumer must not run for rejected events")
			}
		})
	}
}

func TestWebhookHandlerAcceptsUnsignedWithoutVerifier(t *testing.T) {
	t.Parallel()

	handler := NewWebhookHandler(WebhookConsumerFunc(func(context.Context, WebhookEvent) error {
		return nil
	}))
	ev := signedEvent(time.Now())
	ev.Signature = ""

	if rec := postEvent(t, handler, ev); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
}

func TestWebhookHandlerConsumerErrors(t *testing.T) {
	t.Parallel()

	t.Run("typed error keeps its status", func(t *testing.T) {
		handler := NewWebhookHandler(WebhookConsumerFunc(func(context.Context, WebhookEvent) error {
			return NewHTTPError(http.StatusConflict, InvalidRequest, ErrorCode("duplicate_event"), "already processed")
		}))
		rec := postEvent(t, handler, signedEvent(time.Now()))
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409 got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "already processed") {
			t.Fatalf("unexpected body %s", rec.Body.String())
		}
	})

	t.Run("plain error becomes processing error", func(t *testing.T) {
		handler := NewWebhookHandler(WebhookConsumerFunc(func(context.Context, WebhookEvent) error {
			return errors.New("boom")
		}))
		rec := postEvent(t, handler, signedEvent(time.Now()))
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 got %d", rec.Code)
		}
		if got := errorCode(rec.Body.Bytes()); got != string(ProcessingError) {
			t.Fatalf("unexpected code %s", got)
		}
	})

	t.Run("method not allowed", func(t *testing.T) {
		handler := NewWebhookHandler(WebhookConsumerFunc(func(context.Context, WebhookEvent) error {
			return nil
		}))
		req := httptest.NewRequest(http.MethodGet, "/webhooks", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusMethodNotAllowed {
			t.Fatalf("expected 405 got %d", rec.Code)
		}
	})
}

func TestWebhookHandlerMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mw := func(name string) Middleware {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next(w, r)
			}
		}
	}
	handler := NewWebhookHandler(WebhookConsumerFunc(func(context.Context, WebhookEvent) error {
		return nil
	}), WithMiddleware(mw("first"), nil, mw("second")))

	if rec := postEvent(t, handler, signedEvent(time.Now())); rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if strings.Join(order, ",") != "second,first" {
		t.Fatalf("unexpected middleware order %v", order)
	}
}

func TestNewWebhookHandlerPanicsWithoutConsumer(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for a nil consumer")
		}
	}()
	NewWebhookHandler(nil)
}
