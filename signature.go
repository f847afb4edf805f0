package frisbii

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/applyagency/frisbii/signature"
)

// verifyEventSignature checks the signature embedded in a webhook event.
// A nil result means the event may be handed to the consumer.
func (h *WebhookHandler) verifyEventSignature(ctx context.Context, event WebhookEvent) *Error {
	verifier := h.cfg.signatureVerifier
	if verifier == nil {
		return nil
	}
	sig := strings.TrimSpace(event.Signature)
	if sig == "" {
		return NewHTTPError(http.StatusUnauthorized, InvalidRequest, SignatureRequired, "signature is required", WithOffendingParam("signature"))
	}
	ts, err := signature.ParseTimestamp(event.Timestamp)
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, InvalidRequest, InvalidSignature, "timestamp must be RFC3339", WithOffendingParam("timestamp"))
	}
	if h.cfg.maxClockSkew > 0 {
		skew := signature.AbsDuration(h.cfg.clock().Sub(ts.UTC()))
		if skew > h.cfg.maxClockSkew {
			return NewHTTPError(http.StatusUnauthorized, InvalidRequest, StaleTimestamp, fmt.Sprintf("timestamp skew exceeds %s", h.cfg.maxClockSkew))
		}
	}
	material := signature.Material{
		Signature:    sig,
		Timestamp:    ts.UTC(),
		RawTimestamp: event.Timestamp,
		ID:           event.ID,
	}
	if err := verifier.Verify(ctx, material); err != nil {
		return NewHTTPError(http.StatusUnauthorized, InvalidRequest, InvalidSignature, "signature verification failed")
	}
	return nil
}
