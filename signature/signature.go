package signature

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Material captures the inputs needed to validate a signed webhook event.
type Material struct {
	Signature string
	// Timestamp is RawTimestamp parsed; used for skew checks.
	Timestamp time.Time
	// RawTimestamp is the timestamp exactly as sent. It is part of the
	// signed payload, so it must not be reformatted.
	RawTimestamp string
	ID           string
}

// Verifier validates the authenticity of webhook events.
type Verifier interface {
	Verify(ctx context.Context, material Material) error
}

// VerifierFunc lifts bare functions into [Verifier].
type VerifierFunc func(ctx context.Context, material Material) error

// Verify delegates to the wrapped function.
func (f VerifierFunc) Verify(ctx context.Context, material Material) error {
	return f(ctx, material)
}

// HMACVerifier validates signatures produced as the hex-encoded
// HMAC-SHA256 of `timestamp + id` keyed with the webhook secret.
type HMACVerifier struct {
	Key []byte
}

// Verify implements [Verifier] by recomputing the expected signature.
func (v HMACVerifier) Verify(_ context.Context, material Material) error {
	if len(v.Key) == 0 {
		return errors.New("signature: HMACVerifier requires a non-empty key")
	}
	expected, err := compute(v.Key, material.RawTimestamp, material.ID)
	if err != nil {
		return err
	}
	decoded, err := hex.DecodeString(strings.TrimSpace(material.Signature))
	if err != nil {
		return fmt.Errorf("signature: decode signature: %w", err)
	}
	if !hmac.Equal(decoded, expected) {
		return errors.New("signature: invalid signature")
	}
	return nil
}

// Sign returns the hex signature Frisbii attaches to an event with the
// given timestamp and id.
func Sign(key []byte, rawTimestamp, id string) string {
	sum, _ := compute(key, rawTimestamp, id)
	return hex.EncodeToString(sum)
}

func compute(key []byte, rawTimestamp, id string) ([]byte, error) {
	mac := hmac.New(sha256.New, key)
	if _, err := mac.Write(BuildSigningPayload(rawTimestamp, id)); err != nil {
		return nil, fmt.Errorf("signature: compute signature: %w", err)
	}
	return mac.Sum(nil), nil
}

// BuildSigningPayload constructs the string that is HMAC-signed.
func BuildSigningPayload(rawTimestamp, id string) []byte {
	return []byte(rawTimestamp + id)
}

// ParseTimestamp accepts timestamps in RFC3339 or RFC3339Nano format.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("signature: empty timestamp")
	}
	if ts, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return ts, nil
	}
	return time.Parse(time.RFC3339, value)
}

// AbsDuration returns the absolute value of the supplied duration.
func AbsDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
