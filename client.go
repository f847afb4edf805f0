package frisbii

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production checkout API host.
const DefaultBaseURL = "https://checkout-api.frisbii.com"

const chargeSessionPath = "/v1/session/charge"

// ErrMissingAPIKey is returned when no private API key was supplied.
var ErrMissingAPIKey = errors.New("frisbii: private API key is required")

// Client talks to the Frisbii checkout API.
type Client struct {
	authorization string
	cfg           config
}

// NewClient builds a [Client] authenticated with a private API key.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	cfg := defaultConfig()
	cfg.apply(opts)
	return &Client{
		authorization: BasicAuthorization(apiKey),
		cfg:           cfg,
	}, nil
}

// BaseURL reports the API host the client sends requests to.
func (c *Client) BaseURL() string {
	return c.cfg.baseURL
}

// CreateChargeSession creates a checkout session that charges req.Order.
// It makes exactly one attempt; a non-2xx answer is returned as *[APIError].
func (c *Client) CreateChargeSession(ctx context.Context, req ChargeSessionRequest) (*Session, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("frisbii: invalid charge session request: %w", err)
	}
	body, err := encodeJSON(req)
	if err != nil {
		return nil, fmt.Errorf("frisbii: marshal charge session request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.baseURL+chargeSessionPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("frisbii: build charge session request: %w", err)
	}
	httpReq.Header.Set("Authorization", c.authorization)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	log := c.cfg.logger.With(
		zap.String("order_handle", req.Order.Handle),
		zap.String("configuration", req.Configuration),
	)
	start := c.cfg.clock()
	log.Debug("creating charge session", zap.String("url", httpReq.URL.String()))

	resp, err := c.cfg.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("frisbii: send charge session request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp.StatusCode) {
		apiErr := newAPIError(resp, readErrorBody(resp))
		log.Warn("charge session rejected",
			zap.Int("status", apiErr.StatusCode),
			zap.String("request_id", apiErr.RequestID),
		)
		return nil, apiErr
	}

	var session Session
	if err := decodeJSON(resp.Body, &session); err != nil {
		return nil, fmt.Errorf("frisbii: decode charge session response: %w", err)
	}
	if session.ID == "" {
		return nil, errors.New("frisbii: charge session response has no id")
	}
	log.Info("charge session created",
		zap.String("session_id", session.ID),
		zap.Duration("elapsed", c.cfg.clock().Sub(start)),
	)
	return &session, nil
}
