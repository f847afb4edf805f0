package frisbii

import (
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/applyagency/frisbii/signature"
)

type config struct {
	baseURL               string
	httpClient            *http.Client
	logger                *zap.Logger
	signatureVerifier     signature.Verifier
	maxClockSkew          time.Duration
	middleware            []Middleware
	clock                 func() time.Time
}

func defaultConfig() config {
	return config{
		baseURL:      DefaultBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		logger:       zap.NewNop(),
		maxClockSkew: 5 * time.Minute,
		clock:        time.Now,
	}
}

func (cfg *config) apply(opts []Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
}

type Middleware func(http.HandlerFunc) http.HandlerFunc

func applyMiddleware(h http.HandlerFunc, middleware ...Middleware) http.HandlerFunc {
	for _, m := range middleware {
		h = m(h)
	}
	return h
}

// Option customizes the client and webhook handler behavior.
type Option func(*config)

// WithBaseURL points the client at a different checkout API host.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		if baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/"); baseURL != "" {
			cfg.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the HTTP client used for outbound API calls.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) {
		if client != nil {
			cfg.httpClient = client
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSignatureVerifier enables webhook signature enforcement. Once set,
// every event must carry a valid signature.
func WithSignatureVerifier(verifier signature.Verifier) Option {
	return func(cfg *config) {
		cfg.signatureVerifier = verifier
	}
}

// WithMaxClockSkew sets the tolerated absolute difference between the
// webhook timestamp and the server clock when verifying signed events.
func WithMaxClockSkew(skew time.Duration) Option {
	if skew <= 0 {
		panic("frisbii: max clock skew must be positive")
	}
	return func(cfg *config) {
		cfg.maxClockSkew = skew
	}
}

// WithMiddleware appends custom middleware in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(cfg *config) {
		for _, m := range mw {
			if m == nil {
				continue
			}
			cfg.middleware = append(cfg.middleware, m)
		}
	}
}

// withClock provides deterministic time in tests.
func withClock(fn func() time.Time) Option {
	return func(cfg *config) {
		cfg.clock = fn
	}
}
