package embedded

import (
	"time"

	"go.uber.org/zap"
)

type config struct {
	notifier    Notifier
	logger      *zap.Logger
	loadTimeout time.Duration
	scriptURL   string
	showReceipt *bool
}

func defaultConfig() config {
	return config{
		logger:      zap.NewNop(),
		loadTimeout: DefaultLoadTimeout,
		scriptURL:   DefaultScriptURL,
	}
}

func (cfg *config) apply(opts []Option) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.notifier == nil {
		cfg.notifier = logNotifier{logger: cfg.logger}
	}
}

// Option customizes an [Adapter].
type Option func(*config)

// WithNotifier sets where user facing messages go. By default they are only
// logged.
func WithNotifier(n Notifier) Option {
	return func(cfg *config) {
		cfg.notifier = n
	}
}

// WithLogger sets the logger for lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithLoadTimeout overrides how long an open attempt waits for the SDK.
func WithLoadTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("embedded: load timeout must be positive")
	}
	return func(cfg *config) {
		cfg.loadTimeout = d
	}
}

// WithScriptURL overrides the SDK bundle location.
func WithScriptURL(src string) Option {
	return func(cfg *config) {
		if src != "" {
			cfg.scriptURL = src
		}
	}
}

// WithShowReceipt forces the widget's receipt step on or off.
func WithShowReceipt(show bool) Option {
	return func(cfg *config) {
		cfg.showReceipt = &show
	}
}

type logNotifier struct {
	logger *zap.Logger
}

func (n logNotifier) Alert(message string) {
	n.logger.Info("alert", zap.String("message", message))
}
