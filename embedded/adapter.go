package embedded

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Adapter opens the embedded checkout widget inside a page container.
type Adapter struct {
	container Container
	lookup    Lookup
	script    Script
	cfg       config

	mu      sync.Mutex
	current Checkout
	events  Events
}

// New prepares an adapter and makes sure the SDK script is referenced by the
// page. Insertion does not wait for the script to load.
func New(doc Document, container Container, lookup Lookup, opts ...Option) *Adapter {
	if doc == nil {
		panic("embedded: document is required")
	}
	if container == nil {
		panic("embedded: container is required")
	}
	if lookup == nil {
		panic("embedded: SDK lookup is required")
	}

	cfg := defaultConfig()
	cfg.apply(opts)

	script, inserted := ensureScript(doc, cfg.scriptURL)
	cfg.logger.Debug("sdk script", zap.String("src", cfg.scriptURL), zap.Bool("inserted", inserted))

	return &Adapter{
		container: container,
		lookup:    lookup,
		script:    script,
		cfg:       cfg,
	}
}

// Open launches the widget for rawSessionID. Every failure is shown through
// the notifier and returned; nothing is retried.
func (a *Adapter) Open(ctx context.Context, rawSessionID string) error {
	sessionID := strings.TrimSpace(rawSessionID)
	if sessionID == "" {
		a.cfg.notifier.Alert(msgEmptySessionID)
		return ErrEmptySessionID
	}

	logger := a.cfg.logger.With(zap.String("session_id", sessionID))

	sdk, err := a.resolveSDK(ctx)
	if err != nil {
		logger.Error("sdk unavailable", zap.Error(err))
		switch {
		case errors.Is(err, ErrSDKUnavailable):
			a.cfg.notifier.Alert(msgSDKUnavailable)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// the caller abandoned the attempt
		default:
			a.cfg.notifier.Alert(loadFailureAlert(err))
		}
		return err
	}

	construct, ok := sdk.EmbeddedCheckout()
	if !ok || construct == nil {
		logger.Error("embedded checkout not supported by sdk")
		a.cfg.notifier.Alert(msgNoEmbedded)
		return ErrEmbeddedUnavailable
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.container.Clear()
	a.container.AppendChild(RenderTargetID)

	checkout, err := construct(sessionID, Options{
		HTMLElement: RenderTargetID,
		ShowReceipt: a.cfg.showReceipt,
	})
	if err == nil && checkout == nil {
		err = errors.New(msgOpenFailed)
	}
	if err != nil {
		openErr := newOpenError(err)
		logger.Error("open checkout", zap.Error(err))
		a.cfg.notifier.Alert(openErr.Error())
		return openErr
	}

	events := sdk.Events()
	checkout.AddEventHandler(events.Accept, a.onAccept(logger))
	checkout.AddEventHandler(events.Error, a.onError(logger))
	checkout.AddEventHandler(events.Close, a.onClose(logger))

	a.current = checkout
	a.events = events
	logger.Info("checkout opened")
	return nil
}

// Current returns the widget from the last successful Open, or nil.
func (a *Adapter) Current() Checkout {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// Destroy detaches the handlers from the current widget and tears it down.
func (a *Adapter) Destroy() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return
	}
	for _, kind := range []EventKind{a.events.Accept, a.events.Error, a.events.Close} {
		a.current.RemoveEventHandler(kind)
	}
	a.current.Destroy()
	a.current = nil
	a.events = Events{}
}

func (a *Adapter) resolveSDK(ctx context.Context) (SDK, error) {
	if sdk, ok := a.lookup(); ok {
		return sdk, nil
	}
	if err := waitForScript(ctx, a.script, a.cfg.loadTimeout); err != nil {
		return nil, err
	}
	sdk, ok := a.lookup()
	if !ok {
		return nil, ErrSDKUnavailable
	}
	return sdk, nil
}

func (a *Adapter) onAccept(logger *zap.Logger) func(EventData) {
	return func(data EventData) {
		fields := []zap.Field{}
		if ev, err := data.AsAcceptEvent(); err == nil && !data.IsEmpty() {
			fields = append(fields, zap.String("invoice", ev.Invoice), zap.String("customer", ev.Customer))
		}
		logger.Info("payment accepted", fields...)
		a.cfg.notifier.Alert(msgAccepted)
	}
}

func (a *Adapter) onError(logger *zap.Logger) func(EventData) {
	return func(data EventData) {
		detail := data.errorDetail()
		if detail == "" {
			detail = msgUnknownError
		}
		logger.Error("checkout error", zap.String("detail", detail))
		a.cfg.notifier.Alert("Error: " + detail)
	}
}

func (a *Adapter) onClose(logger *zap.Logger) func(EventData) {
	return func(EventData) {
		logger.Info("checkout closed")
	}
}
