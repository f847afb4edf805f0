// Package embedded opens the Frisbii embedded checkout widget for a session
// id created with [github.com/applyagency/frisbii.Client.CreateChargeSession].
//
// The page, its container element and the provider SDK are reached through
// small interfaces so the adapter runs unchanged in the browser (see the
// jsdom package) and in tests:
//
//	adapter := embedded.New(doc, container, lookup,
//		embedded.WithNotifier(alerts),
//		embedded.WithLogger(logger),
//	)
//	err := adapter.Open(ctx, sessionID)
//
// New references the SDK script once. Open waits for the SDK at most
// [DefaultLoadTimeout], rebuilds the render target and constructs the widget
// with accept, error and close handlers attached.
package embedded
