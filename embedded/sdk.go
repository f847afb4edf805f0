package embedded

import "fmt"

// RenderTargetID is the element id the SDK renders the embedded widget
// into. The element must exist and be empty when the widget is created.
const RenderTargetID = "rp_container"

// Names of the errors the SDK raises from its EmbeddedCheckout constructor.
const (
	ErrNameMissingHTMLElement  = "RP_MissingHtmlElementError"
	ErrNameHTMLElementNotEmpty = "RP_HtmlElementNotEmptyError"
)

// EventKind identifies a widget lifecycle event. Values come from the SDK's
// Reepay.Event constants and are treated as opaque.
type EventKind string

// Events holds the SDK's event kind constants.
type Events struct {
	Accept EventKind
	Error  EventKind
	Close  EventKind
}

// Options configures a new embedded checkout.
type Options struct {
	// HTMLElement is the id of the render target.
	HTMLElement string
	// ShowReceipt overrides the receipt step when non-nil.
	ShowReceipt *bool
}

// ShowOptions configures [Checkout.Show].
type ShowOptions struct {
	ShowReceipt *bool
}

// Checkout is one embedded widget instance.
type Checkout interface {
	AddEventHandler(kind EventKind, handler func(EventData))
	RemoveEventHandler(kind EventKind)
	Show(sessionID string, opts ShowOptions)
	Destroy()
}

// Constructor creates an embedded widget for a session id.
type Constructor func(sessionID string, opts Options) (Checkout, error)

// SDK is the part of the provider's client SDK the adapter relies on.
type SDK interface {
	// EmbeddedCheckout reports false when the loaded SDK does not offer the
	// embedded mode.
	EmbeddedCheckout() (Constructor, bool)
	Events() Events
}

// Lookup resolves the SDK at call time. It reports false while the SDK
// script has not defined its global yet.
type Lookup func() (SDK, bool)

// SDKError is an error raised by the SDK itself.
type SDKError struct {
	Name    string
	Message string
}

func (e *SDKError) Error() string {
	if e == nil {
		return ""
	}
	if e.Name == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}
