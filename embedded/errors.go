package embedded

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySessionID is returned when Open gets a blank session id.
	ErrEmptySessionID = errors.New("embedded: session id is empty")
	// ErrSDKUnavailable is returned when the script loaded but did not
	// define the SDK global.
	ErrSDKUnavailable = errors.New("embedded: SDK global not available after script load")
	// ErrEmbeddedUnavailable is returned when the loaded SDK has no
	// embedded checkout constructor.
	ErrEmbeddedUnavailable = errors.New("embedded: SDK does not provide embedded checkout")
)

// The load errors carry no package prefix: their text is shown to the user
// inside the "Failed to load Frisbii SDK" alert.
var (
	// ErrScriptLoad is returned when the browser reported a script load
	// failure. The browser's cause is wrapped after it.
	ErrScriptLoad = errors.New("failed to load SDK script")
	// ErrLoadTimeout is returned when the script did not settle within the
	// load timeout.
	ErrLoadTimeout = errors.New("SDK loading timeout")
)

const (
	msgEmptySessionID = "Please enter a checkout session ID"
	msgSDKUnavailable = "Frisbii SDK (Reepay) not available. Please check the browser console."
	msgNoEmbedded     = "Embedded checkout mode not available. The SDK may need to be updated or embedded mode may not be supported in this version."
	msgAccepted       = "Payment successful!"
	msgUnknownError   = "Unknown error"
	msgOpenFailed     = "Failed to open checkout"
)

func loadFailureAlert(err error) string {
	return fmt.Sprintf("Failed to load Frisbii SDK: %v. Please check:\n1. Your internet connection\n2. The SDK URL is correct", err)
}

// OpenError is returned by [Adapter.Open] when the SDK rejected the widget
// construction. Message is the user facing explanation.
type OpenError struct {
	Message string
	Err     error
}

func (e *OpenError) Error() string {
	if e.Err == nil || e.Err.Error() == e.Message {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

func newOpenError(err error) *OpenError {
	message := msgOpenFailed

	var sdkErr *SDKError
	switch {
	case errors.As(err, &sdkErr):
		switch sdkErr.Name {
		case ErrNameMissingHTMLElement:
			message = fmt.Sprintf("Container element '%s' not found", RenderTargetID)
		case ErrNameHTMLElementNotEmpty:
			message = "Container element is not empty"
		default:
			if sdkErr.Message != "" {
				message = sdkErr.Message
			}
		}
	case err != nil && err.Error() != "":
		message = err.Error()
	}

	return &OpenError{Message: message, Err: err}
}
