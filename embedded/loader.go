package embedded

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const (
	// DefaultScriptURL is the hosted SDK bundle.
	DefaultScriptURL = "https://checkout.reepay.com/checkout.js"
	// DefaultLoadTimeout bounds how long an open attempt waits for the SDK.
	DefaultLoadTimeout = 10 * time.Second
)

// scriptMatch returns the substring used to detect an already inserted SDK
// script. The host is enough to match any bundle path or version.
func scriptMatch(src string) string {
	u, err := url.Parse(src)
	if err != nil || u.Host == "" {
		return src
	}
	return u.Host
}

// ensureScript returns the SDK script element, inserting it when the page
// does not reference the bundle yet.
func ensureScript(doc Document, src string) (Script, bool) {
	if script, ok := doc.FindScript(scriptMatch(src)); ok {
		return script, false
	}
	return doc.AppendScript(src), true
}

// waitForScript blocks until the script settles, the timeout fires or ctx is
// done, whichever comes first. The timer is released as soon as the wait
// returns so a later load cannot act on an abandoned attempt.
func waitForScript(ctx context.Context, script Script, timeout time.Duration) error {
	if script == nil {
		return ErrScriptLoad
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-script.Done():
		if err := script.Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrScriptLoad, err)
		}
		return nil
	case <-timer.C:
		return ErrLoadTimeout
	case <-ctx.Done():
		return ctx.Err()
	}
}
