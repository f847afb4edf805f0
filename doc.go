// Package frisbii is a small Go client for the Frisbii (formerly Reepay)
// hosted checkout.
//
// # Checkout sessions
//
// Use [NewClient] with a private API key and call
// [Client.CreateChargeSession] to create a charge session. The returned
// [Session] carries the id consumed by the embedded checkout widget and the
// URL of the hosted payment window. Requests authenticate with HTTP Basic
// auth, see [BasicAuthorization], and are validated locally before they are
// sent. The client never retries.
//
// # Embedded checkout
//
// The embedded subpackage opens the provider's browser widget for a session
// id. It models the provider SDK and the page as narrow interfaces so the
// flow can be driven from tests or from a js/wasm build.
//
// # Webhooks
//
// [NewWebhookHandler] accepts Frisbii webhook deliveries and hands them to
// a [WebhookConsumer]. With [WithSignatureVerifier] and
// [signature.HMACVerifier] each event's signature, the hex HMAC-SHA256 of
// timestamp and id keyed with the webhook secret, is checked before the
// consumer runs.
package frisbii
