package frisbii

import "encoding/base64"

// BasicAuthorization builds the Authorization header value for a private
// API key. Frisbii uses HTTP Basic auth with the key as username and an
// empty password, so the colon is required. The key is encoded exactly as
// given.
func BasicAuthorization(apiKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(apiKey+":"))
}
