package frisbii

// Customer defines the customer attached to a charge session order.
type Customer struct {
	Email     string `json:"email" validate:"required,email"`
	Handle    string `json:"handle" validate:"required,max=255,handle"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Order defines the order a charge session collects payment for.
type Order struct {
	// Handle must be unique per merchant account.
	Handle string `json:"handle" validate:"required,max=255,handle"`
	// Amount in the smallest currency unit (øre for DKK).
	Amount   int64    `json:"amount" validate:"gt=0"`
	Currency string   `json:"currency" validate:"required,currency"`
	Settle   bool     `json:"settle"`
	Customer Customer `json:"customer" validate:"required"`
}

// ChargeSessionRequest defines the body of POST /v1/session/charge.
type ChargeSessionRequest struct {
	Order Order `json:"order" validate:"required"`
	// Configuration selects a named checkout configuration. Empty means the
	// account default and the field is left out of the request entirely.
	Configuration string `json:"configuration,omitempty"`
	AcceptURL     string `json:"accept_url,omitempty" validate:"omitempty,url"`
	CancelURL     string `json:"cancel_url,omitempty" validate:"omitempty,url"`
}

// Session is the checkout session returned by the API.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
