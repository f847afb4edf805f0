package embedded

import (
	"bytes"
	"encoding/json"

	"github.com/oapi-codegen/runtime"
)

// AcceptEvent is the payload of an Accept event.
type AcceptEvent struct {
	ID            string `json:"id"`
	Invoice       string `json:"invoice,omitempty"`
	Customer      string `json:"customer,omitempty"`
	Subscription  string `json:"subscription,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

// ErrorEvent is the payload of an Error event. The SDK does not fix the
// type of Error; it is usually a string but may be any JSON value.
type ErrorEvent struct {
	ID    string          `json:"id"`
	Error json.RawMessage `json:"error,omitempty"`
}

// Detail renders Error as text: strings as they are, other values as
// compact JSON. Absent, null, false, zero and empty values give "".
func (e ErrorEvent) Detail() string {
	return detailText(e.Error)
}

// EventData holds the raw payload passed to an event handler. The SDK sends
// a different object per event kind; use the As* accessors to read it.
type EventData struct {
	union json.RawMessage
}

// NewEventData wraps a raw JSON payload.
func NewEventData(raw []byte) EventData {
	return EventData{union: append(json.RawMessage(nil), raw...)}
}

// IsEmpty reports whether the SDK passed no payload.
func (t EventData) IsEmpty() bool {
	return len(t.union) == 0 || string(t.union) == "null"
}

// AsAcceptEvent returns the union data inside the EventData as an AcceptEvent
func (t EventData) AsAcceptEvent() (AcceptEvent, error) {
	var body AcceptEvent
	err := json.Unmarshal(t.union, &body)
	return body, err
}

// FromAcceptEvent overwrites any union data inside the EventData as the provided AcceptEvent
func (t *EventData) FromAcceptEvent(v AcceptEvent) error {
	b, err := json.Marshal(v)
	t.union = b
	return err
}

// MergeAcceptEvent performs a merge with any union data inside the EventData, using the provided AcceptEvent
func (t *EventData) MergeAcceptEvent(v AcceptEvent) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	merged, err := runtime.JSONMerge(t.union, b)
	t.union = merged
	return err
}

// AsErrorEvent returns the union data inside the EventData as an ErrorEvent
func (t EventData) AsErrorEvent() (ErrorEvent, error) {
	var body ErrorEvent
	err := json.Unmarshal(t.union, &body)
	return body, err
}

// FromErrorEvent overwrites any union data inside the EventData as the provided ErrorEvent
func (t *EventData) FromErrorEvent(v ErrorEvent) error {
	b, err := json.Marshal(v)
	t.union = b
	return err
}

// MergeErrorEvent performs a merge with any union data inside the EventData, using the provided ErrorEvent
func (t *EventData) MergeErrorEvent(v ErrorEvent) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	merged, err := runtime.JSONMerge(t.union, b)
	t.union = merged
	return err
}

// MarshalJSON serializes the underlying union.
func (t EventData) MarshalJSON() ([]byte, error) {
	if len(t.union) == 0 {
		return []byte("null"), nil
	}
	b, err := t.union.MarshalJSON()
	return b, err
}

// UnmarshalJSON loads union data.
func (t *EventData) UnmarshalJSON(b []byte) error {
	err := t.union.UnmarshalJSON(b)
	return err
}

// errorDetail extracts the provider's error text, if any. A payload that is
// not an object is itself the detail.
func (t EventData) errorDetail() string {
	if t.IsEmpty() {
		return ""
	}
	if ev, err := t.AsErrorEvent(); err == nil {
		return ev.Detail()
	}
	return detailText(t.union)
}

func detailText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	switch string(raw) {
	case "", "null", "false", "0", `""`:
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
