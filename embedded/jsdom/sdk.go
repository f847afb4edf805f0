//go:build js && wasm

package jsdom

import (
	"fmt"
	"sync"
	"syscall/js"

	"github.com/applyagency/frisbii/embedded"
)

const globalName = "Reepay"

func sdkDefined() bool {
	ns := js.Global().Get(globalName)
	return !ns.IsUndefined() && !ns.IsNull()
}

// Lookup resolves window.Reepay. It implements embedded.Lookup.
func Lookup() (embedded.SDK, bool) {
	if !sdkDefined() {
		return nil, false
	}
	return &sdk{ns: js.Global().Get(globalName)}, true
}

type sdk struct {
	ns js.Value
}

func (s *sdk) Events() embedded.Events {
	ev := s.ns.Get("Event")
	if ev.Type() != js.TypeObject {
		return embedded.Events{Accept: "accept", Error: "error", Close: "close"}
	}
	return embedded.Events{
		Accept: embedded.EventKind(ev.Get("Accept").String()),
		Error:  embedded.EventKind(ev.Get("Error").String()),
		Close:  embedded.EventKind(ev.Get("Close").String()),
	}
}

func (s *sdk) EmbeddedCheckout() (embedded.Constructor, bool) {
	ctor := s.ns.Get("EmbeddedCheckout")
	if ctor.Type() != js.TypeFunction {
		return nil, false
	}
	return func(sessionID string, opts embedded.Options) (c embedded.Checkout, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = sdkError(r)
			}
		}()

		params := map[string]any{"html_element": opts.HTMLElement}
		if opts.ShowReceipt != nil {
			params["showReceipt"] = *opts.ShowReceipt
		}
		v := ctor.New(sessionID, params)
		return &checkout{v: v, handlers: map[embedded.EventKind]js.Func{}}, nil
	}, true
}

// sdkError converts an exception thrown by the SDK.
func sdkError(r any) error {
	jsErr, ok := r.(js.Error)
	if !ok {
		return fmt.Errorf("jsdom: %v", r)
	}
	out := &embedded.SDKError{Message: jsErr.Error()}
	if name := jsErr.Get("name"); name.Type() == js.TypeString {
		out.Name = name.String()
	}
	if msg := jsErr.Get("message"); msg.Type() == js.TypeString {
		out.Message = msg.String()
	}
	return out
}

type checkout struct {
	v        js.Value
	mu       sync.Mutex
	handlers map[embedded.EventKind]js.Func
}

func (c *checkout) AddEventHandler(kind embedded.EventKind, handler func(embedded.EventData)) {
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		handler(eventData(args))
		return nil
	})

	c.mu.Lock()
	if prev, ok := c.handlers[kind]; ok {
		prev.Release()
	}
	c.handlers[kind] = fn
	c.mu.Unlock()

	c.v.Call("addEventHandler", string(kind), fn)
}

func (c *checkout) RemoveEventHandler(kind embedded.EventKind) {
	c.v.Call("removeEventHandler", string(kind))

	c.mu.Lock()
	defer c.mu.Unlock()
	if fn, ok := c.handlers[kind]; ok {
		fn.Release()
		delete(c.handlers, kind)
	}
}

func (c *checkout) Show(sessionID string, opts embedded.ShowOptions) {
	params := map[string]any{}
	if opts.ShowReceipt != nil {
		params["showReceipt"] = *opts.ShowReceipt
	}
	c.v.Call("show", sessionID, params)
}

func (c *checkout) Destroy() {
	c.v.Call("destroy")

	c.mu.Lock()
	defer c.mu.Unlock()
	for kind, fn := range c.handlers {
		fn.Release()
		delete(c.handlers, kind)
	}
}

func eventData(args []js.Value) embedded.EventData {
	if len(args) == 0 || args[0].IsUndefined() || args[0].IsNull() {
		return embedded.EventData{}
	}
	raw := js.Global().Get("JSON").Call("stringify", args[0])
	if raw.Type() != js.TypeString {
		return embedded.EventData{}
	}
	return embedded.NewEventData([]byte(raw.String()))
}
