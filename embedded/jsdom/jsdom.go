//go:build js && wasm

package jsdom

import (
	"errors"
	"fmt"
	"sync"
	"syscall/js"

	"github.com/applyagency/frisbii/embedded"
)

var errScriptLoad = errors.New("script error event")

// Document wraps window.document.
type Document struct {
	doc js.Value
}

// NewDocument returns the current page.
func NewDocument() *Document {
	return &Document{doc: js.Global().Get("document")}
}

// Element returns the element with the given id.
func (d *Document) Element(id string) (js.Value, error) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return js.Value{}, fmt.Errorf("jsdom: element %q not found", id)
	}
	return el, nil
}

// Container returns the element with the given id as an embedded.Container.
func (d *Document) Container(id string) (*Container, error) {
	el, err := d.Element(id)
	if err != nil {
		return nil, err
	}
	return &Container{doc: d.doc, el: el}, nil
}

// FindScript implements embedded.Document.
func (d *Document) FindScript(substr string) (embedded.Script, bool) {
	el := d.doc.Call("querySelector", fmt.Sprintf("script[src*=%q]", substr))
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	s := watchScript(el)
	if sdkDefined() {
		s.settle(nil)
	}
	return s, true
}

// AppendScript implements embedded.Document.
func (d *Document) AppendScript(src string) embedded.Script {
	el := d.doc.Call("createElement", "script")
	el.Set("src", src)
	el.Set("async", true)
	s := watchScript(el)
	d.doc.Get("head").Call("appendChild", el)
	return s
}

type script struct {
	done chan struct{}
	once sync.Once
	err  error
	load js.Func
	fail js.Func
}

func watchScript(el js.Value) *script {
	s := &script{done: make(chan struct{})}
	s.load = js.FuncOf(func(js.Value, []js.Value) any {
		s.settle(nil)
		return nil
	})
	s.fail = js.FuncOf(func(js.Value, []js.Value) any {
		s.settle(errScriptLoad)
		return nil
	})
	el.Call("addEventListener", "load", s.load)
	el.Call("addEventListener", "error", s.fail)
	return s
}

func (s *script) settle(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

func (s *script) Done() <-chan struct{} { return s.done }
func (s *script) Err() error            { return s.err }

// Container is a page element hosting the render target.
type Container struct {
	doc js.Value
	el  js.Value
}

// Clear implements embedded.Container.
func (c *Container) Clear() {
	c.el.Set("innerHTML", "")
}

// AppendChild implements embedded.Container.
func (c *Container) AppendChild(id string) {
	child := c.doc.Call("createElement", "div")
	child.Set("id", id)
	c.el.Call("appendChild", child)
}

// Alerts shows messages with window.alert.
type Alerts struct{}

// Alert implements embedded.Notifier.
func (Alerts) Alert(message string) {
	js.Global().Call("alert", message)
}
