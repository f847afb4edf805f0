package embedded

import (
	"sync"
)

type fakeScript struct {
	done chan struct{}
	once sync.Once
	err  error
}

func newFakeScript() *fakeScript {
	return &fakeScript{done: make(chan struct{})}
}

func (s *fakeScript) Done() <-chan struct{} { return s.done }
func (s *fakeScript) Err() error            { return s.err }

func (s *fakeScript) settle(err error) {
	s.once.Do(func() {
		s.err = err
		close(s.done)
	})
}

type fakeDocument struct {
	mu       sync.Mutex
	existing map[string]*fakeScript
	appended []string
	script   *fakeScript
}

func newFakeDocument() *fakeDocument {
	return &fakeDocument{existing: map[string]*fakeScript{}, script: newFakeScript()}
}

func (d *fakeDocument) FindScript(substr string) (Script, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.existing[substr]
	if !ok {
		return nil, false
	}
	return s, true
}

func (d *fakeDocument) AppendScript(src string) Script {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.appended = append(d.appended, src)
	d.existing[scriptMatch(src)] = d.script
	return d.script
}

func (d *fakeDocument) appendedScripts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.appended...)
}

type element struct {
	id     string
	serial int
}

type fakeContainer struct {
	mu       sync.Mutex
	children []element
	serial   int
	clears   int
}

func (c *fakeContainer) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.children = nil
	c.clears++
}

func (c *fakeContainer) AppendChild(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.serial++
	c.children = append(c.children, element{id: id, serial: c.serial})
}

func (c *fakeContainer) snapshot() []element {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]element(nil), c.children...)
}

type fakeCheckout struct {
	mu        sync.Mutex
	sessionID string
	opts      Options
	handlers  map[EventKind]func(EventData)
	removed   []EventKind
	destroyed bool
}

func (c *fakeCheckout) AddEventHandler(kind EventKind, handler func(EventData)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[kind] = handler
}

func (c *fakeCheckout) RemoveEventHandler(kind EventKind) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, kind)
	c.removed = append(c.removed, kind)
}

func (c *fakeCheckout) Show(string, ShowOptions) {}

func (c *fakeCheckout) Destroy() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.destroyed = true
}

func (c *fakeCheckout) fire(kind EventKind, data EventData) {
	c.mu.Lock()
	handler := c.handlers[kind]
	c.mu.Unlock()
	if handler != nil {
		handler(data)
	}
}

var testEvents = Events{Accept: "accept", Error: "error", Close: "close"}

// fakeSDK records every construction together with the container children
// present at that moment.
type fakeSDK struct {
	mu           sync.Mutex
	noEmbedded   bool
	constructErr error
	container    *fakeContainer
	built        []*fakeCheckout
	childrenAt   [][]element
}

func (s *fakeSDK) Events() Events { return testEvents }

func (s *fakeSDK) EmbeddedCheckout() (Constructor, bool) {
	if s.noEmbedded {
		return nil, false
	}
	return func(sessionID string, opts Options) (Checkout, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.container != nil {
			s.childrenAt = append(s.childrenAt, s.container.snapshot())
		}
		if s.constructErr != nil {
			return nil, s.constructErr
		}
		c := &fakeCheckout{sessionID: sessionID, opts: opts, handlers: map[EventKind]func(EventData){}}
		s.built = append(s.built, c)
		return c, nil
	}, true
}

// sdkSlot is a Lookup whose result can be switched on once the fake script
// "loads".
type sdkSlot struct {
	mu  sync.Mutex
	sdk SDK
}

func (s *sdkSlot) set(sdk SDK) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sdk = sdk
}

func (s *sdkSlot) lookup() (SDK, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sdk, s.sdk != nil
}

type alerts struct {
	mu       sync.Mutex
	messages []string
}

func (a *alerts) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *alerts) all() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}
