package embedded

// Script is a script element that was inserted into, or found in, the page.
type Script interface {
	// Done is closed once the browser settled the load, successfully or not.
	Done() <-chan struct{}
	// Err reports the load failure. It is only meaningful after Done is closed.
	Err() error
}

// Document is the page the SDK script lives in.
type Document interface {
	// FindScript returns a script whose src contains substr.
	FindScript(substr string) (Script, bool)
	// AppendScript inserts an asynchronously loaded script element.
	AppendScript(src string) Script
}

// Container is the page element that hosts the render target.
type Container interface {
	// Clear removes every child.
	Clear()
	// AppendChild inserts an empty child element with the given id.
	AppendChild(id string)
}

// Notifier shows a blocking message to the end user.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Alert implements Notifier.
func (f NotifierFunc) Alert(message string) {
	f(message)
}
