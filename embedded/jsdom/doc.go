// Package jsdom binds the embedded adapter to a real browser page through
// syscall/js. It is only built for GOOS=js GOARCH=wasm.
package jsdom
