//go:build js && wasm

// Command checkout-wasm wires the demo page's "open checkout" button to the
// Frisbii embedded checkout.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o web/checkout.wasm ./cmd/checkout-wasm
//	cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/
package main

import (
	"context"
	"os"
	"syscall/js"

	"go.uber.org/zap"

	"github.com/applyagency/frisbii/embedded"
	"github.com/applyagency/frisbii/embedded/jsdom"
	"github.com/applyagency/frisbii/internal/logging"
)

const (
	inputID     = "session-id"
	buttonID    = "open-checkout"
	containerID = "checkout-container"
)

func main() {
	logger := logging.New(os.Stdout, "info")
	defer logging.Sync(logger)

	doc := jsdom.NewDocument()
	container, err := doc.Container(containerID)
	if err != nil {
		logger.Fatal("checkout container", zap.Error(err))
	}
	input, err := doc.Element(inputID)
	if err != nil {
		logger.Fatal("session input", zap.Error(err))
	}
	button, err := doc.Element(buttonID)
	if err != nil {
		logger.Fatal("open button", zap.Error(err))
	}

	adapter := embedded.New(doc, container, jsdom.Lookup,
		embedded.WithNotifier(jsdom.Alerts{}),
		embedded.WithLogger(logger),
	)

	onClick := js.FuncOf(func(js.Value, []js.Value) any {
		sessionID := input.Get("value").String()
		// Open blocks on the script load, which must not happen inside a
		// JS callback.
		go func() {
			_ = adapter.Open(context.Background(), sessionID)
		}()
		return nil
	})
	defer onClick.Release()
	button.Call("addEventListener", "click", onClick)

	logger.Info("checkout demo ready")
	select {}
}
