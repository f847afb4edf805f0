// Command create-session creates a Frisbii charge checkout session for a
// demo order and prints the session id to paste into the embedded checkout
// page.
//
// Usage:
//
//	create-session YOUR_PRIVATE_API_KEY [CONFIGURATION_HANDLE]
//	FRISBII_API_KEY=priv_xxx [FRISBII_CONFIGURATION_HANDLE=handle] create-session
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/applyagency/frisbii"
	"github.com/applyagency/frisbii/internal/config"
	"github.com/applyagency/frisbii/internal/logging"
)

const usage = `Usage: create-session YOUR_PRIVATE_API_KEY [CONFIGURATION_HANDLE]
Or: FRISBII_API_KEY=priv_xxx [FRISBII_CONFIGURATION_HANDLE=handle] create-session

Get your API key from: https://app.frisbii.com > Developers > API Credentials

Configuration Handle:
  - Optional. Specify which checkout configuration to use
  - Find it in: Configurations > Checkout management > Checkout
  - If omitted, uses the default configuration
`

const troubleshooting = `
Make sure:
1. Your API key is correct (starts with priv_)
2. You have the required permissions
3. Your network allows outbound requests
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			fmt.Fprintln(stderr, "Error: Private API key required")
			fmt.Fprint(stderr, usage)
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	logger := logging.New(stderr, cfg.LogLevel)
	defer logging.Sync(logger)

	client, err := frisbii.NewClient(cfg.APIKey,
		frisbii.WithBaseURL(cfg.APIURL),
		frisbii.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create checkout session: %v\n", err)
		return 1
	}

	req := frisbii.ChargeSessionRequest{
		Order:         frisbii.DemoOrder(time.Now()),
		Configuration: cfg.ConfigurationHandle,
	}
	logger.Debug("charge session request prepared", zap.String("order_handle", req.Order.Handle))

	session, err := client.CreateChargeSession(ctx, req)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to create checkout session: %v\n", err)
		fmt.Fprint(stderr, troubleshooting)
		return 1
	}

	fmt.Fprintln(stdout, "\n✅ Checkout session created successfully!")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Session ID:", session.ID)
	fmt.Fprintln(stdout, "Session URL:", session.URL)
	if cfg.ConfigurationHandle != "" {
		fmt.Fprintln(stdout, "Configuration:", cfg.ConfigurationHandle)
	} else {
		fmt.Fprintln(stdout, "Configuration: default (no custom configuration specified)")
	}
	fmt.Fprintln(stdout, "\nCopy the Session ID and paste it into the demo app.")
	return 0
}
