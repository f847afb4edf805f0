// Package config loads the create-session settings from positional
// arguments and FRISBII_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"

	"github.com/applyagency/frisbii"
)

const envPrefix = "FRISBII_"

// ErrMissingAPIKey is returned when neither the first argument nor
// FRISBII_API_KEY holds a private API key.
var ErrMissingAPIKey = errors.New("private API key required")

// Config holds everything the session creator needs for one run.
type Config struct {
	APIKey              string
	ConfigurationHandle string
	APIURL              string
	LogLevel            string
}

// Load layers positional arguments over the environment. args excludes the
// program name: args[0] is the API key, args[1] the configuration handle.
func Load(args []string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading environment: %s", err)
	}

	positional := map[string]interface{}{}
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		positional["api_key"] = args[0]
	}
	if len(args) > 1 && strings.TrimSpace(args[1]) != "" {
		positional["configuration_handle"] = args[1]
	}
	if err := k.Load(confmap.Provider(positional, "."), nil); err != nil {
		return nil, fmt.Errorf("error loading arguments: %s", err)
	}

	cfg := &Config{
		APIKey:              strings.TrimSpace(k.String("api_key")),
		ConfigurationHandle: k.String("configuration_handle"),
		APIURL:              strings.TrimSpace(k.String("api_url")),
		LogLevel:            k.String("log_level"),
	}
	if strings.TrimSpace(cfg.ConfigurationHandle) == "" {
		cfg.ConfigurationHandle = ""
	}
	if cfg.APIURL == "" {
		cfg.APIURL = frisbii.DefaultBaseURL
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}
