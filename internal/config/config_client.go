// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ClientAdapter holds the settings the CLI client uses to reach the server.
type ClientAdapter struct {
	// ServerURL is the base URL of the go-notes server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Username and Password are sent as basic credentials.
	// Env: ADAPTER_USERNAME, ADAPTER_PASSWORD
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	// Token, when set, is sent as a bearer token instead of basic credentials.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`

	// Args are the positional arguments left after flag parsing: the
	// command name followed by its operands.
	Args []string
}

// Client defaults.
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultClientTimeout  = 10 * time.Second
	clientFlagSetName     = "go-notes-client"
	clientFlagUsageHeader = "usage: go-notes-client [flags] <command> [args]"
)

// GetClientConfig builds and validates the client configuration from
// environment variables overridden by flags in args.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      DefaultServerURL,
			RequestTimeout: DefaultClientTimeout,
		},
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(clientFlagSetName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Adapter.ServerURL, "s", cfg.Adapter.ServerURL, "Server base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", cfg.Adapter.RequestTimeout, "Request timeout")
	fs.StringVar(&cfg.Adapter.Username, "u", cfg.Adapter.Username, "Username")
	fs.StringVar(&cfg.Adapter.Password, "p", cfg.Adapter.Password, "Password")
	fs.StringVar(&cfg.Adapter.Token, "t", cfg.Adapter.Token, "Bearer token")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%s: %w", clientFlagUsageHeader, err)
	}
	cfg.Args = fs.Args()

	return cfg, cfg.validate()
}
