// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

// App runs single CLI commands against the server.
type App struct {
	adapter   adapter.ServerAdapter
	out       io.Writer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNoServerAdapter
	}
	if out == nil {
		return nil, ErrNoOutput
	}

	return &App{
		adapter:   serverAdapter,
		out:       out,
		buildInfo: models.NewAppBuildInfo("", "", ""),
		logger:    logger,
	}, nil
}

// SetBuildInfo records the client build, printed by the "version" command
// next to the server's.
func (a *App) SetBuildInfo(version, date, commit string) {
	a.buildInfo = models.NewAppBuildInfo(version, date, commit)
}

// Run looks up args[0] among the known commands and executes it with the
// remaining operands.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	name, operands := args[0], args[1:]
	cmd, ok := findCommand(name)
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, name)
	}
	if len(operands) < cmd.minArgs || (cmd.maxArgs >= 0 && len(operands) > cmd.maxArgs) {
		return fmt.Errorf("%w: %s %s", ErrUsage, cmd.name, cmd.args)
	}

	a.logger.Debug().Str("command", name).Int("operands", len(operands)).Msg("running command")

	result, err := cmd.run(ctx, a, operands)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if result == nil {
		return nil
	}

	return a.print(result)
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
