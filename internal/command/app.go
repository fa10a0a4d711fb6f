// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/pyclean/internal/config"
	"github.com/staranto/pyclean/internal/meta"
	"github.com/staranto/pyclean/internal/version"
)

// InitApp builds the root command. anchor is the directory holding the
// running executable; the cache is always resolved against it.
func InitApp(ctx context.Context, args []string, anchor string) (*cli.Command, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no config loaded: %v", err)
	} else {
		log.Debugf("config loaded from %s", cfg.Source)
	}

	meta := meta.Meta{
		Args:   args,
		Config: cfg,
		Anchor: anchor,
	}

	app := &cli.Command{
		Name:    "pyclean",
		Usage:   "remove the __pycache__ directory next to this program",
		Version: version.Version,
		Metadata: map[string]any{
			"meta": meta,
		},
		// Arguments are accepted and ignored; nothing is recognized.
		SkipFlagParsing: true,
		HideHelp:        true,
		HideVersion:     true,
		Action:          CleanCommandAction,
	}

	return app, nil
}
