// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/pyclean/internal/cacheutil"
	"github.com/staranto/pyclean/internal/cleaner"
)

// NewCleaner is the cleaner used by CleanCommandAction. Tests replace it to
// simulate filesystem failures.
var NewCleaner = cleaner.New

// CleanCommandAction removes the cache directory beside the anchor and prints
// one line describing the outcome. When the siblings setting is on, stray
// compiled files in the anchor directory are swept afterwards, one line per
// file. Removal failures are reported, never returned.
func CleanCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	if len(m.Args) > 1 {
		log.Debugf("ignoring arguments %v", m.Args[1:])
	}
	log.Debugf("anchor: %s", m.Anchor)

	c := NewCleaner()
	w := writer(cmd)

	result := c.RemoveCache(cacheutil.Dir(m.Anchor))
	fmt.Fprintln(w, result)

	siblings, err := m.Config.GetBool("siblings", false)
	if err != nil {
		log.WithError(err).Warn("ignoring siblings setting")
		return nil
	}
	if !siblings {
		return nil
	}

	patterns, err := m.Config.GetStringSlice("patterns", cleaner.DefaultPatterns...)
	if err != nil {
		log.WithError(err).Warn("ignoring patterns setting")
		patterns = cleaner.DefaultPatterns
	}
	for _, r := range c.SweepSiblings(m.Anchor, patterns) {
		fmt.Fprintln(w, r)
	}

	return nil
}
