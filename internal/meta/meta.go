// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"github.com/staranto/pyclean/internal/config"
)

// Meta are the values resolved once at startup and handed to the command.
type Meta struct {
	Args   []string
	Config config.Type
	// Anchor is the directory holding the running executable.
	Anchor string
}
