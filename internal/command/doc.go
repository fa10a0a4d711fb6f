// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package command defines the pyclean root command. It has no flags or
// subcommands; its action runs the cleaner and prints the outcome.
package command
