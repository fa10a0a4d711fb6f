// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// pyclean removes the __pycache__ directory (and, when configured, stray
// compiled-file siblings) that lives next to the pyclean executable. It wires
// logging, config and the CLI, and serves as the entry point.
package main
