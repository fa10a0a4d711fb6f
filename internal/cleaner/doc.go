// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

// Package cleaner removes a bytecode cache directory and, on request, stray
// compiled files beside it. Every attempt yields a Result; filesystem errors
// are carried in the Result rather than returned.
package cleaner
