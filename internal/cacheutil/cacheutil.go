// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cacheutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
)

// DirName is the bytecode cache directory the interpreter writes next to
// the sources it compiles.
const DirName = "__pycache__"

// Stats summarizes what lives beneath a cache directory.
type Stats struct {
	Files int
	Bytes int64
}

// String renders s for log output, e.g. "3 files, 4.1 kB".
func (s Stats) String() string {
	return fmt.Sprintf("%d files, %s", s.Files, humanize.Bytes(uint64(s.Bytes))) //nolint:gosec
}

// executable is swapped out in tests.
var executable = os.Executable

// Anchor resolves the directory holding the running program. Symlinks are
// resolved so a linked binary still cleans next to its real location. The
// result never depends on the working directory.
func Anchor() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return anchorFrom(exe)
}

func anchorFrom(exe string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	} else {
		log.WithError(err).Debugf("could not resolve symlinks for %s", exe)
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("failed to make %s absolute: %w", exe, err)
	}
	return filepath.Dir(abs), nil
}

// Dir returns the cache directory path for the given anchor.
func Dir(anchor string) string {
	return filepath.Join(anchor, DirName)
}

// IsDir reports whether a directory exists at path. Anything else there,
// including a regular file with the same name, counts as absent.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Measure walks path and totals regular files and their sizes. Entries that
// cannot be read are skipped.
func Measure(path string) (Stats, error) {
	var s Stats
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				return err
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		s.Files++
		s.Bytes += info.Size()
		return nil
	})
	if err != nil {
		return s, fmt.Errorf("failed to measure %s: %w", path, err)
	}
	return s, nil
}
