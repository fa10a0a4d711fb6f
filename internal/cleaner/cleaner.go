// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cleaner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/apex/log"
	"github.com/bmatcuk/doublestar/v4"

	"github.com/staranto/pyclean/internal/cacheutil"
)

// Outcome is what happened to a single target.
type Outcome int

const (
	NotFound Outcome = iota
	Removed
	Failed
)

func (o Outcome) String() string {
	switch o {
	case NotFound:
		return "not-found"
	case Removed:
		return "removed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is the outcome of one removal attempt. Err is only set when
// Outcome is Failed.
type Result struct {
	Outcome Outcome
	Path    string
	Err     error
}

// String renders the line reported to the user.
func (r Result) String() string {
	switch r.Outcome {
	case Removed:
		return "Removed " + r.Path
	case Failed:
		return fmt.Sprintf("Failed to remove %s %v", r.Path, r.Err)
	default:
		return cacheutil.DirName + " not found; nothing to remove"
	}
}

// DefaultPatterns match stray compiled files left beside their sources.
var DefaultPatterns = []string{"*.pyc", "*.pyo"}

// Cleaner deletes bytecode caches. Remover deletes the cache tree and
// Unlinker deletes single sibling files; both are replaceable so failures
// can be simulated.
type Cleaner struct {
	Remover  func(string) error
	Unlinker func(string) error
}

// New returns a Cleaner backed by RemoveTree and os.Remove.
func New() *Cleaner {
	return &Cleaner{Remover: RemoveTree, Unlinker: os.Remove}
}

// RemoveTree deletes path and everything beneath it. path itself must be a
// real directory: a symlink or any other non-directory is refused and left
// in place.
func RemoveTree(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		return &fs.PathError{Op: "remove", Path: path, Err: errors.New("cannot remove a symbolic link")}
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "remove", Path: path, Err: syscall.ENOTDIR}
	}
	return os.RemoveAll(path)
}

func (c *Cleaner) removeTree(path string) error {
	if c == nil || c.Remover == nil {
		return RemoveTree(path)
	}
	return c.Remover(path)
}

func (c *Cleaner) unlink(path string) error {
	if c == nil || c.Unlinker == nil {
		return os.Remove(path)
	}
	return c.Unlinker(path)
}

// measure is swapped out in tests.
var measure = cacheutil.Measure

func debugEnabled() bool {
	l, ok := log.Log.(*log.Logger)
	return ok && l.Level <= log.DebugLevel
}

// RemoveCache deletes dir and everything beneath it. A missing dir, or a
// non-directory in its place, is reported as NotFound and left untouched. A
// symlink to a directory, or a dir that stops being one before the delete,
// is reported as Failed. Failures are returned in the Result, never as an
// error.
func (c *Cleaner) RemoveCache(dir string) Result {
	if !cacheutil.IsDir(dir) {
		log.Debugf("%s is not a directory", dir)
		return Result{Outcome: NotFound, Path: dir}
	}

	if debugEnabled() {
		if stats, err := measure(dir); err == nil {
			log.WithField("size", stats.String()).Debugf("removing %s", dir)
		}
	}

	if err := c.removeTree(dir); err != nil {
		log.WithError(err).Debugf("failed to remove %s", dir)
		return Result{Outcome: Failed, Path: dir, Err: err}
	}
	return Result{Outcome: Removed, Path: dir}
}

// SweepSiblings removes regular files directly inside root that match any
// of patterns. Patterns may not reach into subdirectories. Results come back
// sorted by path; no matches means no results.
func (c *Cleaner) SweepSiblings(root string, patterns []string) []Result {
	fsys := os.DirFS(root)

	seen := map[string]struct{}{}
	var matched []string
	for _, pattern := range patterns {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if strings.ContainsAny(pattern, `/\`) || strings.Contains(pattern, "**") {
			log.Warnf("ignoring pattern %q: only files directly in %s are swept", pattern, root)
			continue
		}
		if !doublestar.ValidatePattern(pattern) {
			log.Warnf("ignoring invalid pattern %q", pattern)
			continue
		}
		ms, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			log.WithError(err).Warnf("failed to match pattern %q", pattern)
			continue
		}
		for _, m := range ms {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			matched = append(matched, m)
		}
	}
	sort.Strings(matched)

	var results []Result
	for _, rel := range matched {
		info, err := fs.Stat(fsys, rel)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := c.unlink(full); err != nil {
			log.WithError(err).Warnf("failed to remove %s", full)
			results = append(results, Result{Outcome: Failed, Path: full, Err: err})
			continue
		}
		log.Debugf("removed %s", full)
		results = append(results, Result{Outcome: Removed, Path: full})
	}
	return results
}
