// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// loadTestConfig points PYCLEAN_CFG at a testdata file and loads it.
func loadTestConfig(t *testing.T, testdataFile string) Type {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	assert.NoError(t, err, "failed to get absolute path for test config")
	t.Setenv("PYCLEAN_CFG", absPath)

	cfg, err := Load()
	assert.NoError(t, err)
	return cfg
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, true, cfg.Data["siblings"])
				assert.Equal(t, "pyclean", cfg.Data["name"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				sweep, ok := cfg.Data["sweep"].(map[string]interface{})
				assert.True(t, ok, "sweep should be a map")
				assert.Equal(t, "*.pyc", sweep["patterns"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				// Empty YAML unmarshals to nil map, which is acceptable
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
		{
			name:     "malformed yaml",
			testFile: "broken.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			absPath, err := filepath.Abs(filepath.Join("testdata", tt.testFile))
			assert.NoError(t, err)
			t.Setenv("PYCLEAN_CFG", absPath)

			cfg, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("PYCLEAN_CFG", "/nonexistent/path/pyclean.yaml")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_PYCLEAN_CFG_IsDirectory(t *testing.T) {
	t.Setenv("PYCLEAN_CFG", "testdata")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestLoad_StandardLocations(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("siblings: true\n"), 0o600))

	t.Setenv("PYCLEAN_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", dir)

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), cfg.Source)
	assert.Equal(t, true, cfg.Data["siblings"])
}

func TestLoad_NothingInStandardLocations(t *testing.T) {
	t.Setenv("PYCLEAN_CFG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("APPDATA", "")
	t.Setenv("HOME", t.TempDir())

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no config file found")
}

func TestGetBool(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []bool
		want         bool
		wantErr      bool
	}{
		{
			name:     "top level bool",
			testFile: "simple.yaml",
			key:      "siblings",
			want:     true,
		},
		{
			name:     "nested bool",
			testFile: "nested.yaml",
			key:      "local.siblings",
			want:     false,
		},
		{
			name:         "missing key with default",
			testFile:     "empty.yaml",
			key:          "siblings",
			defaultValue: []bool{false},
			want:         false,
		},
		{
			name:     "missing key without default",
			testFile: "empty.yaml",
			key:      "siblings",
			wantErr:  true,
		},
		{
			name:     "path through a scalar",
			testFile: "simple.yaml",
			key:      "name.siblings",
			wantErr:  true,
		},
		{
			name:     "non-bool value",
			testFile: "simple.yaml",
			key:      "name",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, tt.testFile)

			got, err := cfg.GetBool(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         []string
		wantErr      bool
	}{
		{
			name:     "sequence",
			testFile: "simple.yaml",
			key:      "patterns",
			want:     []string{"*.pyc", "*.pyo"},
		},
		{
			name:     "single string",
			testFile: "nested.yaml",
			key:      "sweep.patterns",
			want:     []string{"*.pyc"},
		},
		{
			name:         "missing key with default",
			testFile:     "empty.yaml",
			key:          "patterns",
			defaultValue: []string{"*.pyc", "*.pyo"},
			want:         []string{"*.pyc", "*.pyo"},
		},
		{
			name:     "non-string item",
			testFile: "mixed-types.yaml",
			key:      "patterns",
			wantErr:  true,
		},
		{
			name:     "wrong type",
			testFile: "mixed-types.yaml",
			key:      "enabled",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := loadTestConfig(t, tt.testFile)

			got, err := cfg.GetStringSlice(tt.key, tt.defaultValue...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestZeroType_Defaults(t *testing.T) {
	var cfg Type

	b, err := cfg.GetBool("siblings", false)
	assert.NoError(t, err)
	assert.False(t, b)

	p, err := cfg.GetStringSlice("patterns", "*.pyc", "*.pyo")
	assert.NoError(t, err)
	assert.Equal(t, []string{"*.pyc", "*.pyo"}, p)
}
