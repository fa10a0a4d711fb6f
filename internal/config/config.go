// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// FileName is the config file searched for in the standard locations.
const FileName = "pyclean.yaml"

type Type struct {
	Source string
	Data   map[string]interface{}
}

// Load reads the config file named by PYCLEAN_CFG or found in the standard
// locations.
func Load() (Type, error) {
	path, err := getConfigPath()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Type{
		Source: path,
		Data:   data}, nil
}

// get traverses the map using a dotted key path
func (cfg Type) get(key string) (any, error) {
	var current interface{} = cfg.Data
	for _, k := range strings.Split(key, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value found at %s", key)
		}
		current, ok = m[k]
		if !ok {
			return nil, fmt.Errorf("no value found at %s", key)
		}
	}
	return current, nil
}

func (cfg Type) GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, errors.New("value is not a bool")
	}

	return b, nil
}

// GetStringSlice accepts either a YAML sequence of strings or a single
// string, which is returned as a one element slice.
func (cfg Type) GetStringSlice(key string, defaultValue ...string) ([]string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) > 0 {
			return defaultValue, nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case string:
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("value at %s contains a non-string item", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("value is not a string list")
	}
}

func getConfigPath() (string, error) {
	if p, ok := os.LookupEnv("PYCLEAN_CFG"); ok && p != "" {
		fileInfo, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("config file not found: %s", p)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("PYCLEAN_CFG points to a directory: %s", p)
		}
		return p, nil
	}

	var candidates []string = []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", fmt.Errorf("no config file found in standard locations")
}
