// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config resolves the API credential and base URL.
//
// The credential comes from the RESEND_API_KEY environment variable,
// which may be set by a .env file in the working directory, and otherwise
// from the api_key field of a JSON config file.  The base URL resolves the
// same way through RESEND_BASE_URL and base_url.
package config

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/matta/resend-cli/internal/homedir"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	EnvAPIKey  = "RESEND_API_KEY"
	EnvBaseURL = "RESEND_BASE_URL"

	keyAPIKey  = "api_key"
	keyBaseURL = "base_url"

	dirFileMode    = 0700
	configFileMode = 0600
)

// ErrNoAPIKey is returned by Load when no credential is configured.
var ErrNoAPIKey = errors.New("RESEND_API_KEY environment variable not set and config file not found. " +
	"Use 'resend config --api-key <KEY>' to set it")

// Config holds the settings every API call needs.
type Config struct {
	APIKey  string
	BaseURL string
}

// DefaultPath returns ~/.resend-cli/config.json.
func DefaultPath() (string, error) {
	home, err := homedir.Get()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".resend-cli", "config.json"), nil
}

// Load resolves the configuration.  The environment wins over the file
// at path; a missing file is not an error, a missing credential is.
func Load(path string) (*Config, error) {
	// .env is optional and never overrides variables already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(err, "unable to read .env")
	}

	v := viper.New()
	v.SetConfigType("json")
	v.SetDefault(keyBaseURL, resend.DefaultBaseURL)
	if err := v.BindEnv(keyAPIKey, EnvAPIKey); err != nil {
		return nil, errors.Wrap(err, "unable to bind environment")
	}
	if err := v.BindEnv(keyBaseURL, EnvBaseURL); err != nil {
		return nil, errors.Wrap(err, "unable to bind environment")
	}

	if path != "" {
		if err := readFile(v, path); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		APIKey:  v.GetString(keyAPIKey),
		BaseURL: v.GetString(keyBaseURL),
	}
	if cfg.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	return cfg, nil
}

func readFile(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "unable to read config file %s", path)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "unable to read config file %s", path)
	}
	return nil
}

// Save stores apiKey in the config file at path, creating its directory
// as needed.  Other fields already in the file are kept.
func Save(path, apiKey string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirFileMode); err != nil {
		return errors.Wrapf(err, "unable to create config directory for %s", path)
	}

	// No environment binding here, or the environment would leak into
	// the file.
	v := viper.New()
	v.SetConfigType("json")
	v.SetConfigPermissions(configFileMode)
	if err := readFile(v, path); err != nil {
		return err
	}
	v.Set(keyAPIKey, apiKey)
	if err := v.WriteConfigAs(path); err != nil {
		return errors.Wrapf(err, "unable to write config file %s", path)
	}
	if err := os.Chmod(path, configFileMode); err != nil {
		return errors.Wrapf(err, "unable to set permissions on %s", path)
	}
	return nil
}
