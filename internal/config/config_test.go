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

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/matta/resend-cli/internal/resend"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate gives the test an empty working directory and an environment
// without either variable set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{EnvAPIKey, EnvBaseURL} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return dir
}

func writeJSON(t *testing.T, path string, v interface{}) {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, b, 0600))
}

func TestLoadFromEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvAPIKey, "re_env")

	cfg, err := Load(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, "re_env", cfg.APIKey)
	assert.Equal(t, resend.DefaultBaseURL, cfg.BaseURL)
}

func TestLoadFromFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".resend-cli", "config.json")
	writeJSON(t, path, map[string]string{"api_key": "re_file", "base_url": "http://localhost:9000"})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "re_file", cfg.APIKey)
	assert.Equal(t, "http://localhost:9000", cfg.BaseURL)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")
	writeJSON(t, path, map[string]string{"api_key": "re_file", "base_url": "http://file"})
	t.Setenv(EnvAPIKey, "re_env")
	t.Setenv(EnvBaseURL, "http://env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "re_env", cfg.APIKey)
	assert.Equal(t, "http://env", cfg.BaseURL)
}

func TestLoadFromDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAPIKey+"=re_dotenv\n"), 0600))
	t.Cleanup(func() { os.Unsetenv(EnvAPIKey) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "re_dotenv", cfg.APIKey)
}

func TestLoadMalformedDotEnv(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvAPIKey, "re_env")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BAD-KEY=1\n"), 0600))

	_, err := Load(filepath.Join(dir, "config.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}

func TestMissingKey(t *testing.T) {
	dir := isolate(t)

	_, err := Load(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoAPIKey))
	assert.Contains(t, err.Error(), "resend config --api-key <KEY>")
}

func TestMalformedFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestSaveThenLoad(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, ".resend-cli", "config.json")

	require.NoError(t, Save(path, "re_saved"))

	st, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), st.Mode().Perm())
	dst, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), dst.Mode().Perm())

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "re_saved", cfg.APIKey)
}

func TestSaveKeepsOtherFields(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.json")
	writeJSON(t, path, map[string]string{"api_key": "re_old", "base_url": "http://localhost:9000"})
	t.Setenv(EnvBaseURL, "http://env")

	require.NoError(t, Save(path, "re_new"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]string
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, map[string]string{"api_key": "re_new", "base_url": "http://localhost:9000"}, got)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("HOME", "/home/ada")
	got, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/home/ada/.resend-cli/config.json", got)
}
