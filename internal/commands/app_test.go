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

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/matta/resend-cli/internal/config"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serve starts a server answering every request with status and body,
// and points a fresh config file at it.
func serve(t *testing.T, status int, body string) (*Env, *http.Request, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, k := range []string{config.EnvAPIKey, config.EnvBaseURL} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	got := &http.Request{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*got = *r.Clone(context.Background())
		got.Body = io.NopCloser(bytes.NewReader(b))
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	path := filepath.Join(dir, "config.json")
	b, err := json.Marshal(map[string]string{"api_key": "re_secret", "base_url": srv.URL})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0600))

	var stdout, stderr bytes.Buffer
	return &Env{Stdout: &stdout, Stderr: &stderr, Dir: dir, ConfigPath: path}, got, &stdout, &stderr
}

func TestEndToEnd(t *testing.T) {
	env, got, stdout, _ := serve(t, http.StatusOK, `{"id":"d_1","name":"example.com","status":"verified","region":"us-east-1","created_at":"now"}`)

	err := NewApp(env).RunContext(context.Background(), []string{"resend", "-o", "json", "domains", "get", "d_1"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/domains/d_1", got.URL.Path)
	assert.Equal(t, "Bearer re_secret", got.Header.Get("Authorization"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))

	var d map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &d))
	assert.Equal(t, "verified", d["status"])
}

func TestEndToEndTraceRedactsKey(t *testing.T) {
	env, _, _, stderr := serve(t, http.StatusOK, `{"data":[]}`)

	err := NewApp(env).RunContext(context.Background(), []string{"resend", "--trace", "domains", "list", "--limit", "5"})
	require.NoError(t, err)

	assert.Contains(t, stderr.String(), "/domains?limit=5")
	assert.Contains(t, stderr.String(), "[REDACTED]")
	assert.NotContains(t, stderr.String(), "re_secret")
}

func TestEndToEndAPIError(t *testing.T) {
	env, _, stdout, _ := serve(t, http.StatusUnprocessableEntity, `{"message":"Invalid from field"}`)

	err := NewApp(env).RunContext(context.Background(), []string{"resend", "emails", "send",
		"--from", "nope", "--to", "bob@example.com", "--subject", "Hi"})

	var apiErr *resend.APIError
	require.True(t, errors.As(err, &apiErr), "err = %v", err)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "Invalid from field")
	assert.Empty(t, stdout.String())
}

func TestMissingAPIKey(t *testing.T) {
	env, _, _, _ := serve(t, http.StatusOK, `{}`)
	env.ConfigPath = filepath.Join(env.Dir, "missing.json")

	err := NewApp(env).RunContext(context.Background(), []string{"resend", "domains", "list"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrNoAPIKey))
}
