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

package resendhttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
)

func TestNewSetsBearerHeader(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("Authorization"))
	}))
	defer srv.Close()

	client, err := New("re_123", nil)
	if err != nil {
		t.Fatalf("New() = %v, want nil", err)
	}
	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL)
		if err != nil {
			t.Fatalf("Get(%q) = %v", srv.URL, err)
		}
		resp.Body.Close()
	}
	for i, h := range got {
		if h != "Bearer re_123" {
			t.Errorf("request %d: Authorization = %q, want %q", i, h, "Bearer re_123")
		}
	}
	if len(got) != 2 {
		t.Errorf("server saw %d requests, want 2", len(got))
	}
}

func TestNewRejectsEmptyKey(t *testing.T) {
	if _, err := New("", nil); !errors.Is(err, ErrNoAPIKey) {
		t.Errorf("New(\"\") = %v, want %v", err, ErrNoAPIKey)
	}
}

type recordingTransport struct {
	calls int
}

func (r *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r.calls++
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Body:       http.NoBody,
		Request:    req,
	}, nil
}

func TestNewUsesBaseTransport(t *testing.T) {
	base := &recordingTransport{}
	client, err := New("re_123", base)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := client.Get("http://example.invalid/domains")
	if err != nil {
		t.Fatalf("Get() = %v", err)
	}
	resp.Body.Close()
	if base.calls != 1 {
		t.Errorf("base transport calls = %d, want 1", base.calls)
	}
}
