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

// Package tracehttp dumps HTTP traffic for debugging.
package tracehttp

import (
	"net/http"
	"net/http/httputil"
	"regexp"

	"go.uber.org/zap"
)

// traceTransport is an http.RoundTripper that logs a dump of the request
// and response while delegating the real work to another
// http.RoundTripper.
type traceTransport struct {
	delegate http.RoundTripper
	log      *zap.Logger
}

var authHeader = regexp.MustCompile(`(?mi)^(Authorization:[ \t]*)(\S+[ \t]+)?\S[^\r\n]*`)

// redact masks credentials in an HTTP dump.
func redact(dump []byte) string {
	return authHeader.ReplaceAllString(string(dump), "${1}${2}[REDACTED]")
}

// RoundTrip logs a dump of the request and response while delegating the
// round trip to the delegate.  Dumps that fail are skipped; they never
// fail the request.
func (t *traceTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if dump, err := httputil.DumpRequestOut(req, true); err == nil {
		t.log.Debug("http request", zap.String("dump", redact(dump)))
	}
	resp, err := t.delegate.RoundTrip(req)
	if err != nil {
		t.log.Debug("http transport error", zap.Error(err))
		return resp, err
	}
	if dump, err := httputil.DumpResponse(resp, true); err == nil {
		t.log.Debug("http response", zap.String("dump", redact(dump)))
	}
	return resp, nil
}

// Wrap returns a RoundTripper tracing every round trip of d to log.  A
// nil d means http.DefaultTransport.
func Wrap(d http.RoundTripper, log *zap.Logger) http.RoundTripper {
	if d == nil {
		d = http.DefaultTransport
	}
	return &traceTransport{delegate: d, log: log}
}
