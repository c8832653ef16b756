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

/*
Package resendhttp builds the HTTP client used to talk to the email API.

Every request is authenticated with the account's API key sent as an
OAuth 2.0 style bearer token ("Authorization: Bearer <key>").  API keys do
not expire and are never refreshed, so the token source is static.

No timeout is set on the returned client; a request runs until it
completes or the caller's context is cancelled.
*/
package resendhttp

import (
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// ErrNoAPIKey is returned by New when no credential was supplied.
var ErrNoAPIKey = errors.New("API key is empty")

// New returns an HTTP client that attaches apiKey as a bearer token to
// every request before handing it to base.  A nil base means
// http.DefaultTransport.
func New(apiKey string, base http.RoundTripper) (*http.Client, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	src := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: apiKey,
		TokenType:   "Bearer",
	})
	trans := &oauth2.Transport{
		Source: src,
		Base:   base,
	}
	return &http.Client{Transport: trans}, nil
}
