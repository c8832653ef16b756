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

package resend

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

var (
	// ErrNotFound matches an *APIError with status 404.
	ErrNotFound = errors.New("resource not found")
	// ErrUnauthorized matches an *APIError with status 401 or 403.
	ErrUnauthorized = errors.New("missing or invalid API key")
	// ErrRateLimited matches an *APIError with status 429.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError reports a response whose status is not 2xx.  Body is the
// response body exactly as received.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d %s): %s", e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Is lets errors.Is match the sentinel errors of this package.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusNotFound:
		return target == ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return target == ErrUnauthorized
	case http.StatusTooManyRequests:
		return target == ErrRateLimited
	}
	return false
}

// DecodeError reports a 2xx response whose body does not parse as the
// operation's result type.
type DecodeError struct {
	Err  error
	Body string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse response: %v. Body: %s", e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *DecodeError) Cause() error { return e.Err }

// TransportError reports a request that produced no usable response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Cause supports errors.Cause.
func (e *TransportError) Cause() error { return e.Err }
