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
	"net/http"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: http.StatusNotFound, Body: `{"message":"not found"}`}
	want := `API error (404 Not Found): {"message":"not found"}`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAPIErrorIs(t *testing.T) {
	cases := []struct {
		status int
		target error
		want   bool
	}{
		{http.StatusNotFound, ErrNotFound, true},
		{http.StatusNotFound, ErrUnauthorized, false},
		{http.StatusUnauthorized, ErrUnauthorized, true},
		{http.StatusForbidden, ErrUnauthorized, true},
		{http.StatusTooManyRequests, ErrRateLimited, true},
		{http.StatusInternalServerError, ErrNotFound, false},
	}
	for _, tc := range cases {
		err := errors.Wrap(&APIError{StatusCode: tc.status}, "unable to get domain")
		if got := errors.Is(err, tc.target); got != tc.want {
			t.Errorf("errors.Is(%d, %v) = %v, want %v", tc.status, tc.target, got, tc.want)
		}
	}
}

func TestDecodeErrorCarriesCause(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := &DecodeError{Err: cause, Body: `{"id":`}
	if errors.Cause(err) != cause {
		t.Errorf("errors.Cause() = %v, want %v", errors.Cause(err), cause)
	}
	if !strings.Contains(err.Error(), `{"id":`) {
		t.Errorf("Error() = %q, want it to include the body", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(%v, cause) = false, want true", err)
	}
}
