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

// Package resource defines the wire shapes exchanged with the email API.
//
// Every resource kind has a create request, an optional update request, a
// record mirroring the server's JSON, and a list envelope. Optional request
// fields are tagged omitempty so that an unset field never reaches the
// server, not even as null. Records are decoded from exactly one response
// body.
package resource

// ListEnvelope is the common shape of every list response.  Records are
// kept in the order the server returned them.
type ListEnvelope[T any] struct {
	Data []T `json:"data"`
}

// Bool returns a pointer to b.  Optional booleans are pointers so that an
// explicit false is still sent.
func Bool(b bool) *bool {
	return &b
}

// String returns a pointer to s, for optional fields of update requests.
func String(s string) *string {
	return &s
}
