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

package resource

type CreateContactRequest struct {
	Email        string                 `json:"email"`
	FirstName    string                 `json:"first_name,omitempty"`
	LastName     string                 `json:"last_name,omitempty"`
	Unsubscribed *bool                  `json:"unsubscribed,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// UpdateContactRequest sets the fields that are present and leaves the
// others unchanged on the server.
type UpdateContactRequest struct {
	FirstName    *string                `json:"first_name,omitempty"`
	LastName     *string                `json:"last_name,omitempty"`
	Unsubscribed *bool                  `json:"unsubscribed,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

type Contact struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	CreatedAt    string `json:"created_at"`
	Unsubscribed bool   `json:"unsubscribed"`
}

type ListContactsResponse = ListEnvelope[Contact]
