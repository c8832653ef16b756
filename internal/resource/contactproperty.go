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

// CreateContactPropertyRequest declares a custom contact attribute.  Type
// is "string" or "number"; FallbackValue may be either.
type CreateContactPropertyRequest struct {
	Key           string      `json:"key"`
	Type          string      `json:"type"`
	FallbackValue interface{} `json:"fallback_value,omitempty"`
}

type UpdateContactPropertyRequest struct {
	FallbackValue interface{} `json:"fallback_value,omitempty"`
}

type ContactProperty struct {
	ID            string      `json:"id"`
	Key           string      `json:"key"`
	Type          string      `json:"type"`
	FallbackValue interface{} `json:"fallback_value,omitempty"`
	CreatedAt     string      `json:"created_at"`
}

type ListContactPropertiesResponse = ListEnvelope[ContactProperty]
