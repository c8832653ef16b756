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

// CreateTopicRequest creates a subscription topic.  DefaultSubscription
// is "opt_in" or "opt_out".
type CreateTopicRequest struct {
	Name                string `json:"name"`
	DefaultSubscription string `json:"default_subscription"`
}

type UpdateTopicRequest struct {
	Name *string `json:"name,omitempty"`
}

type Topic struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	DefaultSubscription string `json:"default_subscription,omitempty"`
	CreatedAt           string `json:"created_at"`
}

type ListTopicsResponse = ListEnvelope[Topic]
