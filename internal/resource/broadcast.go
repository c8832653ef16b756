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

type CreateBroadcastRequest struct {
	Name      string   `json:"name"`
	SegmentID string   `json:"segment_id"`
	From      string   `json:"from"`
	Subject   string   `json:"subject"`
	HTML      string   `json:"html,omitempty"`
	Text      string   `json:"text,omitempty"`
	ReplyTo   []string `json:"reply_to,omitempty"`
}

type UpdateBroadcastRequest struct {
	Name      *string  `json:"name,omitempty"`
	SegmentID *string  `json:"segment_id,omitempty"`
	From      *string  `json:"from,omitempty"`
	Subject   *string  `json:"subject,omitempty"`
	HTML      *string  `json:"html,omitempty"`
	Text      *string  `json:"text,omitempty"`
	ReplyTo   []string `json:"reply_to,omitempty"`
}

// Broadcast is a message addressed to every contact of a segment.
type Broadcast struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	SegmentID   string `json:"segment_id,omitempty"`
	ScheduledAt string `json:"scheduled_at,omitempty"`
	SentAt      string `json:"sent_at,omitempty"`
}

type ListBroadcastsResponse = ListEnvelope[Broadcast]
