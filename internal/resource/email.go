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

// SendEmailRequest is the payload of a single send, and one element of a
// batch send.
type SendEmailRequest struct {
	From        string            `json:"from"`
	To          []string          `json:"to"`
	Subject     string            `json:"subject"`
	HTML        string            `json:"html,omitempty"`
	Text        string            `json:"text,omitempty"`
	Cc          []string          `json:"cc,omitempty"`
	Bcc         []string          `json:"bcc,omitempty"`
	ReplyTo     []string          `json:"reply_to,omitempty"`
	ScheduledAt string            `json:"scheduled_at,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Tags        []Tag             `json:"tags,omitempty"`
}

// Tag is a name/value pair attached to a sent email.
type Tag struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// SendEmailResponse carries the identifier assigned to a sent (or
// rescheduled) email.
type SendEmailResponse struct {
	ID string `json:"id"`
}

// SendBatchResponse is returned by a batch send.  Errors lists the
// entries the server rejected, by position in the submitted array.
type SendBatchResponse struct {
	Data   []SendEmailResponse `json:"data"`
	Errors []BatchError        `json:"errors,omitempty"`
}

// BatchError reports one rejected entry of a batch send.
type BatchError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// UpdateEmailRequest reschedules a scheduled email.
type UpdateEmailRequest struct {
	ScheduledAt string `json:"scheduled_at"`
}

// Email is a sent email as reported by the server.
type Email struct {
	ID          string   `json:"id"`
	Object      string   `json:"object,omitempty"`
	From        string   `json:"from"`
	To          []string `json:"to"`
	Subject     string   `json:"subject"`
	HTML        string   `json:"html,omitempty"`
	Text        string   `json:"text,omitempty"`
	Cc          []string `json:"cc,omitempty"`
	Bcc         []string `json:"bcc,omitempty"`
	ReplyTo     []string `json:"reply_to,omitempty"`
	CreatedAt   string   `json:"created_at"`
	ScheduledAt string   `json:"scheduled_at,omitempty"`
	LastEvent   string   `json:"last_event"`
}

type ListEmailsResponse = ListEnvelope[Email]

// Attachment describes a file attached to a sent email.
type Attachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type ListAttachmentsResponse = ListEnvelope[Attachment]
