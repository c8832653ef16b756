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

import "encoding/json"

// ReceivedEmail is an inbound message accepted by one of the account's
// receiving domains.  List responses only fill the summary fields.
type ReceivedEmail struct {
	ID        string   `json:"id"`
	From      string   `json:"from"`
	To        []string `json:"to"`
	Subject   string   `json:"subject"`
	CreatedAt string   `json:"created_at"`
	Cc        []string `json:"cc,omitempty"`
	Bcc       []string `json:"bcc,omitempty"`
	ReplyTo   []string `json:"reply_to,omitempty"`
	HTML      string   `json:"html,omitempty"`
	Text      string   `json:"text,omitempty"`
	MessageID string   `json:"message_id,omitempty"`

	// Raw is the body the record was decoded from.  Fields not modelled
	// above, such as headers and attachments, are re-encoded from it.
	Raw json.RawMessage `json:"-"`
}

func (e *ReceivedEmail) UnmarshalJSON(b []byte) error {
	type plain ReceivedEmail
	if err := json.Unmarshal(b, (*plain)(e)); err != nil {
		return err
	}
	e.Raw = append(json.RawMessage(nil), b...)
	return nil
}

func (e ReceivedEmail) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	type plain ReceivedEmail
	return json.Marshal(plain(e))
}

type ListReceivedEmailsResponse = ListEnvelope[ReceivedEmail]

type ReceivedAttachment struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

type ListReceivedAttachmentsResponse = ListEnvelope[ReceivedAttachment]
