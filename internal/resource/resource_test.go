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

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func marshalKeys(t *testing.T, v interface{}) map[string]json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("json.Marshal(%#v) = %v", v, err)
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("json.Unmarshal(%s) = %v", b, err)
	}
	return m
}

func keys(m map[string]json.RawMessage) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

func TestAbsentOptionalsAreOmitted(t *testing.T) {
	cases := []struct {
		name string
		req  interface{}
		want []string
	}{
		{"domain", CreateDomainRequest{Name: "example.com"}, []string{"name"}},
		{"email", SendEmailRequest{From: "a@example.com", To: []string{"b@example.com"}, Subject: "hi"},
			[]string{"from", "to", "subject"}},
		{"contact", CreateContactRequest{Email: "c@example.com"}, []string{"email"}},
		{"contact update", UpdateContactRequest{}, nil},
		{"contact update false", UpdateContactRequest{Unsubscribed: Bool(false)}, []string{"unsubscribed"}},
		{"template update", UpdateTemplateRequest{Name: String("welcome")}, []string{"name"}},
		{"topic update", UpdateTopicRequest{}, nil},
		{"broadcast", CreateBroadcastRequest{Name: "n", SegmentID: "seg_1", From: "f", Subject: "s"},
			[]string{"name", "segment_id", "from", "subject"}},
		{"broadcast update", UpdateBroadcastRequest{Subject: String("s")}, []string{"subject"}},
		{"api key", CreateAPIKeyRequest{Name: "ci"}, []string{"name"}},
		{"contact property", CreateContactPropertyRequest{Key: "plan", Type: "string"}, []string{"key", "type"}},
		{"contact property update", UpdateContactPropertyRequest{}, nil},
	}
	for _, tc := range cases {
		got := keys(marshalKeys(t, tc.req))
		want := make(map[string]bool)
		for _, k := range tc.want {
			want[k] = true
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%s: serialized keys mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestCreateDomainRequestBody(t *testing.T) {
	b, err := json.Marshal(CreateDomainRequest{Name: "example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), `{"name":"example.com"}`; got != want {
		t.Errorf("json.Marshal() = %s, want %s", got, want)
	}
}

func TestUnsubscribedFalseIsSent(t *testing.T) {
	m := marshalKeys(t, CreateContactRequest{Email: "c@example.com", Unsubscribed: Bool(false)})
	if got := string(m["unsubscribed"]); got != "false" {
		t.Errorf("unsubscribed = %q, want %q", got, "false")
	}
}

// Encoding a request and decoding an echo of it as the record type keeps
// every field the request set.
func TestRequestRecordRoundTrip(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		req := SendEmailRequest{
			From:        "a@example.com",
			To:          []string{"b@example.com", "c@example.com"},
			Subject:     "hello",
			HTML:        "<p>hi</p>",
			Text:        "hi",
			Cc:          []string{"d@example.com"},
			Bcc:         []string{"e@example.com"},
			ReplyTo:     []string{"f@example.com"},
			ScheduledAt: "2024-08-05T11:52:01.858Z",
		}
		var got Email
		echo(t, req, &got)
		want := Email{
			From: req.From, To: req.To, Subject: req.Subject, HTML: req.HTML, Text: req.Text,
			Cc: req.Cc, Bcc: req.Bcc, ReplyTo: req.ReplyTo, ScheduledAt: req.ScheduledAt,
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("contact", func(t *testing.T) {
		req := CreateContactRequest{Email: "c@example.com", FirstName: "Ada", LastName: "Lovelace", Unsubscribed: Bool(true)}
		var got Contact
		echo(t, req, &got)
		want := Contact{Email: "c@example.com", FirstName: "Ada", LastName: "Lovelace", Unsubscribed: true}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("broadcast", func(t *testing.T) {
		req := CreateBroadcastRequest{Name: "launch", SegmentID: "seg_1", From: "a@example.com", Subject: "s"}
		var got Broadcast
		echo(t, req, &got)
		want := Broadcast{Name: "launch", SegmentID: "seg_1"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("contact property", func(t *testing.T) {
		req := CreateContactPropertyRequest{Key: "plan", Type: "string", FallbackValue: "free"}
		var got ContactProperty
		echo(t, req, &got)
		want := ContactProperty{Key: "plan", Type: "string", FallbackValue: "free"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	})
}

func echo(t *testing.T, req, record interface{}) {
	t.Helper()
	b, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("json.Marshal(%#v) = %v", req, err)
	}
	if err := json.Unmarshal(b, record); err != nil {
		t.Fatalf("json.Unmarshal(%s) = %v", b, err)
	}
}

func TestDomainRecordDecode(t *testing.T) {
	body := `{"id":"dom_1","name":"example.com","created_at":"2024-01-01","status":"not_verified","region":"us-east-1"}`
	var got Domain
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	want := Domain{ID: "dom_1", Name: "example.com", CreatedAt: "2024-01-01", Status: "not_verified", Region: "us-east-1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("decode mismatch (-want +got):\n%s", diff)
	}
}

func TestListEnvelopeKeepsOrder(t *testing.T) {
	body := `{"data":[{"id":"seg_3"},{"id":"seg_1"},{"id":"seg_2"}]}`
	var got ListSegmentsResponse
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	var ids []string
	for _, s := range got.Data {
		ids = append(ids, s.ID)
	}
	if diff := cmp.Diff([]string{"seg_3", "seg_1", "seg_2"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestReceivedEmailKeepsUnmodelledFields(t *testing.T) {
	body := `{"id":"rcv_1","from":"a@example.com","headers":{"X-Spam":"no"},"attachments":[{"id":"att_1"}]}`
	var got ReceivedEmail
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatal(err)
	}
	if got.ID != "rcv_1" || got.From != "a@example.com" {
		t.Errorf("decoded %+v, want id and from set", got)
	}
	m := marshalKeys(t, got)
	if diff := cmp.Diff(`{"X-Spam":"no"}`, string(m["headers"])); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
	if _, ok := m["attachments"]; !ok {
		t.Errorf("re-encoded %v, want attachments", keys(m))
	}

	// The envelope re-encodes each record from its own body.
	var list ListReceivedEmailsResponse
	if err := json.Unmarshal([]byte(`{"data":[`+body+`]}`), &list); err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(list)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"data":[` + body + `]}`; string(b) != want {
		t.Errorf("json.Marshal() = %s, want %s", b, want)
	}
}

func TestReceivedEmailWithoutBody(t *testing.T) {
	m := marshalKeys(t, ReceivedEmail{ID: "rcv_1"})
	if diff := cmp.Diff(map[string]bool{"id": true, "from": true, "to": true, "subject": true, "created_at": true}, keys(m)); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
}
