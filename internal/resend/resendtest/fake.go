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

// Package resendtest provides an in-memory implementation of resend.API
// for tests of code that issues API operations.
package resendtest

import (
	"context"
	"fmt"
	"sync"

	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
)

// Call records one operation invoked on a Fake.
type Call struct {
	Op   string
	Args []interface{}
}

// Fake answers each operation from canned values keyed by operation
// name, e.g. "GetDomain".  Responses holds a pointer to the result type
// of the operation; an operation without one returns a zero result.  An
// entry in Errors takes precedence over Responses.
type Fake struct {
	Responses map[string]interface{}
	Errors    map[string]error

	mu    sync.Mutex
	calls []Call
}

var _ resend.API = (*Fake)(nil)

func New() *Fake {
	return &Fake{
		Responses: make(map[string]interface{}),
		Errors:    make(map[string]error),
	}
}

// Calls returns the operations invoked so far, oldest first.
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Ops returns the names of the operations invoked so far.
func (f *Fake) Ops() []string {
	var ops []string
	for _, c := range f.Calls() {
		ops = append(ops, c.Op)
	}
	return ops
}

func (f *Fake) record(op string, args ...interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Op: op, Args: args})
	return f.Errors[op]
}

func result[T any](f *Fake, op string, args ...interface{}) (*T, error) {
	if err := f.record(op, args...); err != nil {
		return nil, err
	}
	f.mu.Lock()
	v, ok := f.Responses[op]
	f.mu.Unlock()
	if !ok {
		return new(T), nil
	}
	r, ok := v.(*T)
	if !ok {
		panic(fmt.Sprintf("resendtest: response for %s is %T, want %T", op, v, r))
	}
	return r, nil
}

func (f *Fake) SendEmail(ctx context.Context, req resource.SendEmailRequest) (*resource.SendEmailResponse, error) {
	return result[resource.SendEmailResponse](f, "SendEmail", req)
}

func (f *Fake) SendEmailBatch(ctx context.Context, reqs []resource.SendEmailRequest) (*resource.SendBatchResponse, error) {
	return result[resource.SendBatchResponse](f, "SendEmailBatch", reqs)
}

func (f *Fake) GetEmail(ctx context.Context, id string) (*resource.Email, error) {
	return result[resource.Email](f, "GetEmail", id)
}

func (f *Fake) ListEmails(ctx context.Context, opts resend.ListOptions) (*resource.ListEmailsResponse, error) {
	return result[resource.ListEmailsResponse](f, "ListEmails", opts)
}

func (f *Fake) UpdateEmail(ctx context.Context, id string, req resource.UpdateEmailRequest) (*resource.SendEmailResponse, error) {
	return result[resource.SendEmailResponse](f, "UpdateEmail", id, req)
}

func (f *Fake) CancelEmail(ctx context.Context, id string) error {
	return f.record("CancelEmail", id)
}

func (f *Fake) ListEmailAttachments(ctx context.Context, id string) (*resource.ListAttachmentsResponse, error) {
	return result[resource.ListAttachmentsResponse](f, "ListEmailAttachments", id)
}

func (f *Fake) CreateDomain(ctx context.Context, req resource.CreateDomainRequest) (*resource.Domain, error) {
	return result[resource.Domain](f, "CreateDomain", req)
}

func (f *Fake) ListDomains(ctx context.Context, opts resend.ListOptions) (*resource.ListDomainsResponse, error) {
	return result[resource.ListDomainsResponse](f, "ListDomains", opts)
}

func (f *Fake) GetDomain(ctx context.Context, id string) (*resource.Domain, error) {
	return result[resource.Domain](f, "GetDomain", id)
}

func (f *Fake) DeleteDomain(ctx context.Context, id string) error {
	return f.record("DeleteDomain", id)
}

func (f *Fake) VerifyDomain(ctx context.Context, id string) error {
	return f.record("VerifyDomain", id)
}

func (f *Fake) CreateContact(ctx context.Context, req resource.CreateContactRequest) (*resource.Contact, error) {
	return result[resource.Contact](f, "CreateContact", req)
}

func (f *Fake) ListContacts(ctx context.Context, opts resend.ListOptions) (*resource.ListContactsResponse, error) {
	return result[resource.ListContactsResponse](f, "ListContacts", opts)
}

func (f *Fake) GetContact(ctx context.Context, id string) (*resource.Contact, error) {
	return result[resource.Contact](f, "GetContact", id)
}

func (f *Fake) UpdateContact(ctx context.Context, id string, req resource.UpdateContactRequest) (*resource.Contact, error) {
	return result[resource.Contact](f, "UpdateContact", id, req)
}

func (f *Fake) DeleteContact(ctx context.Context, id string) error {
	return f.record("DeleteContact", id)
}

func (f *Fake) AddContactToSegment(ctx context.Context, contactID, segmentID string) error {
	return f.record("AddContactToSegment", contactID, segmentID)
}

func (f *Fake) RemoveContactFromSegment(ctx context.Context, contactID, segmentID string) error {
	return f.record("RemoveContactFromSegment", contactID, segmentID)
}

func (f *Fake) CreateSegment(ctx context.Context, req resource.CreateSegmentRequest) (*resource.Segment, error) {
	return result[resource.Segment](f, "CreateSegment", req)
}

func (f *Fake) ListSegments(ctx context.Context, opts resend.ListOptions) (*resource.ListSegmentsResponse, error) {
	return result[resource.ListSegmentsResponse](f, "ListSegments", opts)
}

func (f *Fake) GetSegment(ctx context.Context, id string) (*resource.Segment, error) {
	return result[resource.Segment](f, "GetSegment", id)
}

func (f *Fake) DeleteSegment(ctx context.Context, id string) error {
	return f.record("DeleteSegment", id)
}

func (f *Fake) CreateTemplate(ctx context.Context, req resource.CreateTemplateRequest) (*resource.Template, error) {
	return result[resource.Template](f, "CreateTemplate", req)
}

func (f *Fake) ListTemplates(ctx context.Context, opts resend.ListOptions) (*resource.ListTemplatesResponse, error) {
	return result[resource.ListTemplatesResponse](f, "ListTemplates", opts)
}

func (f *Fake) GetTemplate(ctx context.Context, id string) (*resource.Template, error) {
	return result[resource.Template](f, "GetTemplate", id)
}

func (f *Fake) UpdateTemplate(ctx context.Context, id string, req resource.UpdateTemplateRequest) (*resource.Template, error) {
	return result[resource.Template](f, "UpdateTemplate", id, req)
}

func (f *Fake) DeleteTemplate(ctx context.Context, id string) error {
	return f.record("DeleteTemplate", id)
}

func (f *Fake) CreateTopic(ctx context.Context, req resource.CreateTopicRequest) (*resource.Topic, error) {
	return result[resource.Topic](f, "CreateTopic", req)
}

func (f *Fake) ListTopics(ctx context.Context, opts resend.ListOptions) (*resource.ListTopicsResponse, error) {
	return result[resource.ListTopicsResponse](f, "ListTopics", opts)
}

func (f *Fake) GetTopic(ctx context.Context, id string) (*resource.Topic, error) {
	return result[resource.Topic](f, "GetTopic", id)
}

func (f *Fake) UpdateTopic(ctx context.Context, id string, req resource.UpdateTopicRequest) (*resource.Topic, error) {
	return result[resource.Topic](f, "UpdateTopic", id, req)
}

func (f *Fake) DeleteTopic(ctx context.Context, id string) error {
	return f.record("DeleteTopic", id)
}

func (f *Fake) CreateWebhook(ctx context.Context, req resource.CreateWebhookRequest) (*resource.Webhook, error) {
	return result[resource.Webhook](f, "CreateWebhook", req)
}

func (f *Fake) ListWebhooks(ctx context.Context, opts resend.ListOptions) (*resource.ListWebhooksResponse, error) {
	return result[resource.ListWebhooksResponse](f, "ListWebhooks", opts)
}

func (f *Fake) GetWebhook(ctx context.Context, id string) (*resource.Webhook, error) {
	return result[resource.Webhook](f, "GetWebhook", id)
}

func (f *Fake) DeleteWebhook(ctx context.Context, id string) error {
	return f.record("DeleteWebhook", id)
}

func (f *Fake) CreateBroadcast(ctx context.Context, req resource.CreateBroadcastRequest) (*resource.Broadcast, error) {
	return result[resource.Broadcast](f, "CreateBroadcast", req)
}

func (f *Fake) ListBroadcasts(ctx context.Context, opts resend.ListOptions) (*resource.ListBroadcastsResponse, error) {
	return result[resource.ListBroadcastsResponse](f, "ListBroadcasts", opts)
}

func (f *Fake) GetBroadcast(ctx context.Context, id string) (*resource.Broadcast, error) {
	return result[resource.Broadcast](f, "GetBroadcast", id)
}

func (f *Fake) UpdateBroadcast(ctx context.Context, id string, req resource.UpdateBroadcastRequest) (*resource.Broadcast, error) {
	return result[resource.Broadcast](f, "UpdateBroadcast", id, req)
}

func (f *Fake) DeleteBroadcast(ctx context.Context, id string) error {
	return f.record("DeleteBroadcast", id)
}

func (f *Fake) SendBroadcast(ctx context.Context, id string) error {
	return f.record("SendBroadcast", id)
}

func (f *Fake) CreateAPIKey(ctx context.Context, req resource.CreateAPIKeyRequest) (*resource.APIKey, error) {
	return result[resource.APIKey](f, "CreateAPIKey", req)
}

func (f *Fake) ListAPIKeys(ctx context.Context, opts resend.ListOptions) (*resource.ListAPIKeysResponse, error) {
	return result[resource.ListAPIKeysResponse](f, "ListAPIKeys", opts)
}

func (f *Fake) DeleteAPIKey(ctx context.Context, id string) error {
	return f.record("DeleteAPIKey", id)
}

func (f *Fake) CreateContactProperty(ctx context.Context, req resource.CreateContactPropertyRequest) (*resource.ContactProperty, error) {
	return result[resource.ContactProperty](f, "CreateContactProperty", req)
}

func (f *Fake) ListContactProperties(ctx context.Context, opts resend.ListOptions) (*resource.ListContactPropertiesResponse, error) {
	return result[resource.ListContactPropertiesResponse](f, "ListContactProperties", opts)
}

func (f *Fake) GetContactProperty(ctx context.Context, id string) (*resource.ContactProperty, error) {
	return result[resource.ContactProperty](f, "GetContactProperty", id)
}

func (f *Fake) UpdateContactProperty(ctx context.Context, id string, req resource.UpdateContactPropertyRequest) (*resource.ContactProperty, error) {
	return result[resource.ContactProperty](f, "UpdateContactProperty", id, req)
}

func (f *Fake) DeleteContactProperty(ctx context.Context, id string) error {
	return f.record("DeleteContactProperty", id)
}

func (f *Fake) ListReceivedEmails(ctx context.Context, opts resend.ListOptions) (*resource.ListReceivedEmailsResponse, error) {
	return result[resource.ListReceivedEmailsResponse](f, "ListReceivedEmails", opts)
}

func (f *Fake) GetReceivedEmail(ctx context.Context, id string) (*resource.ReceivedEmail, error) {
	return result[resource.ReceivedEmail](f, "GetReceivedEmail", id)
}

func (f *Fake) ListReceivedAttachments(ctx context.Context, id string) (*resource.ListReceivedAttachmentsResponse, error) {
	return result[resource.ListReceivedAttachmentsResponse](f, "ListReceivedAttachments", id)
}
