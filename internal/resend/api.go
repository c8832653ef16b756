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

// This file declares the operation set callers program against.  Each
// resource kind has its own narrow interface so a command handler can ask
// for only what it uses; API composes them all.

import (
	"context"

	"github.com/matta/resend-cli/internal/resource"
)

// Emails sends and manages outbound email.
type Emails interface {
	SendEmail(ctx context.Context, req resource.SendEmailRequest) (*resource.SendEmailResponse, error)
	SendEmailBatch(ctx context.Context, reqs []resource.SendEmailRequest) (*resource.SendBatchResponse, error)
	GetEmail(ctx context.Context, id string) (*resource.Email, error)
	ListEmails(ctx context.Context, opts ListOptions) (*resource.ListEmailsResponse, error)
	UpdateEmail(ctx context.Context, id string, req resource.UpdateEmailRequest) (*resource.SendEmailResponse, error)
	CancelEmail(ctx context.Context, id string) error
	ListEmailAttachments(ctx context.Context, id string) (*resource.ListAttachmentsResponse, error)
}

// Domains manages sending domains.
type Domains interface {
	CreateDomain(ctx context.Context, req resource.CreateDomainRequest) (*resource.Domain, error)
	ListDomains(ctx context.Context, opts ListOptions) (*resource.ListDomainsResponse, error)
	GetDomain(ctx context.Context, id string) (*resource.Domain, error)
	DeleteDomain(ctx context.Context, id string) error
	VerifyDomain(ctx context.Context, id string) error
}

// Contacts manages contacts and their segment membership.
type Contacts interface {
	CreateContact(ctx context.Context, req resource.CreateContactRequest) (*resource.Contact, error)
	ListContacts(ctx context.Context, opts ListOptions) (*resource.ListContactsResponse, error)
	GetContact(ctx context.Context, id string) (*resource.Contact, error)
	UpdateContact(ctx context.Context, id string, req resource.UpdateContactRequest) (*resource.Contact, error)
	DeleteContact(ctx context.Context, id string) error
	AddContactToSegment(ctx context.Context, contactID, segmentID string) error
	RemoveContactFromSegment(ctx context.Context, contactID, segmentID string) error
}

type Segments interface {
	CreateSegment(ctx context.Context, req resource.CreateSegmentRequest) (*resource.Segment, error)
	ListSegments(ctx context.Context, opts ListOptions) (*resource.ListSegmentsResponse, error)
	GetSegment(ctx context.Context, id string) (*resource.Segment, error)
	DeleteSegment(ctx context.Context, id string) error
}

type Templates interface {
	CreateTemplate(ctx context.Context, req resource.CreateTemplateRequest) (*resource.Template, error)
	ListTemplates(ctx context.Context, opts ListOptions) (*resource.ListTemplatesResponse, error)
	GetTemplate(ctx context.Context, id string) (*resource.Template, error)
	UpdateTemplate(ctx context.Context, id string, req resource.UpdateTemplateRequest) (*resource.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
}

type Topics interface {
	CreateTopic(ctx context.Context, req resource.CreateTopicRequest) (*resource.Topic, error)
	ListTopics(ctx context.Context, opts ListOptions) (*resource.ListTopicsResponse, error)
	GetTopic(ctx context.Context, id string) (*resource.Topic, error)
	UpdateTopic(ctx context.Context, id string, req resource.UpdateTopicRequest) (*resource.Topic, error)
	DeleteTopic(ctx context.Context, id string) error
}

type Webhooks interface {
	CreateWebhook(ctx context.Context, req resource.CreateWebhookRequest) (*resource.Webhook, error)
	ListWebhooks(ctx context.Context, opts ListOptions) (*resource.ListWebhooksResponse, error)
	GetWebhook(ctx context.Context, id string) (*resource.Webhook, error)
	DeleteWebhook(ctx context.Context, id string) error
}

// Broadcasts manages and sends segment-wide messages.
type Broadcasts interface {
	CreateBroadcast(ctx context.Context, req resource.CreateBroadcastRequest) (*resource.Broadcast, error)
	ListBroadcasts(ctx context.Context, opts ListOptions) (*resource.ListBroadcastsResponse, error)
	GetBroadcast(ctx context.Context, id string) (*resource.Broadcast, error)
	UpdateBroadcast(ctx context.Context, id string, req resource.UpdateBroadcastRequest) (*resource.Broadcast, error)
	DeleteBroadcast(ctx context.Context, id string) error
	SendBroadcast(ctx context.Context, id string) error
}

type APIKeys interface {
	CreateAPIKey(ctx context.Context, req resource.CreateAPIKeyRequest) (*resource.APIKey, error)
	ListAPIKeys(ctx context.Context, opts ListOptions) (*resource.ListAPIKeysResponse, error)
	DeleteAPIKey(ctx context.Context, id string) error
}

type ContactProperties interface {
	CreateContactProperty(ctx context.Context, req resource.CreateContactPropertyRequest) (*resource.ContactProperty, error)
	ListContactProperties(ctx context.Context, opts ListOptions) (*resource.ListContactPropertiesResponse, error)
	GetContactProperty(ctx context.Context, id string) (*resource.ContactProperty, error)
	UpdateContactProperty(ctx context.Context, id string, req resource.UpdateContactPropertyRequest) (*resource.ContactProperty, error)
	DeleteContactProperty(ctx context.Context, id string) error
}

// Receiving reads inbound email.
type Receiving interface {
	ListReceivedEmails(ctx context.Context, opts ListOptions) (*resource.ListReceivedEmailsResponse, error)
	GetReceivedEmail(ctx context.Context, id string) (*resource.ReceivedEmail, error)
	ListReceivedAttachments(ctx context.Context, id string) (*resource.ListReceivedAttachmentsResponse, error)
}

// API provides every operation available against the service.
type API interface {
	Emails
	Domains
	Contacts
	Segments
	Templates
	Topics
	Webhooks
	Broadcasts
	APIKeys
	ContactProperties
	Receiving
}
