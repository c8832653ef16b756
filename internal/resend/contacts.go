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

import (
	"context"
	"net/http"

	"github.com/matta/resend-cli/internal/resource"
)

const contactsPath = "/contacts"

func (c *Client) CreateContact(ctx context.Context, req resource.CreateContactRequest) (*resource.Contact, error) {
	return call[resource.Contact](ctx, c, http.MethodPost, contactsPath, nil, req)
}

func (c *Client) ListContacts(ctx context.Context, opts ListOptions) (*resource.ListContactsResponse, error) {
	return list[resource.ListContactsResponse](ctx, c, contactsPath, opts)
}

func (c *Client) GetContact(ctx context.Context, id string) (*resource.Contact, error) {
	return call[resource.Contact](ctx, c, http.MethodGet, pathf(contactsPath, id), nil, nil)
}

func (c *Client) UpdateContact(ctx context.Context, id string, req resource.UpdateContactRequest) (*resource.Contact, error) {
	return call[resource.Contact](ctx, c, http.MethodPatch, pathf(contactsPath, id), nil, req)
}

func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(contactsPath, id))
}

func (c *Client) AddContactToSegment(ctx context.Context, contactID, segmentID string) error {
	return c.exec(ctx, http.MethodPost, pathf(contactsPath, contactID, "segments", segmentID))
}

func (c *Client) RemoveContactFromSegment(ctx context.Context, contactID, segmentID string) error {
	return c.exec(ctx, http.MethodDelete, pathf(contactsPath, contactID, "segments", segmentID))
}
