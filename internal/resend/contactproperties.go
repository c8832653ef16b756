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

const contactPropertiesPath = "/contact-properties"

func (c *Client) CreateContactProperty(ctx context.Context, req resource.CreateContactPropertyRequest) (*resource.ContactProperty, error) {
	return call[resource.ContactProperty](ctx, c, http.MethodPost, contactPropertiesPath, nil, req)
}

func (c *Client) ListContactProperties(ctx context.Context, opts ListOptions) (*resource.ListContactPropertiesResponse, error) {
	return list[resource.ListContactPropertiesResponse](ctx, c, contactPropertiesPath, opts)
}

func (c *Client) GetContactProperty(ctx context.Context, id string) (*resource.ContactProperty, error) {
	return call[resource.ContactProperty](ctx, c, http.MethodGet, pathf(contactPropertiesPath, id), nil, nil)
}

func (c *Client) UpdateContactProperty(ctx context.Context, id string, req resource.UpdateContactPropertyRequest) (*resource.ContactProperty, error) {
	return call[resource.ContactProperty](ctx, c, http.MethodPatch, pathf(contactPropertiesPath, id), nil, req)
}

func (c *Client) DeleteContactProperty(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(contactPropertiesPath, id))
}
