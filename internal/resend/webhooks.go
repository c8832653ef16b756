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

const webhooksPath = "/webhooks"

func (c *Client) CreateWebhook(ctx context.Context, req resource.CreateWebhookRequest) (*resource.Webhook, error) {
	return call[resource.Webhook](ctx, c, http.MethodPost, webhooksPath, nil, req)
}

func (c *Client) ListWebhooks(ctx context.Context, opts ListOptions) (*resource.ListWebhooksResponse, error) {
	return list[resource.ListWebhooksResponse](ctx, c, webhooksPath, opts)
}

func (c *Client) GetWebhook(ctx context.Context, id string) (*resource.Webhook, error) {
	return call[resource.Webhook](ctx, c, http.MethodGet, pathf(webhooksPath, id), nil, nil)
}

func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(webhooksPath, id))
}
