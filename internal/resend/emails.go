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

const emailsPath = "/emails"

// SendEmail sends one email, or schedules it when ScheduledAt is set.
func (c *Client) SendEmail(ctx context.Context, req resource.SendEmailRequest) (*resource.SendEmailResponse, error) {
	return call[resource.SendEmailResponse](ctx, c, http.MethodPost, emailsPath, nil, req)
}

// SendEmailBatch submits reqs as a single array payload in one request.
// Per-entry failures are whatever the server reports in the response.
func (c *Client) SendEmailBatch(ctx context.Context, reqs []resource.SendEmailRequest) (*resource.SendBatchResponse, error) {
	if reqs == nil {
		reqs = []resource.SendEmailRequest{}
	}
	return call[resource.SendBatchResponse](ctx, c, http.MethodPost, pathf(emailsPath, "batch"), nil, reqs)
}

func (c *Client) GetEmail(ctx context.Context, id string) (*resource.Email, error) {
	return call[resource.Email](ctx, c, http.MethodGet, pathf(emailsPath, id), nil, nil)
}

func (c *Client) ListEmails(ctx context.Context, opts ListOptions) (*resource.ListEmailsResponse, error) {
	return list[resource.ListEmailsResponse](ctx, c, emailsPath, opts)
}

// UpdateEmail reschedules a scheduled email.
func (c *Client) UpdateEmail(ctx context.Context, id string, req resource.UpdateEmailRequest) (*resource.SendEmailResponse, error) {
	return call[resource.SendEmailResponse](ctx, c, http.MethodPatch, pathf(emailsPath, id), nil, req)
}

// CancelEmail cancels a scheduled email.
func (c *Client) CancelEmail(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodPost, pathf(emailsPath, id, "cancel"))
}

func (c *Client) ListEmailAttachments(ctx context.Context, id string) (*resource.ListAttachmentsResponse, error) {
	return call[resource.ListAttachmentsResponse](ctx, c, http.MethodGet, pathf(emailsPath, id, "attachments"), nil, nil)
}
