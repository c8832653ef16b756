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

const receivingPath = emailsPath + "/receiving"

func (c *Client) ListReceivedEmails(ctx context.Context, opts ListOptions) (*resource.ListReceivedEmailsResponse, error) {
	return list[resource.ListReceivedEmailsResponse](ctx, c, receivingPath, opts)
}

func (c *Client) GetReceivedEmail(ctx context.Context, id string) (*resource.ReceivedEmail, error) {
	return call[resource.ReceivedEmail](ctx, c, http.MethodGet, pathf(receivingPath, id), nil, nil)
}

func (c *Client) ListReceivedAttachments(ctx context.Context, id string) (*resource.ListReceivedAttachmentsResponse, error) {
	return call[resource.ListReceivedAttachmentsResponse](ctx, c, http.MethodGet, pathf(receivingPath, id, "attachments"), nil, nil)
}
