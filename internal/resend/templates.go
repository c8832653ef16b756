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

const templatesPath = "/templates"

func (c *Client) CreateTemplate(ctx context.Context, req resource.CreateTemplateRequest) (*resource.Template, error) {
	return call[resource.Template](ctx, c, http.MethodPost, templatesPath, nil, req)
}

func (c *Client) ListTemplates(ctx context.Context, opts ListOptions) (*resource.ListTemplatesResponse, error) {
	return list[resource.ListTemplatesResponse](ctx, c, templatesPath, opts)
}

func (c *Client) GetTemplate(ctx context.Context, id string) (*resource.Template, error) {
	return call[resource.Template](ctx, c, http.MethodGet, pathf(templatesPath, id), nil, nil)
}

func (c *Client) UpdateTemplate(ctx context.Context, id string, req resource.UpdateTemplateRequest) (*resource.Template, error) {
	return call[resource.Template](ctx, c, http.MethodPatch, pathf(templatesPath, id), nil, req)
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(templatesPath, id))
}
