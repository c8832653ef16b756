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

const topicsPath = "/topics"

func (c *Client) CreateTopic(ctx context.Context, req resource.CreateTopicRequest) (*resource.Topic, error) {
	return call[resource.Topic](ctx, c, http.MethodPost, topicsPath, nil, req)
}

func (c *Client) ListTopics(ctx context.Context, opts ListOptions) (*resource.ListTopicsResponse, error) {
	return list[resource.ListTopicsResponse](ctx, c, topicsPath, opts)
}

func (c *Client) GetTopic(ctx context.Context, id string) (*resource.Topic, error) {
	return call[resource.Topic](ctx, c, http.MethodGet, pathf(topicsPath, id), nil, nil)
}

func (c *Client) UpdateTopic(ctx context.Context, id string, req resource.UpdateTopicRequest) (*resource.Topic, error) {
	return call[resource.Topic](ctx, c, http.MethodPatch, pathf(topicsPath, id), nil, req)
}

func (c *Client) DeleteTopic(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(topicsPath, id))
}
