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

const broadcastsPath = "/broadcasts"

func (c *Client) CreateBroadcast(ctx context.Context, req resource.CreateBroadcastRequest) (*resource.Broadcast, error) {
	return call[resource.Broadcast](ctx, c, http.MethodPost, broadcastsPath, nil, req)
}

func (c *Client) ListBroadcasts(ctx context.Context, opts ListOptions) (*resource.ListBroadcastsResponse, error) {
	return list[resource.ListBroadcastsResponse](ctx, c, broadcastsPath, opts)
}

func (c *Client) GetBroadcast(ctx context.Context, id string) (*resource.Broadcast, error) {
	return call[resource.Broadcast](ctx, c, http.MethodGet, pathf(broadcastsPath, id), nil, nil)
}

func (c *Client) UpdateBroadcast(ctx context.Context, id string, req resource.UpdateBroadcastRequest) (*resource.Broadcast, error) {
	return call[resource.Broadcast](ctx, c, http.MethodPatch, pathf(broadcastsPath, id), nil, req)
}

func (c *Client) DeleteBroadcast(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(broadcastsPath, id))
}

// SendBroadcast delivers a draft broadcast to its segment.
func (c *Client) SendBroadcast(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodPost, pathf(broadcastsPath, id, "send"))
}
