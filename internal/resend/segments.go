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

const segmentsPath = "/segments"

func (c *Client) CreateSegment(ctx context.Context, req resource.CreateSegmentRequest) (*resource.Segment, error) {
	return call[resource.Segment](ctx, c, http.MethodPost, segmentsPath, nil, req)
}

func (c *Client) ListSegments(ctx context.Context, opts ListOptions) (*resource.ListSegmentsResponse, error) {
	return list[resource.ListSegmentsResponse](ctx, c, segmentsPath, opts)
}

func (c *Client) GetSegment(ctx context.Context, id string) (*resource.Segment, error) {
	return call[resource.Segment](ctx, c, http.MethodGet, pathf(segmentsPath, id), nil, nil)
}

func (c *Client) DeleteSegment(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(segmentsPath, id))
}
