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

const apiKeysPath = "/api-keys"

// CreateAPIKey creates a credential.  The returned token is not
// retrievable later.
func (c *Client) CreateAPIKey(ctx context.Context, req resource.CreateAPIKeyRequest) (*resource.APIKey, error) {
	return call[resource.APIKey](ctx, c, http.MethodPost, apiKeysPath, nil, req)
}

func (c *Client) ListAPIKeys(ctx context.Context, opts ListOptions) (*resource.ListAPIKeysResponse, error) {
	return list[resource.ListAPIKeysResponse](ctx, c, apiKeysPath, opts)
}

func (c *Client) DeleteAPIKey(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(apiKeysPath, id))
}
