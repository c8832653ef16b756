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

const domainsPath = "/domains"

func (c *Client) CreateDomain(ctx context.Context, req resource.CreateDomainRequest) (*resource.Domain, error) {
	return call[resource.Domain](ctx, c, http.MethodPost, domainsPath, nil, req)
}

func (c *Client) ListDomains(ctx context.Context, opts ListOptions) (*resource.ListDomainsResponse, error) {
	return list[resource.ListDomainsResponse](ctx, c, domainsPath, opts)
}

func (c *Client) GetDomain(ctx context.Context, id string) (*resource.Domain, error) {
	return call[resource.Domain](ctx, c, http.MethodGet, pathf(domainsPath, id), nil, nil)
}

func (c *Client) DeleteDomain(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodDelete, pathf(domainsPath, id))
}

// VerifyDomain asks the server to start checking the domain's DNS
// records.  Verification completes asynchronously.
func (c *Client) VerifyDomain(ctx context.Context, id string) error {
	return c.exec(ctx, http.MethodPost, pathf(domainsPath, id, "verify"))
}
