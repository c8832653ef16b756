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

// Package resend issues authenticated calls against the email API and
// decodes the responses into the types of package resource.
//
// Every operation is one HTTP round trip through a single routine: the
// request body is encoded as JSON, the response status decides between
// success and an *APIError, and a success body is decoded into the
// operation's result type (an empty body decodes as "{}").  A body that
// cannot be decoded yields a *DecodeError, and a request that never got a
// response yields a *TransportError.  Nothing is retried.
//
// The Authorization header is attached by the http.Client handed to New;
// see package resendhttp.  A Client holds no mutable state and is safe
// for concurrent use.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultBaseURL is the API host used unless WithBaseURL says otherwise.
const DefaultBaseURL = "https://api.resend.com"

// Client implements API over HTTP.
type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.Logger
}

var _ API = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithLogger sets the logger used for per-request debug output.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// New returns a Client sending requests through client, which is expected
// to authenticate them.
func New(client *http.Client, opts ...Option) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	c := &Client{
		http:    client,
		baseURL: DefaultBaseURL,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do performs one request.  body, when non-nil, is sent as JSON.  query,
// when non-empty, is appended to the URL.  out, when non-nil, receives the
// decoded success body; a nil out marks a void operation whose body is
// never decoded.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "unable to encode %s %s request", method, path)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return errors.Wrapf(err, "unable to build %s %s request", method, path)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, URL: u, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Method: method, URL: u, Err: errors.Wrap(err, "reading response body")}
	}
	c.log.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(raw)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	return decode(raw, out)
}

// decode unmarshals a success body into out.  Some success responses
// carry no content; those decode as an empty JSON object.
func decode(raw []byte, out interface{}) error {
	data := raw
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &DecodeError{Err: err, Body: string(raw)}
	}
	return nil
}

// call performs a non-void operation and returns its decoded result.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, query, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// list performs a paginated GET on a collection.
func list[T any](ctx context.Context, c *Client, path string, opts ListOptions) (*T, error) {
	return call[T](ctx, c, http.MethodGet, path, opts.Values(), nil)
}

// exec performs a void operation: success is judged by status alone.
func (c *Client) exec(ctx context.Context, method, path string) error {
	return c.do(ctx, method, path, nil, nil, nil)
}

// pathf joins a collection path with escaped identifier segments.
func pathf(collection string, segments ...string) string {
	p := collection
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}
