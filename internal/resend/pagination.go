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
	"net/url"
	"strconv"
)

// ListOptions selects a page of a list operation.  Zero fields are
// absent; with all three absent the server returns its default page.
type ListOptions struct {
	// Limit caps the number of records returned.
	Limit int
	// After is a cursor for the page following it.
	After string
	// Before is a cursor for the page preceding it.
	Before string
}

// Values returns one query parameter per present field and nothing else.
func (o ListOptions) Values() url.Values {
	v := url.Values{}
	if o.Limit > 0 {
		v.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.After != "" {
		v.Set("after", o.After)
	}
	if o.Before != "" {
		v.Set("before", o.Before)
	}
	return v
}
