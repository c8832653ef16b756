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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestListOptionsValues(t *testing.T) {
	cases := []struct {
		opts ListOptions
		want map[string]string
	}{
		{ListOptions{}, map[string]string{}},
		{ListOptions{Limit: 10}, map[string]string{"limit": "10"}},
		{ListOptions{After: "cur_a"}, map[string]string{"after": "cur_a"}},
		{ListOptions{Before: "cur_b"}, map[string]string{"before": "cur_b"}},
		{ListOptions{Limit: 5, After: "cur_a"}, map[string]string{"limit": "5", "after": "cur_a"}},
		{ListOptions{Limit: 20, After: "cur_a", Before: "cur_b"},
			map[string]string{"limit": "20", "after": "cur_a", "before": "cur_b"}},
	}
	for _, tc := range cases {
		v := tc.opts.Values()
		got := make(map[string]string, len(v))
		for k, vals := range v {
			if len(vals) != 1 {
				t.Errorf("%#v.Values()[%q] = %v, want exactly one value", tc.opts, k, vals)
			}
			got[k] = vals[0]
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%#v.Values() mismatch (-want +got):\n%s", tc.opts, diff)
		}
	}
}
