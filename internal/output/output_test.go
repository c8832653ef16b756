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

package output

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matta/resend-cli/internal/resource"
)

var segmentColumns = []Column[resource.Segment]{
	{"ID", func(s resource.Segment) string { return s.ID }},
	{"NAME", func(s resource.Segment) string { return s.Name }},
}

func render(t *testing.T, f Format, print func(p *Printer) error) (string, string) {
	t.Helper()
	var out, status bytes.Buffer
	if err := print(New(f, &out, &status)); err != nil {
		t.Fatalf("print in %s = %v, want nil", f, err)
	}
	return out.String(), status.String()
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", Table, false},
		{"json", JSON, false},
		{"YAML", YAML, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseFormat(%#v) error = %v, want error %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParseFormat(%#v) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestListTable(t *testing.T) {
	env := &resource.ListSegmentsResponse{Data: []resource.Segment{
		{ID: "seg_1", Name: "Newsletter"},
		{ID: "seg_2", Name: "Beta"},
	}}
	got, _ := render(t, Table, func(p *Printer) error { return List(p, env, segmentColumns...) })
	want := "ID     NAME\n" +
		"seg_1  Newsletter\n" +
		"seg_2  Beta\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestListTableEmpty(t *testing.T) {
	got, _ := render(t, Table, func(p *Printer) error {
		return List(p, &resource.ListSegmentsResponse{}, segmentColumns...)
	})
	if got != EmptyList+"\n" {
		t.Errorf("empty table = %#v, want %#v", got, EmptyList+"\n")
	}
}

func TestListTableKeepsCellsOnOneLine(t *testing.T) {
	env := &resource.ListSegmentsResponse{Data: []resource.Segment{{ID: "seg_1", Name: "two\nlines"}, {ID: "seg_2"}}}
	got, _ := render(t, Table, func(p *Printer) error { return List(p, env, segmentColumns...) })
	want := "ID     NAME\n" +
		"seg_1  two lines\n" +
		"seg_2  -\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestListJSONPrintsEnvelope(t *testing.T) {
	env := &resource.ListSegmentsResponse{Data: []resource.Segment{{ID: "seg_1", Name: "Newsletter", CreatedAt: "now"}}}
	got, _ := render(t, JSON, func(p *Printer) error { return List(p, env, segmentColumns...) })
	want := `{
  "data": [
    {
      "id": "seg_1",
      "name": "Newsletter",
      "created_at": "now"
    }
  ]
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordYAMLKeepsFieldOrder(t *testing.T) {
	d := &resource.Domain{ID: "123", Name: "example.com", CreatedAt: "now", Status: "pending", Region: "us-east-1"}
	got, _ := render(t, YAML, func(p *Printer) error { return p.Record(d) })
	want := `id: "123"
name: example.com
created_at: now
status: pending
region: us-east-1
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
}

func TestListYAML(t *testing.T) {
	env := &resource.ListSegmentsResponse{Data: []resource.Segment{{ID: "seg_1", Name: "Newsletter", CreatedAt: "now"}}}
	got, _ := render(t, YAML, func(p *Printer) error { return List(p, env, segmentColumns...) })
	want := `data:
  - id: seg_1
    name: Newsletter
    created_at: now
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordTable(t *testing.T) {
	wh := &resource.Webhook{ID: "wh_1", Endpoint: "https://x", Events: []string{"a", "b"}, CreatedAt: "now"}
	got, _ := render(t, Table, func(p *Printer) error { return p.Record(wh) })
	want := "id:          wh_1\n" +
		"endpoint:    https://x\n" +
		"events:      a, b\n" +
		"created_at:  now\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestRecordTableNestedValueIsCompactJSON(t *testing.T) {
	prio := 10
	d := &resource.Domain{ID: "d", Records: []resource.DomainRecord{{Record: "MX", Priority: &prio}}}
	got, _ := render(t, Table, func(p *Printer) error { return p.Record(d) })
	want := `{"record":"MX","name":"","type":"","ttl":"","status":"","value":"","priority":10}`
	if !bytes.Contains([]byte(got), []byte(want)) {
		t.Errorf("table = %q, want it to contain %q", got, want)
	}
}

func TestStatusf(t *testing.T) {
	cases := []struct {
		format              Format
		wantOut, wantStatus string
	}{
		{Table, "Domain d deleted successfully!\n", ""},
		{JSON, "", "Domain d deleted successfully!\n"},
		{YAML, "", "Domain d deleted successfully!\n"},
	}
	for _, tc := range cases {
		out, status := render(t, tc.format, func(p *Printer) error {
			p.Statusf("Domain %s deleted successfully!", "d")
			return nil
		})
		if out != tc.wantOut || status != tc.wantStatus {
			t.Errorf("Statusf in %s wrote out=%q status=%q, want out=%q status=%q",
				tc.format, out, status, tc.wantOut, tc.wantStatus)
		}
	}
}
