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

// Package output renders API results for the terminal.
//
// A Printer writes in one of three formats.  Table is meant for people:
// lists become aligned columns and single records become field/value
// pairs.  JSON and YAML are meant for scripts and print the result
// unchanged, keeping field order; in those formats status messages go to
// a separate writer so stdout stays parseable.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format selects how results are rendered.
type Format string

const (
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// EmptyList is printed in table format for a list without records.
const EmptyList = "No items found."

// ParseFormat converts a --output flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Table, JSON, YAML:
		return f, nil
	}
	return "", errors.Errorf("unknown output format %q, want one of table, json, yaml", s)
}

// Printer writes results to out and status messages to either out or
// status, depending on the format.
type Printer struct {
	format Format
	out    io.Writer
	status io.Writer
}

func New(format Format, out, status io.Writer) *Printer {
	return &Printer{format: format, out: out, status: status}
}

func (p *Printer) Format() Format {
	return p.format
}

// Statusf prints a human-readable line such as a confirmation.
func (p *Printer) Statusf(format string, args ...interface{}) {
	w := p.out
	if p.format != Table {
		w = p.status
	}
	fmt.Fprintf(w, format+"\n", args...)
}

// Record prints a single resource record.
func (p *Printer) Record(v interface{}) error {
	switch p.format {
	case JSON:
		return writeJSON(p.out, v)
	case YAML:
		return writeYAML(p.out, v)
	}
	return writeFields(p.out, v)
}

// Column is one column of a table: a header and how to get the cell
// value from a record.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// List prints a list envelope.  The table format shows cols; the other
// formats print the whole envelope.
func List[T any](p *Printer, env *resource.ListEnvelope[T], cols ...Column[T]) error {
	switch p.format {
	case JSON:
		return writeJSON(p.out, env)
	case YAML:
		return writeYAML(p.out, env)
	}
	if len(env.Data) == 0 {
		_, err := fmt.Fprintln(p.out, EmptyList)
		return err
	}
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, item := range env.Data {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = cell(c.Value(item))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// cell keeps a value on one line of its column.
func cell(s string) string {
	s = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(s)
	if s == "" {
		return "-"
	}
	return s
}

func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode JSON output")
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// writeYAML goes through the JSON encoding so that field names and
// their order match the JSON output.
func writeYAML(w io.Writer, v interface{}) error {
	n, err := toNode(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return errors.Wrap(err, "unable to encode YAML output")
	}
	return enc.Close()
}

// toNode parses the JSON encoding of v as YAML, which keeps mapping
// order, and resets the JSON styles to YAML block style.
func toNode(v interface{}) (*yaml.Node, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode output")
	}
	var n yaml.Node
	if err := yaml.Unmarshal(b, &n); err != nil {
		return nil, errors.Wrap(err, "unable to convert output")
	}
	clearStyle(&n)
	return &n, nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// writeFields prints the top-level fields of a record, one per line, in
// JSON field order.
func writeFields(w io.Writer, v interface{}) error {
	n, err := toNode(v)
	if err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "unable to encode output")
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrap(err, "output is not a record")
	}
	doc := n
	if doc.Kind == yaml.DocumentNode && len(doc.Content) == 1 {
		doc = doc.Content[0]
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		fmt.Fprintf(tw, "%s:\t%s\n", key, cell(fieldValue(raw[key])))
	}
	return tw.Flush()
}

// fieldValue renders a scalar as its text, a list of strings joined by
// commas, and anything else as compact JSON.
func fieldValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
