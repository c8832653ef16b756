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

package commands

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

// pairs parses name=value flag values.
func pairs(flag string, items []string) (map[string]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	m := make(map[string]string, len(items))
	for _, it := range items {
		k, v, ok := strings.Cut(it, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("--%s %q: want name=value", flag, it)
		}
		m[k] = v
	}
	return m, nil
}

// number returns s as a JSON number, or an error when it is not one.
func number(s string) (json.Number, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil || dec.More() {
		return "", errors.Errorf("%q is not a number", s)
	}
	n, ok := v.(json.Number)
	if !ok {
		return "", errors.Errorf("%q is not a number", s)
	}
	return n, nil
}

// properties parses contact properties.  key=value sends a string;
// key:=value sends a number.
func properties(items []string) (map[string]interface{}, error) {
	if len(items) == 0 {
		return nil, nil
	}
	m := make(map[string]interface{}, len(items))
	for _, it := range items {
		k, v, ok := strings.Cut(it, "=")
		name, numeric := strings.CutSuffix(k, ":")
		if !ok || name == "" {
			return nil, errors.Errorf("--property %q: want name=value or name:=number", it)
		}
		if !numeric {
			m[name] = v
			continue
		}
		n, err := number(v)
		if err != nil {
			return nil, errors.Wrapf(err, "--property %q", it)
		}
		m[name] = n
	}
	return m, nil
}

// optional returns a pointer to the flag's value when it was given.
func optional(set bool, s string) *string {
	if !set {
		return nil
	}
	return &s
}

// slice returns the values of a repeatable flag, nil when it was not
// given.
func slice(c *cli.Context, name string) []string {
	v := c.StringSlice(name)
	if len(v) == 0 {
		return nil
	}
	return v
}
