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
	"github.com/matta/resend-cli/internal/resend"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "limit", Usage: "maximum number of records to return"},
		&cli.StringFlag{Name: "after", Usage: "return records after this cursor"},
		&cli.StringFlag{Name: "before", Usage: "return records before this cursor"},
	}
}

func listOptions(c *cli.Context) (resend.ListOptions, error) {
	opts := resend.ListOptions{
		Limit:  c.Int("limit"),
		After:  c.String("after"),
		Before: c.String("before"),
	}
	if c.IsSet("limit") && opts.Limit <= 0 {
		return resend.ListOptions{}, errors.Errorf("--limit must be positive, got %d", opts.Limit)
	}
	return opts, nil
}
