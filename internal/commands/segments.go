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
	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var segmentColumns = []output.Column[resource.Segment]{
	{Header: "ID", Value: func(s resource.Segment) string { return s.ID }},
	{Header: "NAME", Value: func(s resource.Segment) string { return s.Name }},
	{Header: "CREATED AT", Value: func(s resource.Segment) string { return s.CreatedAt }},
}

func segmentsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "segments",
		Usage: "Manage contact segments",
		Subcommands: []*cli.Command{
			{
				Name:   "create",
				Usage:  "Create a segment",
				Flags:  []cli.Flag{&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true}},
				Action: action(a, a.createSegment),
			},
			{Name: "list", Usage: "List segments", Flags: listFlags(), Action: action(a, a.listSegments)},
			{Name: "get", Usage: "Show a segment", ArgsUsage: "<ID>", Action: action(a, a.getSegment)},
			{Name: "delete", Usage: "Delete a segment", ArgsUsage: "<ID>", Action: action(a, a.deleteSegment)},
		},
	}
}

func (a *app) createSegment(c *cli.Context, api resend.Segments) error {
	s, err := api.CreateSegment(c.Context, resource.CreateSegmentRequest{Name: c.String("name")})
	if err != nil {
		return errors.Wrap(err, "unable to create segment")
	}
	return a.report(s, "Segment created successfully!")
}

func (a *app) listSegments(c *cli.Context, api resend.Segments) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListSegments(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list segments")
	}
	return output.List(a.out, resp, segmentColumns...)
}

func (a *app) getSegment(c *cli.Context, api resend.Segments) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	s, err := api.GetSegment(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get segment %s", id)
	}
	return a.out.Record(s)
}

func (a *app) deleteSegment(c *cli.Context, api resend.Segments) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteSegment(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete segment %s", id)
	}
	a.out.Statusf("Segment %s deleted successfully!", id)
	return nil
}
