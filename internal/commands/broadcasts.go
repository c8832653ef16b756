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

var broadcastColumns = []output.Column[resource.Broadcast]{
	{Header: "ID", Value: func(b resource.Broadcast) string { return b.ID }},
	{Header: "NAME", Value: func(b resource.Broadcast) string { return b.Name }},
	{Header: "STATUS", Value: func(b resource.Broadcast) string { return b.Status }},
	{Header: "CREATED AT", Value: func(b resource.Broadcast) string { return b.CreatedAt }},
}

func broadcastFlags(required bool) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: required},
		&cli.StringFlag{Name: "segment-id", Required: required, Usage: "segment receiving the broadcast"},
		&cli.StringFlag{Name: "from", Aliases: []string{"f"}, Required: required},
		&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Required: required},
		&cli.StringFlag{Name: "html"},
		&cli.StringFlag{Name: "text"},
		&cli.StringSliceFlag{Name: "reply-to"},
	}
}

func broadcastsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "broadcasts",
		Usage: "Manage and send broadcasts",
		Subcommands: []*cli.Command{
			{Name: "create", Usage: "Create a broadcast", Flags: broadcastFlags(true), Action: action(a, a.createBroadcast)},
			{Name: "list", Usage: "List broadcasts", Flags: listFlags(), Action: action(a, a.listBroadcasts)},
			{Name: "get", Usage: "Show a broadcast", ArgsUsage: "<ID>", Action: action(a, a.getBroadcast)},
			{
				Name:      "update",
				Usage:     "Change the given fields of a draft broadcast",
				ArgsUsage: "<ID>",
				Flags:     broadcastFlags(false),
				Action:    action(a, a.updateBroadcast),
			},
			{Name: "delete", Usage: "Delete a broadcast", ArgsUsage: "<ID>", Action: action(a, a.deleteBroadcast)},
			{Name: "send", Usage: "Send a broadcast to its segment", ArgsUsage: "<ID>", Action: action(a, a.sendBroadcast)},
		},
	}
}

func (a *app) createBroadcast(c *cli.Context, api resend.Broadcasts) error {
	b, err := api.CreateBroadcast(c.Context, resource.CreateBroadcastRequest{
		Name:      c.String("name"),
		SegmentID: c.String("segment-id"),
		From:      c.String("from"),
		Subject:   c.String("subject"),
		HTML:      c.String("html"),
		Text:      c.String("text"),
		ReplyTo:   slice(c, "reply-to"),
	})
	if err != nil {
		return errors.Wrap(err, "unable to create broadcast")
	}
	return a.report(b, "Broadcast created successfully!")
}

func (a *app) listBroadcasts(c *cli.Context, api resend.Broadcasts) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListBroadcasts(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list broadcasts")
	}
	return output.List(a.out, resp, broadcastColumns...)
}

func (a *app) getBroadcast(c *cli.Context, api resend.Broadcasts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	b, err := api.GetBroadcast(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get broadcast %s", id)
	}
	return a.out.Record(b)
}

func (a *app) updateBroadcast(c *cli.Context, api resend.Broadcasts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	str := func(name string) *string { return optional(c.IsSet(name), c.String(name)) }
	b, err := api.UpdateBroadcast(c.Context, id, resource.UpdateBroadcastRequest{
		Name:      str("name"),
		SegmentID: str("segment-id"),
		From:      str("from"),
		Subject:   str("subject"),
		HTML:      str("html"),
		Text:      str("text"),
		ReplyTo:   slice(c, "reply-to"),
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update broadcast %s", id)
	}
	return a.report(b, "Broadcast updated successfully!")
}

func (a *app) deleteBroadcast(c *cli.Context, api resend.Broadcasts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteBroadcast(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete broadcast %s", id)
	}
	a.out.Statusf("Broadcast %s deleted successfully!", id)
	return nil
}

func (a *app) sendBroadcast(c *cli.Context, api resend.Broadcasts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.SendBroadcast(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to send broadcast %s", id)
	}
	a.out.Statusf("Broadcast %s sent successfully!", id)
	return nil
}
