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

var topicColumns = []output.Column[resource.Topic]{
	{Header: "ID", Value: func(t resource.Topic) string { return t.ID }},
	{Header: "NAME", Value: func(t resource.Topic) string { return t.Name }},
	{Header: "DEFAULT SUBSCRIPTION", Value: func(t resource.Topic) string { return t.DefaultSubscription }},
	{Header: "CREATED AT", Value: func(t resource.Topic) string { return t.CreatedAt }},
}

func topicsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "topics",
		Usage: "Manage subscription topics",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a topic",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "default-subscription", Value: "opt_in", Usage: "opt_in or opt_out"},
				},
				Action: action(a, a.createTopic),
			},
			{Name: "list", Usage: "List topics", Flags: listFlags(), Action: action(a, a.listTopics)},
			{Name: "get", Usage: "Show a topic", ArgsUsage: "<ID>", Action: action(a, a.getTopic)},
			{
				Name:      "update",
				Usage:     "Rename a topic",
				ArgsUsage: "<ID>",
				Flags:     []cli.Flag{&cli.StringFlag{Name: "name", Aliases: []string{"n"}}},
				Action:    action(a, a.updateTopic),
			},
			{Name: "delete", Usage: "Delete a topic", ArgsUsage: "<ID>", Action: action(a, a.deleteTopic)},
		},
	}
}

func (a *app) createTopic(c *cli.Context, api resend.Topics) error {
	t, err := api.CreateTopic(c.Context, resource.CreateTopicRequest{
		Name:                c.String("name"),
		DefaultSubscription: c.String("default-subscription"),
	})
	if err != nil {
		return errors.Wrap(err, "unable to create topic")
	}
	return a.report(t, "Topic created successfully!")
}

func (a *app) listTopics(c *cli.Context, api resend.Topics) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListTopics(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list topics")
	}
	return output.List(a.out, resp, topicColumns...)
}

func (a *app) getTopic(c *cli.Context, api resend.Topics) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	t, err := api.GetTopic(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get topic %s", id)
	}
	return a.out.Record(t)
}

func (a *app) updateTopic(c *cli.Context, api resend.Topics) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	t, err := api.UpdateTopic(c.Context, id, resource.UpdateTopicRequest{
		Name: optional(c.IsSet("name"), c.String("name")),
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update topic %s", id)
	}
	return a.report(t, "Topic updated successfully!")
}

func (a *app) deleteTopic(c *cli.Context, api resend.Topics) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteTopic(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete topic %s", id)
	}
	a.out.Statusf("Topic %s deleted successfully!", id)
	return nil
}
