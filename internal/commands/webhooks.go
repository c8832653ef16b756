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
	"strings"

	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var webhookColumns = []output.Column[resource.Webhook]{
	{Header: "ID", Value: func(w resource.Webhook) string { return w.ID }},
	{Header: "ENDPOINT", Value: func(w resource.Webhook) string { return w.Endpoint }},
	{Header: "EVENTS", Value: func(w resource.Webhook) string { return strings.Join(w.Events, ", ") }},
	{Header: "CREATED AT", Value: func(w resource.Webhook) string { return w.CreatedAt }},
}

func webhooksCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "webhooks",
		Usage: "Manage event webhooks",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Register a webhook endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "endpoint", Required: true, Usage: "URL receiving the events"},
					&cli.StringSliceFlag{Name: "events", Aliases: []string{"e"}, Required: true, Usage: "event type, e.g. email.delivered (repeatable)"},
				},
				Action: action(a, a.createWebhook),
			},
			{Name: "list", Usage: "List webhooks", Flags: listFlags(), Action: action(a, a.listWebhooks)},
			{Name: "get", Usage: "Show a webhook", ArgsUsage: "<ID>", Action: action(a, a.getWebhook)},
			{Name: "delete", Usage: "Delete a webhook", ArgsUsage: "<ID>", Action: action(a, a.deleteWebhook)},
		},
	}
}

func (a *app) createWebhook(c *cli.Context, api resend.Webhooks) error {
	w, err := api.CreateWebhook(c.Context, resource.CreateWebhookRequest{
		Endpoint: c.String("endpoint"),
		Events:   slice(c, "events"),
	})
	if err != nil {
		return errors.Wrap(err, "unable to create webhook")
	}
	return a.report(w, "Webhook created successfully!")
}

func (a *app) listWebhooks(c *cli.Context, api resend.Webhooks) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListWebhooks(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list webhooks")
	}
	return output.List(a.out, resp, webhookColumns...)
}

func (a *app) getWebhook(c *cli.Context, api resend.Webhooks) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	w, err := api.GetWebhook(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get webhook %s", id)
	}
	return a.out.Record(w)
}

func (a *app) deleteWebhook(c *cli.Context, api resend.Webhooks) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteWebhook(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete webhook %s", id)
	}
	a.out.Statusf("Webhook %s deleted successfully!", id)
	return nil
}
