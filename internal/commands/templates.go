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

var templateColumns = []output.Column[resource.Template]{
	{Header: "ID", Value: func(t resource.Template) string { return t.ID }},
	{Header: "NAME", Value: func(t resource.Template) string { return t.Name }},
	{Header: "CREATED AT", Value: func(t resource.Template) string { return t.CreatedAt }},
}

func templatesCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "Manage email templates",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a template",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "html", Required: true},
				},
				Action: action(a, a.createTemplate),
			},
			{Name: "list", Usage: "List templates", Flags: listFlags(), Action: action(a, a.listTemplates)},
			{Name: "get", Usage: "Show a template", ArgsUsage: "<ID>", Action: action(a, a.getTemplate)},
			{
				Name:      "update",
				Usage:     "Change the given fields of a template",
				ArgsUsage: "<ID>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}},
					&cli.StringFlag{Name: "html"},
				},
				Action: action(a, a.updateTemplate),
			},
			{Name: "delete", Usage: "Delete a template", ArgsUsage: "<ID>", Action: action(a, a.deleteTemplate)},
		},
	}
}

func (a *app) createTemplate(c *cli.Context, api resend.Templates) error {
	t, err := api.CreateTemplate(c.Context, resource.CreateTemplateRequest{
		Name: c.String("name"),
		HTML: c.String("html"),
	})
	if err != nil {
		return errors.Wrap(err, "unable to create template")
	}
	return a.report(t, "Template created successfully!")
}

func (a *app) listTemplates(c *cli.Context, api resend.Templates) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListTemplates(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list templates")
	}
	return output.List(a.out, resp, templateColumns...)
}

func (a *app) getTemplate(c *cli.Context, api resend.Templates) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	t, err := api.GetTemplate(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get template %s", id)
	}
	return a.out.Record(t)
}

func (a *app) updateTemplate(c *cli.Context, api resend.Templates) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	t, err := api.UpdateTemplate(c.Context, id, resource.UpdateTemplateRequest{
		Name: optional(c.IsSet("name"), c.String("name")),
		HTML: optional(c.IsSet("html"), c.String("html")),
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update template %s", id)
	}
	return a.report(t, "Template updated successfully!")
}

func (a *app) deleteTemplate(c *cli.Context, api resend.Templates) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteTemplate(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete template %s", id)
	}
	a.out.Statusf("Template %s deleted successfully!", id)
	return nil
}
