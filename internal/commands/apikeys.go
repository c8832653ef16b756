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

var apiKeyColumns = []output.Column[resource.APIKey]{
	{Header: "ID", Value: func(k resource.APIKey) string { return k.ID }},
	{Header: "NAME", Value: func(k resource.APIKey) string { return k.Name }},
	{Header: "CREATED AT", Value: func(k resource.APIKey) string { return k.CreatedAt }},
}

func apiKeysCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "api-keys",
		Usage: "Manage API keys",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create an API key",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "permission", Aliases: []string{"p"}, Usage: "full_access or sending_access"},
					&cli.StringFlag{Name: "domain-id", Aliases: []string{"d"}, Usage: "restrict a sending key to one domain"},
				},
				Action: action(a, a.createAPIKey),
			},
			{Name: "list", Usage: "List API keys", Flags: listFlags(), Action: action(a, a.listAPIKeys)},
			{Name: "delete", Usage: "Delete an API key", ArgsUsage: "<ID>", Action: action(a, a.deleteAPIKey)},
		},
	}
}

func (a *app) createAPIKey(c *cli.Context, api resend.APIKeys) error {
	k, err := api.CreateAPIKey(c.Context, resource.CreateAPIKeyRequest{
		Name:       c.String("name"),
		Permission: c.String("permission"),
		DomainID:   c.String("domain-id"),
	})
	if err != nil {
		return errors.Wrap(err, "unable to create API key")
	}
	if err := a.report(k, "API Key created successfully!"); err != nil {
		return err
	}
	if k.Token != "" {
		a.out.Statusf("WARNING: This token is only shown once!")
	}
	return nil
}

func (a *app) listAPIKeys(c *cli.Context, api resend.APIKeys) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListAPIKeys(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list API keys")
	}
	return output.List(a.out, resp, apiKeyColumns...)
}

func (a *app) deleteAPIKey(c *cli.Context, api resend.APIKeys) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteAPIKey(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete API key %s", id)
	}
	a.out.Statusf("API Key %s deleted successfully!", id)
	return nil
}
