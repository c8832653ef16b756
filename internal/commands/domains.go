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

var domainColumns = []output.Column[resource.Domain]{
	{Header: "ID", Value: func(d resource.Domain) string { return d.ID }},
	{Header: "NAME", Value: func(d resource.Domain) string { return d.Name }},
	{Header: "STATUS", Value: func(d resource.Domain) string { return d.Status }},
	{Header: "REGION", Value: func(d resource.Domain) string { return d.Region }},
	{Header: "CREATED AT", Value: func(d resource.Domain) string { return d.CreatedAt }},
}

func domainsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "domains",
		Usage: "Manage sending domains",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Register a domain",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Required: true},
					&cli.StringFlag{Name: "region", Aliases: []string{"r"}, Usage: "e.g. us-east-1; the server default when unset"},
				},
				Action: action(a, a.createDomain),
			},
			{Name: "list", Usage: "List domains", Flags: listFlags(), Action: action(a, a.listDomains)},
			{Name: "get", Usage: "Show a domain and its DNS records", ArgsUsage: "<ID>", Action: action(a, a.getDomain)},
			{Name: "delete", Usage: "Delete a domain", ArgsUsage: "<ID>", Action: action(a, a.deleteDomain)},
			{Name: "verify", Usage: "Start verification of a domain", ArgsUsage: "<ID>", Action: action(a, a.verifyDomain)},
		},
	}
}

func (a *app) createDomain(c *cli.Context, api resend.Domains) error {
	d, err := api.CreateDomain(c.Context, resource.CreateDomainRequest{
		Name:   c.String("name"),
		Region: c.String("region"),
	})
	if err != nil {
		return errors.Wrap(err, "unable to create domain")
	}
	return a.report(d, "Domain created successfully!")
}

func (a *app) listDomains(c *cli.Context, api resend.Domains) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListDomains(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list domains")
	}
	return output.List(a.out, resp, domainColumns...)
}

func (a *app) getDomain(c *cli.Context, api resend.Domains) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	d, err := api.GetDomain(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get domain %s", id)
	}
	return a.out.Record(d)
}

func (a *app) deleteDomain(c *cli.Context, api resend.Domains) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteDomain(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete domain %s", id)
	}
	a.out.Statusf("Domain %s deleted successfully!", id)
	return nil
}

func (a *app) verifyDomain(c *cli.Context, api resend.Domains) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.VerifyDomain(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to verify domain %s", id)
	}
	a.out.Statusf("Verification process initiated for domain %s!", id)
	return nil
}
