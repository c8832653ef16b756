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
	"fmt"

	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var contactPropertyColumns = []output.Column[resource.ContactProperty]{
	{Header: "ID", Value: func(p resource.ContactProperty) string { return p.ID }},
	{Header: "KEY", Value: func(p resource.ContactProperty) string { return p.Key }},
	{Header: "TYPE", Value: func(p resource.ContactProperty) string { return p.Type }},
	{Header: "FALLBACK VALUE", Value: func(p resource.ContactProperty) string {
		if p.FallbackValue == nil {
			return ""
		}
		return fmt.Sprint(p.FallbackValue)
	}},
	{Header: "CREATED AT", Value: func(p resource.ContactProperty) string { return p.CreatedAt }},
}

func contactPropertiesCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "contact-properties",
		Usage: "Manage custom contact properties",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Declare a contact property",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Required: true},
					&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true, Usage: "string or number"},
					&cli.StringFlag{Name: "fallback-value", Usage: "value used when a contact has none"},
				},
				Action: action(a, a.createContactProperty),
			},
			{Name: "list", Usage: "List contact properties", Flags: listFlags(), Action: action(a, a.listContactProperties)},
			{Name: "get", Usage: "Show a contact property", ArgsUsage: "<ID>", Action: action(a, a.getContactProperty)},
			{
				Name:      "update",
				Usage:     "Change the fallback value of a contact property",
				ArgsUsage: "<ID>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "fallback-value"},
					&cli.BoolFlag{Name: "number", Usage: "send the fallback value as a number"},
				},
				Action: action(a, a.updateContactProperty),
			},
			{Name: "delete", Usage: "Delete a contact property", ArgsUsage: "<ID>", Action: action(a, a.deleteContactProperty)},
		},
	}
}

// fallback is nil unless --fallback-value was given.  It is sent as a
// number only for number properties.
func fallback(c *cli.Context, numeric bool) (interface{}, error) {
	if !c.IsSet("fallback-value") {
		return nil, nil
	}
	s := c.String("fallback-value")
	if !numeric {
		return s, nil
	}
	n, err := number(s)
	if err != nil {
		return nil, errors.Wrap(err, "--fallback-value")
	}
	return n, nil
}

func (a *app) createContactProperty(c *cli.Context, api resend.ContactProperties) error {
	fv, err := fallback(c, c.String("type") == "number")
	if err != nil {
		return err
	}
	p, err := api.CreateContactProperty(c.Context, resource.CreateContactPropertyRequest{
		Key:           c.String("key"),
		Type:          c.String("type"),
		FallbackValue: fv,
	})
	if err != nil {
		return errors.Wrap(err, "unable to create contact property")
	}
	return a.report(p, "Contact property created successfully!")
}

func (a *app) listContactProperties(c *cli.Context, api resend.ContactProperties) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListContactProperties(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list contact properties")
	}
	return output.List(a.out, resp, contactPropertyColumns...)
}

func (a *app) getContactProperty(c *cli.Context, api resend.ContactProperties) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	p, err := api.GetContactProperty(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get contact property %s", id)
	}
	return a.out.Record(p)
}

func (a *app) updateContactProperty(c *cli.Context, api resend.ContactProperties) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	fv, err := fallback(c, c.Bool("number"))
	if err != nil {
		return err
	}
	p, err := api.UpdateContactProperty(c.Context, id, resource.UpdateContactPropertyRequest{
		FallbackValue: fv,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update contact property %s", id)
	}
	return a.report(p, "Contact property updated successfully!")
}

func (a *app) deleteContactProperty(c *cli.Context, api resend.ContactProperties) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteContactProperty(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete contact property %s", id)
	}
	a.out.Statusf("Contact property %s deleted successfully!", id)
	return nil
}
