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
	"strconv"

	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var contactColumns = []output.Column[resource.Contact]{
	{Header: "ID", Value: func(c resource.Contact) string { return c.ID }},
	{Header: "EMAIL", Value: func(c resource.Contact) string { return c.Email }},
	{Header: "FIRST NAME", Value: func(c resource.Contact) string { return c.FirstName }},
	{Header: "LAST NAME", Value: func(c resource.Contact) string { return c.LastName }},
	{Header: "UNSUBSCRIBED", Value: func(c resource.Contact) string { return strconv.FormatBool(c.Unsubscribed) }},
	{Header: "CREATED AT", Value: func(c resource.Contact) string { return c.CreatedAt }},
}

func contactFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "first-name"},
		&cli.StringFlag{Name: "last-name"},
		&cli.BoolFlag{Name: "unsubscribed", Usage: "use --unsubscribed=false to resubscribe"},
		&cli.StringSliceFlag{Name: "property", Usage: "custom property as key=value, or key:=number for a number (repeatable)"},
	}
}

func contactsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "contacts",
		Usage: "Manage contacts",
		Subcommands: []*cli.Command{
			{
				Name:  "create",
				Usage: "Create a contact",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Required: true},
				}, contactFlags()...),
				Action: action(a, a.createContact),
			},
			{Name: "list", Usage: "List contacts", Flags: listFlags(), Action: action(a, a.listContacts)},
			{Name: "get", Usage: "Show a contact", ArgsUsage: "<ID>", Action: action(a, a.getContact)},
			{
				Name:      "update",
				Usage:     "Change the given fields of a contact",
				ArgsUsage: "<ID>",
				Flags:     contactFlags(),
				Action:    action(a, a.updateContact),
			},
			{Name: "delete", Usage: "Delete a contact", ArgsUsage: "<ID>", Action: action(a, a.deleteContact)},
			{
				Name:      "add-to-segment",
				Usage:     "Add a contact to a segment",
				ArgsUsage: "<CONTACT_ID> <SEGMENT_ID>",
				Action:    action(a, a.addContactToSegment),
			},
			{
				Name:      "remove-from-segment",
				Usage:     "Remove a contact from a segment",
				ArgsUsage: "<CONTACT_ID> <SEGMENT_ID>",
				Action:    action(a, a.removeContactFromSegment),
			},
		},
	}
}

// unsubscribed is nil unless the flag was given, so that an explicit
// false still reaches the server.
func unsubscribed(c *cli.Context) *bool {
	if !c.IsSet("unsubscribed") {
		return nil
	}
	return resource.Bool(c.Bool("unsubscribed"))
}

func (a *app) createContact(c *cli.Context, api resend.Contacts) error {
	props, err := properties(c.StringSlice("property"))
	if err != nil {
		return err
	}
	contact, err := api.CreateContact(c.Context, resource.CreateContactRequest{
		Email:        c.String("email"),
		FirstName:    c.String("first-name"),
		LastName:     c.String("last-name"),
		Unsubscribed: unsubscribed(c),
		Properties:   props,
	})
	if err != nil {
		return errors.Wrap(err, "unable to create contact")
	}
	return a.report(contact, "Contact created successfully!")
}

func (a *app) listContacts(c *cli.Context, api resend.Contacts) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListContacts(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list contacts")
	}
	return output.List(a.out, resp, contactColumns...)
}

func (a *app) getContact(c *cli.Context, api resend.Contacts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	contact, err := api.GetContact(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get contact %s", id)
	}
	return a.out.Record(contact)
}

func (a *app) updateContact(c *cli.Context, api resend.Contacts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	props, err := properties(c.StringSlice("property"))
	if err != nil {
		return err
	}
	contact, err := api.UpdateContact(c.Context, id, resource.UpdateContactRequest{
		FirstName:    optional(c.IsSet("first-name"), c.String("first-name")),
		LastName:     optional(c.IsSet("last-name"), c.String("last-name")),
		Unsubscribed: unsubscribed(c),
		Properties:   props,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to update contact %s", id)
	}
	return a.report(contact, "Contact updated successfully!")
}

func (a *app) deleteContact(c *cli.Context, api resend.Contacts) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.DeleteContact(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to delete contact %s", id)
	}
	a.out.Statusf("Contact %s deleted successfully!", id)
	return nil
}

func (a *app) addContactToSegment(c *cli.Context, api resend.Contacts) error {
	ids, err := args(c, "CONTACT_ID", "SEGMENT_ID")
	if err != nil {
		return err
	}
	if err := api.AddContactToSegment(c.Context, ids[0], ids[1]); err != nil {
		return errors.Wrapf(err, "unable to add contact %s to segment %s", ids[0], ids[1])
	}
	a.out.Statusf("Contact %s added to segment %s successfully!", ids[0], ids[1])
	return nil
}

func (a *app) removeContactFromSegment(c *cli.Context, api resend.Contacts) error {
	ids, err := args(c, "CONTACT_ID", "SEGMENT_ID")
	if err != nil {
		return err
	}
	if err := api.RemoveContactFromSegment(c.Context, ids[0], ids[1]); err != nil {
		return errors.Wrapf(err, "unable to remove contact %s from segment %s", ids[0], ids[1])
	}
	a.out.Statusf("Contact %s removed from segment %s successfully!", ids[0], ids[1])
	return nil
}
