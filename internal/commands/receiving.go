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
	"strings"

	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var receivedEmailColumns = []output.Column[resource.ReceivedEmail]{
	{Header: "ID", Value: func(e resource.ReceivedEmail) string { return e.ID }},
	{Header: "FROM", Value: func(e resource.ReceivedEmail) string { return e.From }},
	{Header: "TO", Value: func(e resource.ReceivedEmail) string { return strings.Join(e.To, ", ") }},
	{Header: "SUBJECT", Value: func(e resource.ReceivedEmail) string { return e.Subject }},
	{Header: "CREATED AT", Value: func(e resource.ReceivedEmail) string { return e.CreatedAt }},
}

var receivedAttachmentColumns = []output.Column[resource.ReceivedAttachment]{
	{Header: "ID", Value: func(a resource.ReceivedAttachment) string { return a.ID }},
	{Header: "FILENAME", Value: func(a resource.ReceivedAttachment) string { return a.Filename }},
	{Header: "CONTENT TYPE", Value: func(a resource.ReceivedAttachment) string { return a.ContentType }},
	{Header: "SIZE", Value: func(a resource.ReceivedAttachment) string { return strconv.FormatInt(a.Size, 10) }},
}

func receivingCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "receiving",
		Usage: "Read inbound email",
		Subcommands: []*cli.Command{
			{Name: "list", Usage: "List received emails", Flags: listFlags(), Action: action(a, a.listReceivedEmails)},
			{Name: "get", Usage: "Show a received email", ArgsUsage: "<ID>", Action: action(a, a.getReceivedEmail)},
			{
				Name:      "attachments",
				Usage:     "List the attachments of a received email",
				ArgsUsage: "<ID>",
				Action:    action(a, a.listReceivedAttachments),
			},
		},
	}
}

func (a *app) listReceivedEmails(c *cli.Context, api resend.Receiving) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListReceivedEmails(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list received emails")
	}
	return output.List(a.out, resp, receivedEmailColumns...)
}

func (a *app) getReceivedEmail(c *cli.Context, api resend.Receiving) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	e, err := api.GetReceivedEmail(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get received email %s", id)
	}
	return a.out.Record(e)
}

func (a *app) listReceivedAttachments(c *cli.Context, api resend.Receiving) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	resp, err := api.ListReceivedAttachments(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to list attachments of received email %s", id)
	}
	return output.List(a.out, resp, receivedAttachmentColumns...)
}
