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

	"github.com/matta/resend-cli/internal/draft"
	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var emailColumns = []output.Column[resource.Email]{
	{Header: "ID", Value: func(e resource.Email) string { return e.ID }},
	{Header: "TO", Value: func(e resource.Email) string { return strings.Join(e.To, ", ") }},
	{Header: "SUBJECT", Value: func(e resource.Email) string { return e.Subject }},
	{Header: "LAST EVENT", Value: func(e resource.Email) string { return e.LastEvent }},
	{Header: "CREATED AT", Value: func(e resource.Email) string { return e.CreatedAt }},
}

var attachmentColumns = []output.Column[resource.Attachment]{
	{Header: "ID", Value: func(a resource.Attachment) string { return a.ID }},
	{Header: "FILENAME", Value: func(a resource.Attachment) string { return a.Filename }},
	{Header: "CONTENT TYPE", Value: func(a resource.Attachment) string { return a.ContentType }},
	{Header: "SIZE", Value: func(a resource.Attachment) string { return strconv.FormatInt(a.Size, 10) }},
}

// messageFlags are shared by send and draft.
func messageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "from", Aliases: []string{"f"}, Required: true, Usage: "sender address"},
		&cli.StringSliceFlag{Name: "to", Aliases: []string{"t"}, Required: true, Usage: "recipient address (repeatable)"},
		&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Required: true},
		&cli.StringFlag{Name: "html", Usage: "HTML body"},
		&cli.StringFlag{Name: "text", Usage: "plain text body"},
		&cli.StringSliceFlag{Name: "cc"},
		&cli.StringSliceFlag{Name: "bcc"},
		&cli.StringSliceFlag{Name: "reply-to"},
		&cli.StringFlag{Name: "scheduled-at", Usage: "send later, e.g. \"in 1 hour\" or an ISO 8601 timestamp"},
		&cli.StringSliceFlag{Name: "header", Usage: "custom header as name=value (repeatable)"},
		&cli.StringSliceFlag{Name: "tag", Usage: "tag as name=value (repeatable)"},
	}
}

func emailsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "emails",
		Usage: "Send and manage emails",
		Subcommands: []*cli.Command{
			{
				Name:   "send",
				Usage:  "Send an email",
				Flags:  messageFlags(),
				Action: action(a, a.sendEmail),
			},
			{
				Name:  "draft",
				Usage: "Write an email to a draft file instead of sending it",
				Flags: append(messageFlags(),
					&cli.StringFlag{Name: "html-file", Usage: "read the HTML body from a file"},
					&cli.StringFlag{Name: "text-file", Usage: "read the plain text body from a file"},
				),
				Action: a.draftEmail,
			},
			{
				Name:      "get",
				Usage:     "Show an email",
				ArgsUsage: "<ID>",
				Action:    action(a, a.getEmail),
			},
			{
				Name:   "list",
				Usage:  "List sent emails",
				Flags:  listFlags(),
				Action: action(a, a.listEmails),
			},
			{
				Name:      "cancel",
				Usage:     "Cancel a scheduled email",
				ArgsUsage: "<ID>",
				Action:    action(a, a.cancelEmail),
			},
			{
				Name:      "update",
				Usage:     "Reschedule a scheduled email",
				ArgsUsage: "<ID>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "scheduled-at", Required: true},
				},
				Action: action(a, a.updateEmail),
			},
			{
				Name:      "attachments",
				Usage:     "List the attachments of an email",
				ArgsUsage: "<ID>",
				Action:    action(a, a.listEmailAttachments),
			},
			{
				Name:      "send-batch",
				Usage:     "Send every email in a JSON array file in one request",
				ArgsUsage: "<FILE>",
				Action:    action(a, a.sendEmailBatch),
			},
		},
	}
}

func message(c *cli.Context, html, text string) (resource.SendEmailRequest, error) {
	req := resource.SendEmailRequest{
		From:        c.String("from"),
		To:          slice(c, "to"),
		Subject:     c.String("subject"),
		HTML:        html,
		Text:        text,
		Cc:          slice(c, "cc"),
		Bcc:         slice(c, "bcc"),
		ReplyTo:     slice(c, "reply-to"),
		ScheduledAt: c.String("scheduled-at"),
	}
	headers, err := pairs("header", c.StringSlice("header"))
	if err != nil {
		return req, err
	}
	req.Headers = headers
	for _, t := range c.StringSlice("tag") {
		name, value, ok := strings.Cut(t, "=")
		if !ok || name == "" {
			return req, errors.Errorf("--tag %q: want name=value", t)
		}
		req.Tags = append(req.Tags, resource.Tag{Name: name, Value: value})
	}
	return req, nil
}

func (a *app) sendEmail(c *cli.Context, api resend.Emails) error {
	req, err := message(c, c.String("html"), c.String("text"))
	if err != nil {
		return err
	}
	resp, err := api.SendEmail(c.Context, req)
	if err != nil {
		return errors.Wrap(err, "unable to send email")
	}
	return a.report(resp, "Email sent successfully! ID: %s", resp.ID)
}

func (a *app) draftEmail(c *cli.Context) error {
	html, err := draft.Body(c.String("html"), c.String("html-file"))
	if err != nil {
		return err
	}
	text, err := draft.Body(c.String("text"), c.String("text-file"))
	if err != nil {
		return err
	}
	req, err := message(c, html, text)
	if err != nil {
		return err
	}
	path, err := draft.Write(a.env.Dir, a.now(), req)
	if err != nil {
		return err
	}
	a.out.Statusf("Email draft saved successfully to: %s", path)
	return nil
}

func (a *app) getEmail(c *cli.Context, api resend.Emails) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	email, err := api.GetEmail(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to get email %s", id)
	}
	return a.out.Record(email)
}

func (a *app) listEmails(c *cli.Context, api resend.Emails) error {
	opts, err := listOptions(c)
	if err != nil {
		return err
	}
	resp, err := api.ListEmails(c.Context, opts)
	if err != nil {
		return errors.Wrap(err, "unable to list emails")
	}
	return output.List(a.out, resp, emailColumns...)
}

func (a *app) cancelEmail(c *cli.Context, api resend.Emails) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	if err := api.CancelEmail(c.Context, id); err != nil {
		return errors.Wrapf(err, "unable to cancel email %s", id)
	}
	a.out.Statusf("Email %s canceled successfully!", id)
	return nil
}

func (a *app) updateEmail(c *cli.Context, api resend.Emails) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	resp, err := api.UpdateEmail(c.Context, id, resource.UpdateEmailRequest{ScheduledAt: c.String("scheduled-at")})
	if err != nil {
		return errors.Wrapf(err, "unable to update email %s", id)
	}
	return a.report(resp, "Email updated successfully! ID: %s", resp.ID)
}

func (a *app) listEmailAttachments(c *cli.Context, api resend.Emails) error {
	id, err := idArg(c)
	if err != nil {
		return err
	}
	resp, err := api.ListEmailAttachments(c.Context, id)
	if err != nil {
		return errors.Wrapf(err, "unable to list attachments of email %s", id)
	}
	return output.List(a.out, resp, attachmentColumns...)
}

func (a *app) sendEmailBatch(c *cli.Context, api resend.Emails) error {
	files, err := args(c, "FILE")
	if err != nil {
		return err
	}
	reqs, err := draft.ReadBatch(files[0])
	if err != nil {
		return err
	}
	resp, err := api.SendEmailBatch(c.Context, reqs)
	if err != nil {
		return errors.Wrap(err, "unable to send batch")
	}
	a.out.Statusf("Batch sent successfully! %d emails processed.", len(resp.Data))
	if a.out.Format() != output.Table {
		return a.out.Record(resp)
	}
	for i, r := range resp.Data {
		a.out.Statusf("  Email %d: ID %s", i+1, r.ID)
	}
	for _, e := range resp.Errors {
		a.out.Statusf("  Email %d rejected: %s", e.Index+1, e.Message)
	}
	return nil
}
