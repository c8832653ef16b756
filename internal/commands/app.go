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

// Package commands defines the resend command tree.  Each command maps
// to exactly one API operation; handlers ask for the narrow resend
// interface of the resource they manage.
package commands

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matta/resend-cli/internal/config"
	"github.com/matta/resend-cli/internal/logger"
	"github.com/matta/resend-cli/internal/output"
	"github.com/matta/resend-cli/internal/resend"
	"github.com/matta/resend-cli/internal/resendhttp"
	"github.com/matta/resend-cli/internal/tracehttp"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

// Env is the process environment the commands run in.
type Env struct {
	Stdout io.Writer
	Stderr io.Writer

	// Dir is where drafts are written.  Empty means the working
	// directory.
	Dir string
	// Now stamps draft file names.  Nil means time.Now.
	Now func() time.Time
	// ConfigPath overrides config.DefaultPath.
	ConfigPath string
	// API, when set, is used instead of a client built from the
	// configuration.
	API resend.API
}

// app holds per-invocation state set up by the global flags.
type app struct {
	env *Env
	log *zap.Logger
	out *output.Printer
	api resend.API
}

// NewApp returns the command-line application.
func NewApp(env *Env) *cli.App {
	a := &app{env: env, log: zap.NewNop()}
	return &cli.App{
		Name:      "resend",
		Usage:     "Manage your emails, domains, and more",
		Writer:    env.Stdout,
		ErrWriter: env.Stderr,

		// Repeatable flags take one value each; header values and
		// display names contain commas.
		DisableSliceFlagSeparator: true,

		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "trace", Aliases: []string{"T"}, Usage: "dump HTTP requests and responses to stderr"},
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: string(output.Table), Usage: "output format: table, json or yaml"},
		},
		Before: a.setup,
		After: func(*cli.Context) error {
			// Sync fails on terminals; nothing useful to report.
			_ = a.log.Sync()
			return nil
		},
		Commands: []*cli.Command{
			configCommand(a),
			emailsCommand(a),
			domainsCommand(a),
			contactsCommand(a),
			segmentsCommand(a),
			templatesCommand(a),
			topicsCommand(a),
			webhooksCommand(a),
			broadcastsCommand(a),
			apiKeysCommand(a),
			contactPropertiesCommand(a),
			receivingCommand(a),
		},
	}
}

func (a *app) setup(c *cli.Context) error {
	format, err := output.ParseFormat(c.String("output"))
	if err != nil {
		return err
	}
	// --trace output is logged at debug level.
	a.log = logger.New(a.env.Stderr, c.Bool("debug") || c.Bool("trace"))
	a.out = output.New(format, a.env.Stdout, a.env.Stderr)
	return nil
}

func (a *app) configPath() (string, error) {
	if a.env.ConfigPath != "" {
		return a.env.ConfigPath, nil
	}
	return config.DefaultPath()
}

// client returns the API, building it from the configuration on first
// use.
func (a *app) client(c *cli.Context) (resend.API, error) {
	if a.api != nil {
		return a.api, nil
	}
	if a.env.API != nil {
		a.api = a.env.API
		return a.api, nil
	}
	path, err := a.configPath()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	var base http.RoundTripper = http.DefaultTransport
	if c.Bool("trace") {
		base = tracehttp.Wrap(base, a.log)
	}
	hc, err := resendhttp.New(cfg.APIKey, base)
	if err != nil {
		return nil, errors.Wrap(err, "unable to initialize HTTP client")
	}
	a.api = resend.New(hc, resend.WithBaseURL(cfg.BaseURL), resend.WithLogger(a.log))
	return a.api, nil
}

func (a *app) now() time.Time {
	if a.env.Now != nil {
		return a.env.Now()
	}
	return time.Now()
}

// action adapts a handler that needs the API subset T.
func action[T any](a *app, h func(c *cli.Context, api T) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		api, err := a.client(c)
		if err != nil {
			return err
		}
		return h(c, api.(T))
	}
}

// args returns the positional arguments, requiring exactly one per name.
func args(c *cli.Context, names ...string) ([]string, error) {
	if c.NArg() != len(names) {
		usage := make([]string, len(names))
		for i, n := range names {
			usage[i] = "<" + n + ">"
		}
		return nil, errors.Errorf("usage: %s %s", c.Command.HelpName, strings.Join(usage, " "))
	}
	return c.Args().Slice(), nil
}

func idArg(c *cli.Context) (string, error) {
	a, err := args(c, "ID")
	if err != nil {
		return "", err
	}
	return a[0], nil
}

// report prints a confirmation followed by the record.
func (a *app) report(v interface{}, format string, fmtArgs ...interface{}) error {
	a.out.Statusf(format, fmtArgs...)
	return a.out.Record(v)
}
