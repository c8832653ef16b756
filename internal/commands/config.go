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
	"github.com/matta/resend-cli/internal/config"
	"github.com/urfave/cli/v2"
)

func configCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Save the API key to the config file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "api-key", Required: true, Usage: "API key to store"},
		},
		Action: func(c *cli.Context) error {
			path, err := a.configPath()
			if err != nil {
				return err
			}
			if err := config.Save(path, c.String("api-key")); err != nil {
				return err
			}
			a.out.Statusf("Configuration saved successfully!")
			return nil
		},
	}
}
