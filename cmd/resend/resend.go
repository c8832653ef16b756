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

// The resend command manages emails, domains, contacts and the other
// resources of a Resend account from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/matta/resend-cli/internal/commands"
)

func run(ctx context.Context) error {
	app := commands.NewApp(&commands.Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	return app.RunContext(ctx, os.Args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
