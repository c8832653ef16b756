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

// Package draft moves send requests between the API types and local
// files: drafts written for later review and batch files read for
// sending.
package draft

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/matta/resend-cli/internal/resource"
	"github.com/pkg/errors"
)

const draftFileMode = 0600

// Name returns the file name of a draft saved at t.
func Name(t time.Time) string {
	return fmt.Sprintf("draft_%d.json", t.Unix())
}

// Write saves req as indented JSON in dir and returns the file's path.
// An existing draft is never overwritten.
func Write(dir string, now time.Time, req resource.SendEmailRequest) (string, error) {
	b, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "unable to encode draft")
	}
	path := filepath.Join(dir, Name(now))
	if err := create(path, bytes.NewReader(b)); err != nil {
		return "", err
	}
	return path, nil
}

// create writes r to a new file at path.  A file that could not be
// written completely is removed.
func create(path string, r io.Reader) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, draftFileMode)
	if err != nil {
		return errors.Wrapf(err, "unable to create draft %s", path)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "unable to write draft %s", path)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return errors.Wrapf(err, "unable to write draft %s", path)
	}
	return nil
}

// Body returns the contents of file when it is set, and inline
// otherwise.
func Body(inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", file)
	}
	return string(b), nil
}

// ReadBatch reads a JSON array of send requests.
func ReadBatch(path string) ([]resource.SendEmailRequest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read batch file %s", path)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(b), []byte("[")) {
		return nil, errors.Errorf("batch file %s must contain a JSON array of emails", path)
	}
	var reqs []resource.SendEmailRequest
	if err := json.Unmarshal(b, &reqs); err != nil {
		return nil, errors.Wrapf(err, "unable to parse batch file %s", path)
	}
	return reqs, nil
}
