// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"golang.org/x/term"
)

// FORMAT_JSON writes compact JSON.
const FORMAT_JSON = "json"

// FORMAT_PRETTY writes indented JSON, coloured when written to a terminal.
const FORMAT_PRETTY = "pretty"

// Encode a value as JSON in a given format.  Colour is only ever applied to
// pretty output.
func encodeJSON(value any, format string, colour bool) ([]byte, error) {
	switch format {
	case FORMAT_JSON:
		return json.Marshal(value)
	case FORMAT_PRETTY:
		if colour {
			return prettyjson.Marshal(value)
		}
		//
		return json.MarshalIndent(value, "", "  ")
	default:
		return nil, fmt.Errorf("unknown output format \"%s\"", format)
	}
}

// Determine whether colour should be used for output written to a given file,
// where the empty filename denotes stdout.
func useColour(filename string) bool {
	return filename == "" && !color.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// Write bytes to a given file, or to stdout when the filename is empty.
func writeOutput(filename string, bytes []byte) error {
	bytes = append(bytes, '\n')
	//
	if filename == "" {
		_, err := os.Stdout.Write(bytes)
		return err
	}
	//
	return os.WriteFile(filename, bytes, 0o644)
}
