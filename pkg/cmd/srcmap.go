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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-ethdebug/pkg/srcmap"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var srcmapCmd = &cobra.Command{
	Use:   "srcmap [flags] source_map",
	Short: "decode a compressed source map.",
	Long: `Decode a compressed source map (as emitted by the Solidity compiler)
	and print each entry in full.  Use "-" to read the source map from stdin.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		text := args[0]
		//
		if text == "-" {
			bytes, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal(EXIT_INPUT, err)
			}
			//
			text = strings.TrimSpace(string(bytes))
		}
		//
		entries := srcmap.Decode(text)
		log.Debugf("decoded %d source map entries", len(entries))
		//
		writeEntries(os.Stdout, entries)
	},
}

// Write each entry in its uncompressed form, one per line.
func writeEntries(w io.Writer, entries []srcmap.Entry) {
	for i, e := range entries {
		if e.HasLocation() {
			fmt.Fprintf(w, "%d\t%s\n", i, e)
		} else {
			fmt.Fprintf(w, "%d\t%s\t(no location)\n", i, e)
		}
	}
}

func init() {
	rootCmd.AddCommand(srcmapCmd)
}
