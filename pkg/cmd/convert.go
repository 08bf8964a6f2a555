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
	"os"

	"github.com/consensys/go-ethdebug/pkg/ethdebug"
	"github.com/consensys/go-ethdebug/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] combined_json_file",
	Short: "convert compiler output into ethdebug format.",
	Long: `Convert the combined JSON output of the Solidity compiler (as produced
	by "solc --combined-json bin,bin-runtime,srcmap,srcmap-runtime") into a
	document relating each instruction to its source location.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		var (
			filename = GetString(cmd, "output")
			format   = GetString(cmd, "format")
			contract = GetString(cmd, "contract")
			env      = getEnvironment(cmd)
			result   any
		)
		//
		stats := util.NewPerfStats()
		output, baseDir := readCombinedOutput(args[0])
		converter := ethdebug.NewConverter(output, baseDir)
		//
		if GetFlag(cmd, "all") {
			docs := converter.ConvertAll(env)
			//
			if len(docs) == 0 {
				fatal(EXIT_NO_RESULT, "no contracts could be converted")
			}
			//
			result = docs
		} else if doc, ok := converter.Convert(contract, env); ok {
			result = doc
		} else {
			fatal(EXIT_NO_RESULT, "failed to convert to ethdebug format")
		}
		//
		stats.Log("conversion")
		//
		bytes, err := encodeJSON(result, format, useColour(filename))
		if err != nil {
			fatal(EXIT_USAGE, err)
		}
		//
		if err := writeOutput(filename, bytes); err != nil {
			fatal(EXIT_OUTPUT, err)
		}
		//
		if filename != "" {
			log.Infof("successfully converted to %s", filename)
		}
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	convertCmd.Flags().StringP("contract", "c", "", "contract to convert (default first found)")
	convertCmd.Flags().Bool("runtime", false, "convert runtime bytecode instead of deployment bytecode")
	convertCmd.Flags().Bool("all", false, "convert all contracts")
	convertCmd.Flags().StringP("format", "f", FORMAT_PRETTY, "output format (json or pretty)")
}
