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
	"path/filepath"

	"github.com/consensys/go-ethdebug/pkg/solc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EXIT_USAGE is the exit code for invalid command-line usage.
const EXIT_USAGE = 1

// EXIT_INPUT is the exit code when the input file cannot be read.
const EXIT_INPUT = 2

// EXIT_NO_RESULT is the exit code when nothing could be produced for the
// requested contract.
const EXIT_NO_RESULT = 3

// EXIT_OUTPUT is the exit code when the output cannot be written.
const EXIT_OUTPUT = 4

// GetFlag gets an expected flag, or exits if no such flag exists.
func GetFlag(cmd *cobra.Command, flag string) bool {
	checkFlag(cmd, flag)
	return viper.GetBool(flag)
}

// GetString gets an expected string flag, or exits if no such flag exists.
func GetString(cmd *cobra.Command, flag string) string {
	checkFlag(cmd, flag)
	return viper.GetString(flag)
}

func checkFlag(cmd *cobra.Command, flag string) {
	if cmd.Flags().Lookup(flag) == nil && cmd.InheritedFlags().Lookup(flag) == nil {
		fatal(EXIT_USAGE, fmt.Sprintf("unknown flag \"%s\"", flag))
	}
}

// Determine the environment selected on the command line.
func getEnvironment(cmd *cobra.Command) solc.Environment {
	if GetFlag(cmd, "runtime") {
		return solc.RUNTIME
	}
	//
	return solc.CREATE
}

// Read a combined JSON file, or exit.  The directory containing the file is
// returned as well, since source paths are relative to it.
func readCombinedOutput(filename string) (*solc.CombinedOutput, string) {
	output, err := solc.ReadFile(filename)
	//
	if err != nil {
		fatal(EXIT_INPUT, err)
	}
	//
	return output, filepath.Dir(filename)
}

// Report an error to stderr and exit with a given code.
func fatal(code int, msg any) {
	fmt.Fprintln(os.Stderr, color.RedString("%v", msg))
	os.Exit(code)
}
