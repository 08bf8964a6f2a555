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

	"github.com/consensys/go-ethdebug/pkg/ethdebug"
	"github.com/consensys/go-ethdebug/pkg/evm"
	"github.com/consensys/go-ethdebug/pkg/srcmap"
	"github.com/consensys/go-ethdebug/pkg/util/source"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [flags] combined_json_file",
	Short: "disassemble a contract, annotated with source locations.",
	Long: `Print each instruction of a contract alongside the source location it
	was compiled from, as determined by the compiler's source map.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(EXIT_USAGE)
		}
		//
		var (
			name = GetString(cmd, "contract")
			env  = getEnvironment(cmd)
		)
		//
		output, baseDir := readCombinedOutput(args[0])
		key, contract, ok := output.FindContract(name)
		//
		if !ok {
			fatal(EXIT_NO_RESULT, fmt.Sprintf("unknown contract \"%s\"", name))
		}
		//
		bytecode, sourcemap := contract.Select(env)
		if bytecode == "" {
			fatal(EXIT_NO_RESULT, fmt.Sprintf("contract %s has no %s bytecode", key, env))
		}
		//
		insns, entries := ethdebug.Decode(bytecode, sourcemap)
		files := ethdebug.NewConverter(output, baseDir).SourceFiles()
		//
		fmt.Printf("%s (%s):\n", key, env)
		writeListing(os.Stdout, insns, entries, output.SourcePaths(), files)
	},
}

// Write a listing of instructions, annotating each with its corresponding
// source map entry (by position).  Where the contents of a source file are
// available, the line number and text of the enclosing line is included.
func writeListing(w io.Writer, insns []evm.Instruction, entries []srcmap.Entry, paths []string,
	files []*source.File) {
	//
	mnemonic := color.New(color.FgCyan)
	location := color.New(color.FgYellow)
	//
	for i, insn := range insns {
		text := insn.Mnemonic()
		operand := ""
		//
		if insn.IsPush() {
			operand = insn.OperandValue().Hex()
		}
		//
		if insn.IsTruncated() {
			operand += " (truncated)"
		}
		// Pad before colouring, since escape codes have no width.
		line := fmt.Sprintf("%05x  %s %-20s", insn.PC, mnemonic.Sprintf("%-8s", text), operand)
		//
		if i < len(entries) && entries[i].HasLocation() {
			line = fmt.Sprintf("%s  %s", line, location.Sprint(describeLocation(entries[i], paths, files)))
		}
		//
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// Describe the source location of a given entry as "path:line [start:length]",
// followed by the jump marker (if any) and the text of the enclosing line.
func describeLocation(entry srcmap.Entry, paths []string, files []*source.File) string {
	var (
		builder strings.Builder
		id      = entry.File.Unwrap()
		span    = entry.Span()
		path    = fmt.Sprintf("#%d", id)
		line    string
	)
	//
	if id < uint(len(paths)) {
		path = paths[id]
	}
	//
	if id < uint(len(files)) && files[id] != nil {
		enclosing := files[id].FindFirstEnclosingLine(span)
		path = fmt.Sprintf("%s:%d", path, enclosing.Number())
		line = strings.TrimSpace(enclosing.String())
	}
	//
	builder.WriteString(fmt.Sprintf("%s [%d:%d]", path, span.Start(), span.Length()))
	//
	if entry.Jump != srcmap.JUMP_NONE {
		builder.WriteString(" ")
		builder.WriteString(entry.Jump.Marker())
	}
	//
	if line != "" {
		builder.WriteString("  ")
		builder.WriteString(line)
	}
	//
	return builder.String()
}

func init() {
	rootCmd.AddCommand(disasmCmd)
	disasmCmd.Flags().StringP("contract", "c", "", "contract to disassemble (default first found)")
	disasmCmd.Flags().Bool("runtime", false, "disassemble runtime bytecode instead of deployment bytecode")
}
