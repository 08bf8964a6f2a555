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
package ethdebug

import (
	"fmt"

	"github.com/consensys/go-ethdebug/pkg/evm"
	"github.com/consensys/go-ethdebug/pkg/srcmap"
)

// Record describes a single instruction of a contract's bytecode, along with
// the source context it was compiled from (where known).
type Record struct {
	// Byte offset of the instruction.
	PC uint `json:"pc"`
	// Opcode as two hex digits.
	Opcode string `json:"opcode"`
	// All bytes of the instruction (including any operand) as hex digits.
	Bytes string `json:"bytes"`
	// Source context, if any.
	Context *Context `json:"context,omitempty"`
}

// NewRecord constructs a record for an instruction without any context.
func NewRecord(insn evm.Instruction) Record {
	return Record{
		PC:     insn.PC,
		Opcode: fmt.Sprintf("%02x", insn.Opcode()),
		Bytes:  insn.Hex(),
	}
}

// BuildRecords constructs one record for each instruction.  Instructions and
// source map entries are paired by their position in the respective sequences
// (i.e. the ith entry describes the ith instruction), never by program counter.
// Instructions for which there is no corresponding entry get no context, and
// any surplus entries are ignored.
func BuildRecords(insns []evm.Instruction, entries []srcmap.Entry) []Record {
	var (
		records = make([]Record, len(insns))
		n       = min(len(insns), len(entries))
	)
	//
	for i, insn := range insns {
		records[i] = NewRecord(insn)
	}
	//
	for i := 0; i < n; i++ {
		records[i].Context = NewContext(entries[i])
	}
	//
	return records
}
