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
package evm

import (
	"encoding/hex"
	"regexp"
	"strings"
)

// Unlinked library references appear in compiler output as 40 character
// placeholders (e.g. "__$<34 hex digits>$__") standing in for a 20 byte
// address.
var linkPlaceholder = regexp.MustCompile(`__.{36}__`)

// Segment splits a hex encoded bytecode string into its instructions.  See
// DecodeHex and SegmentBytes for how malformed input is handled.
func Segment(bytecode string) []Instruction {
	return SegmentBytes(DecodeHex(bytecode))
}

// DecodeHex converts a hex encoded bytecode string (with or without a leading
// "0x") into raw bytes.  Unlinked library placeholders decode as zero bytes,
// thus preserving the offsets of everything which follows.  Decoding stops
// at the first character which is not a hex digit, and a dangling half byte at
// the end is dropped.
func DecodeHex(bytecode string) []byte {
	bytecode = strings.TrimPrefix(strings.TrimPrefix(bytecode, "0x"), "0X")
	// Substitute unlinked library addresses
	if strings.Contains(bytecode, "__") {
		bytecode = linkPlaceholder.ReplaceAllLiteralString(bytecode, strings.Repeat("0", 40))
	}
	// Ignore any dangling half byte
	src := []byte(bytecode[:len(bytecode)&^1])
	dst := make([]byte, len(src)/2)
	// Decode returns the number of bytes decoded before any invalid character.
	n, _ := hex.Decode(dst, src)
	//
	return dst[:n]
}

// SegmentBytes performs a linear sweep over a bytecode buffer, splitting it
// into consecutive instructions.  No attempt is made to follow control flow,
// so data embedded in the code (e.g. metadata) is decoded as instructions like
// everything else.  If the buffer ends part way through a PUSH operand, the
// final instruction is truncated.  The program counter always advances by the
// declared width of an instruction, irrespective of truncation.
func SegmentBytes(code []byte) []Instruction {
	var (
		insns []Instruction
		pc    uint
	)
	//
	for i := 0; i < len(code); {
		width := 1 + PushWidth(code[i])
		end := min(i+int(width), len(code))
		//
		insns = append(insns, Instruction{pc, code[i:end]})
		//
		pc += width
		i = end
	}
	//
	return insns
}
