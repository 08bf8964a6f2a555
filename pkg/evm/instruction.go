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
	"fmt"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

// Instruction is a single instruction decoded from a bytecode buffer.  This
// consists of the instruction's program counter along with the raw bytes it
// occupies (i.e. the opcode followed by any immediate operand).  The bytes
// alias the original buffer and must not be modified.
type Instruction struct {
	// Byte offset of this instruction within the bytecode.
	PC uint
	// Raw bytes of this instruction.  This holds at least one byte (the
	// opcode), and may hold fewer bytes than the declared width when the
	// bytecode ended part way through an operand.
	Bytes []byte
}

// PushWidth returns the number of operand bytes which follow a given opcode.
// This is non-zero only for PUSH1 through PUSH32.
func PushWidth(opcode byte) uint {
	op := vm.OpCode(opcode)
	//
	if op >= vm.PUSH1 && op <= vm.PUSH32 {
		return uint(op-vm.PUSH1) + 1
	}
	//
	return 0
}

// Opcode returns the first byte of this instruction.
func (p *Instruction) Opcode() byte {
	return p.Bytes[0]
}

// Operand returns the immediate operand bytes of this instruction (which is
// empty for everything other than a PUSH).
func (p *Instruction) Operand() []byte {
	return p.Bytes[1:]
}

// IsPush determines whether this is one of PUSH1 through PUSH32.
func (p *Instruction) IsPush() bool {
	return PushWidth(p.Opcode()) != 0
}

// Width returns the declared width of this instruction in bytes.  This may
// exceed the number of bytes actually held by a truncated instruction.
func (p *Instruction) Width() uint {
	return 1 + PushWidth(p.Opcode())
}

// IsTruncated determines whether this instruction holds fewer bytes than its
// declared width.
func (p *Instruction) IsTruncated() bool {
	return uint(len(p.Bytes)) < p.Width()
}

// Mnemonic returns the assembly name of this instruction's opcode.
func (p *Instruction) Mnemonic() string {
	return vm.OpCode(p.Opcode()).String()
}

// OperandValue returns the immediate operand of a PUSH as a 256-bit word.  A
// truncated operand is padded with zero bytes on the right, matching how the
// EVM reads code beyond the end of the buffer.
func (p *Instruction) OperandValue() *uint256.Int {
	var (
		operand = make([]byte, PushWidth(p.Opcode()))
		value   uint256.Int
	)
	//
	copy(operand, p.Operand())
	//
	return value.SetBytes(operand)
}

// Hex returns the raw bytes of this instruction as a (lower case) hex string.
func (p *Instruction) Hex() string {
	return hex.EncodeToString(p.Bytes)
}

func (p *Instruction) String() string {
	if p.IsPush() {
		return fmt.Sprintf("%s %s", p.Mnemonic(), p.OperandValue().Hex())
	}
	//
	return p.Mnemonic()
}
