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
package srcmap

// JumpKind classifies the control-flow role of an instruction as reported by
// the compiler.  This is purely descriptive: nothing here follows or validates
// jumps.
type JumpKind uint8

// JUMP_NONE indicates an ordinary instruction (or an unknown jump marker).
const JUMP_NONE JumpKind = 0

// JUMP_REGULAR indicates a jump which neither enters nor leaves a function
// (marker "-").
const JUMP_REGULAR JumpKind = 1

// JUMP_INTO indicates a jump into a function (marker "i").
const JUMP_INTO JumpKind = 2

// JUMP_OUT indicates a jump returning out of a function (marker "o").
const JUMP_OUT JumpKind = 3

// ParseJumpKind converts a jump marker into its corresponding kind.  Anything
// other than the three recognised markers is reported as not ok.
func ParseJumpKind(marker string) (JumpKind, bool) {
	switch marker {
	case "-":
		return JUMP_REGULAR, true
	case "i":
		return JUMP_INTO, true
	case "o":
		return JUMP_OUT, true
	default:
		return JUMP_NONE, false
	}
}

// Marker returns the single character marker used in the compressed encoding,
// or the empty string for JUMP_NONE.
func (k JumpKind) Marker() string {
	switch k {
	case JUMP_REGULAR:
		return "-"
	case JUMP_INTO:
		return "i"
	case JUMP_OUT:
		return "o"
	default:
		return ""
	}
}

func (k JumpKind) String() string {
	switch k {
	case JUMP_REGULAR:
		return "regular"
	case JUMP_INTO:
		return "into"
	case JUMP_OUT:
		return "out"
	default:
		return "none"
	}
}
