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

import (
	"strconv"
	"strings"

	"github.com/consensys/go-ethdebug/pkg/util"
)

// ENTRY_SEPARATOR separates successive entries in a compressed source map.
const ENTRY_SEPARATOR = ";"

// FIELD_SEPARATOR separates the fields of a single entry.
const FIELD_SEPARATOR = ":"

// Decode a compressed source map, as emitted by the Solidity compiler, into
// one entry per instruction.  The compressed form is a ";" separated list of
// entries, each consisting of up to five ":" separated fields "s:l:f:j:m".
// Any field which is omitted, empty or invalid retains the value it had in
// the preceding entry, and an entirely empty entry repeats the preceding
// entry.  As such, decoding never fails: malformed input simply degrades into
// repetition of the last valid values.
func Decode(srcmap string) []Entry {
	if srcmap == "" {
		return []Entry{}
	}
	//
	var (
		items   = strings.Split(srcmap, ENTRY_SEPARATOR)
		entries = make([]Entry, len(items))
		dec     decoder
	)
	//
	for i, item := range items {
		entries[i] = dec.decode(item)
	}
	//
	return entries
}

// Decoder holds the current value of every field, as determined by all
// entries seen so far.  Its lifetime is exactly one call to Decode.
type decoder struct {
	current Entry
}

// Decode the next entry, updating the current state accordingly.
func (p *decoder) decode(item string) Entry {
	if item == "" {
		return p.current
	}
	//
	fields := strings.Split(item, FIELD_SEPARATOR)
	//
	p.current.Start = decodeUint(field(fields, 0)).Or(p.current.Start)
	p.current.Length = decodeUint(field(fields, 1)).Or(p.current.Length)
	p.current.File = decodeUint(field(fields, 2)).Or(p.current.File)
	//
	if jump, ok := ParseJumpKind(field(fields, 3)); ok {
		p.current.Jump = jump
	}
	//
	p.current.ModifierDepth = decodeUint(field(fields, 4)).Or(p.current.ModifierDepth)
	//
	return p.current
}

// Extract the nth field, treating those which were omitted as empty.
func field(fields []string, nth int) string {
	if nth < len(fields) {
		return fields[nth]
	}
	//
	return ""
}

// Decode a non-negative decimal integer.  Empty, negative and malformed values
// are all indistinguishable, and give an empty option.
func decodeUint(field string) util.Option[uint] {
	if field == "" {
		return util.None[uint]()
	}
	//
	val, err := strconv.ParseInt(field, 10, 64)
	//
	if err != nil || val < 0 {
		return util.None[uint]()
	}
	//
	return util.Some(uint(val))
}
