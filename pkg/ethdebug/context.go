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
	"github.com/consensys/go-ethdebug/pkg/srcmap"
)

// Context describes what is known about the origin of an instruction.
type Context struct {
	Code CodeContext `json:"code"`
}

// CodeContext relates an instruction to a range of source code.
type CodeContext struct {
	// Source range this instruction was compiled from.
	Source SourceRange `json:"source"`
	// Jump marker ("-", "i" or "o"), or empty for ordinary instructions.
	Jump string `json:"jump,omitempty"`
	// Depth of inlined modifier code, where zero means none.
	ModifierDepth uint `json:"modifierDepth,omitempty"`
}

// SourceRange identifies a contiguous range of bytes in a given source file.
type SourceRange struct {
	// Index of the source file.
	Id uint `json:"id"`
	// Byte range within the file.
	Range Range `json:"range"`
}

// Range is a byte range given by its starting offset and length.
type Range struct {
	Start  uint `json:"start"`
	Length uint `json:"length"`
}

// NewContext constructs the context for a given source map entry.  This
// returns nil when the entry identifies no source location.
func NewContext(entry srcmap.Entry) *Context {
	if !entry.HasLocation() {
		return nil
	}
	//
	code := CodeContext{
		Source: SourceRange{
			Id:    entry.File.Unwrap(),
			Range: Range{entry.Start.Unwrap(), entry.Length.Unwrap()},
		},
		Jump: entry.Jump.Marker(),
	}
	// Zero depth is indistinguishable from no modifier.
	code.ModifierDepth = entry.ModifierDepth.UnwrapOr(0)
	//
	return &Context{code}
}
