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
	"fmt"

	"github.com/consensys/go-ethdebug/pkg/util"
	"github.com/consensys/go-ethdebug/pkg/util/source"
)

// Entry is a single decoded source map record.  Each field which is absent
// (because it was never given, or was only ever given as something invalid) is
// represented by an empty option.
type Entry struct {
	// Byte offset into the source file.
	Start util.Option[uint]
	// Number of bytes covered in the source file.
	Length util.Option[uint]
	// Index of the source file (e.g. into the compiler's source list).
	File util.Option[uint]
	// Jump classification for this instruction.
	Jump JumpKind
	// Nesting depth of inlined modifier code.
	ModifierDepth util.Option[uint]
}

// HasLocation determines whether this entry identifies a location in some
// source file.  This requires the start, length and file index to all be
// present.  Negative file indices (e.g. for compiler generated code) are never
// decoded, hence are treated as absent.
func (e Entry) HasLocation() bool {
	return e.Start.HasValue() && e.Length.HasValue() && e.File.HasValue()
}

// Span returns the source range identified by this entry, or panics if the
// entry has no location.
func (e Entry) Span() source.Span {
	return source.NewSpanOfLength(e.Start.Unwrap(), e.Length.Unwrap())
}

// String renders this entry in its uncompressed "s:l:f:j:m" form, where absent
// fields are left empty.
func (e Entry) String() string {
	return fmt.Sprintf("%s:%s:%s:%s:%s", e.Start, e.Length, e.File, e.Jump.Marker(), e.ModifierDepth)
}
