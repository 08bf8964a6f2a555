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
	"github.com/consensys/go-ethdebug/pkg/solc"
)

// VERSION is the version of the document format produced.
const VERSION = 1

// FORMAT identifies the document format produced.
const FORMAT = "ethdebug"

// Document is the debugging information for a single contract in a given
// environment.
type Document struct {
	Version      int              `json:"version"`
	Format       string           `json:"format"`
	Environment  solc.Environment `json:"environment"`
	Contract     ContractInfo     `json:"contract"`
	Sources      []Source         `json:"sources"`
	Instructions []Record         `json:"instructions"`
}

// ContractInfo identifies the contract a document describes.
type ContractInfo struct {
	// Unqualified contract name.
	Name string `json:"name"`
	// Bytecode in hex, without any "0x" prefix.
	Bytecode string `json:"bytecode"`
}

// Source describes a source file referred to by instruction contexts.
type Source struct {
	// File index used in source ranges.
	Id uint `json:"id"`
	// Path as given to the compiler.
	Path string `json:"path"`
	// Text of the file, if available.
	Content *string `json:"content,omitempty"`
}
