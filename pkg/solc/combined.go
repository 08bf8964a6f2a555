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
package solc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/consensys/go-ethdebug/pkg/util"
	log "github.com/sirupsen/logrus"
)

// CombinedOutput captures the parts of the compiler's "--combined-json" output
// which are needed for relating bytecode to source files.  Everything else in
// the document is ignored.
type CombinedOutput struct {
	// Compiler version string.
	Version string `json:"version"`
	// Source file paths, where the position of a path is its file index.
	SourceList []string `json:"sourceList"`
	// Per-source information, keyed by path.
	Sources util.OrderedMap[SourceUnit] `json:"sources"`
	// Compiled contracts, keyed by "path:Name".
	Contracts util.OrderedMap[Contract] `json:"contracts"`
}

// SourceUnit describes a single source file in the compiler output.
type SourceUnit struct {
	// Source text, when embedded by the compiler (or some other tool).
	Content *string `json:"content"`
}

// Parse a combined JSON document.
func Parse(bytes []byte) (*CombinedOutput, error) {
	var output CombinedOutput
	//
	if err := json.Unmarshal(bytes, &output); err != nil {
		return nil, fmt.Errorf("invalid combined JSON: %w", err)
	}
	//
	return &output, nil
}

// ReadFile reads and parses a combined JSON file from disk.  Files compressed
// with bzip2 are decompressed transparently.
func ReadFile(filename string) (*CombinedOutput, error) {
	log.Debugf("reading combined JSON file %s", filename)
	//
	_, bytes, err := util.ReadInputFile(filename)
	if err != nil {
		return nil, err
	}
	//
	output, err := Parse(bytes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	//
	log.Debugf("found %d contract(s) and %d source(s)", output.Contracts.Len(), len(output.SourcePaths()))
	//
	return output, nil
}

// SourcePaths returns the path of each source file, such that the index of a
// path is its file index in source maps.  When no explicit source list is
// given, this falls back to the order of the "sources" object.
func (p *CombinedOutput) SourcePaths() []string {
	if len(p.SourceList) != 0 {
		return p.SourceList
	}
	//
	return p.Sources.Keys()
}

// EmbeddedContent returns the source text embedded for a given path, if any.
func (p *CombinedOutput) EmbeddedContent(path string) util.Option[string] {
	if unit, ok := p.Sources.Get(path); ok && unit.Content != nil {
		return util.Some(*unit.Content)
	}
	//
	return util.None[string]()
}

// ContractKeys returns the fully qualified key ("path:Name") of every contract
// in the order given in the document.
func (p *CombinedOutput) ContractKeys() []string {
	return p.Contracts.Keys()
}

// FindContract locates a contract by its (unqualified) name.  An empty name
// selects the first contract in the document.  The fully qualified key of the
// contract is returned alongside it.  If several contracts share the same
// name, the first is returned.
func (p *CombinedOutput) FindContract(name string) (string, Contract, bool) {
	for _, key := range p.Contracts.Keys() {
		if name == "" || strings.HasSuffix(key, ":"+name) {
			contract, _ := p.Contracts.Get(key)
			return key, contract, true
		}
	}
	//
	return "", Contract{}, false
}

// ContractName extracts the name of a contract from its fully qualified key.
func ContractName(key string) string {
	if i := strings.LastIndex(key, ":"); i >= 0 {
		return key[i+1:]
	}
	//
	return key
}
