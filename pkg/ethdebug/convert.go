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
	"path/filepath"
	"strings"

	"github.com/consensys/go-ethdebug/pkg/evm"
	"github.com/consensys/go-ethdebug/pkg/solc"
	"github.com/consensys/go-ethdebug/pkg/srcmap"
	"github.com/consensys/go-ethdebug/pkg/util"
	"github.com/consensys/go-ethdebug/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// Converter produces debugging documents for the contracts found in a given
// compiler output.
type Converter struct {
	// Compiler output being converted.
	output *solc.CombinedOutput
	// Directory against which source paths are resolved when reading source
	// contents from disk.
	baseDir string
}

// NewConverter constructs a converter for a given compiler output.  Source
// paths are resolved relative to baseDir when looking for their contents.
func NewConverter(output *solc.CombinedOutput, baseDir string) *Converter {
	return &Converter{output, baseDir}
}

// Convert produces the document for a named contract (or the first contract,
// if the name is empty) in a given environment.  This fails when no such
// contract exists, or when either its bytecode or source map is empty.
func (p *Converter) Convert(name string, env solc.Environment) (*Document, bool) {
	key, contract, ok := p.output.FindContract(name)
	//
	if !ok {
		log.Debugf("no contract matching \"%s\"", name)
		return nil, false
	}
	//
	return p.convert(key, contract, env, p.Sources())
}

// ConvertAll produces a document for every contract in the compiler output,
// in the order the contracts are given.  Contracts are converted concurrently,
// and those which cannot be converted are skipped.
func (p *Converter) ConvertAll(env solc.Environment) []Document {
	var (
		keys    = p.output.ContractKeys()
		sources = p.Sources()
		results = make([]*Document, len(keys))
		docs    = make([]Document, 0, len(keys))
		c       = make(chan util.Pair[int, *Document], len(keys))
	)
	// Launch a converter for each contract
	for i, key := range keys {
		contract, _ := p.output.Contracts.Get(key)
		//
		go func() {
			doc, _ := p.convert(key, contract, env, sources)
			c <- util.NewPair(i, doc)
		}()
	}
	// Collect results back in order
	for range keys {
		i, doc := (<-c).Unpack()
		results[i] = doc
	}
	//
	for i, doc := range results {
		if doc != nil {
			docs = append(docs, *doc)
		} else {
			log.Debugf("skipping contract %s", keys[i])
		}
	}
	//
	return docs
}

// Sources returns a descriptor for each source file, where the position of a
// descriptor matches its file index.  Contents are read from disk where
// possible, otherwise any content embedded in the compiler output is used.
func (p *Converter) Sources() []Source {
	var (
		paths   = p.output.SourcePaths()
		sources = make([]Source, len(paths))
	)
	//
	for i, path := range paths {
		sources[i] = Source{Id: uint(i), Path: path}
		//
		if content := p.readContent(path); content.HasValue() {
			text := content.Unwrap()
			sources[i].Content = &text
		}
	}
	//
	return sources
}

// SourceFiles returns the source files referred to by file index, for those
// whose contents are available.  Missing files are nil.
func (p *Converter) SourceFiles() []*source.File {
	var (
		paths = p.output.SourcePaths()
		files = make([]*source.File, len(paths))
	)
	//
	for i, path := range paths {
		if content := p.readContent(path); content.HasValue() {
			files[i] = source.NewSourceFile(path, []byte(content.Unwrap()))
		}
	}
	//
	return files
}

func (p *Converter) readContent(path string) util.Option[string] {
	filename := path
	//
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(p.baseDir, path)
	}
	//
	if util.FileExists(filename) {
		file, err := source.ReadFile(filename)
		//
		if err == nil {
			return util.Some(string(file.Contents()))
		}
		//
		log.Debugf("cannot read source file %s: %s", filename, err)
	}
	//
	return p.output.EmbeddedContent(path)
}

func (p *Converter) convert(key string, contract solc.Contract, env solc.Environment,
	sources []Source) (*Document, bool) {
	//
	bytecode, sourcemap := contract.Select(env)
	//
	if bytecode == "" || sourcemap == "" {
		log.Debugf("contract %s has no %s bytecode or source map", key, env)
		return nil, false
	}
	//
	insns, entries := Decode(bytecode, sourcemap)
	//
	log.Debugf("contract %s (%s): %d instructions, %d source map entries", key, env, len(insns), len(entries))
	//
	if len(insns) != len(entries) {
		log.Debugf("contract %s (%s): instruction and source map lengths differ", key, env)
	}
	//
	return &Document{
		Version:     VERSION,
		Format:      FORMAT,
		Environment: env,
		Contract: ContractInfo{
			Name:     solc.ContractName(key),
			Bytecode: strings.TrimPrefix(bytecode, "0x"),
		},
		Sources:      sources,
		Instructions: BuildRecords(insns, entries),
	}, true
}

// Decode segments bytecode into instructions and decodes a source map into its
// entries.  Since neither depends on the other, the two are decoded
// concurrently.
func Decode(bytecode string, sourcemap string) ([]evm.Instruction, []srcmap.Entry) {
	c := make(chan []srcmap.Entry, 1)
	//
	go func() {
		c <- srcmap.Decode(sourcemap)
	}()
	//
	insns := evm.Segment(bytecode)
	//
	return insns, <-c
}
