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
package util

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"
	"path"
	"strings"
)

// ReadInputFile reads the entire contents of a given input file.  Files ending
// in ".bz2" are decompressed on the fly.  The returned name is the filename
// with any compression extension removed, which is useful for determining the
// underlying file format.
func ReadInputFile(filename string) (string, []byte, error) {
	file, err := os.Open(filename)
	if err != nil {
		return filename, nil, err
	}
	//
	defer file.Close()
	// apply compression
	var reader io.Reader
	// check extension
	switch path.Ext(filename) {
	case ".bz2":
		reader = bzip2.NewReader(file)
		filename = strings.TrimSuffix(filename, ".bz2")
	default:
		reader = file
	}
	//
	bytes, err := io.ReadAll(bufio.NewReaderSize(reader, 1024*128))
	//
	return filename, bytes, err
}

// FileExists checks whether a regular file exists at the given path.
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	//
	return err == nil && info.Mode().IsRegular()
}
