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
	"os"
	"path/filepath"
	"testing"
)

func Test_ReadInputFile_01(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "input.json")
	//
	if err := os.WriteFile(filename, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	//
	name, bytes, err := ReadInputFile(filename)
	//
	if err != nil {
		t.Fatal(err)
	} else if name != filename {
		t.Errorf("unexpected name %s", name)
	} else if string(bytes) != "{}" {
		t.Errorf("unexpected contents %q", string(bytes))
	}
}

func Test_ReadInputFile_02(t *testing.T) {
	_, _, err := ReadInputFile(filepath.Join(t.TempDir(), "missing.json"))
	//
	if !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func Test_FileExists_01(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "a.sol")
	//
	if FileExists(filename) {
		t.Errorf("file should not exist yet")
	}
	//
	if err := os.WriteFile(filename, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	//
	if !FileExists(filename) {
		t.Errorf("file should exist")
	} else if FileExists(dir) {
		t.Errorf("directory is not a regular file")
	}
}
