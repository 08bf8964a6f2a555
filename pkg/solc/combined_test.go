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
	"slices"
	"testing"
)

const testFile = "../../testdata/solc/Counter.json"

func Test_Combined_01(t *testing.T) {
	output := readTestFile(t)
	//
	if output.Version != "0.8.26+commit.8a97fa7a.Linux.g++" {
		t.Errorf("unexpected version %s", output.Version)
	} else if !slices.Equal(output.SourcePaths(), []string{"Counter.sol", "Lib.sol"}) {
		t.Errorf("unexpected source paths %v", output.SourcePaths())
	} else if !slices.Equal(output.ContractKeys(), []string{"Lib.sol:Lib", "Counter.sol:Counter"}) {
		t.Errorf("unexpected contract order %v", output.ContractKeys())
	}
}

func Test_Combined_02(t *testing.T) {
	// First contract in document order
	checkFindContract(t, "", "Lib.sol:Lib")
}

func Test_Combined_03(t *testing.T) {
	checkFindContract(t, "Counter", "Counter.sol:Counter")
}

func Test_Combined_04(t *testing.T) {
	// Names must match after the colon exactly
	output := readTestFile(t)
	//
	for _, name := range []string{"Count", "counter", "Missing"} {
		if _, _, ok := output.FindContract(name); ok {
			t.Errorf("unexpectedly found contract %s", name)
		}
	}
}

func Test_Combined_05(t *testing.T) {
	output := readTestFile(t)
	//
	if content := output.EmbeddedContent("Lib.sol"); !content.HasValue() || content.Unwrap() != "library Lib {}\n" {
		t.Errorf("unexpected embedded content for Lib.sol")
	} else if output.EmbeddedContent("Counter.sol").HasValue() {
		t.Errorf("unexpected embedded content for Counter.sol")
	} else if output.EmbeddedContent("Other.sol").HasValue() {
		t.Errorf("unexpected embedded content for Other.sol")
	}
}

func Test_Combined_06(t *testing.T) {
	// Source paths fall back to sources object
	output, err := Parse([]byte(`{"sources": {"b.sol": {}, "a.sol": {}}, "contracts": {}}`))
	//
	if err != nil {
		t.Fatal(err)
	} else if !slices.Equal(output.SourcePaths(), []string{"b.sol", "a.sol"}) {
		t.Errorf("unexpected source paths %v", output.SourcePaths())
	} else if _, _, ok := output.FindContract(""); ok {
		t.Errorf("expected no contracts")
	}
}

func Test_Combined_07(t *testing.T) {
	if _, err := Parse([]byte(`{"contracts": [}`)); err == nil {
		t.Errorf("expected error for malformed JSON")
	} else if _, err := ReadFile("../../testdata/solc/Missing.json"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func Test_Contract_01(t *testing.T) {
	checkSelect(t, "Counter", CREATE, "0x6080604052", "24:70:0:-:0;;")
}

func Test_Contract_02(t *testing.T) {
	checkSelect(t, "Counter", RUNTIME, "600160010100", "24:70:0:-:0;;59:33:0:i:1")
}

func Test_Contract_03(t *testing.T) {
	// Runtime bytecode falls back to creation bytecode
	checkSelect(t, "Lib", RUNTIME, "00", "")
}

func Test_ContractName_01(t *testing.T) {
	for key, name := range map[string]string{
		"Counter.sol:Counter":        "Counter",
		"contracts/a:b.sol:Token":    "Token",
		"Standalone":                 "Standalone",
		"/abs/path/Lib.sol:Lib":      "Lib",
		"Counter.sol:":               "",
		"nested/dir/Counter.sol:Cnt": "Cnt",
	} {
		if actual := ContractName(key); actual != name {
			t.Errorf("expected name %q for %q, got %q", name, key, actual)
		}
	}
}

func Test_Environment_01(t *testing.T) {
	for _, name := range []string{"create", "runtime"} {
		env, err := ParseEnvironment(name)
		if err != nil || env.String() != name {
			t.Errorf("environment %s did not round trip", name)
		}
	}
	//
	if _, err := ParseEnvironment("deploy"); err == nil {
		t.Errorf("expected error for unknown environment")
	}
}

// ============================================================================
// Helpers
// ============================================================================

func readTestFile(t *testing.T) *CombinedOutput {
	output, err := ReadFile(testFile)
	if err != nil {
		t.Fatal(err)
	}
	//
	return output
}

func checkFindContract(t *testing.T, name string, expected string) {
	key, _, ok := readTestFile(t).FindContract(name)
	//
	if !ok {
		t.Errorf("contract \"%s\" not found", name)
	} else if key != expected {
		t.Errorf("expected contract %s, got %s", expected, key)
	}
}

func checkSelect(t *testing.T, name string, env Environment, bytecode string, srcmap string) {
	_, contract, ok := readTestFile(t).FindContract(name)
	//
	if !ok {
		t.Fatalf("contract \"%s\" not found", name)
	}
	//
	actualBytecode, actualSrcmap := contract.Select(env)
	//
	if actualBytecode != bytecode {
		t.Errorf("expected bytecode %s, got %s", bytecode, actualBytecode)
	} else if actualSrcmap != srcmap {
		t.Errorf("expected source map %s, got %s", srcmap, actualSrcmap)
	}
}
