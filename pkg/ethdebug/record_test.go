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
	"encoding/json"
	"strings"
	"testing"

	"github.com/consensys/go-ethdebug/pkg/evm"
	"github.com/consensys/go-ethdebug/pkg/srcmap"
)

func Test_Records_01(t *testing.T) {
	checkRecords(t, "6001600101", "0:10:0:-:0;;5:3:0:i:1",
		`{"pc":0,"opcode":"60","bytes":"6001","context":{"code":{"source":{"id":0,"range":{"start":0,"length":10}},"jump":"-"}}}`,
		`{"pc":2,"opcode":"60","bytes":"6001","context":{"code":{"source":{"id":0,"range":{"start":0,"length":10}},"jump":"-"}}}`,
		`{"pc":4,"opcode":"01","bytes":"01","context":{"code":{"source":{"id":0,"range":{"start":5,"length":3}},"jump":"i","modifierDepth":1}}}`)
}

func Test_Records_02(t *testing.T) {
	// More instructions than entries
	checkRecords(t, "6001600101", "0:10:0",
		`{"pc":0,"opcode":"60","bytes":"6001","context":{"code":{"source":{"id":0,"range":{"start":0,"length":10}}}}}`,
		`{"pc":2,"opcode":"60","bytes":"6001"}`,
		`{"pc":4,"opcode":"01","bytes":"01"}`)
}

func Test_Records_03(t *testing.T) {
	// More entries than instructions
	checkRecords(t, "01", "0:1:0;1:1:0;2:1:0",
		`{"pc":0,"opcode":"01","bytes":"01","context":{"code":{"source":{"id":0,"range":{"start":0,"length":1}}}}}`)
}

func Test_Records_04(t *testing.T) {
	// No location, so no context
	checkRecords(t, "0001", "0:1:-1:-;:::o",
		`{"pc":0,"opcode":"00","bytes":"00"}`,
		`{"pc":1,"opcode":"01","bytes":"01"}`)
}

func Test_Records_05(t *testing.T) {
	// Correlation is positional, even when a PUSH is truncated
	checkRecords(t, "007f01", "1:2:0;3:4:1:o:2",
		`{"pc":0,"opcode":"00","bytes":"00","context":{"code":{"source":{"id":0,"range":{"start":1,"length":2}}}}}`,
		`{"pc":1,"opcode":"7f","bytes":"7f01","context":{"code":{"source":{"id":1,"range":{"start":3,"length":4}},"jump":"o","modifierDepth":2}}}`)
}

func Test_Records_06(t *testing.T) {
	checkRecords(t, "", "0:1:0")
	checkRecords(t, "00", "", `{"pc":0,"opcode":"00","bytes":"00"}`)
}

func Test_Context_01(t *testing.T) {
	// Modifier depth of zero is omitted
	for _, sm := range []string{"0:1:0:-:0", "0:1:0:-", "0:1:0"} {
		ctx := NewContext(srcmap.Decode(sm)[0])
		//
		if ctx == nil {
			t.Errorf("expected context for %s", sm)
		} else if ctx.Code.ModifierDepth != 0 {
			t.Errorf("unexpected modifier depth for %s", sm)
		} else if bytes, _ := json.Marshal(ctx); strings.Contains(string(bytes), "modifierDepth") {
			t.Errorf("modifier depth serialised for %s: %s", sm, string(bytes))
		}
	}
}

func Test_Context_02(t *testing.T) {
	for _, sm := range []string{"", ":1:0", "0::0", "0:1", "0:1:-1"} {
		var entry srcmap.Entry
		//
		if entries := srcmap.Decode(sm); len(entries) > 0 {
			entry = entries[0]
		}
		//
		if NewContext(entry) != nil {
			t.Errorf("unexpected context for \"%s\"", sm)
		}
	}
}

// ============================================================================
// Helpers
// ============================================================================

func checkRecords(t *testing.T, bytecode string, sourcemap string, expected ...string) {
	records := BuildRecords(evm.Segment(bytecode), srcmap.Decode(sourcemap))
	//
	if len(records) != len(expected) {
		t.Fatalf("expected %d records, got %d", len(expected), len(records))
	}
	//
	for i, r := range records {
		bytes, err := json.Marshal(r)
		//
		if err != nil {
			t.Fatal(err)
		} else if string(bytes) != expected[i] {
			t.Errorf("record %d: expected %s, got %s", i, expected[i], string(bytes))
		}
	}
}
