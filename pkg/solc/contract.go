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

// Contract holds the compiled artefacts of a single contract.
type Contract struct {
	// Creation bytecode (hex).
	Bin string `json:"bin"`
	// Runtime bytecode (hex).  This is nil when the compiler was not asked to
	// produce it.
	BinRuntime *string `json:"bin-runtime"`
	// Compressed source map for the creation bytecode.
	SrcMap string `json:"srcmap"`
	// Compressed source map for the runtime bytecode.
	SrcMapRuntime string `json:"srcmap-runtime"`
}

// Select returns the bytecode and source map for a given environment.  The
// runtime environment falls back to the creation bytecode when no runtime
// bytecode is present, though never to the creation source map.
func (c *Contract) Select(env Environment) (bytecode string, srcmap string) {
	if env == RUNTIME {
		if c.BinRuntime != nil {
			return *c.BinRuntime, c.SrcMapRuntime
		}
		//
		return c.Bin, c.SrcMapRuntime
	}
	//
	return c.Bin, c.SrcMap
}
