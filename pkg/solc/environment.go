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

import "fmt"

// Environment identifies which of a contract's two programs is of interest:
// the creation (a.k.a deployment) code, or the runtime code which is left
// behind on chain.
type Environment uint8

// CREATE selects a contract's creation bytecode and source map.
const CREATE Environment = 0

// RUNTIME selects a contract's runtime bytecode and source map.
const RUNTIME Environment = 1

// ParseEnvironment converts the name of an environment into an Environment.
func ParseEnvironment(name string) (Environment, error) {
	switch name {
	case "create":
		return CREATE, nil
	case "runtime":
		return RUNTIME, nil
	default:
		return CREATE, fmt.Errorf("unknown environment \"%s\"", name)
	}
}

func (e Environment) String() string {
	if e == RUNTIME {
		return "runtime"
	}
	//
	return "create"
}

// MarshalText encodes this environment by name.
func (e Environment) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// UnmarshalText decodes an environment from its name.
func (e *Environment) UnmarshalText(text []byte) error {
	env, err := ParseEnvironment(string(text))
	//
	if err == nil {
		*e = env
	}
	//
	return err
}
