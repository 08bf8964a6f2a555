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

import "testing"

func Test_Option_01(t *testing.T) {
	o := None[uint]()
	//
	if o.HasValue() || !o.IsEmpty() {
		t.Errorf("expected empty option")
	} else if o.UnwrapOr(7) != 7 {
		t.Errorf("expected default value")
	} else if o.String() != "" {
		t.Errorf("expected empty string, got %q", o.String())
	}
}

func Test_Option_02(t *testing.T) {
	o := Some[uint](3)
	//
	if !o.HasValue() || o.Unwrap() != 3 || o.UnwrapOr(7) != 3 {
		t.Errorf("expected option holding 3")
	} else if o.String() != "3" {
		t.Errorf("expected \"3\", got %q", o.String())
	}
}

func Test_Option_03(t *testing.T) {
	if None[uint]().Or(Some[uint](1)) != Some[uint](1) {
		t.Errorf("expected fallback option")
	} else if Some[uint](2).Or(Some[uint](1)) != Some[uint](2) {
		t.Errorf("expected original option")
	}
}

func Test_Option_04(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic unwrapping empty option")
		}
	}()
	//
	None[int]().Unwrap()
}
