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
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedMap is a string-keyed map which remembers the order in which keys
// were first inserted.  When decoded from JSON, this is the order in which keys
// appear in the document.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrderedMap constructs an initially empty ordered map.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{nil, make(map[string]V)}
}

// Put associates a value with a given key.  Overwriting an existing key does
// not change its position.
func (p *OrderedMap[V]) Put(key string, value V) {
	if p.values == nil {
		p.values = make(map[string]V)
	}
	//
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	//
	p.values[key] = value
}

// Get returns the value associated with a given key, if any.
func (p *OrderedMap[V]) Get(key string) (V, bool) {
	val, ok := p.values[key]
	return val, ok
}

// Keys returns the keys of this map in insertion order.
func (p *OrderedMap[V]) Keys() []string {
	return p.keys
}

// Len returns the number of keys in this map.
func (p *OrderedMap[V]) Len() int {
	return len(p.keys)
}

// UnmarshalJSON decodes a JSON object, retaining the order of its keys.  A
// null value gives an empty map.
func (p *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	var (
		decoder = json.NewDecoder(bytes.NewReader(data))
		tok     json.Token
		err     error
	)
	//
	p.keys, p.values = nil, make(map[string]V)
	//
	if tok, err = decoder.Token(); err != nil {
		return err
	} else if tok == nil {
		return nil
	} else if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, found %v", tok)
	}
	//
	for decoder.More() {
		var value V
		// Keys of an object are always strings
		if tok, err = decoder.Token(); err != nil {
			return err
		} else if err = decoder.Decode(&value); err != nil {
			return err
		}
		//
		p.Put(tok.(string), value)
	}
	// Consume closing brace
	_, err = decoder.Token()
	//
	return err
}
