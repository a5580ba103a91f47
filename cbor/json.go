// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The JSON representation is an AST of the object tree:
//
//	{"int":6}
//	{"string":"Hi!"}
//	{"list":[...]}
//	{"map":[{"k":{"int":1},"v":...}]}
//	{"tag":45,"value":...}
//
// Marshaling to JSON does not mark anything as read.

func (i *Int) MarshalJSON() ([]byte, error) {
	return fmt.Appendf(nil, `{"int":%d}`, i.value), nil
}

func (s *String) MarshalJSON() ([]byte, error) {
	tmpJson, err := json.Marshal(s.value)
	if err != nil {
		return nil, err
	}
	return []byte(`{"string":` + string(tmpJson) + `}`), nil
}

func (a *Array) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`{"list":[`)
	for idx, element := range a.elements {
		tmpJson, err := element.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if idx > 0 {
			sb.WriteString(`,`)
		}
		sb.Write(tmpJson)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String()), nil
}

func (m *Map) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`{"map":[`)
	for idx, entry := range m.entries {
		tmpJson, err := entry.value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		if idx > 0 {
			sb.WriteString(`,`)
		}
		fmt.Fprintf(&sb, `{"k":{"int":%d},"v":%s}`, entry.key, tmpJson)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String()), nil
}

func (t *Tag) MarshalJSON() ([]byte, error) {
	tmpJson, err := t.obj.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, `{"tag":%d,"value":%s}`, t.number, tmpJson), nil
}
