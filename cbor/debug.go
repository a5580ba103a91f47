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
	"strconv"
	"strings"
)

// Dump returns the object tree in CBOR diagnostic notation, such as
// 45({1: [6, "Hi!"]}). It does not mark anything as read
func Dump(obj Object) string {
	var sb strings.Builder
	dump(&sb, obj)
	return sb.String()
}

func dump(sb *strings.Builder, obj Object) {
	switch v := obj.(type) {
	case *Int:
		sb.WriteString(strconv.FormatInt(v.value, 10))
	case *String:
		sb.WriteString(strconv.Quote(v.value))
	case *Array:
		sb.WriteString("[")
		for idx, element := range v.elements {
			if idx > 0 {
				sb.WriteString(", ")
			}
			dump(sb, element)
		}
		sb.WriteString("]")
	case *Map:
		sb.WriteString("{")
		for idx, entry := range v.entries {
			if idx > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatInt(entry.key, 10))
			sb.WriteString(": ")
			dump(sb, entry.value)
		}
		sb.WriteString("}")
	case *Tag:
		sb.WriteString(strconv.FormatUint(v.number, 10))
		sb.WriteString("(")
		dump(sb, v.obj)
		sb.WriteString(")")
	default:
		sb.WriteString("undefined")
	}
}
