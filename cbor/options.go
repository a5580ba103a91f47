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
	"log/slog"
)

const defaultMaxDepth = 256

// DecodeOptionFunc is a type that represents functions that modify the object decoder config
type DecodeOptionFunc func(*objectDecoder)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) DecodeOptionFunc {
	return func(d *objectDecoder) {
		d.logger = logger
	}
}

// WithMaxDepth specifies the maximum nesting depth of containers. The default is 256
func WithMaxDepth(maxDepth int) DecodeOptionFunc {
	return func(d *objectDecoder) {
		d.maxDepth = maxDepth
	}
}

// WithDuplicateKeyCheck specifies whether maps containing the same key more than
// once are rejected. This is disabled by default, in which case lookups return the
// first entry with a matching key
func WithDuplicateKeyCheck(check bool) DecodeOptionFunc {
	return func(d *objectDecoder) {
		d.dupKeyCheck = check
	}
}
