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

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// readPlan lists the paths to read from a CBOR object before checking it
//
//	read:
//	  - "@/1"
//	  - "2/0"
//	rejectDuplicateKeys: true
//	maxDepth: 64
type readPlan struct {
	Read                []string `yaml:"read"`
	RejectDuplicateKeys bool     `yaml:"rejectDuplicateKeys"`
	MaxDepth            int      `yaml:"maxDepth"`
}

func loadReadPlan(path string) (*readPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseReadPlan(data)
}

func parseReadPlan(data []byte) (*readPlan, error) {
	var plan readPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse read plan: %w", err)
	}
	if plan.MaxDepth < 0 {
		return nil, fmt.Errorf("invalid maxDepth in read plan: %d", plan.MaxDepth)
	}
	return &plan, nil
}
