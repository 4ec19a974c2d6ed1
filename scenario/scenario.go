// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	OpInsert   = "insert"
	OpRemove   = "remove"
	OpGet      = "get"
	OpContains = "contains"
	OpClear    = "clear"
	OpCheck    = "check"
)

// expected error names
const (
	ErrorNotFound = "not_found"
)

// Step - one operation
type Step struct {
	Op     string `yaml:"op"`
	Key    string `yaml:"key"`
	Value  string `yaml:"value"`
	Expect string `yaml:"expect"`
	Error  string `yaml:"error"`
	Count  *int   `yaml:"count"`
}

// Scenario - a named list of steps
type Scenario struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Load - read and verify a scenario file
func Load(fileName string) (*Scenario, error) {
	b, err := os.ReadFile(fileName)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", fault.ErrNotFoundScenarioFile, fileName)
	}
	if nil != err {
		return nil, err
	}
	s, err := Parse(b)
	if nil != err {
		return nil, fmt.Errorf("scenario: %q: %w", fileName, err)
	}
	if "" == s.Name {
		s.Name = fileName
	}
	return s, nil
}

// Parse - decode and verify a scenario
func Parse(b []byte) (*Scenario, error) {
	s := &Scenario{}
	if err := yaml.Unmarshal(b, s); nil != err {
		return nil, err
	}

	for i, step := range s.Steps {
		switch step.Op {
		case OpInsert, OpRemove, OpGet, OpContains:
			if "" == step.Key {
				return nil, fmt.Errorf("%w: step: %d  op: %s", fault.ErrMissingKey, i, step.Op)
			}
		case OpClear, OpCheck:
		default:
			return nil, fmt.Errorf("%w: step: %d  op: %q", fault.ErrInvalidOperation, i, step.Op)
		}

		switch step.Error {
		case "":
		case ErrorNotFound:
			if OpGet != step.Op {
				return nil, fmt.Errorf("%w: step: %d  op: %s cannot fail", fault.ErrInvalidOperation, i, step.Op)
			}
		default:
			return nil, fmt.Errorf("%w: step: %d  error: %q", fault.ErrInvalidOperation, i, step.Error)
		}
	}
	return s, nil
}
