// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -source=run.go -destination=mocks/mock_orderedmap.go -package=mocks

// OrderedMap - the operations a scenario needs from a tree
type OrderedMap interface {
	Insert(key string, value string) bool
	Remove(key string) bool
	Get(key string) (string, error)
	Contains(key string) bool
	Clear()
	Count() int
	IsBalanced() bool
	Validate() error
}

// Result - summary of a completed scenario
type Result struct {
	Name     string
	Steps    int
	Inserts  int
	Removes  int
	Lookups  int
	Count    int
	Balanced bool
}

// Run - execute every step in order
//
// the map is validated after each step that could change it, the first
// failure stops the run and is returned with its step number
func Run(m OrderedMap, s *Scenario, log *logger.L) (*Result, error) {
	result := &Result{
		Name: s.Name,
	}

	for i, step := range s.Steps {
		if nil != log {
			log.Debugf("%s: step: %d  op: %s  key: %q", s.Name, i, step.Op, step.Key)
		}

		if err := runStep(m, step, result); nil != err {
			if nil != log {
				log.Errorf("%s: step: %d  error: %s", s.Name, i, err)
			}
			return result, fmt.Errorf("step: %d  op: %s: %w", i, step.Op, err)
		}
		result.Steps += 1
	}

	result.Count = m.Count()
	result.Balanced = m.IsBalanced()

	if nil != log {
		log.Infof("%s: steps: %d  inserts: %d  removes: %d  lookups: %d  count: %d  balanced: %t",
			s.Name, result.Steps, result.Inserts, result.Removes, result.Lookups, result.Count, result.Balanced)
	}
	return result, nil
}

func runStep(m OrderedMap, step Step, result *Result) error {
	switch step.Op {

	case OpInsert:
		added := m.Insert(step.Key, step.Value)
		if err := expectBool(step, added); nil != err {
			return err
		}
		result.Inserts += 1
		return m.Validate()

	case OpRemove:
		removed := m.Remove(step.Key)
		if err := expectBool(step, removed); nil != err {
			return err
		}
		if removed {
			result.Removes += 1
		}
		return m.Validate()

	case OpGet:
		result.Lookups += 1
		value, err := m.Get(step.Key)
		if ErrorNotFound == step.Error {
			if !fault.IsErrNotFound(err) {
				return fmt.Errorf("%w: key: %q  error: %v  expected: %s", fault.ErrUnexpectedValue, step.Key, err, ErrorNotFound)
			}
			return nil
		}
		if nil != err {
			return err
		}
		if value != step.Expect {
			return fmt.Errorf("%w: key: %q  actual: %q  expected: %q", fault.ErrUnexpectedValue, step.Key, value, step.Expect)
		}
		return nil

	case OpContains:
		result.Lookups += 1
		return expectBool(step, m.Contains(step.Key))

	case OpClear:
		m.Clear()
		if n := m.Count(); 0 != n {
			return fmt.Errorf("%w: count: %d after clear", fault.ErrInvariantViolated, n)
		}
		return m.Validate()

	case OpCheck:
		if err := m.Validate(); nil != err {
			return err
		}
		if nil != step.Count && *step.Count != m.Count() {
			return fmt.Errorf("%w: count: %d  expected: %d", fault.ErrUnexpectedValue, m.Count(), *step.Count)
		}
		switch step.Expect {
		case "":
		case "balanced":
			if !m.IsBalanced() {
				return fmt.Errorf("%w: tree is not balanced", fault.ErrInvariantViolated)
			}
		case "unbalanced":
			if m.IsBalanced() {
				return fmt.Errorf("%w: tree is balanced", fault.ErrUnexpectedValue)
			}
		default:
			return fmt.Errorf("%w: check: %q", fault.ErrInvalidOperation, step.Expect)
		}
		return nil

	default:
		return fmt.Errorf("%w: %q", fault.ErrInvalidOperation, step.Op)
	}
}

// compare a boolean result with an optional "true"/"false" expectation
func expectBool(step Step, actual bool) error {
	if "" == step.Expect {
		return nil
	}
	expected, err := strconv.ParseBool(step.Expect)
	if nil != err {
		return fmt.Errorf("%w: expect: %q", fault.ErrInvalidOperation, step.Expect)
	}
	if actual != expected {
		return fmt.Errorf("%w: key: %q  actual: %t  expected: %t", fault.ErrUnexpectedValue, step.Key, actual, expected)
	}
	return nil
}
