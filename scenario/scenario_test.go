// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package scenario_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
	"github.com/bitmark-inc/avltree/scenario/mocks"
)

const (
	testingDirName = "testing"
	category       = "scenario-test"
)

// Test main entrypoint
func TestMain(m *testing.M) {
	setup()
	result := m.Run()
	teardown()
	os.Exit(result)
}

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setup() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0o700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardown() {
	logger.Finalise()
	removeFiles()
}

const removeScenario = `
name: remove with two children
steps:
  - {op: insert, key: "30", value: a}
  - {op: insert, key: "20", value: b}
  - {op: insert, key: "40", value: c}
  - {op: insert, key: "10", value: d}
  - {op: insert, key: "25", value: e}
  - {op: insert, key: "35", value: f}
  - {op: insert, key: "50", value: g}
  - {op: remove, key: "20", expect: "true"}
  - {op: remove, key: "20", expect: "false"}
  - {op: get, key: "20", error: not_found}
  - {op: get, key: "25", expect: e}
  - {op: contains, key: "10", expect: "true"}
  - {op: insert, key: "10", value: z, expect: "false"}
  - {op: get, key: "10", expect: z}
  - {op: check, expect: balanced, count: 6}
`

func TestRunOnTrees(t *testing.T) {
	s, err := scenario.Parse([]byte(removeScenario))
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	assert.Equal(t, "remove with two children", s.Name, "name")
	assert.Equal(t, 15, len(s.Steps), "steps")

	maps := []scenario.OrderedMap{
		avl.New[string, string](),
		avl.NewBinarySearchTree[string, string](),
	}
	for i, m := range maps {
		result, err := scenario.Run(m, s, logger.New(category))
		if nil != err {
			t.Fatalf("%d: run error: %s", i, err)
		}
		assert.Equal(t, 15, result.Steps, "%d: steps", i)
		assert.Equal(t, 8, result.Inserts, "%d: inserts", i)
		assert.Equal(t, 1, result.Removes, "%d: removes", i)
		assert.Equal(t, 4, result.Lookups, "%d: lookups", i)
		assert.Equal(t, 6, result.Count, "%d: count", i)
		assert.True(t, result.Balanced, "%d: balanced", i)
	}
}

func TestAscendingChain(t *testing.T) {
	s, err := scenario.Parse([]byte(`
steps:
  - {op: insert, key: "1"}
  - {op: insert, key: "2"}
  - {op: insert, key: "3"}
  - {op: insert, key: "4"}
  - {op: check, expect: unbalanced}
  - {op: clear}
  - {op: check, count: 0}
`))
	assert.Nil(t, err, "parse")

	_, err = scenario.Run(avl.NewBinarySearchTree[string, string](), s, nil)
	assert.Nil(t, err, "plain tree degenerates")

	_, err = scenario.Run(avl.New[string, string](), s, nil)
	assert.True(t, fault.IsErrProcess(err), "avl tree stays balanced: %v", err)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		text     string
		expected error
	}{
		{`steps: [{op: rotate}]`, fault.ErrInvalidOperation},
		{`steps: [{op: insert}]`, fault.ErrMissingKey},
		{`steps: [{op: remove, key: a, error: not_found}]`, fault.ErrInvalidOperation},
		{`steps: [{op: get, key: a, error: broken}]`, fault.ErrInvalidOperation},
	}

	for i, item := range tests {
		_, err := scenario.Parse([]byte(item.text))
		assert.True(t, errors.Is(err, item.expected), "%d: %s", i, item.text)
	}

	_, err := scenario.Parse([]byte("steps: [unclosed"))
	assert.NotNil(t, err, "yaml syntax")
}

func TestLoad(t *testing.T) {
	fileName := filepath.Join(testingDirName, "remove.yaml")
	if err := os.WriteFile(fileName, []byte("steps:\n  - {op: check}\n"), 0o600); nil != err {
		t.Fatalf("write error: %s", err)
	}

	s, err := scenario.Load(fileName)
	assert.Nil(t, err, "load")
	assert.Equal(t, fileName, s.Name, "name defaults to file")

	_, err = scenario.Load(filepath.Join(testingDirName, "absent.yaml"))
	assert.True(t, fault.IsErrNotFound(err), "missing file: %v", err)
}

func TestRunStopsOnInvariantFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockOrderedMap(ctl)
	defer ctl.Finish()

	s := &scenario.Scenario{
		Name: "broken",
		Steps: []scenario.Step{
			{Op: scenario.OpInsert, Key: "a", Value: "1"},
			{Op: scenario.OpInsert, Key: "b", Value: "2"},
			{Op: scenario.OpInsert, Key: "c", Value: "3"},
		},
	}

	gomock.InOrder(
		m.EXPECT().Insert("a", "1").Return(true).Times(1),
		m.EXPECT().Validate().Return(nil).Times(1),
		m.EXPECT().Insert("b", "2").Return(true).Times(1),
		m.EXPECT().Validate().Return(fault.ErrInvariantViolated).Times(1),
	)
	m.EXPECT().Insert("c", gomock.Any()).Times(0)

	result, err := scenario.Run(m, s, logger.New(category))
	assert.True(t, errors.Is(err, fault.ErrInvariantViolated), "error")
	assert.Equal(t, 1, result.Steps, "completed steps")
	assert.Equal(t, 2, result.Inserts, "inserts attempted")
}

func TestRunLookupMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockOrderedMap(ctl)
	defer ctl.Finish()

	s := &scenario.Scenario{
		Name: "lookups",
		Steps: []scenario.Step{
			{Op: scenario.OpGet, Key: "a", Error: scenario.ErrorNotFound},
			{Op: scenario.OpGet, Key: "b", Expect: "2"},
		},
	}

	m.EXPECT().Get("a").Return("", fault.ErrKeyNotFound).Times(1)
	m.EXPECT().Get("b").Return("3", nil).Times(1)

	result, err := scenario.Run(m, s, nil)
	assert.True(t, errors.Is(err, fault.ErrUnexpectedValue), "error")
	assert.Equal(t, 2, result.Lookups, "lookups")
	assert.Equal(t, 1, result.Steps, "completed steps")
}

func TestRunSummary(t *testing.T) {
	ctl := gomock.NewController(t)
	m := mocks.NewMockOrderedMap(ctl)
	defer ctl.Finish()

	s := &scenario.Scenario{
		Name: "summary",
		Steps: []scenario.Step{
			{Op: scenario.OpRemove, Key: "x", Expect: "false"},
			{Op: scenario.OpClear},
		},
	}

	m.EXPECT().Remove("x").Return(false).Times(1)
	m.EXPECT().Clear().Times(1)
	m.EXPECT().Count().Return(0).Times(2)
	m.EXPECT().Validate().Return(nil).Times(2)
	m.EXPECT().IsBalanced().Return(true).Times(1)

	result, err := scenario.Run(m, s, logger.New(category))
	assert.Nil(t, err, "run")
	assert.Equal(t, 0, result.Removes, "nothing removed")
	assert.Equal(t, 2, result.Steps, "steps")
	assert.True(t, result.Balanced, "balanced")
}
