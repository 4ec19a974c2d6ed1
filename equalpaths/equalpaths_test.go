// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package equalpaths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
)

func TestEqualPaths(t *testing.T) {
	tests := []struct {
		description string
		expected    bool
	}{
		{"", true},
		{"-", true},
		{"1", true},
		{"1 2 3 4 5 6 7", true},
		{"1 2 3 4", false},
		{"1 2 3 4 - - 5", true},
		{"1 2 - 3 - 4", true}, // single chain
		{"1 2 3 4 5 6 7 8", false},
		{"1 2 3 - 4 5", true},
		{"1 2 3 - 4 5 - 6", false},
		{"1 2 3 - 4 5 - 6 - 7", true},
	}

	for i, item := range tests {
		root, err := equalpaths.Parse(item.description)
		if nil != err {
			t.Fatalf("%d: parse: %q  error: %s", i, item.description, err)
		}
		actual := equalpaths.EqualPaths(root)
		if item.expected != actual {
			t.Errorf("%d: tree: %q  actual: %t  expected: %t", i, item.description, actual, item.expected)
		}
	}
}

func TestHandBuilt(t *testing.T) {
	leaf := func(k string) *equalpaths.Node { return &equalpaths.Node{Key: k} }

	// leaves at depth 2 and 3
	root := &equalpaths.Node{
		Key:  "r",
		Left: leaf("a"),
		Right: &equalpaths.Node{
			Key:  "b",
			Left: leaf("c"),
		},
	}
	assert.False(t, equalpaths.EqualPaths(root), "mixed depths")

	root.Left.Right = leaf("d")
	assert.True(t, equalpaths.EqualPaths(root), "now both at depth 3")

	assert.True(t, equalpaths.EqualPaths(nil), "empty tree")
}

func TestParseShape(t *testing.T) {
	root, err := equalpaths.Parse("1 2 3 4 nil - 5")
	assert.Nil(t, err, "parse")
	assert.Equal(t, "1", root.Key, "root")
	assert.Equal(t, "4", root.Left.Left.Key, "left left")
	assert.Nil(t, root.Left.Right, "left right")
	assert.Nil(t, root.Right.Left, "right left")
	assert.Equal(t, "5", root.Right.Right.Key, "right right")
}

func TestParseErrors(t *testing.T) {
	for _, description := range []string{
		"- 1",
		"1 - - 2",
		"1 2 - - - 3",
	} {
		_, err := equalpaths.Parse(description)
		assert.True(t, fault.IsErrInvalid(err), "description: %q  error: %v", description, err)
	}
}

func TestConvert(t *testing.T) {
	tree := avl.New[int, string]()
	for i := 1; i <= 7; i += 1 {
		tree.Insert(i, "")
	}
	root := equalpaths.Convert(tree.Root())
	assert.Equal(t, "4", root.Key, "root")
	assert.True(t, equalpaths.EqualPaths(root), "complete avl tree")

	tree.Remove(1)
	assert.True(t, equalpaths.EqualPaths(equalpaths.Convert(tree.Root())), "one-sided branch")

	tree.Remove(3)
	assert.False(t, equalpaths.EqualPaths(equalpaths.Convert(tree.Root())), "leaf at depth 2")

	assert.Nil(t, equalpaths.Convert(avl.New[int, int]().Root()), "empty")
}
