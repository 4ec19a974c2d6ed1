// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// build:        4
//             /   \
//            2     6
//           / \   / \
//          1   3 5   7
func sevenNodes(balanced bool) *core[int, string] {
	tree := &core[int, string]{
		compare:  cmp.Compare[int],
		balanced: balanced,
	}
	for _, k := range []int{4, 2, 6, 1, 3, 5, 7} {
		tree.insert(k, "")
	}
	if balanced {
		tree.rebalance(tree.Search(1))
		tree.rebalance(tree.Search(3))
		tree.rebalance(tree.Search(5))
		tree.rebalance(tree.Search(7))
	}
	return tree
}

func TestSwapRootWithChild(t *testing.T) {
	tree := sevenNodes(true)
	n4 := tree.Search(4)
	n2 := tree.Search(2)

	tree.nodeSwap(n4, n2)

	assert.Equal(t, n2, tree.root, "root")
	assert.Nil(t, n2.up, "new root parent")
	assert.Equal(t, n4, n2.left, "reversed link")
	assert.Equal(t, n2, n4.up, "reversed up link")
	assert.Equal(t, 6, n2.right.key, "right sub-tree moved")
	assert.Equal(t, 1, n4.left.key, "left child")
	assert.Equal(t, 3, n4.right.key, "right child")
	assert.Equal(t, int8(2), n2.balance, "height follows position")
	assert.Equal(t, int8(1), n4.balance, "height follows position")
	assert.Nil(t, tree.CheckUp(), "parent links")
}

func TestSwapChildWithParent(t *testing.T) {
	tree := sevenNodes(false)
	n6 := tree.Search(6)
	n7 := tree.Search(7)

	// argument order reversed relative to the tree structure
	tree.nodeSwap(n7, n6)

	assert.Equal(t, n7, tree.root.right, "parent link")
	assert.Equal(t, n6, n7.right, "reversed link")
	assert.Equal(t, 5, n7.left.key, "sibling")
	assert.Nil(t, n6.left, "leaf left")
	assert.Nil(t, n6.right, "leaf right")
	assert.Equal(t, int8(0), n7.balance, "unbalanced tree leaves heights")
	assert.Nil(t, tree.CheckUp(), "parent links")
}

func TestSwapDistant(t *testing.T) {
	tree := sevenNodes(true)
	n1 := tree.Search(1)
	n6 := tree.Search(6)

	tree.nodeSwap(n1, n6)

	assert.Equal(t, n1, tree.root.right, "n1 position")
	assert.Equal(t, n6, tree.root.left.left, "n6 position")
	assert.Equal(t, 5, n1.left.key, "n1 left")
	assert.Equal(t, 7, n1.right.key, "n1 right")
	assert.Nil(t, n6.left, "n6 is a leaf")
	assert.Equal(t, int8(1), n1.balance, "height follows position")
	assert.Equal(t, int8(0), n6.balance, "height follows position")
	assert.Nil(t, tree.CheckUp(), "parent links")

	// swapping back restores the original order
	tree.nodeSwap(n6, n1)
	assert.Nil(t, tree.CheckOrder(), "order")
	_, err := checkHeights(tree.root)
	assert.Nil(t, err, "heights")
}

func TestSwapSiblings(t *testing.T) {
	tree := sevenNodes(false)
	n2 := tree.Search(2)
	n6 := tree.Search(6)

	tree.nodeSwap(n2, n6)

	assert.Equal(t, n6, tree.root.left, "left sibling")
	assert.Equal(t, n2, tree.root.right, "right sibling")
	assert.Equal(t, 1, n6.left.key, "n6 left")
	assert.Equal(t, 7, n2.right.key, "n2 right")
	assert.Nil(t, tree.CheckUp(), "parent links")
}

func TestSwapSelfIsNoOp(t *testing.T) {
	tree := sevenNodes(true)
	n4 := tree.Search(4)
	tree.nodeSwap(n4, n4)
	tree.nodeSwap(n4, nil)
	assert.Equal(t, n4, tree.root, "root")
	assert.Nil(t, tree.CheckUp(), "parent links")
}
