// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// IsBalanced - true if, at every node, the heights of the left and
// right sub-trees differ by at most one
//
// heights are measured, not read from the nodes, so this also applies
// to an unbalanced tree
func (tree *core[K, V]) IsBalanced() bool {
	_, ok := measure(tree.root)
	return ok
}

// Height - number of nodes on the longest root to leaf path, zero for
// an empty tree
func (tree *core[K, V]) Height() int {
	h, _ := measure(tree.root)
	return h
}

// internal: post-order height, stops looking at balance after the
// first failure
func measure[K, V any](p *Node[K, V]) (int, bool) {
	if nil == p {
		return 0, true
	}
	lh, lok := measure(p.left)
	rh, rok := measure(p.right)
	ok := lok && rok && lh-rh <= 1 && rh-lh <= 1
	return max(lh, rh) + 1, ok
}

// CheckUp - check the up pointers for consistency
func (tree *core[K, V]) CheckUp() error {
	if nil != tree.root && nil != tree.root.up {
		return fmt.Errorf("%w: root: %v has a parent", fault.ErrInvariantViolated, tree.root.key)
	}
	return checkUp(tree.root, nil)
}

// internal: consistency checker
func checkUp[K, V any](p *Node[K, V], up *Node[K, V]) error {
	if nil == p {
		return nil
	}
	if p.up != up {
		return fmt.Errorf("%w: parent link at node: %v", fault.ErrInvariantViolated, p.key)
	}
	if err := checkUp(p.left, p); nil != err {
		return err
	}
	return checkUp(p.right, p)
}

// CheckOrder - in-order keys must be strictly increasing
func (tree *core[K, V]) CheckOrder() error {
	var previous *Node[K, V]
	for p := tree.root.first(); nil != p; p = p.Next() {
		if nil != previous && tree.compare(previous.key, p.key) >= 0 {
			return fmt.Errorf("%w: key: %v not above: %v", fault.ErrInvariantViolated, p.key, previous.key)
		}
		previous = p
	}
	return nil
}

// CheckCount - the stored count must match the number of nodes
func (tree *core[K, V]) CheckCount() error {
	n := 0
	for p := tree.root.first(); nil != p; p = p.Next() {
		n += 1
	}
	if n != tree.count {
		return fmt.Errorf("%w: count: %d  actual nodes: %d", fault.ErrInvariantViolated, tree.count, n)
	}
	return nil
}

// CheckHeights - every stored height must be correct and every node
// must be balanced
func (tree *Tree[K, V]) CheckHeights() error {
	_, err := checkHeights(tree.root)
	return err
}

// internal: returns the measured height, leaf = 0
func checkHeights[K, V any](p *Node[K, V]) (int8, error) {
	if nil == p {
		return -1, nil
	}
	lh, err := checkHeights(p.left)
	if nil != err {
		return 0, err
	}
	rh, err := checkHeights(p.right)
	if nil != err {
		return 0, err
	}
	h := max(lh, rh) + 1
	if p.balance != h {
		return 0, fmt.Errorf("%w: node: %v  stored height: %d  actual: %d", fault.ErrInvariantViolated, p.key, p.balance, h)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fmt.Errorf("%w: node: %v unbalanced: left: %d  right: %d", fault.ErrInvariantViolated, p.key, lh, rh)
	}
	return h, nil
}

// Validate - run all of the structure checks
func (tree *core[K, V]) Validate() error {
	if err := tree.CheckUp(); nil != err {
		return err
	}
	if err := tree.CheckOrder(); nil != err {
		return err
	}
	if err := tree.CheckCount(); nil != err {
		return err
	}
	if tree.balanced {
		if _, err := checkHeights(tree.root); nil != err {
			return err
		}
	}
	return nil
}
