// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns true if the key was present
func (tree *BinarySearchTree[K, V]) Remove(key K) bool {
	_, removed := tree.delete(key)
	return removed
}

// Remove - removes a specific item from the tree then restores the
// balance from the point of removal up to the root
//
// returns true if the key was present
func (tree *Tree[K, V]) Remove(key K) bool {
	p, removed := tree.delete(key)
	if removed {
		tree.rebalance(p)
	}
	return removed
}

// internal delete routine
//
// returns the node where rebalancing must start: the child that took
// the removed node's place or, if it was a leaf, its parent
func (tree *core[K, V]) delete(key K) (*Node[K, V], bool) {
	q := tree.Search(key)
	if nil == q { // key not in tree
		return nil, false
	}

	if nil != q.left && nil != q.right {
		// two children: move q into the predecessor's place where it
		// has at most a left child
		tree.nodeSwap(q, q.predecessor())
	}

	var p *Node[K, V]
	if nil != q.left {
		p = q.left
	} else {
		p = q.right
	}
	tree.replaceChild(q, p)
	if nil == p {
		p = q.up
	}

	tree.count -= 1
	tree.alloc.freeNode(q) // return deleted node to pool
	return p, true
}

// Clear - release every node, the tree can be reused afterwards
func (tree *core[K, V]) Clear() {
	n := 0
	stack := make([]*Node[K, V], 0, 64)
	if nil != tree.root {
		stack = append(stack, tree.root)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		tree.alloc.freeNode(p)
		n += 1
	}
	tree.root = nil
	tree.count = 0

	if nil != tree.log {
		tree.log.Debugf("clear: released %d nodes", n)
	}
}
