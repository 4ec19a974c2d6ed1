// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
//
// the links are for navigation only, the tree owns every node
type Node[K, V any] struct {
	left    *Node[K, V] // left sub-tree
	right   *Node[K, V] // right sub-tree
	up      *Node[K, V] // points to parent node
	key     K           // key part for ordering
	value   V           // value part for data storage
	balance int8        // height of this sub-tree, only maintained by AVL trees
}

// height of a possibly missing sub-tree
func height[K, V any](p *Node[K, V]) int8 {
	if nil == p {
		return -1
	}
	return p.balance
}

// per-tree store of released nodes
type allocator[K, V any] struct {
	pool       *Node[K, V] // linked list of reclaimed nodes
	limit      int         // maximum nodes kept in the pool
	freeNodes  int         // number of nodes in the pool
	totalNodes int         // total nodes created
}

// allocate a new node, reuses reclaimed nodes if any are available
func (a *allocator[K, V]) newNode(key K, value V, up *Node[K, V]) *Node[K, V] {
	if nil == a.pool {
		if 0 != a.freeNodes {
			panic("pool corrupt")
		}
		a.totalNodes += 1
		return &Node[K, V]{
			up:    up,
			key:   key,
			value: value,
		}
	}
	p := a.pool
	a.pool = p.up
	a.freeNodes -= 1

	p.key = key
	p.value = value
	p.balance = 0
	p.left = nil
	p.right = nil
	p.up = up // ensure freelist pointer is replaced
	return p
}

// release a node, keep it in the pool while there is room
func (a *allocator[K, V]) freeNode(node *Node[K, V]) {
	var zeroKey K
	var zeroValue V

	node.left = nil
	node.right = nil
	node.up = nil
	node.key = zeroKey
	node.value = zeroValue
	node.balance = 0

	if a.freeNodes >= a.limit {
		a.totalNodes -= 1
		return
	}
	node.up = a.pool // use as free list pointer
	a.pool = node
	a.freeNodes += 1
}

// drop pool entries above a new limit
func (a *allocator[K, V]) resize(limit int) {
	if limit < 0 {
		limit = 0
	}
	a.limit = limit
	for a.freeNodes > a.limit {
		p := a.pool
		a.pool = p.up
		p.up = nil
		a.freeNodes -= 1
		a.totalNodes -= 1
	}
}
