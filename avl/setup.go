// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// state and algorithms common to both kinds of tree
type core[K, V any] struct {
	root     *Node[K, V]
	count    int
	compare  func(a, b K) int
	balanced bool // nodes carry a maintained height
	alloc    allocator[K, V]
	log      *logger.L
}

// BinarySearchTree - type to hold the root node of an unbalanced tree
type BinarySearchTree[K, V any] struct {
	core[K, V]
}

// Tree - type to hold the root node of an AVL balanced tree
type Tree[K, V any] struct {
	core[K, V]
}

// NewBinarySearchTree - create an initially empty unbalanced tree
// using the natural order of the key type
func NewBinarySearchTree[K cmp.Ordered, V any]() *BinarySearchTree[K, V] {
	return NewBinarySearchTreeFunc[K, V](cmp.Compare[K])
}

// NewBinarySearchTreeFunc - create an initially empty unbalanced tree
// ordered by compare, which returns <0, 0 or >0 like cmp.Compare
func NewBinarySearchTreeFunc[K, V any](compare func(a, b K) int) *BinarySearchTree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &BinarySearchTree[K, V]{
		core: core[K, V]{
			compare:  compare,
			balanced: false,
		},
	}
}

// New - create an initially empty AVL tree using the natural order of
// the key type
func New[K cmp.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc - create an initially empty AVL tree ordered by compare
func NewFunc[K, V any](compare func(a, b K) int) *Tree[K, V] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[K, V]{
		core: core[K, V]{
			compare:  compare,
			balanced: true,
		},
	}
}

// SetLog - attach a logger channel, nil to detach
func (tree *core[K, V]) SetLog(log *logger.L) {
	tree.log = log
}

// SetPoolSize - keep up to n removed nodes for reuse by later inserts
func (tree *core[K, V]) SetPoolSize(n int) {
	tree.alloc.resize(n)
}

// IsEmpty - true if tree contains no data
func (tree *core[K, V]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *core[K, V]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *core[K, V]) Root() *Node[K, V] {
	return tree.root
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node[K, V]) GetChildrenByDepth(depth uint) []*Node[K, V] {
	nodes := []*Node[K, V]{}

	if depth == 0 {
		nodes = []*Node[K, V]{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}

// Key - read the key from a node item
func (p *Node[K, V]) Key() K {
	return p.key
}

// Value - read the value from a node item
func (p *Node[K, V]) Value() V {
	return p.value
}

// Parent - return parent node of a node
func (p *Node[K, V]) Parent() *Node[K, V] {
	return p.up
}

// Left - return left child of a node
func (p *Node[K, V]) Left() *Node[K, V] {
	return p.left
}

// Right - return right child of a node
func (p *Node[K, V]) Right() *Node[K, V] {
	return p.right
}

// Balance - stored height of the sub-tree rooted at this node, only
// meaningful for nodes of an AVL tree
func (p *Node[K, V]) Balance() int8 {
	return p.balance
}

// Depth - get the depth of a node
func (p *Node[K, V]) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}
