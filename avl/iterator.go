// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"
)

// Iterator - a position in the in-order sequence of a tree
//
// the zero value is the end position, all exhausted iterators compare
// equal to it
type Iterator[K, V any] struct {
	node *Node[K, V]
}

// First - return the node with the lowest key value
func (tree *core[K, V]) First() *Node[K, V] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[K, V]) first() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest key value
func (tree *core[K, V]) Last() *Node[K, V] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[K, V]) last() *Node[K, V] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Next - given a node, return the node with the next highest key
// value or nil if no more nodes.
func (p *Node[K, V]) Next() *Node[K, V] {
	if p.right != nil {
		return p.right.first()
	}
	up := p.up
	for up != nil && p == up.right {
		p = up
		up = up.up
	}
	return up
}

// Prev - given a node, return the node with the next lowest key value
// or nil if no more nodes
func (p *Node[K, V]) Prev() *Node[K, V] {
	return p.predecessor()
}

// internal: in-order predecessor, rightmost node of the left sub-tree
// or the nearest ancestor that has p in its right sub-tree
func (p *Node[K, V]) predecessor() *Node[K, V] {
	if p.left != nil {
		return p.left.last()
	}
	up := p.up
	for up != nil && p == up.left {
		p = up
		up = up.up
	}
	return up
}

// Begin - iterator at the lowest key
func (tree *core[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{node: tree.root.first()}
}

// End - iterator one past the highest key
func (tree *core[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{}
}

// IsEnd - true when the iterator is past the last node
func (it Iterator[K, V]) IsEnd() bool {
	return nil == it.node
}

// Equal - both iterators refer to the same position
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.node == other.node
}

// Node - the node under the iterator, nil at the end
func (it Iterator[K, V]) Node() *Node[K, V] {
	return it.node
}

// Key - key under the iterator, must not be called at the end
func (it Iterator[K, V]) Key() K {
	if nil == it.node {
		panic("avl: Key called on end iterator")
	}
	return it.node.key
}

// Value - data under the iterator, must not be called at the end
func (it Iterator[K, V]) Value() V {
	if nil == it.node {
		panic("avl: Value called on end iterator")
	}
	return it.node.value
}

// SetValue - overwrite the data under the iterator
func (it Iterator[K, V]) SetValue(value V) {
	if nil == it.node {
		panic("avl: SetValue called on end iterator")
	}
	it.node.value = value
}

// Next - iterator at the in-order successor
func (it Iterator[K, V]) Next() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{node: it.node.Next()}
}

// Prev - iterator at the in-order predecessor, End() before the first
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	if nil == it.node {
		return it
	}
	return Iterator[K, V]{node: it.node.predecessor()}
}

// All - key/value pairs in increasing key order
//
// the tree must not be modified during the iteration
func (tree *core[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.first(); nil != p; p = p.Next() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Backward - key/value pairs in decreasing key order
func (tree *core[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for p := tree.root.last(); nil != p; p = p.predecessor() {
			if !yield(p.key, p.value) {
				return
			}
		}
	}
}

// Keys - keys in increasing order
func (tree *core[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for p := tree.root.first(); nil != p; p = p.Next() {
			if !yield(p.key) {
				return
			}
		}
	}
}
