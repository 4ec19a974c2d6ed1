// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// single LL rotation
//
//	      p               p1
//	     / \             /  \
//	    p1  c    →      a    p
//	   /  \                 / \
//	  a    b               b   c
//
// returns the new root of the sub-tree
func (tree *core[K, V]) rotateRight(p *Node[K, V]) *Node[K, V] {
	p1 := p.left

	p.left = p1.right
	if nil != p.left {
		p.left.up = p
	}
	tree.replaceChild(p, p1)
	p1.right = p
	p.up = p1

	p.balance = max(height(p.left), height(p.right)) + 1
	p1.balance = max(height(p1.left), height(p1.right)) + 1

	if nil != tree.log {
		tree.log.Tracef("rotate right at: %v", p.key)
	}
	return p1
}

// single RR rotation, mirror of rotateRight
func (tree *core[K, V]) rotateLeft(p *Node[K, V]) *Node[K, V] {
	p1 := p.right

	p.right = p1.left
	if nil != p.right {
		p.right.up = p
	}
	tree.replaceChild(p, p1)
	p1.left = p
	p.up = p1

	p.balance = max(height(p.left), height(p.right)) + 1
	p1.balance = max(height(p1.left), height(p1.right)) + 1

	if nil != tree.log {
		tree.log.Tracef("rotate left at: %v", p.key)
	}
	return p1
}

// double LR rotation
func (tree *core[K, V]) rotateLeftRight(p *Node[K, V]) *Node[K, V] {
	tree.rotateLeft(p.left)
	return tree.rotateRight(p)
}

// double RL rotation
func (tree *core[K, V]) rotateRightLeft(p *Node[K, V]) *Node[K, V] {
	tree.rotateRight(p.right)
	return tree.rotateLeft(p)
}

// internal: put q where p was below p's parent (or as root)
func (tree *core[K, V]) replaceChild(p *Node[K, V], q *Node[K, V]) {
	up := p.up
	if nil != q {
		q.up = up
	}
	switch {
	case nil == up:
		tree.root = q
	case up.left == p:
		up.left = q
	default:
		up.right = q
	}
}
