// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree, or overwrite the data of
// an existing key
//
// returns true if a node was added
func (tree *BinarySearchTree[K, V]) Insert(key K, value V) bool {
	_, added := tree.insert(key, value)
	return added
}

// Insert - insert a new node into the tree, or overwrite the data of
// an existing key, then restore the balance on the path to the root
//
// returns true if a node was added
func (tree *Tree[K, V]) Insert(key K, value V) bool {
	p, added := tree.insert(key, value)
	if added {
		tree.rebalance(p)
	}
	return added
}

// internal: descend from the root and link a new leaf, no balancing
func (tree *core[K, V]) insert(key K, value V) (*Node[K, V], bool) {
	if nil == tree.root {
		tree.root = tree.alloc.newNode(key, value, nil)
		tree.count += 1
		return tree.root, true
	}

	p := tree.root
	for {
		switch c := tree.compare(key, p.key); {
		case c < 0: // key < p.key
			if nil == p.left {
				p.left = tree.alloc.newNode(key, value, p)
				tree.count += 1
				return p.left, true
			}
			p = p.left
		case c > 0: // key > p.key
			if nil == p.right {
				p.right = tree.alloc.newNode(key, value, p)
				tree.count += 1
				return p.right, true
			}
			p = p.right
		default:
			p.value = value
			return p, false
		}
	}
}

// internal: walk from p to the root, rotating any sub-tree whose
// children heights differ by more than one and refreshing the stored
// heights on the way
func (tree *core[K, V]) rebalance(p *Node[K, V]) {
	for nil != p {
		lh := height(p.left)
		rh := height(p.right)

		if lh-rh > 1 {
			// left branch is too tall
			if height(p.left.left) >= height(p.left.right) {
				p = tree.rotateRight(p)
			} else {
				p = tree.rotateLeftRight(p)
			}
		} else if rh-lh > 1 {
			// right branch is too tall
			if height(p.right.right) >= height(p.right.left) {
				p = tree.rotateLeft(p)
			} else {
				p = tree.rotateRightLeft(p)
			}
		} else {
			p.balance = max(lh, rh) + 1
		}
		p = p.up
	}
}
