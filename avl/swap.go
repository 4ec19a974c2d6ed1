// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: exchange the positions of two nodes in the tree
//
// the key and data stay with their node, only the parent, left, right
// links (and the root) move.  when one node is the direct child of the
// other the link between them has to be reversed rather than copied.
// an AVL tree also exchanges the stored heights since these belong to
// the position, not to the node.
func (tree *core[K, V]) nodeSwap(n1 *Node[K, V], n2 *Node[K, V]) {
	if n1 == n2 || nil == n1 || nil == n2 {
		return
	}

	n1p, n1l, n1r := n1.up, n1.left, n1.right
	n2p, n2l, n2r := n2.up, n2.left, n2.right
	n1IsLeft := nil != n1p && n1 == n1p.left
	n2IsLeft := nil != n2p && n2 == n2p.left

	n1.up, n2.up = n2p, n1p
	n1.left, n2.left = n2l, n1l
	n1.right, n2.right = n2r, n1r

	// adjacent nodes
	switch {
	case n1r == n2:
		n2.right = n1
		n1.up = n2
	case n2r == n1:
		n1.right = n2
		n2.up = n1
	case n1l == n2:
		n2.left = n1
		n1.up = n2
	case n2l == n1:
		n1.left = n2
		n2.up = n1
	}

	// neighbours of n1's old position now refer to n2
	if nil != n1p && n1p != n2 {
		if n1IsLeft {
			n1p.left = n2
		} else {
			n1p.right = n2
		}
	}
	if nil != n1l && n1l != n2 {
		n1l.up = n2
	}
	if nil != n1r && n1r != n2 {
		n1r.up = n2
	}

	// neighbours of n2's old position now refer to n1
	if nil != n2p && n2p != n1 {
		if n2IsLeft {
			n2p.left = n1
		} else {
			n2p.right = n1
		}
	}
	if nil != n2l && n2l != n1 {
		n2l.up = n1
	}
	if nil != n2r && n2r != n1 {
		n2r.up = n1
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}

	if tree.balanced {
		n1.balance, n2.balance = n2.balance, n1.balance
	}
}
