// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package equalpaths

// Node - a plain binary tree node
type Node struct {
	Key   string
	Left  *Node
	Right *Node
}

// EqualPaths - true if all leaves are at the same depth
//
// a node with a single child takes that child's height, so a missing
// branch is ignored rather than counted as a leaf at that level.  an
// empty tree is trivially true.
func EqualPaths(root *Node) bool {
	_, ok := leafHeight(root)
	return ok
}

// internal: height of the leaves below p, leaf = 1, empty = 0
func leafHeight(p *Node) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil == p.Left && nil == p.Right {
		return 1, true
	}

	lh, lok := leafHeight(p.Left)
	if !lok {
		return 0, false
	}
	rh, rok := leafHeight(p.Right)
	if !rok {
		return 0, false
	}

	switch {
	case nil == p.Left:
		return rh + 1, true
	case nil == p.Right:
		return lh + 1, true
	case lh != rh:
		return 0, false
	default:
		return lh + 1, true
	}
}
