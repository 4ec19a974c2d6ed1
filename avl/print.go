// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, right
// sub-trees above their parent
//
// returns the maximum depth of the tree
func (tree *core[K, V]) Print(w io.Writer, printData bool) int {
	return printTree(w, tree.root, "", root, printData, tree.balanced)
}

// internal print - returns the maximum depth of the tree
func printTree[K, V any](w io.Writer, tree *Node[K, V], prefix string, br branch, printData bool, balanced bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData, balanced)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	up := any(nil)
	if nil != tree.up {
		up = tree.up.key
	}
	switch {
	case printData && balanced:
		fmt.Fprintf(w, "%v → %v ^%v h:%d\n", tree.key, tree.value, up, tree.balance)
	case printData:
		fmt.Fprintf(w, "%v → %v ^%v\n", tree.key, tree.value, up)
	default:
		fmt.Fprintf(w, "%v ^%v\n", tree.key, up)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData, balanced)
	}
	if rd > ld {
		return 1 + rd
	} else {
		return 1 + ld
	}
}
