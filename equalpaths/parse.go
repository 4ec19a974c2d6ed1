// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package equalpaths

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// Parse - build a tree from a whitespace separated level-order list
//
// "-" or "nil" marks an absent child, children of absent nodes are not
// listed and trailing absent children may be omitted:
//
//	"1 2 3 4 - - 5"  →      1
//	                       / \
//	                      2   3
//	                     /     \
//	                    4       5
func Parse(description string) (*Node, error) {
	tokens := strings.Fields(description)
	if 0 == len(tokens) || absent(tokens[0]) {
		for _, t := range tokens {
			if !absent(t) {
				return nil, fmt.Errorf("%w: node: %q below an empty root", fault.ErrInvalidTreeDescription, t)
			}
		}
		return nil, nil
	}

	root := &Node{Key: tokens[0]}
	queue := []*Node{root}
	i := 1
	for i < len(tokens) {
		if 0 == len(queue) {
			return nil, fmt.Errorf("%w: node: %q has no parent", fault.ErrInvalidTreeDescription, tokens[i])
		}
		p := queue[0]
		queue = queue[1:]

		if !absent(tokens[i]) {
			p.Left = &Node{Key: tokens[i]}
			queue = append(queue, p.Left)
		}
		i += 1
		if i < len(tokens) && !absent(tokens[i]) {
			p.Right = &Node{Key: tokens[i]}
			queue = append(queue, p.Right)
		}
		i += 1
	}
	return root, nil
}

func absent(token string) bool {
	return "-" == token || "nil" == token
}

// Convert - copy the shape of an avl or bst sub-tree
func Convert[K, V any](root *avl.Node[K, V]) *Node {
	if nil == root {
		return nil
	}
	return &Node{
		Key:   fmt.Sprint(root.Key()),
		Left:  Convert(root.Left()),
		Right: Convert(root.Right()),
	}
}
