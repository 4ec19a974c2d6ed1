// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Search - find a specific item, nil if not present
func (tree *core[K, V]) Search(key K) *Node[K, V] {
	p := tree.root
	for nil != p {
		switch c := tree.compare(key, p.key); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Find - iterator positioned at key, or End() if not present
func (tree *core[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{node: tree.Search(key)}
}

// Contains - true if key is present
func (tree *core[K, V]) Contains(key K) bool {
	return nil != tree.Search(key)
}

// Get - the data stored for key
//
// a missing key is a caller error and returns fault.ErrKeyNotFound
func (tree *core[K, V]) Get(key K) (V, error) {
	p := tree.Search(key)
	if nil == p {
		var zero V
		return zero, fault.ErrKeyNotFound
	}
	return p.value, nil
}
