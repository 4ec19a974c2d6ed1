// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllocatorReuse(t *testing.T) {
	a := allocator[int, string]{}
	a.resize(2)

	n1 := a.newNode(1, "one", nil)
	n2 := a.newNode(2, "two", n1)
	n3 := a.newNode(3, "three", n1)
	assert.Equal(t, 3, a.totalNodes, "created")

	a.freeNode(n1)
	a.freeNode(n2)
	a.freeNode(n3) // pool full, dropped
	assert.Equal(t, 2, a.freeNodes, "pooled")
	assert.Equal(t, 2, a.totalNodes, "live or pooled")

	p := a.newNode(9, "nine", nil)
	assert.Equal(t, n2, p, "last freed is reused first")
	assert.Equal(t, 9, p.key, "key")
	assert.Equal(t, "nine", p.value, "value")
	assert.Nil(t, p.up, "up pointer replaced")
	assert.Nil(t, p.left, "left cleared")
	assert.Equal(t, 1, a.freeNodes, "pooled")

	a.resize(0)
	assert.Equal(t, 0, a.freeNodes, "pool emptied")
	assert.Nil(t, a.pool, "pool list")
	assert.Equal(t, 1, a.totalNodes, "only the live node")
}

func TestAllocatorWithoutPool(t *testing.T) {
	a := allocator[string, int]{}
	n := a.newNode("k", 1, nil)
	a.freeNode(n)
	assert.Equal(t, 0, a.freeNodes, "nothing pooled")
	assert.Equal(t, 0, a.totalNodes, "nothing live")
	assert.Equal(t, "", n.key, "key cleared")
}
