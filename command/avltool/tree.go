// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// operations the tool needs beyond those of a scenario
type stringTree interface {
	scenario.OrderedMap
	Print(w io.Writer, printData bool) int
	Root() *avl.Node[string, string]
	Height() int
	SetLog(log *logger.L)
	SetPoolSize(n int)
}

// create an empty tree of the configured kind and key order
func newTree(options *configuration.Configuration, log *logger.L) (stringTree, error) {
	var compare func(a, b string) int
	switch options.KeyOrder {
	case configuration.KeyOrderString:
		compare = strings.Compare
	case configuration.KeyOrderNumeric:
		compare = numericCompare
	default:
		return nil, fault.ErrInvalidKeyOrder
	}

	var tree stringTree
	switch options.Tree {
	case configuration.TreeAVL:
		tree = avl.NewFunc[string, string](compare)
	case configuration.TreeBST:
		tree = avl.NewBinarySearchTreeFunc[string, string](compare)
	default:
		return nil, fault.ErrInvalidTreeKind
	}

	tree.SetPoolSize(options.PoolSize)
	tree.SetLog(log)
	return tree, nil
}

// order keys as integers, any key that is not a number sorts after
// all numbers in string order
func numericCompare(a, b string) int {
	x, errA := strconv.ParseInt(a, 10, 64)
	y, errB := strconv.ParseInt(b, 10, 64)
	switch {
	case nil == errA && nil == errB:
		if c := cmp.Compare(x, y); 0 != c {
			return c
		}
		return strings.Compare(a, b) // "7" and "07"
	case nil == errA:
		return -1
	case nil == errB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
