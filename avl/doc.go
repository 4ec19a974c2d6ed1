// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - ordered key/value trees with parent pointers to allow
// iteration through the nodes
//
// Two trees share one node type and one set of algorithms:
//
//   BinarySearchTree - unbalanced, shape depends on insertion order
//   Tree             - AVL balanced, height stays O(log n)
//
// The AVL tree stores the height of each sub-tree in the node's
// balance field (a leaf is 0 and a missing child counts as -1) and
// after every insert or remove walks from the point of change up to
// the root, rotating wherever the heights of the two children differ
// by more than one.
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Insert of an existing key overwrites the data and keeps the node.
// Remove of a node with two children swaps the node into the place of
// its in-order predecessor instead of copying key and data, so
// references to other nodes remain valid.
package avl
