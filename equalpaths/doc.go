// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package equalpaths - check that every leaf of a binary tree lies at
// the same depth
//
// the trees here carry no ordering and no balance, they are built from
// a level-order text description or converted from an avl tree.
package equalpaths
