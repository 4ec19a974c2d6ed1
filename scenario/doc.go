// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package scenario - replay a YAML list of map operations against an
// ordered map and verify the tree structure after every change
//
// example file:
//
//	name: remove with two children
//	steps:
//	  - {op: insert, key: "30", value: a}
//	  - {op: insert, key: "20", value: b}
//	  - {op: remove, key: "20", expect: "true"}
//	  - {op: get, key: "20", error: not_found}
//	  - {op: check, expect: balanced, count: 1}
package scenario
