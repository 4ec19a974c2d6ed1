// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/scenario"
)

// run each scenario file on a fresh tree, returns number of failures
func runScenarios(options *configuration.Configuration, files []string, quiet bool, w io.Writer, log *logger.L) int {
	failures := 0

	for _, fileName := range files {
		if err := runOne(options, fileName, quiet, w, log); nil != err {
			if errors.Is(err, fault.ErrInvariantViolated) {
				fault.Criticalf("scenario: %q  broken tree: %s", fileName, err)
			} else {
				log.Errorf("scenario: %q  error: %s", fileName, err)
			}
			fmt.Fprintf(w, "FAIL %s: %s\n", fileName, err)
			failures += 1
		}
	}
	return failures
}

func runOne(options *configuration.Configuration, fileName string, quiet bool, w io.Writer, log *logger.L) error {
	s, err := scenario.Load(fileName)
	if nil != err {
		return err
	}

	// configuration was already verified
	tree, err := newTree(options, logger.New(options.Tree))
	fault.PanicIfError("tree setup", err)

	result, err := scenario.Run(tree, s, log)
	if nil != err {
		return err
	}

	equal := equalpaths.EqualPaths(equalpaths.Convert(tree.Root()))
	log.Infof("%s: height: %d  equal leaf depth: %t", s.Name, tree.Height(), equal)

	if !quiet {
		fmt.Fprintf(w, "PASS %s: steps: %d  count: %d  height: %d  balanced: %t  equal paths: %t\n",
			s.Name, result.Steps, result.Count, tree.Height(), result.Balanced, equal)
	}
	if options.PrintTree {
		depth := tree.Print(w, true)
		fmt.Fprintf(w, "depth: %d\n", depth)
	}
	return nil
}
