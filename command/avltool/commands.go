// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/avltree/configuration"
)

// setup command handler
//
// commands that need neither the configuration file nor logging
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	if isScenarioFile(command) {
		return false // bare file names are scenarios to run
	}

	switch command {
	case "start", "run", "scenarios", "config":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  config                              - display the configuration after defaults are applied\n\n")
		fmt.Printf("  scenarios                           - list the configured scenario files\n\n")

		fmt.Printf("  start [FILE...]            (run)    - run configured and extra scenario files\n")
		fmt.Printf("  FILE.yaml...                        - same as start with the given files\n")
		fmt.Printf("                                        each on a fresh tree\n")
		fmt.Printf("\n")
		return true
	}
}

// configuration command handler
//
// enquiries that need only the configuration
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := arguments[0]

	switch command {
	case "config":
		fmt.Printf("data directory: %q\n", options.DataDirectory)
		fmt.Printf("tree:           %s\n", options.Tree)
		fmt.Printf("key order:      %s\n", options.KeyOrder)
		fmt.Printf("pool size:      %d\n", options.PoolSize)
		fmt.Printf("print tree:     %t\n", options.PrintTree)
		fmt.Printf("log directory:  %q\n", options.Logging.Directory)
		return true

	case "scenarios":
		for _, f := range options.Scenarios {
			fmt.Printf("%s\n", f)
		}
		return true

	default: // unknown commands fall through to main processing
		return false
	}
}

// scenario files are recognised by extension
func isScenarioFile(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
