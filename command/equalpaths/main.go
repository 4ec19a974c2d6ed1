// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/equalpaths"
	"github.com/bitmark-inc/avltree/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "equalpaths"
	app.Usage = "check that all leaves of a binary tree are at the same depth"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "check a tree given in level order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "tree, t",
					Value: "",
					Usage: "*level order `NODES`, - for an absent child",
				},
			},
			Action: runCheck,
		},
		{
			Name:      "avl",
			Usage:     "build an AVL tree from integer keys and check it",
			ArgsUsage: "KEY...",
			Action:    runAVL,
		},
		{
			Name:  "version",
			Usage: "display program version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}
	return app
}

func runCheck(c *cli.Context) error {
	description := c.String("tree")
	if "" == description {
		return fmt.Errorf("%w: --tree is required", fault.ErrInvalidTreeDescription)
	}

	root, err := equalpaths.Parse(description)
	if nil != err {
		return err
	}

	if c.GlobalBool("verbose") {
		fmt.Fprintf(c.App.ErrWriter, "tree: %q\n", description)
	}
	fmt.Fprintf(c.App.Writer, "%t\n", equalpaths.EqualPaths(root))
	return nil
}

func runAVL(c *cli.Context) error {
	tree := avl.New[int, struct{}]()
	for _, s := range c.Args() {
		var k int
		if _, err := fmt.Sscanf(s, "%d", &k); nil != err {
			return fmt.Errorf("%w: key: %q", fault.ErrInvalidTreeDescription, s)
		}
		tree.Insert(k, struct{}{})
	}

	if c.GlobalBool("verbose") {
		tree.Print(c.App.ErrWriter, false)
	}
	fmt.Fprintf(c.App.Writer, "%t\n", equalpaths.EqualPaths(equalpaths.Convert(tree.Root())))
	return nil
}
