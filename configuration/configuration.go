// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// tree kinds
const (
	TreeAVL = "avl"
	TreeBST = "bst"
)

// key orders
const (
	KeyOrderString  = "string"
	KeyOrderNumeric = "numeric"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the configuration file
	defaultTree          = TreeAVL
	defaultKeyOrder      = KeyOrderString
	defaultPoolSize      = 0

	defaultLogDirectory = "log"
	defaultLogFile      = "avltool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// Configuration - settings for the tree tool
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Tree          string               `gluamapper:"tree" json:"tree"`
	KeyOrder      string               `gluamapper:"key_order" json:"key_order"`
	PoolSize      int                  `gluamapper:"pool_size" json:"pool_size"`
	Scenarios     []string             `gluamapper:"scenarios" json:"scenarios"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	if !ensureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigurationFile
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the parser merges into the map so never hand it the defaults
	levels := make(map[string]string, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		Tree:          defaultTree,
		KeyOrder:      defaultKeyOrder,
		PoolSize:      defaultPoolSize,
		Scenarios:     []string{},
		PrintTree:     false,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Tree = strings.ToLower(options.Tree)
	switch options.Tree {
	case TreeAVL, TreeBST:
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidTreeKind, options.Tree)
	}

	options.KeyOrder = strings.ToLower(options.KeyOrder)
	switch options.KeyOrder {
	case KeyOrderString, KeyOrderNumeric:
	default:
		return nil, fmt.Errorf("%w: %q", fault.ErrInvalidKeyOrder, options.KeyOrder)
	}

	if options.PoolSize < 0 {
		options.PoolSize = 0
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// scenario files are relative to the data directory
	for i, f := range options.Scenarios {
		options.Scenarios[i] = ensureAbsolute(options.DataDirectory, f)
	}

	// the log file must be a simple name in the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// ensureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// ensureFileExists - check if file exists
func ensureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
