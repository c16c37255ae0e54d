// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlgrid/configuration"
	"github.com/bitmark-inc/avlgrid/fault"
	"github.com/bitmark-inc/avlgrid/layout"
	"github.com/bitmark-inc/avlgrid/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultValuesFile   = "values.txt"
	defaultOutputFile   = "tree.txt"
	defaultRebuildRate  = 2.0 // rebuilds per second
	defaultRebuildBurst = 1
	defaultCacheExpiry  = 600 // seconds

	defaultLogDirectory = "log"
	defaultLogFile      = "avlgridd.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// RenderType - options passed to the layout renderer
type RenderType struct {
	Edges         bool   `gluamapper:"edges" json:"edges"`
	Labels        string `gluamapper:"labels" json:"labels"`
	Filler        string `gluamapper:"filler" json:"filler"`
	MaximumHeight int    `gluamapper:"maximum_height" json:"maximum_height"`
}

// Configuration - the daemon settings
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string               `gluamapper:"pidfile" json:"pidfile"`
	ValuesFile    string               `gluamapper:"values_file" json:"values_file"`
	OutputFile    string               `gluamapper:"output_file" json:"output_file"`
	NodeLimit     int                  `gluamapper:"node_limit" json:"node_limit"`
	RebuildRate   float64              `gluamapper:"rebuild_rate" json:"rebuild_rate"`
	RebuildBurst  int                  `gluamapper:"rebuild_burst" json:"rebuild_burst"`
	CacheExpiry   int                  `gluamapper:"cache_expiry" json:"cache_expiry"`
	Render        RenderType           `gluamapper:"render" json:"render"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// the decoder merges into an existing map so give each call its own
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default
		ValuesFile:    defaultValuesFile,
		OutputFile:    defaultOutputFile,
		NodeLimit:     0, // unlimited
		RebuildRate:   defaultRebuildRate,
		RebuildBurst:  defaultRebuildBurst,
		CacheExpiry:   defaultCacheExpiry,

		Render: RenderType{
			Edges:         false,
			Labels:        layout.LabelAuto.String(),
			Filler:        string(layout.DefaultFiller),
			MaximumHeight: layout.DefaultMaximumHeight,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	variables := map[string]string{
		"config_directory": filepath.Clean(dataDirectory),
	}
	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); nil != err {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrInvalidDataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory: %w", options.DataDirectory, fault.ErrInvalidDataDirectory)
	}

	if "" == options.ValuesFile {
		return nil, fault.ErrMissingValuesFile
	}
	if "" == options.OutputFile {
		return nil, fault.ErrMissingOutputFile
	}
	if options.RebuildRate <= 0 {
		return nil, fault.ErrInvalidRebuildRate
	}
	if options.RebuildBurst < 1 {
		options.RebuildBurst = defaultRebuildBurst
	}
	if options.CacheExpiry <= 0 {
		options.CacheExpiry = defaultCacheExpiry
	}
	if options.NodeLimit < 0 {
		options.NodeLimit = 0
	}

	// check the render section now rather than on the first rebuild
	if _, err := options.renderOptions(); nil != err {
		return nil, err
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.ValuesFile,
		&options.OutputFile,
		&options.Logging.Directory,
	}
	if "" != options.PidFile {
		mustBeAbsolute = append(mustBeAbsolute, &options.PidFile)
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// the log file lives in the log directory so must not contain a path separator
	if !util.IsPlainName(options.Logging.File) {
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// convert the render section to layout options
func (c *Configuration) renderOptions() (layout.Options, error) {
	mode, err := layout.ParseLabelMode(c.Render.Labels)
	if nil != err {
		return layout.Options{}, err
	}

	filler := c.Render.Filler
	if 1 != len(filler) || filler[0] < ' ' || filler[0] > '~' {
		return layout.Options{}, fault.ErrInvalidFiller
	}

	return layout.Options{
		Filler:        filler[0],
		Labels:        mode,
		Edges:         c.Render.Edges,
		MaximumHeight: c.Render.MaximumHeight,
	}, nil
}

// cacheExpiry - lifetime of a cached rendering
func (c *Configuration) cacheExpiry() time.Duration {
	return time.Duration(c.CacheExpiry) * time.Second
}
