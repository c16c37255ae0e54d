// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlgridd - keep a rendered tree in step with a file of values
//
// The values file is read, inserted in order into a balanced tree and
// the grid written to the output file.  This is repeated whenever the
// values file changes, no faster than the configured rebuild rate.
// Identical value lists reuse a cached rendering.
//
// Run with a Lua configuration file, see avlgridd.conf.sample:
//
//   avlgridd --config-file=avlgridd.conf
//
// Use --once to render a single time and exit.
package main
