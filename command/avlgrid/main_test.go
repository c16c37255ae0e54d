// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlgrid/fault"
)

func run(t *testing.T, arguments ...string) (string, string, error) {
	w := &bytes.Buffer{}
	e := &bytes.Buffer{}
	app := newApp(w, e)
	err := app.Run(append([]string{"avlgrid"}, arguments...))
	return w.String(), e.String(), err
}

func TestRender(t *testing.T) {
	out, _, err := run(t, "render", "3", "2", "1")
	require.NoError(t, err)
	assert.Equal(t, "  2  \n     \n 1 3 \n", out)

	out, _, err = run(t, "--edges", "--filler", ".", "render", "3,2,1")
	require.NoError(t, err)
	assert.Equal(t, "..2..\n./\\..\n.1.3.\n", out)

	out, _, err = run(t, "render")
	require.NoError(t, err)
	assert.Equal(t, "(empty tree)\n", out)
}

func TestRenderErrors(t *testing.T) {
	_, _, err := run(t, "--labels", "full", "render", "10", "20", "30")
	assert.Equal(t, fault.ErrLabelTooWide, err)

	_, _, err = run(t, "--maximum-height", "3", "render", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	assert.Equal(t, fault.ErrTreeTooTall, err)

	_, _, err = run(t, "--limit", "2", "render", "1", "2", "3")
	assert.Equal(t, fault.ErrAllocationFailure, err)

	_, _, err = run(t, "--filler", "ab", "render", "1")
	assert.Equal(t, fault.ErrInvalidFiller, err)

	_, _, err = run(t, "--labels", "wide", "render", "1")
	assert.Equal(t, fault.ErrInvalidLabelMode, err)

	_, _, err = run(t, "render", "one")
	assert.True(t, fault.IsErrInvalid(err))
}

func TestRenderFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "avlgrid")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "values.txt")
	require.NoError(t, ioutil.WriteFile(name, []byte("3\n2\n1\n"), 0600))

	out, _, err := run(t, "render", "--file", name)
	require.NoError(t, err)
	assert.Equal(t, "  2  \n     \n 1 3 \n", out)

	_, _, err = run(t, "render", "--file", name, "4")
	assert.Equal(t, ErrFileAndArguments, err)

	_, _, err = run(t, "render", "--file", filepath.Join(dir, "missing"))
	assert.Equal(t, fault.ErrNotFoundValuesFile, err)
}

func TestLookup(t *testing.T) {
	out, _, err := run(t, "lookup", "--value", "17", "19", "18", "17", "20", "21")
	require.NoError(t, err)

	result := lookupResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, lookupResult{Value: 17, Found: true, Height: 1, Depth: 1}, result)

	out, _, err = run(t, "lookup", "--value", "22", "19", "18", "17", "20", "21")
	require.NoError(t, err)

	result = lookupResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, lookupResult{Value: 22, Found: false}, result)

	_, _, err = run(t, "lookup", "1", "2")
	assert.Equal(t, ErrRequiredValue, err)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", "0", "1", "2", "3", "4", "5", "6", "7", "8", "9")
	require.NoError(t, err)

	result := checkResult{}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 10, result.Count)
	assert.Equal(t, 4, result.Height)
	assert.Equal(t, []int{1, 2, 4, 3}, result.Levels)
	assert.Equal(t, -1, result.Balance)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
}

func TestPrintAndValues(t *testing.T) {
	out, _, err := run(t, "print", "2", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "       /------+ 3 h:1 +0\n|------+ 2 h:2 +0\n       \\------+ 1 h:1 +0\n", out)

	out, e, err := run(t, "--verbose", "values", "5", "1", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "1,3,5\n", out)
	assert.Contains(t, e, "inserting 4 values")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}
