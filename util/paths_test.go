// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlgrid/util"
)

var absoluteTests = []struct {
	directory string
	path      string
	expected  string
}{
	{"/data", "values.txt", "/data/values.txt"},
	{"/data", "log/", "/data/log"},
	{"/data", "../tmp/x", "/tmp/x"},
	{"/data", "/etc/values.txt", "/etc/values.txt"},
	{"/data/", "./a//b", "/data/a/b"},
}

func TestEnsureAbsolute(t *testing.T) {
	for i, item := range absoluteTests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: directory: %q  path: %q", i, item.directory, item.path)
	}
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("avlgridd.log"), "plain")
	assert.False(t, util.IsPlainName(""), "empty")
	assert.False(t, util.IsPlainName("log/avlgridd.log"), "relative path")
	assert.False(t, util.IsPlainName("/avlgridd.log"), "absolute path")
}

func TestWriteFileAtomic(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "tree.txt")
	assert.False(t, util.EnsureFileExists(name), "exists before write")

	require.NoError(t, util.WriteFileAtomic(name, []byte("first\n"), 0640), "first write")
	require.NoError(t, util.WriteFileAtomic(name, []byte("second\n"), 0640), "second write")
	assert.True(t, util.EnsureFileExists(name), "exists after write")

	b, err := ioutil.ReadFile(name)
	require.NoError(t, err, "read back")
	assert.Equal(t, "second\n", string(b), "content")

	info, err := os.Stat(name)
	require.NoError(t, err, "stat")
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm(), "permissions")

	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err, "read directory")
	assert.Equal(t, 1, len(files), "temporary file left behind")
}

func TestWriteFileAtomicMissingDirectory(t *testing.T) {
	err := util.WriteFileAtomic("/no/such/directory/tree.txt", []byte("x"), 0600)
	assert.Error(t, err, "missing directory")
}
