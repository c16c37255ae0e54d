// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - file system helpers shared by the commands
package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// IsPlainName - true if name has no directory part
func IsPlainName(name string) bool {
	switch filepath.Dir(name) {
	case "", ".":
		return "" != name
	default:
		return false
	}
}

// WriteFileAtomic - write to a temporary file in the same directory
// then rename it over name, so readers see either the old or the new
// content
func WriteFileAtomic(name string, data []byte, perm os.FileMode) error {
	directory, base := filepath.Split(name)
	if "" == directory {
		directory = "."
	}

	f, err := ioutil.TempFile(directory, "."+base+".")
	if nil != err {
		return err
	}
	tempName := f.Name()

	_, err = f.Write(data)
	if nil == err {
		err = f.Chmod(perm)
	}
	if closeErr := f.Close(); nil == err {
		err = closeErr
	}
	if nil != err {
		os.Remove(tempName)
		return err
	}
	return os.Rename(tempName, name)
}
