// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package values - read lists of tree values from text
//
// Values are decimal int32 separated by white space or commas, a '#'
// starts a comment that runs to the end of the line.
package values

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avlgrid/avl"
	"github.com/bitmark-inc/avlgrid/fault"
)

// Parse - convert text to a list of values in the order given
func Parse(text string) ([]int32, error) {
	list := make([]int32, 0, 16)

	for lineNumber, line := range strings.Split(text, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.FieldsFunc(line, isSeparator)
		for _, field := range fields {
			v, err := parseOne(field)
			if nil != err {
				return nil, fmt.Errorf("line: %d: %q: %w", lineNumber+1, field, err)
			}
			list = append(list, v)
		}
	}
	return list, nil
}

// ParseArguments - values from command line arguments, each argument
// may itself hold several values
func ParseArguments(arguments []string) ([]int32, error) {
	list := make([]int32, 0, len(arguments))
	for _, a := range arguments {
		l, err := Parse(a)
		if nil != err {
			return nil, err
		}
		list = append(list, l...)
	}
	return list, nil
}

// ReadFile - read and parse a values file
func ReadFile(fileName string) ([]int32, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNotFoundValuesFile
		}
		return nil, err
	}
	return Parse(string(b))
}

// Build - insert the values in order into a new tree
//
// on error the partly built tree is released
func Build(a *avl.Allocator, list []int32) (*avl.Tree, error) {
	tree := avl.NewWithAllocator(a)
	for _, v := range list {
		if _, err := tree.Insert(v); nil != err {
			tree.Destroy()
			return nil, err
		}
	}
	return tree, nil
}

// Key - canonical text for a list, equal lists give equal keys
func Key(list []int32) string {
	b := strings.Builder{}
	for i, v := range list {
		if 0 != i {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatInt(int64(v), 10))
	}
	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\r', ',', ';':
		return true
	}
	return false
}

func parseOne(field string) (int32, error) {
	v, err := strconv.ParseInt(field, 10, 32)
	if nil == err {
		return int32(v), nil
	}
	if ne, ok := err.(*strconv.NumError); ok && strconv.ErrRange == ne.Err {
		return 0, fault.ErrValueOutOfRange
	}
	return 0, fault.ErrInvalidValue
}
